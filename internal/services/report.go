package services

import (
	"context"
	"fmt"

	"payledger/internal/logging"
	"payledger/internal/models"
	"payledger/internal/payroll"
	"payledger/internal/repositories/records"
)

// FilterAll selects every stored record regardless of its From date.
const FilterAll = "All"

// RecordPay couples a stored record with its computed pay figures.
type RecordPay struct {
	Record models.EmployeeRecord
	Gross  float64
	Taxes  float64
	Net    float64
}

// ReportService runs the payroll report: filter, per-record pay calculation,
// and aggregation into Totals.
//
// The date filter compares the normalized mm/dd/yyyy strings for equality.
// Two calendar-equal but textually different dates do not match; this mirrors
// the stored form and keeps filtering a pure string operation.
type ReportService interface {
	Run(ctx context.Context, fromDate string) ([]RecordPay, *models.Totals, error)
}

type reportService struct {
	records records.Repository
	logger  logging.Logger
}

// NewReportService constructs a ReportService over the given record store.
func NewReportService(repo records.Repository, logger logging.Logger) ReportService {
	return &reportService{
		records: repo,
		logger:  logger.With("component", "report"),
	}
}

// Run loads the records selected by fromDate (or all of them for FilterAll),
// computes pay per record in file order, and returns the details together
// with the accumulated totals. An empty or missing store yields zero totals.
func (r *reportService) Run(ctx context.Context, fromDate string) ([]RecordPay, *models.Totals, error) {
	filter := fromDate
	if filter == FilterAll {
		filter = ""
	}

	recs, err := r.records.LoadAll(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("load records: %w", err)
	}

	totals := &models.Totals{}
	details := make([]RecordPay, 0, len(recs))

	for _, rec := range recs {
		gross, taxes, net := payroll.Calculate(rec.Hours, rec.Rate, rec.TaxRate)
		details = append(details, RecordPay{Record: rec, Gross: gross, Taxes: taxes, Net: net})
		totals.Add(rec.Hours, gross, taxes, net)
	}

	r.logger.Debug(ctx, "report computed", "filter", fromDate, "employees", totals.Employees)
	return details, totals, nil
}
