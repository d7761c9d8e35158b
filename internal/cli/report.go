package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payledger/internal/repositories/records"
	"payledger/internal/services"
)

// Report prompts for a From-date selector (or "All"), runs the report, and
// prints per-record detail followed by the totals summary.
func (a *App) Report(ctx context.Context) error {
	filter, err := a.promptReportFilter()
	if err != nil {
		return err
	}

	if a.session != nil {
		fmt.Fprintf(a.out, "\nLogged in as ID: %s    Auth: %s\n", a.session.UserID, a.session.Role)
	}

	details, totals, err := a.reportService.Run(ctx, filter)
	if err != nil {
		a.logger.Error(ctx, "report failed", "error", err)
		fmt.Fprintf(a.out, "Could not run the report: %v\n", err)
		return err
	}

	for i := range details {
		displayRecordPay(a.out, &details[i])
	}
	displaySummary(a.out, totals)
	return nil
}

// promptReportFilter re-prompts until the user enters "All" or a date in
// mm/dd/yyyy form; dates are returned normalized.
func (a *App) promptReportFilter() (string, error) {
	for {
		choice, err := GetSimpleText(a.reader, "Enter From date to report on (mm/dd/yyyy) or 'All'", a.out)
		if err != nil {
			return "", err
		}
		if strings.EqualFold(choice, "all") {
			return services.FilterAll, nil
		}
		t, err := time.Parse(records.DateLayout, choice)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter dates in mm/dd/yyyy format or 'All'.")
			continue
		}
		return t.Format(records.DateLayout), nil
	}
}
