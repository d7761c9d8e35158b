package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payledger/internal/common"
	"payledger/internal/models"
	"payledger/internal/payroll"
	"payledger/internal/services"
)

// AddRecord runs the payroll entry loop: one employee record per pass,
// terminated by entering "end" as the name. Each accepted record is appended
// to the store and echoed back with its computed pay.
func (a *App) AddRecord(ctx context.Context) error {
	fmt.Fprintln(a.out, "Payroll entry - enter employee data. Type 'end' for the name to finish.")

	for {
		name, err := GetSimpleText(a.reader, "Employee name (or 'end' to finish)", a.out)
		if err != nil {
			return err
		}
		if strings.EqualFold(name, "end") {
			return nil
		}
		if name == "" {
			fmt.Fprintln(a.out, "Name cannot be empty. Try again.")
			continue
		}

		id, err := a.promptEmployeeID(ctx)
		if err != nil {
			return err
		}

		from, err := GetDate(a.reader, "From date (mm/dd/yyyy)", a.out)
		if err != nil {
			return err
		}
		to, err := GetDate(a.reader, "To date (mm/dd/yyyy)", a.out)
		if err != nil {
			return err
		}
		hours, err := GetNonNegativeFloat(a.reader, "Hours worked", a.out)
		if err != nil {
			return err
		}
		rate, err := GetNonNegativeFloat(a.reader, "Hourly rate", a.out)
		if err != nil {
			return err
		}
		taxRate, err := GetTaxRate(a.reader, a.out)
		if err != nil {
			return err
		}

		stored, err := a.entryService.AddRecord(ctx, &models.EmployeeRecord{
			ID:       id,
			FromDate: from,
			ToDate:   to,
			Name:     name,
			Hours:    hours,
			Rate:     rate,
			TaxRate:  taxRate,
		})
		if err != nil {
			if errors.Is(err, common.ErrDuplicateID) {
				fmt.Fprintln(a.out, "That ID already exists. Record not saved.")
				continue
			}
			a.logger.Error(ctx, "could not store record", "error", err)
			fmt.Fprintf(a.out, "Warning: could not write record to file: %v\n", err)
			continue
		}

		gross, taxes, net := payroll.Calculate(stored.Hours, stored.Rate, stored.TaxRate)
		displayRecordPay(a.out, &services.RecordPay{Record: *stored, Gross: gross, Taxes: taxes, Net: net})
	}
}

// promptEmployeeID re-prompts until the entered id is not already in the
// store. A blank entry is accepted; the entry service assigns a generated id.
func (a *App) promptEmployeeID(ctx context.Context) (string, error) {
	existing, err := a.entryService.ExistingIDs(ctx)
	if err != nil {
		return "", err
	}

	for {
		id, err := GetSimpleText(a.reader, "Employee ID (blank to auto-generate)", a.out)
		if err != nil {
			return "", err
		}
		if id == "" {
			return "", nil
		}
		if _, ok := existing[id]; ok {
			fmt.Fprintln(a.out, "That ID already exists. Enter a different ID.")
			continue
		}
		return id, nil
	}
}
