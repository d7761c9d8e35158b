package cli

import (
	"fmt"
	"io"
	"strings"

	"payledger/internal/models"
	"payledger/internal/payroll"
	"payledger/internal/services"
)

// displayRecordPay prints one record's dates, fields, and computed pay.
func displayRecordPay(w io.Writer, d *services.RecordPay) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "From date: %s\n", d.Record.FromDate)
	fmt.Fprintf(w, "To date:   %s\n", d.Record.ToDate)
	fmt.Fprintf(w, "Employee: %s\n", d.Record.Name)
	fmt.Fprintf(w, "Hours worked: %g\n", d.Record.Hours)
	fmt.Fprintf(w, "Hourly rate: %s\n", payroll.Money(d.Record.Rate))
	fmt.Fprintf(w, "Gross pay: %s\n", payroll.Money(d.Gross))
	fmt.Fprintf(w, "Income tax rate: %s\n", payroll.Percent(d.Record.TaxRate))
	fmt.Fprintf(w, "Income taxes: %s\n", payroll.Money(d.Taxes))
	fmt.Fprintf(w, "Net pay: %s\n", payroll.Money(d.Net))
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// displaySummary prints the aggregate totals over the reported records.
func displaySummary(w io.Writer, totals *models.Totals) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary for all employees:")
	fmt.Fprintf(w, "Total employees: %d\n", totals.Employees)
	fmt.Fprintf(w, "Total hours worked: %g\n", totals.Hours)
	fmt.Fprintf(w, "Total gross pay: %s\n", payroll.Money(totals.Gross))
	fmt.Fprintf(w, "Total income taxes: %s\n", payroll.Money(totals.Taxes))
	fmt.Fprintf(w, "Total net pay: %s\n", payroll.Money(totals.Net))
}
