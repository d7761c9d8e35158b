// Package models holds the domain types shared by repositories, services,
// and the CLI: pay records, user accounts, roles, and report totals.
package models

// EmployeeRecord is one employee's pay entry for a date range.
//
// ID is empty for records read from the legacy 6-field schema. Dates are
// kept in their normalized mm/dd/yyyy textual form; TaxRate is a fraction
// in [0,1]. Records are immutable once appended to the store.
type EmployeeRecord struct {
	ID       string
	FromDate string
	ToDate   string
	Name     string
	Hours    float64
	Rate     float64
	TaxRate  float64
}
