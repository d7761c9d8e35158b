package models

// Totals accumulates aggregate figures over a filtered set of pay records.
// It is derived state: recomputed on every report run, never persisted.
type Totals struct {
	Employees int
	Hours     float64
	Gross     float64
	Taxes     float64
	Net       float64
}

// Add folds one record's hours and computed pay into the totals.
func (t *Totals) Add(hours, gross, taxes, net float64) {
	t.Employees++
	t.Hours += hours
	t.Gross += gross
	t.Taxes += taxes
	t.Net += net
}
