// Package payroll implements the pure pay calculation and the input
// normalization/formatting helpers around it.
package payroll

// Calculate computes gross, taxes, and net pay for one record.
//
// Inputs are pre-validated by the caller: hours and rate are non-negative,
// taxRate is a fraction in [0,1]. The function is pure and has no error
// conditions.
func Calculate(hours, rate, taxRate float64) (gross, taxes, net float64) {
	gross = hours * rate
	taxes = gross * taxRate
	net = gross - taxes
	return gross, taxes, net
}
