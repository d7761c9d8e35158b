package payroll

import (
	"errors"
	"strconv"
	"strings"
)

// ErrTaxRateOutOfRange is returned for rates outside 0..100%.
var ErrTaxRateOutOfRange = errors.New("tax rate out of range")

// ParseTaxRate normalizes percentage-style input to a fraction in [0,1].
// Accepted forms: "0.2", "20", "20%". Values above 1 are treated as percent.
func ParseTaxRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v > 1 {
		v = v / 100.0
	}
	if v < 0 || v > 1 {
		return 0, ErrTaxRateOutOfRange
	}
	return v, nil
}
