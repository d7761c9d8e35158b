package payroll

import (
	"fmt"
	"strings"
)

// Money formats an amount as "$1,234.56": two decimals, comma-grouped.
// Negative amounts keep the sign before the dollar symbol.
func Money(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), frac)
}

// Percent formats a fraction as a percentage with two decimals, e.g. 0.2 -> "20.00%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
