package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Example(t *testing.T) {
	gross, taxes, net := Calculate(40, 20, 0.20)

	assert.InDelta(t, 800.00, gross, 1e-9)
	assert.InDelta(t, 160.00, taxes, 1e-9)
	assert.InDelta(t, 640.00, net, 1e-9)
}

func TestCalculate_NetPlusTaxesEqualsGross(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		rate    float64
		taxRate float64
	}{
		{"typical", 40, 20, 0.20},
		{"zero hours", 0, 55.5, 0.33},
		{"zero rate", 38, 0, 0.1},
		{"zero tax", 12.5, 18.75, 0},
		{"full tax", 10, 10, 1},
		{"fractional", 37.25, 21.13, 0.0765},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross, taxes, net := Calculate(tt.hours, tt.rate, tt.taxRate)

			assert.InDelta(t, tt.hours*tt.rate, gross, 1e-9)
			assert.InDelta(t, gross*tt.taxRate, taxes, 1e-9)
			assert.InDelta(t, gross, net+taxes, 1e-9)
			assert.GreaterOrEqual(t, gross+1e-9, net)
		})
	}
}

func TestParseTaxRate(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0.2", 0.2, false},
		{"20", 0.20, false},
		{"20%", 0.20, false},
		{" 7.65% ", 0.0765, false},
		{"1", 1, false},
		{"0", 0, false},
		{"100", 1, false},
		{"150", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTaxRate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{999.999, "$1,000.00"},
		{1000000, "$1,000,000.00"},
		{-42.5, "-$42.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "20.00%", Percent(0.2))
	assert.Equal(t, "7.65%", Percent(0.0765))
	assert.Equal(t, "0.00%", Percent(0))
}
