package money_test

import (
	"testing"

	"github.com/hotelio/hotel_management_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRound2HalfUp(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no rounding needed", "10.00", "10"},
		{"rounds down below half", "10.004", "10"},
		{"ties round up", "10.005", "10.01"},
		{"rounds up above half", "10.006", "10.01"},
		{"negative ties round away from zero", "-10.005", "-10.01"},
		{"long fraction", "33.33333", "33.33"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, money.Round2(d(tc.input)).Equal(d(tc.expected)),
				"Round2(%s) = %s, want %s", tc.input, money.Round2(d(tc.input)), tc.expected)
		})
	}
}

func TestComputeTax(t *testing.T) {
	tax, total := money.ComputeTax(d("100.00"), d("20"))
	assert.True(t, tax.Equal(d("20.00")), "tax = %s", tax)
	assert.True(t, total.Equal(d("120.00")), "total = %s", total)

	// Rounding applies to the tax amount before the total is formed.
	tax, total = money.ComputeTax(d("33.33"), d("20"))
	assert.True(t, tax.Equal(d("6.67")), "tax = %s", tax)
	assert.True(t, total.Equal(d("40.00")), "total = %s", total)

	// Zero pre-tax behaves as zero everywhere.
	tax, total = money.ComputeTax(decimal.Zero, d("20"))
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

func TestPreTaxFromTotal(t *testing.T) {
	// The booking scenario: 120.00 gross at 20% VAT.
	preTax := money.PreTaxFromTotal(d("120.00"), d("20"))
	assert.True(t, preTax.Equal(d("100.00")), "preTax = %s", preTax)

	// Round-trips back through ComputeTax.
	tax, total := money.ComputeTax(preTax, d("20"))
	assert.True(t, tax.Equal(d("20.00")))
	assert.True(t, total.Equal(d("120.00")))
}
