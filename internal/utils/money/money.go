// Package money is the single source of truth for currency arithmetic.
// All money-bearing fields use shopspring/decimal with two fractional
// digits; binary floating point is never used for amounts.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places with half-up semantics: ties round
// away from zero toward the larger magnitude. The same rule is applied
// to every monetary value in the application.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTax derives the tax amount and the tax-inclusive total from a
// pre-tax amount and a tax rate expressed in percent (20 means 20%).
// A zero-value preTax is treated as zero.
func ComputeTax(preTax decimal.Decimal, ratePercent decimal.Decimal) (taxAmount, total decimal.Decimal) {
	taxAmount = Round2(preTax.Mul(ratePercent.Div(hundred)))
	total = Round2(preTax.Add(taxAmount))
	return taxAmount, total
}

// PreTaxFromTotal converts a tax-inclusive total back to its pre-tax
// amount for the given rate: total / (1 + rate/100), rounded to 2 places.
func PreTaxFromTotal(total decimal.Decimal, ratePercent decimal.Decimal) decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(ratePercent.Div(hundred))
	return Round2(total.DivRound(divisor, 6))
}
