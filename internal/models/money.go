package models

import "github.com/shopspring/decimal"

const CurrencySymbol = "₹"

// DefaultTaxRate is the fixed 18% sales tax.
var DefaultTaxRate = decimal.RequireFromString("0.18")

func FormatCurrency(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}

// TaxOn returns amount × rate rounded half away from zero to two decimals.
// Sale headers store this rounded figure, so total = subtotal + TaxOn(subtotal)
// and 10.05 totals 11.86.
func TaxOn(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}
