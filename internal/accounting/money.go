package accounting

import "github.com/shopspring/decimal"

// Tolerance is the rounding slack applied to monetary comparisons:
// allocation totals must match the payment amount within it, and an
// invoice whose remainder falls at or below it counts as fully paid.
var Tolerance = decimal.New(1, -2) // 0.01

// roundCurrency normalizes a monetary value to 2 decimal places,
// half away from zero, before it takes part in any summation.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
