// Package money holds the rounding rules for cart and checkout totals.
// Line totals stay unrounded; only the final aggregate is rounded, so the
// returned total always equals the sum of the returned line totals.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Total sums price*qty over the given pairs and rounds the aggregate.
func Total(lines []Line) float64 {
	sum := 0.0
	for _, l := range lines {
		sum += l.Price * float64(l.Qty)
	}
	return Round2(sum)
}

type Line struct {
	Price float64
	Qty   int
}
