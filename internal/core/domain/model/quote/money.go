package quote

import "github.com/shopspring/decimal"

// RoundCents rounds a monetary amount to two decimal places, half-up at
// the cent (0.375 rounds to 0.38). float64 arithmetic alone rounds
// half-to-even, which disagrees with how the upstream tariffs are
// published, so the rounding goes through decimal.
func RoundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
