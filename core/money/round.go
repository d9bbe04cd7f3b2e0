// Package money - Centralized rounding and display math.
// Engines declare amounts, not formatting.
// All rounding policy flows through these helpers.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"saas-cost/core/types"
)

// CurrencyPlaces is the default precision for currency amounts
const CurrencyPlaces = 2

// PercentagePlaces is the default precision for percentages
const PercentagePlaces = 1

// RoundCurrency rounds a currency amount to two decimal places,
// half away from zero.
func RoundCurrency(v decimal.Decimal) decimal.Decimal {
	return v.Round(CurrencyPlaces)
}

// RoundCurrencyTo rounds a currency amount to the given number of
// decimal places, half away from zero.
func RoundCurrencyTo(v decimal.Decimal, places int32) decimal.Decimal {
	return v.Round(places)
}

// RoundPercentage rounds a percentage to one decimal place,
// half away from zero.
func RoundPercentage(v float64) float64 {
	return RoundPercentageTo(v, PercentagePlaces)
}

// RoundPercentageTo rounds a percentage to the given number of
// decimal places, half away from zero.
func RoundPercentageTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// RoundCustomers rounds a customer count up. Capacity planning always
// rounds conservatively: a fraction of a customer still needs a seat.
// The ceiling of a negative value moves toward zero.
func RoundCustomers(v float64) int {
	return int(math.Ceil(v))
}

// FormatCompact renders an amount with a K/M suffix for dashboards,
// e.g. "MYR 5.0M", "MYR 500K", "MYR 500".
func FormatCompact(v decimal.Decimal, currency types.Currency) string {
	f, _ := v.Float64()
	abs := math.Abs(f)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s %.1fM", currency, f/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s %.0fK", currency, f/1_000)
	default:
		return fmt.Sprintf("%s %.0f", currency, f)
	}
}
