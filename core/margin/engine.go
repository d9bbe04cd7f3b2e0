// Package margin computes gross and operating margins and grades their
// health. All functions are pure; zero and negative denominators
// degrade to zero rather than erroring.
package margin

import (
	"github.com/shopspring/decimal"

	"saas-cost/core/types"
)

// Gross margin thresholds, in percent
const (
	GreatThreshold = 70.0
	OKThreshold    = 50.0
)

// Operating margin thresholds, in percent
const (
	OperatingHealthyThreshold    = 20.0
	OperatingAcceptableThreshold = 0.0
)

// GrossMargin is the gross margin percentage for a price and COGS.
// A zero or negative price has no meaningful margin and yields 0.
// The margin goes negative when COGS exceeds price.
func GrossMargin(price, cogs decimal.Decimal) float64 {
	if price.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	m, _ := price.Sub(cogs).Div(price).Mul(decimal.NewFromInt(100)).Float64()
	return m
}

// Profit is price minus COGS.
func Profit(price, cogs decimal.Decimal) decimal.Decimal {
	return price.Sub(cogs)
}

// OperatingMargin is the operating margin percentage after COGS and
// operating expenses. Zero or negative revenue yields 0.
func OperatingMargin(revenue, cogs, opEx decimal.Decimal) float64 {
	if revenue.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	m, _ := revenue.Sub(cogs).Sub(opEx).Div(revenue).Mul(decimal.NewFromInt(100)).Float64()
	return m
}

// GrossMarginStatus grades a gross or tier margin percentage.
func GrossMarginStatus(marginPercent float64) types.MarginStatus {
	switch {
	case marginPercent >= GreatThreshold:
		return types.MarginGreat
	case marginPercent >= OKThreshold:
		return types.MarginOK
	default:
		return types.MarginLow
	}
}

// OperatingMarginStatus grades an operating margin percentage.
// Operating margins run on a lower scale than gross margins.
func OperatingMarginStatus(marginPercent float64) types.OperatingHealth {
	switch {
	case marginPercent >= OperatingHealthyThreshold:
		return types.OperatingHealthy
	case marginPercent >= OperatingAcceptableThreshold:
		return types.OperatingAcceptable
	default:
		return types.OperatingLow
	}
}

// Info bundles margin, profit, and status for a single price point.
func Info(price, cogs decimal.Decimal) types.MarginInfo {
	m := GrossMargin(price, cogs)
	return types.MarginInfo{
		Margin: m,
		Profit: Profit(price, cogs),
		Status: GrossMarginStatus(m),
	}
}

// PriceTarget is a minimum price that may be unattainable. A target
// margin of 100% or more cannot be reached at any finite price.
type PriceTarget struct {
	// Amount is the minimum price; meaningless when Unbounded is true
	Amount decimal.Decimal `json:"amount"`

	// Unbounded marks the target as unattainable
	Unbounded bool `json:"unbounded,omitempty"`
}

// MinimumPriceForMargin inverts the gross margin formula: the lowest
// price at which the given COGS still yields the target margin. At a
// target of 0% the answer is COGS itself.
func MinimumPriceForMargin(cogs decimal.Decimal, targetMarginPercent float64) PriceTarget {
	if targetMarginPercent >= 100 {
		return PriceTarget{Unbounded: true}
	}
	divisor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(targetMarginPercent / 100))
	return PriceTarget{Amount: cogs.Div(divisor)}
}

// PricePoint is the margin picture at one candidate price.
type PricePoint struct {
	// Price is the candidate price
	Price decimal.Decimal `json:"price"`

	// Margin is the gross margin percentage at this price
	Margin float64 `json:"margin"`

	// Profit is price minus COGS
	Profit decimal.Decimal `json:"profit"`

	// Status grades the margin
	Status types.MarginStatus `json:"status"`
}

// ComparePricePoints evaluates the gross margin at each candidate
// price against a single COGS figure.
func ComparePricePoints(prices []decimal.Decimal, cogs decimal.Decimal) []PricePoint {
	points := make([]PricePoint, 0, len(prices))
	for _, price := range prices {
		info := Info(price, cogs)
		points = append(points, PricePoint{
			Price:  price,
			Margin: info.Margin,
			Profit: info.Profit,
			Status: info.Status,
		})
	}
	return points
}
