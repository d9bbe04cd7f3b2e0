// Package types - Computed metric types
package types

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Ratio is a float64 that marshals non-finite values as JSON null.
// An infinite LTV:CAC ratio (zero churn) is meaningful in memory but
// has no JSON number representation; dashboards treat it the same as
// "not plottable".
type Ratio float64

// MarshalJSON emits null for NaN and infinities
func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// MarginStatus grades a gross or tier margin
type MarginStatus string

const (
	// MarginGreat is a margin of 70% or better
	MarginGreat MarginStatus = "great"

	// MarginOK is a margin of 50% or better
	MarginOK MarginStatus = "ok"

	// MarginLow is anything below 50%
	MarginLow MarginStatus = "low"
)

// OperatingHealth grades an operating margin
type OperatingHealth string

const (
	// OperatingHealthy is an operating margin of 20% or better
	OperatingHealthy OperatingHealth = "healthy"

	// OperatingAcceptable is a non-negative operating margin
	OperatingAcceptable OperatingHealth = "acceptable"

	// OperatingLow is a negative operating margin
	OperatingLow OperatingHealth = "low"
)

// MetricHealth grades investor metrics such as LTV:CAC and payback
type MetricHealth string

const (
	MetricHealthy    MetricHealth = "healthy"
	MetricAcceptable MetricHealth = "acceptable"
	MetricConcerning MetricHealth = "concerning"
)

// MarginInfo is the computed margin for a single price point
type MarginInfo struct {
	// Margin is the gross margin percentage; negative when COGS exceeds price
	Margin float64 `json:"margin"`

	// Profit is price minus COGS
	Profit decimal.Decimal `json:"profit"`

	// Status grades the margin
	Status MarginStatus `json:"status"`
}

// ValuationProjection scales ARR by fixed revenue multiples
type ValuationProjection struct {
	// CurrentARR is the annual recurring revenue the projection is based on
	CurrentARR decimal.Decimal `json:"current_arr"`

	// ValuationLow is ARR x 5
	ValuationLow decimal.Decimal `json:"valuation_low"`

	// ValuationMid is ARR x 10
	ValuationMid decimal.Decimal `json:"valuation_mid"`

	// ValuationHigh is ARR x 15
	ValuationHigh decimal.Decimal `json:"valuation_high"`
}

// MilestoneTarget is a revenue milestone with the customer count and
// time needed to reach it under compound growth.
type MilestoneTarget struct {
	// Label is a display label, e.g. "MYR 1.0M ARR"
	Label string `json:"label"`

	// TargetARR is the milestone's annual recurring revenue
	TargetARR decimal.Decimal `json:"target_arr"`

	// CustomersNeeded is the paying customer count at the milestone
	CustomersNeeded int `json:"customers_needed"`

	// MonthsToReach is the months until the milestone at the current
	// growth rate; nil when unreachable under current assumptions
	MonthsToReach *int `json:"months_to_reach"`
}

// InvestorMetrics is the aggregate investor-facing snapshot
type InvestorMetrics struct {
	// MRR is monthly recurring revenue
	MRR decimal.Decimal `json:"mrr"`

	// ARR is annual recurring revenue (MRR x 12)
	ARR decimal.Decimal `json:"arr"`

	// PaidCustomers is the paying customer count
	PaidCustomers int `json:"paid_customers"`

	// ARPU is average monthly revenue per paying customer
	ARPU decimal.Decimal `json:"arpu"`

	// Valuation is the ARR-multiple valuation range
	Valuation ValuationProjection `json:"valuation"`

	// Milestones are the standard revenue milestones
	Milestones []MilestoneTarget `json:"milestones"`

	// BreakEvenCustomers is the customer count covering fixed costs
	BreakEvenCustomers Headcount `json:"break_even_customers"`

	// CustomersToBreakEven is how many more customers are needed,
	// never negative
	CustomersToBreakEven int `json:"customers_to_break_even"`

	// MonthsToBreakEven is months until break-even at the current
	// growth rate; nil when unreachable
	MonthsToBreakEven *int `json:"months_to_break_even"`

	// GrossMarginHealth grades the blended gross margin
	GrossMarginHealth MarginStatus `json:"gross_margin_health"`

	// LTVCACRatio is LTV divided by CAC; nil when CAC is zero,
	// +Inf when lifetime value is unbounded
	LTVCACRatio *Ratio `json:"ltv_cac_ratio"`

	// PaybackPeriodMonths is months of gross profit to recover CAC;
	// nil when undefined
	PaybackPeriodMonths *int `json:"payback_period_months"`
}
