// Package investor computes investor-facing SaaS metrics: valuation
// ranges, LTV, CAC efficiency, payback, and growth projections.
//
// Ratio math runs on float64 so the unbounded cases keep their natural
// sentinel (+Inf for infinite lifetime); "not applicable" results are
// nil pointers so they serialize to JSON null. Money aggregates stay
// decimal.
package investor

import (
	"math"

	"github.com/shopspring/decimal"

	"saas-cost/core/cogs"
	"saas-cost/core/margin"
	"saas-cost/core/money"
	"saas-cost/core/types"
)

// ARR-multiple valuation bands for early-stage SaaS
const (
	ValuationLowMultiple  = 5
	ValuationMidMultiple  = 10
	ValuationHighMultiple = 15
)

// LTV:CAC thresholds
const (
	LTVCACHealthyRatio    = 3.0
	LTVCACAcceptableRatio = 1.0
)

// Payback thresholds, in months
const (
	PaybackHealthyMonths    = 12
	PaybackAcceptableMonths = 24
)

// milestoneARRTargets are the standard revenue milestones, in the
// base currency.
var milestoneARRTargets = []int64{100_000, 500_000, 1_000_000, 5_000_000}

// Valuation scales ARR by the fixed low/mid/high multiples.
func Valuation(arr decimal.Decimal) types.ValuationProjection {
	return types.ValuationProjection{
		CurrentARR:    arr,
		ValuationLow:  arr.Mul(decimal.NewFromInt(ValuationLowMultiple)),
		ValuationMid:  arr.Mul(decimal.NewFromInt(ValuationMidMultiple)),
		ValuationHigh: arr.Mul(decimal.NewFromInt(ValuationHighMultiple)),
	}
}

// LTV is the gross-margin-adjusted revenue expected from one customer
// over its lifetime.
func LTV(arpu, grossMarginPercent, averageLifetimeMonths float64) float64 {
	return arpu * (grossMarginPercent / 100) * averageLifetimeMonths
}

// LTVFromChurn derives customer lifetime from the monthly churn rate.
// Zero churn means customers never leave, so lifetime value is
// unbounded (+Inf).
func LTVFromChurn(arpu, grossMarginPercent, monthlyChurnRate float64) float64 {
	if monthlyChurnRate <= 0 {
		return math.Inf(1)
	}
	return LTV(arpu, grossMarginPercent, 1/monthlyChurnRate)
}

// LTVCACRatio is LTV divided by CAC. With no acquisition spend the
// ratio is undefined, not zero or infinite; nil marks that.
func LTVCACRatio(ltv, cac float64) *float64 {
	if cac <= 0 {
		return nil
	}
	ratio := ltv / cac
	return &ratio
}

// LTVCACHealth grades an LTV:CAC ratio. An undefined ratio is graded
// concerning so dashboards never show a green light on missing data.
func LTVCACHealth(ratio *float64) types.MetricHealth {
	switch {
	case ratio == nil:
		return types.MetricConcerning
	case *ratio >= LTVCACHealthyRatio:
		return types.MetricHealthy
	case *ratio >= LTVCACAcceptableRatio:
		return types.MetricAcceptable
	default:
		return types.MetricConcerning
	}
}

// PaybackPeriod is the whole months of gross profit needed to recover
// the cost of acquiring one customer. Undefined (nil) when ARPU,
// margin, or CAC is zero or negative.
func PaybackPeriod(arpu, grossMarginPercent, cac float64) *int {
	if arpu <= 0 || grossMarginPercent <= 0 || cac <= 0 {
		return nil
	}
	monthlyContribution := arpu * (grossMarginPercent / 100)
	months := int(math.Ceil(cac / monthlyContribution))
	return &months
}

// PaybackHealth grades a payback period.
func PaybackHealth(months *int) types.MetricHealth {
	switch {
	case months == nil:
		return types.MetricConcerning
	case *months <= PaybackHealthyMonths:
		return types.MetricHealthy
	case *months <= PaybackAcceptableMonths:
		return types.MetricAcceptable
	default:
		return types.MetricConcerning
	}
}

// MonthsToTarget inverts compound growth: the whole months until the
// customer base grows from current to target at the given monthly
// rate. Already there means 0. Without growth, or without a seed
// customer to compound from, the target is unreachable (nil).
func MonthsToTarget(currentCustomers, targetCustomers int, monthlyGrowthRate float64) *int {
	if currentCustomers >= targetCustomers {
		zero := 0
		return &zero
	}
	if monthlyGrowthRate <= 0 || currentCustomers <= 0 {
		return nil
	}
	months := int(math.Ceil(
		math.Log(float64(targetCustomers)/float64(currentCustomers)) /
			math.Log(1+monthlyGrowthRate),
	))
	return &months
}

// Milestones projects the standard ARR milestones: the customer count
// each one needs and the months to reach it at the current growth
// rate. With zero ARPU no customer count is meaningful and
// CustomersNeeded is 0.
func Milestones(arpu float64, currentPaidCustomers int, monthlyGrowthRate float64, currency types.Currency) []types.MilestoneTarget {
	milestones := make([]types.MilestoneTarget, 0, len(milestoneARRTargets))
	for _, target := range milestoneARRTargets {
		targetARR := decimal.NewFromInt(target)

		customersNeeded := 0
		if arpu > 0 {
			customersNeeded = int(math.Ceil(float64(target) / (arpu * 12)))
		}

		milestones = append(milestones, types.MilestoneTarget{
			Label:           money.FormatCompact(targetARR, currency) + " ARR",
			TargetARR:       targetARR,
			CustomersNeeded: customersNeeded,
			MonthsToReach:   MonthsToTarget(currentPaidCustomers, customersNeeded, monthlyGrowthRate),
		})
	}
	return milestones
}

// BreakEvenTimeline is the months until the customer base reaches
// break-even at the current growth rate. An unbounded break-even
// count can never be reached (nil).
func BreakEvenTimeline(currentCustomers int, breakEven types.Headcount, monthlyGrowthRate float64) *int {
	if breakEven.Unbounded {
		return nil
	}
	return MonthsToTarget(currentCustomers, breakEven.Count, monthlyGrowthRate)
}

// Params are the inputs for a full investor metrics snapshot. Break-
// even uses the blended ARPU as the per-customer price against the
// variable cost per customer.
type Params struct {
	// MRR is current monthly recurring revenue
	MRR decimal.Decimal

	// PaidCustomers is the paying customer count
	PaidCustomers int

	// GrossMarginPercent is the blended gross margin
	GrossMarginPercent float64

	// TotalFixedCosts is the monthly fixed cost base
	TotalFixedCosts decimal.Decimal

	// VariableCostPerCustomer is the per-customer variable cost
	VariableCostPerCustomer decimal.Decimal

	// CAC is the customer acquisition cost
	CAC float64

	// MonthlyChurnRate is the monthly churn fraction
	MonthlyChurnRate float64

	// MonthlyGrowthRate is the monthly growth fraction
	MonthlyGrowthRate float64

	// Currency is the base currency for milestone labels
	Currency types.Currency
}

// Metrics computes the aggregate investor snapshot. When break-even
// is unbounded, CustomersToBreakEven is reported as 0 and callers
// branch on BreakEvenCustomers.Unbounded instead.
func Metrics(p Params) types.InvestorMetrics {
	arr := p.MRR.Mul(decimal.NewFromInt(12))

	arpu := decimal.Zero
	if p.PaidCustomers > 0 {
		arpu = p.MRR.Div(decimal.NewFromInt(int64(p.PaidCustomers)))
	}
	arpuF, _ := arpu.Float64()

	breakEven := cogs.BreakEvenCustomers(p.TotalFixedCosts, arpu, p.VariableCostPerCustomer)
	customersToBreakEven := 0
	if !breakEven.Unbounded && breakEven.Count > p.PaidCustomers {
		customersToBreakEven = breakEven.Count - p.PaidCustomers
	}

	ltv := LTVFromChurn(arpuF, p.GrossMarginPercent, p.MonthlyChurnRate)
	ratio := LTVCACRatio(ltv, p.CAC)

	return types.InvestorMetrics{
		MRR:                  p.MRR,
		ARR:                  arr,
		PaidCustomers:        p.PaidCustomers,
		ARPU:                 arpu,
		Valuation:            Valuation(arr),
		Milestones:           Milestones(arpuF, p.PaidCustomers, p.MonthlyGrowthRate, p.Currency),
		BreakEvenCustomers:   breakEven,
		CustomersToBreakEven: customersToBreakEven,
		MonthsToBreakEven:    BreakEvenTimeline(p.PaidCustomers, breakEven, p.MonthlyGrowthRate),
		GrossMarginHealth:    margin.GrossMarginStatus(p.GrossMarginPercent),
		LTVCACRatio:          (*types.Ratio)(ratio),
		PaybackPeriodMonths:  PaybackPeriod(arpuF, p.GrossMarginPercent, p.CAC),
	}
}
