// Package cogs computes cost-of-goods-sold for a SaaS customer base.
// This package transforms cost items + scenario scalars into per-customer
// cost breakdowns, revenue, and break-even counts. All functions are pure.
package cogs

import (
	"github.com/shopspring/decimal"

	"saas-cost/core/types"
)

// ItemCostPerCustomer is the monthly cost one customer incurs for a
// single variable cost item at the given utilization rate.
func ItemCostPerCustomer(item types.VariableCostItem, utilizationRate float64) decimal.Decimal {
	return item.CostPerUnit.
		Mul(item.UsagePerCustomer).
		Mul(decimal.NewFromFloat(utilizationRate))
}

// VariableCosts sums per-customer variable costs across all items.
// An empty item list costs nothing.
func VariableCosts(items []types.VariableCostItem, utilizationRate float64) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemCostPerCustomer(item, utilizationRate))
	}
	return total
}

// TotalFixedCosts sums monthly fixed costs across all items.
func TotalFixedCosts(items []types.FixedCostItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.MonthlyCost)
	}
	return total
}

// FixedCostPerCustomer allocates total fixed costs pro-rata across the
// customer base. With no customers there is nobody to allocate to, so
// the allocation is zero rather than a division error.
func FixedCostPerCustomer(items []types.FixedCostItem, customerCount int) decimal.Decimal {
	if customerCount <= 0 {
		return decimal.Zero
	}
	return TotalFixedCosts(items).Div(decimal.NewFromInt(int64(customerCount)))
}

// Breakdown composes the full per-customer COGS picture. The
// utilization rate applies to variable costs only; fixed allocation is
// independent of utilization.
func Breakdown(variable []types.VariableCostItem, fixed []types.FixedCostItem, customerCount int, utilizationRate float64) types.CostBreakdown {
	variableTotal := VariableCosts(variable, utilizationRate)
	fixedPerCustomer := FixedCostPerCustomer(fixed, customerCount)
	return types.CostBreakdown{
		VariableTotal:    variableTotal,
		FixedTotal:       TotalFixedCosts(fixed),
		FixedPerCustomer: fixedPerCustomer,
		TotalCOGS:        variableTotal.Add(fixedPerCustomer),
	}
}

// MRR is monthly recurring revenue over a tier distribution. A
// distribution entry with no matching price contributes nothing.
func MRR(tierPrices map[string]decimal.Decimal, tierDistribution map[string]int) decimal.Decimal {
	total := decimal.Zero
	for tierID, count := range tierDistribution {
		price, ok := tierPrices[tierID]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(count))))
	}
	return total
}

// BreakEvenCustomers is the customer count at which contribution
// margin covers fixed costs. A zero or negative contribution margin
// can never cover anything, so the count is unbounded. Zero fixed
// costs break even at zero customers; the contribution check still
// runs first, so a free-to-run business with an unprofitable price is
// reported as unbounded, not as already broken even.
func BreakEvenCustomers(totalFixedCosts, pricePerCustomer, variableCostPerCustomer decimal.Decimal) types.Headcount {
	contribution := pricePerCustomer.Sub(variableCostPerCustomer)
	if contribution.LessThanOrEqual(decimal.Zero) {
		return types.Unbounded()
	}
	n := totalFixedCosts.Div(contribution).Ceil().IntPart()
	return types.Finite(int(n))
}

// MonthlyProfit is revenue minus total variable and fixed costs.
// Negative when the business is pre-break-even.
func MonthlyProfit(mrr, totalVariableCosts, totalFixedCosts decimal.Decimal) decimal.Decimal {
	return mrr.Sub(totalVariableCosts).Sub(totalFixedCosts)
}
