// Package types - Cost model types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyMYR Currency = "MYR"
	CurrencyUSD Currency = "USD"
	CurrencySGD Currency = "SGD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// VariableCostItem is a per-customer consumption-based cost driver,
// e.g. API calls, storage, AI tokens.
type VariableCostItem struct {
	// ID uniquely identifies this cost item
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Unit is the consumption unit (e.g., "API call", "GB", "document")
	Unit string `json:"unit"`

	// CostPerUnit is the cost of one unit, non-negative
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`

	// UsagePerCustomer is average monthly units consumed per customer
	UsagePerCustomer decimal.Decimal `json:"usage_per_customer"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// FixedCostItem is a monthly cost independent of customer count,
// allocated pro-rata across paying customers.
type FixedCostItem struct {
	// ID uniquely identifies this cost item
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// MonthlyCost is the monthly amount, non-negative
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// CostBreakdown is the computed cost-to-serve for one customer.
// Utilization scaling applies to VariableTotal only; fixed allocation
// never depends on utilization.
type CostBreakdown struct {
	// VariableTotal is the per-customer variable cost
	VariableTotal decimal.Decimal `json:"variable_total"`

	// FixedTotal is the total monthly fixed cost across all items
	FixedTotal decimal.Decimal `json:"fixed_total"`

	// FixedPerCustomer is the fixed cost allocated to one customer
	FixedPerCustomer decimal.Decimal `json:"fixed_per_customer"`

	// TotalCOGS is VariableTotal + FixedPerCustomer
	TotalCOGS decimal.Decimal `json:"total_cogs"`
}

// Headcount is a customer count that may be unbounded. Unbounded
// means the count can never be reached, e.g. break-even when the
// contribution margin is zero or negative.
type Headcount struct {
	// Count is the customer count; meaningless when Unbounded is true
	Count int `json:"count"`

	// Unbounded marks the count as unreachable
	Unbounded bool `json:"unbounded,omitempty"`
}

// Finite constructs a reachable headcount
func Finite(n int) Headcount {
	return Headcount{Count: n}
}

// Unbounded constructs an unreachable headcount
func Unbounded() Headcount {
	return Headcount{Unbounded: true}
}

// Scenario carries the assumption scalars a unit-economics snapshot
// is computed under. All rates are monthly fractions (0.05 = 5%).
type Scenario struct {
	// CustomerCount is the number of paying customers
	CustomerCount int `json:"customer_count"`

	// UtilizationRate scales variable cost estimates (1 = full allowance)
	UtilizationRate float64 `json:"utilization_rate"`

	// ChurnRate is the monthly customer churn fraction
	ChurnRate float64 `json:"churn_rate"`

	// GrowthRate is the monthly customer growth fraction
	GrowthRate float64 `json:"growth_rate"`

	// CAC is the customer acquisition cost
	CAC decimal.Decimal `json:"cac"`

	// OperatingExpenses is monthly OpEx outside COGS
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`

	// Distribution maps tier ID to customer count on that tier
	Distribution map[string]int `json:"distribution,omitempty"`
}

// DefaultScenario returns neutral assumptions: full utilization,
// no churn, no growth, no acquisition spend.
func DefaultScenario() Scenario {
	return Scenario{
		CustomerCount:   0,
		UtilizationRate: 1,
	}
}
