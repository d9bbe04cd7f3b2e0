// Package engine composes the calculation engines into a single
// unit-economics snapshot: cost items + tiers + scenario in, COGS,
// margins, investor metrics, and AI cost projections out.
package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"saas-cost/core/aicost"
	"saas-cost/core/cogs"
	"saas-cost/core/investor"
	"saas-cost/core/margin"
	"saas-cost/core/types"
	"saas-cost/internal/logging"
)

// AIAssumptions are the per-customer AI usage assumptions applied to
// a snapshot. Nil assumptions skip the AI projection.
type AIAssumptions struct {
	// Provider is the AI provider ID
	Provider string `json:"provider"`

	// Model is the model ID; empty selects the provider default
	Model string `json:"model,omitempty"`

	// AvgInputTokens is the prompt size per request
	AvgInputTokens int64 `json:"avg_input_tokens"`

	// AvgOutputTokens is the completion size per request
	AvgOutputTokens int64 `json:"avg_output_tokens"`

	// RequestsPerMonth is the monthly request volume per customer
	RequestsPerMonth int `json:"requests_per_month"`

	// ExchangeRate converts USD costs to the base currency
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// Input is everything a snapshot is computed from
type Input struct {
	// Variable are the per-customer cost drivers
	Variable []types.VariableCostItem `json:"variable"`

	// Fixed are the customer-independent monthly costs
	Fixed []types.FixedCostItem `json:"fixed"`

	// Tiers are the pricing plans
	Tiers []types.Tier `json:"tiers"`

	// Scenario carries the assumption scalars
	Scenario types.Scenario `json:"scenario"`

	// Currency is the base currency
	Currency types.Currency `json:"currency"`

	// AI are optional per-customer AI usage assumptions
	AI *AIAssumptions `json:"ai,omitempty"`
}

// TierMargin is one tier's margin against the snapshot COGS
type TierMargin struct {
	// TierID identifies the tier
	TierID string `json:"tier_id"`

	// TierName is the tier's display name
	TierName string `json:"tier_name"`

	// Status is the tier's availability
	Status types.TierStatus `json:"status"`

	// Price is the tier's monthly price
	Price decimal.Decimal `json:"price"`

	// Margin is the tier's margin picture
	Margin types.MarginInfo `json:"margin"`
}

// Report is the complete unit-economics snapshot
type Report struct {
	// Currency is the base currency
	Currency types.Currency `json:"currency"`

	// Scenario echoes the assumptions the report was computed under
	Scenario types.Scenario `json:"scenario"`

	// Costs is the per-customer COGS breakdown
	Costs types.CostBreakdown `json:"costs"`

	// MRR is monthly recurring revenue over the tier distribution
	MRR decimal.Decimal `json:"mrr"`

	// MonthlyProfit is MRR minus all variable and fixed costs
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`

	// BlendedMargin is the gross margin of ARPU against COGS
	BlendedMargin float64 `json:"blended_margin"`

	// OperatingMargin is the margin after COGS and operating expenses
	OperatingMargin float64 `json:"operating_margin"`

	// OperatingHealth grades the operating margin
	OperatingHealth types.OperatingHealth `json:"operating_health"`

	// TierMargins is each tier's margin against the snapshot COGS
	TierMargins []TierMargin `json:"tier_margins"`

	// Investor is the investor-facing metric aggregate
	Investor types.InvestorMetrics `json:"investor"`

	// AICostPerCustomer is the monthly AI cost projection for one
	// customer; nil when no AI assumptions were supplied
	AICostPerCustomer *aicost.CostBreakdown `json:"ai_cost_per_customer,omitempty"`
}

// Engine computes snapshots. It holds the AI pricing catalog and a
// logger; the underlying calculations stay pure.
type Engine struct {
	ai  *aicost.Engine
	log *zap.Logger
}

// New creates a snapshot engine over the given AI pricing catalog
func New(catalog aicost.Catalog) *Engine {
	return &Engine{
		ai:  aicost.NewEngine(catalog),
		log: logging.Logger,
	}
}

// AI returns the engine's AI cost engine
func (e *Engine) AI() *aicost.Engine {
	return e.ai
}

// distribution returns the tier distribution to price revenue over.
// Without an explicit distribution every customer sits on the first
// sellable tier, which keeps a minimal workspace meaningful.
func distribution(tiers []types.Tier, scenario types.Scenario) map[string]int {
	if len(scenario.Distribution) > 0 {
		return scenario.Distribution
	}
	for _, tier := range tiers {
		if tier.IsSellable() {
			return map[string]int{tier.ID: scenario.CustomerCount}
		}
	}
	return nil
}

// Snapshot computes the full unit-economics report for an input
func (e *Engine) Snapshot(in Input) *Report {
	dist := distribution(in.Tiers, in.Scenario)

	paid := 0
	for _, n := range dist {
		paid += n
	}

	prices := make(map[string]decimal.Decimal, len(in.Tiers))
	for _, tier := range in.Tiers {
		if tier.IsSellable() {
			prices[tier.ID] = tier.MonthlyPrice
		}
	}

	costs := cogs.Breakdown(in.Variable, in.Fixed, paid, in.Scenario.UtilizationRate)
	mrr := cogs.MRR(prices, dist)

	arpu := decimal.Zero
	if paid > 0 {
		arpu = mrr.Div(decimal.NewFromInt(int64(paid)))
	}
	blended := margin.GrossMargin(arpu, costs.TotalCOGS)

	variableBase := costs.VariableTotal.Mul(decimal.NewFromInt(int64(paid)))
	cogsBase := variableBase.Add(costs.FixedTotal)
	operating := margin.OperatingMargin(mrr, cogsBase, in.Scenario.OperatingExpenses)

	tierMargins := make([]TierMargin, 0, len(in.Tiers))
	for _, tier := range in.Tiers {
		tierMargins = append(tierMargins, TierMargin{
			TierID:   tier.ID,
			TierName: tier.Name,
			Status:   tier.Status,
			Price:    tier.MonthlyPrice,
			Margin:   margin.Info(tier.MonthlyPrice, costs.TotalCOGS),
		})
	}

	cac, _ := in.Scenario.CAC.Float64()
	metrics := investor.Metrics(investor.Params{
		MRR:                     mrr,
		PaidCustomers:           paid,
		GrossMarginPercent:      blended,
		TotalFixedCosts:         costs.FixedTotal,
		VariableCostPerCustomer: costs.VariableTotal,
		CAC:                     cac,
		MonthlyChurnRate:        in.Scenario.ChurnRate,
		MonthlyGrowthRate:       in.Scenario.GrowthRate,
		Currency:                in.Currency,
	})

	report := &Report{
		Currency:        in.Currency,
		Scenario:        in.Scenario,
		Costs:           costs,
		MRR:             mrr,
		MonthlyProfit:   cogs.MonthlyProfit(mrr, variableBase, costs.FixedTotal),
		BlendedMargin:   blended,
		OperatingMargin: operating,
		OperatingHealth: margin.OperatingMarginStatus(operating),
		TierMargins:     tierMargins,
		Investor:        metrics,
	}

	if in.AI != nil {
		cost := e.ai.MonthlyAICostPerCustomer(
			in.AI.AvgInputTokens,
			in.AI.AvgOutputTokens,
			in.AI.RequestsPerMonth,
			in.AI.Provider,
			in.AI.Model,
			in.AI.ExchangeRate,
		)
		report.AICostPerCustomer = &cost
		if !cost.PricingKnown {
			e.log.Warn("no pricing for AI provider/model, projecting zero cost",
				zap.String("provider", in.AI.Provider),
				zap.String("model", cost.Model))
		}
	}

	e.log.Debug("computed unit-economics snapshot",
		zap.Int("paid_customers", paid),
		zap.String("mrr", mrr.String()))

	return report
}
