package engine

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"saas-cost/core/aicost"
	"saas-cost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testInput() Input {
	return Input{
		Variable: []types.VariableCostItem{
			{ID: "ai_tokens", Name: "AI tokens", Unit: "request", CostPerUnit: dec("0.05"), UsagePerCustomer: dec("100")},
		},
		Fixed: []types.FixedCostItem{
			{ID: "hosting", Name: "Hosting", MonthlyCost: dec("1000")},
		},
		Tiers: []types.Tier{
			{ID: "starter", Name: "Starter", MonthlyPrice: dec("49"), Status: types.TierActive},
			{ID: "pro", Name: "Pro", MonthlyPrice: dec("149"), Status: types.TierActive},
			{ID: "enterprise", Name: "Enterprise", MonthlyPrice: dec("499"), Status: types.TierComingSoon},
		},
		Scenario: types.Scenario{
			CustomerCount:     50,
			UtilizationRate:   1,
			ChurnRate:         0.05,
			GrowthRate:        0.1,
			CAC:               dec("500"),
			OperatingExpenses: dec("1500"),
			Distribution:      map[string]int{"starter": 30, "pro": 20},
		},
		Currency: types.CurrencyMYR,
	}
}

func TestSnapshot(t *testing.T) {
	e := New(aicost.DefaultCatalog())
	report := e.Snapshot(testInput())

	// 30 x 49 + 20 x 149
	if !report.MRR.Equal(dec("4450")) {
		t.Errorf("MRR = %s, want 4450", report.MRR)
	}

	// 0.05 x 100 variable, 1000 / 50 fixed allocation
	if !report.Costs.VariableTotal.Equal(dec("5")) {
		t.Errorf("VariableTotal = %s, want 5", report.Costs.VariableTotal)
	}
	if !report.Costs.FixedPerCustomer.Equal(dec("20")) {
		t.Errorf("FixedPerCustomer = %s, want 20", report.Costs.FixedPerCustomer)
	}
	if !report.Costs.TotalCOGS.Equal(dec("25")) {
		t.Errorf("TotalCOGS = %s, want 25", report.Costs.TotalCOGS)
	}

	// ARPU 89 against COGS 25
	wantBlended := (89.0 - 25.0) / 89.0 * 100
	if math.Abs(report.BlendedMargin-wantBlended) > 1e-9 {
		t.Errorf("BlendedMargin = %v, want %v", report.BlendedMargin, wantBlended)
	}

	// 4450 revenue, 250 + 1000 COGS, 1500 opex
	wantOperating := (4450.0 - 1250.0 - 1500.0) / 4450.0 * 100
	if math.Abs(report.OperatingMargin-wantOperating) > 1e-9 {
		t.Errorf("OperatingMargin = %v, want %v", report.OperatingMargin, wantOperating)
	}
	if report.OperatingHealth != types.OperatingHealthy {
		t.Errorf("OperatingHealth = %s, want healthy", report.OperatingHealth)
	}

	if !report.MonthlyProfit.Equal(dec("3200")) {
		t.Errorf("MonthlyProfit = %s, want 3200", report.MonthlyProfit)
	}

	if len(report.TierMargins) != 3 {
		t.Fatalf("expected 3 tier margins, got %d", len(report.TierMargins))
	}
	if report.TierMargins[2].Status != types.TierComingSoon {
		t.Error("non-sellable tiers still get a margin row")
	}

	if report.Investor.PaidCustomers != 50 {
		t.Errorf("Investor.PaidCustomers = %d, want 50", report.Investor.PaidCustomers)
	}
	if !report.Investor.ARPU.Equal(dec("89")) {
		t.Errorf("Investor.ARPU = %s, want 89", report.Investor.ARPU)
	}

	if report.AICostPerCustomer != nil {
		t.Error("no AI assumptions were supplied, projection must be nil")
	}
}

func TestSnapshotDefaultDistribution(t *testing.T) {
	in := testInput()
	in.Scenario.Distribution = nil
	in.Scenario.CustomerCount = 10

	report := New(aicost.DefaultCatalog()).Snapshot(in)

	// Everyone lands on the first sellable tier.
	if !report.MRR.Equal(dec("490")) {
		t.Errorf("MRR = %s, want 490", report.MRR)
	}
	if report.Investor.PaidCustomers != 10 {
		t.Errorf("PaidCustomers = %d, want 10", report.Investor.PaidCustomers)
	}
}

func TestSnapshotDefaultDistributionSkipsUnsellable(t *testing.T) {
	in := testInput()
	in.Scenario.Distribution = nil
	in.Scenario.CustomerCount = 10
	in.Tiers[0].Status = types.TierInternal

	report := New(aicost.DefaultCatalog()).Snapshot(in)

	if !report.MRR.Equal(dec("1490")) {
		t.Errorf("MRR = %s, want 1490 (10 customers on pro)", report.MRR)
	}
}

func TestSnapshotNoSellableTiers(t *testing.T) {
	in := testInput()
	in.Scenario.Distribution = nil
	for i := range in.Tiers {
		in.Tiers[i].Status = types.TierComingSoon
	}

	report := New(aicost.DefaultCatalog()).Snapshot(in)

	if !report.MRR.IsZero() {
		t.Errorf("MRR = %s, want 0", report.MRR)
	}
	if report.Investor.PaidCustomers != 0 {
		t.Errorf("PaidCustomers = %d, want 0", report.Investor.PaidCustomers)
	}
	if !report.Investor.BreakEvenCustomers.Unbounded {
		t.Error("no revenue means break-even is unbounded")
	}
}

func TestSnapshotWithAI(t *testing.T) {
	in := testInput()
	in.AI = &AIAssumptions{
		Provider:         "openai",
		Model:            "gpt-4o-mini",
		AvgInputTokens:   2000,
		AvgOutputTokens:  800,
		RequestsPerMonth: 100,
		ExchangeRate:     dec("4.50"),
	}

	report := New(aicost.DefaultCatalog()).Snapshot(in)

	if report.AICostPerCustomer == nil {
		t.Fatal("expected an AI cost projection")
	}
	if !report.AICostPerCustomer.PricingKnown {
		t.Error("gpt-4o-mini pricing should be known")
	}
	// 0.2M x 0.15 + 0.08M x 0.60 per million
	if !report.AICostPerCustomer.TotalUSD.Equal(dec("0.078")) {
		t.Errorf("TotalUSD = %s, want 0.078", report.AICostPerCustomer.TotalUSD)
	}
}

func TestSnapshotUnknownAIProvider(t *testing.T) {
	in := testInput()
	in.AI = &AIAssumptions{
		Provider:         "acme",
		AvgInputTokens:   2000,
		AvgOutputTokens:  800,
		RequestsPerMonth: 100,
		ExchangeRate:     dec("4.50"),
	}

	report := New(aicost.DefaultCatalog()).Snapshot(in)

	if report.AICostPerCustomer == nil {
		t.Fatal("a catalog miss still yields a projection")
	}
	if report.AICostPerCustomer.PricingKnown {
		t.Error("unknown provider must not report known pricing")
	}
	if !report.AICostPerCustomer.TotalUSD.IsZero() {
		t.Errorf("TotalUSD = %s, want 0", report.AICostPerCustomer.TotalUSD)
	}
}
