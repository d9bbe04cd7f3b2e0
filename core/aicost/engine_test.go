package aicost

import (
	"testing"

	"github.com/shopspring/decimal"

	"saas-cost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testRate = dec("4.50")

func TestTokenCost(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.TokenCost(TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 500_000}, "openai", "gpt-4o", testRate)

	if !got.PricingKnown {
		t.Fatal("gpt-4o pricing should be known")
	}
	if got.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", got.Model)
	}
	if !got.InputCostUSD.Equal(dec("2.50")) {
		t.Errorf("InputCostUSD = %s, want 2.50", got.InputCostUSD)
	}
	if !got.OutputCostUSD.Equal(dec("5.00")) {
		t.Errorf("OutputCostUSD = %s, want 5.00", got.OutputCostUSD)
	}
	if !got.TotalUSD.Equal(dec("7.50")) {
		t.Errorf("TotalUSD = %s, want 7.50", got.TotalUSD)
	}
	if !got.TotalMYR.Equal(dec("33.75")) {
		t.Errorf("TotalMYR = %s, want 33.75", got.TotalMYR)
	}
}

func TestTokenCostDefaultModel(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.TokenCost(TokenUsage{PromptTokens: 1_000_000}, "openai", "", testRate)

	if got.Model != "gpt-4o-mini" {
		t.Errorf("empty model should resolve to the default, got %q", got.Model)
	}
	if !got.InputCostUSD.Equal(dec("0.15")) {
		t.Errorf("InputCostUSD = %s, want 0.15", got.InputCostUSD)
	}
}

func TestTokenCostUnknownProvider(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.TokenCost(TokenUsage{PromptTokens: 1000, CompletionTokens: 1000}, "mistral", "mistral-large", testRate)

	if got.PricingKnown {
		t.Error("unknown provider must not report known pricing")
	}
	if got.Model != "mistral-large" {
		t.Errorf("miss should keep the raw model ID, got %q", got.Model)
	}
	if !got.TotalUSD.IsZero() || !got.TotalMYR.IsZero() {
		t.Errorf("miss should cost zero, got %s USD / %s MYR", got.TotalUSD, got.TotalMYR)
	}
	if got.InputTokens != 1000 || got.OutputTokens != 1000 {
		t.Error("token counts survive a catalog miss")
	}
}

func TestTokenCostUnknownModel(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.TokenCost(TokenUsage{PromptTokens: 1000}, "openai", "gpt-9", testRate)
	if got.PricingKnown {
		t.Error("unknown model must not report known pricing")
	}
	if got.Model != "gpt-9" {
		t.Errorf("Model = %q, want gpt-9", got.Model)
	}
}

func TestTokenCostClampsNegatives(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.TokenCost(TokenUsage{PromptTokens: -500, CompletionTokens: -1}, "openai", "gpt-4o", testRate)

	if got.InputTokens != 0 || got.OutputTokens != 0 {
		t.Errorf("negative tokens should clamp to zero, got %d/%d", got.InputTokens, got.OutputTokens)
	}
	if !got.TotalUSD.IsZero() {
		t.Errorf("TotalUSD = %s, want 0", got.TotalUSD)
	}
}

func TestEstimateAnalysisCost(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	// 10 files, 40000 chars: 10000 content tokens + 1500 prompt overhead,
	// 1200 + 10*300 output tokens.
	got := engine.EstimateAnalysisCost(10, 40_000, "openai", "gpt-4o-mini", testRate)

	if got.EstimatedInputTokens != 11_500 {
		t.Errorf("EstimatedInputTokens = %d, want 11500", got.EstimatedInputTokens)
	}
	if got.EstimatedOutputTokens != 4_200 {
		t.Errorf("EstimatedOutputTokens = %d, want 4200", got.EstimatedOutputTokens)
	}
	if got.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %s, want high", got.Confidence)
	}
	if !got.PricingKnown {
		t.Error("gpt-4o-mini pricing should be known")
	}
}

func TestEstimateAnalysisCostOutputCap(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.EstimateAnalysisCost(100, 1_000_000, "openai", "", testRate)
	if got.EstimatedOutputTokens != maxOutputTokens {
		t.Errorf("output tokens = %d, want capped at %d", got.EstimatedOutputTokens, maxOutputTokens)
	}
}

func TestEstimateAnalysisCostConfidence(t *testing.T) {
	tests := []struct {
		name  string
		files int
		chars int64
		want  Confidence
	}{
		{"small project", 2, 5_000, ConfidenceMedium},
		{"mid project", 10, 40_000, ConfidenceHigh},
		{"many files", 25, 40_000, ConfidenceLow},
		{"huge corpus", 10, 300_000, ConfidenceLow},
		{"files without chars", 10, 10_000, ConfidenceMedium},
		{"empty project", 0, 0, ConfidenceMedium},
	}

	engine := NewEngine(DefaultCatalog())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.EstimateAnalysisCost(tt.files, tt.chars, "openai", "", testRate)
			if got.Confidence != tt.want {
				t.Errorf("Confidence(%d files, %d chars) = %s, want %s", tt.files, tt.chars, got.Confidence, tt.want)
			}
		})
	}
}

func TestCompareProviderCosts(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.CompareProviderCosts(100_000, 50_000, "anthropic", []string{"openai", "anthropic", "unknown"}, testRate)

	if len(got) != 3 {
		t.Fatalf("expected 3 comparisons, got %d", len(got))
	}
	for _, c := range got {
		if c.Selected != (c.Provider == "anthropic") {
			t.Errorf("Selected flag wrong for %s", c.Provider)
		}
	}
	if got[0].Model != "gpt-4o-mini" {
		t.Errorf("openai compares at its default model, got %q", got[0].Model)
	}
	// 0.1M * 0.15 + 0.05M * 0.60 per million
	if !got[0].TotalUSD.Equal(dec("0.045")) {
		t.Errorf("openai TotalUSD = %s, want 0.045", got[0].TotalUSD)
	}
	if got[2].PricingKnown {
		t.Error("unknown provider should stay in the list with unknown pricing")
	}
	if !got[2].TotalUSD.IsZero() {
		t.Errorf("unknown provider TotalUSD = %s, want 0", got[2].TotalUSD)
	}
}

func TestMonthlyAICostPerCustomer(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.MonthlyAICostPerCustomer(2000, 800, 100, "openai", "gpt-4o-mini", testRate)

	if got.InputTokens != 200_000 {
		t.Errorf("InputTokens = %d, want 200000", got.InputTokens)
	}
	if got.OutputTokens != 80_000 {
		t.Errorf("OutputTokens = %d, want 80000", got.OutputTokens)
	}
	// 0.2M * 0.15 + 0.08M * 0.60 per million
	if !got.TotalUSD.Equal(dec("0.078")) {
		t.Errorf("TotalUSD = %s, want 0.078", got.TotalUSD)
	}
}

func TestMonthlyAICostPerCustomerNegativeVolume(t *testing.T) {
	engine := NewEngine(DefaultCatalog())

	got := engine.MonthlyAICostPerCustomer(2000, 800, -5, "openai", "", testRate)
	if got.InputTokens != 0 || !got.TotalUSD.IsZero() {
		t.Error("negative request volume should cost zero")
	}
}

func TestCostCategory(t *testing.T) {
	tests := []struct {
		usd  string
		want Category
	}{
		{"0.00", CategoryCheap},
		{"0.049", CategoryCheap},
		{"0.05", CategoryModerate},
		{"0.19", CategoryModerate},
		{"0.20", CategoryExpensive},
		{"1.50", CategoryExpensive},
	}
	for _, tt := range tests {
		if got := CostCategory(dec(tt.usd)); got != tt.want {
			t.Errorf("CostCategory(%s) = %s, want %s", tt.usd, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0042", "USD 0.0042"},
		{"0.0099", "USD 0.0099"},
		{"0.01", "USD 0.01"},
		{"12.345", "USD 12.35"},
		{"0", "USD 0.00"},
	}
	for _, tt := range tests {
		if got := FormatCost(dec(tt.in), types.CurrencyUSD); got != tt.want {
			t.Errorf("FormatCost(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.0K"},
		{11_500, "11.5K"},
		{1_000_000, "1.0M"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatTokens(tt.in); got != tt.want {
			t.Errorf("FormatTokens(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := DefaultCatalog()

	if _, model, ok := catalog.Lookup("anthropic", ""); !ok || model != "claude-3-5-haiku" {
		t.Errorf("anthropic default = %q ok=%v, want claude-3-5-haiku", model, ok)
	}
	if _, _, ok := catalog.Lookup("openai", "o3-mini"); !ok {
		t.Error("o3-mini should be in the catalog")
	}
	if _, model, ok := catalog.Lookup("", "gpt-4o"); ok {
		t.Errorf("empty provider should miss, got %q", model)
	}
}
