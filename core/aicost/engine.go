// Package aicost computes AI token costs from a provider pricing
// catalog: per-request cost, document-analysis estimates, provider
// comparison, and monthly per-customer projections.
//
// An unknown provider or model never errors; it yields a zero-cost
// result carrying the unresolved model ID with PricingKnown false, so
// batch comparisons keep going past a miss.
package aicost

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"saas-cost/core/types"
)

// Token estimation constants for document analysis
const (
	// charsPerToken is the average characters one token covers
	charsPerToken = 4

	// systemPromptTokens is the fixed prompt overhead per analysis
	systemPromptTokens = 1500

	// typicalOutputTokens is the base completion size of an analysis
	typicalOutputTokens = 1200

	// outputTokensPerFile is the extra completion per analyzed file
	outputTokensPerFile = 300

	// maxOutputTokens caps the estimated completion size
	maxOutputTokens = 8192
)

// Complexity thresholds for estimate confidence
const (
	complexFileCount = 20
	complexCharCount = 200_000
	mediumFileCount  = 5
	mediumCharCount  = 20_000
)

// Confidence grades an analysis cost estimate
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Category buckets a per-request USD cost
type Category string

const (
	CategoryCheap     Category = "cheap"
	CategoryModerate  Category = "moderate"
	CategoryExpensive Category = "expensive"
)

// TokenUsage is the token count of one request
type TokenUsage struct {
	// PromptTokens is the input token count
	PromptTokens int64 `json:"prompt_tokens"`

	// CompletionTokens is the output token count
	CompletionTokens int64 `json:"completion_tokens"`
}

// CostBreakdown is the computed cost of a token usage
type CostBreakdown struct {
	// Provider is the provider the cost was computed for
	Provider string `json:"provider"`

	// Model is the model the lookup resolved to; on a catalog miss it
	// is the raw requested ID
	Model string `json:"model"`

	// InputTokens and OutputTokens are the billed token counts after
	// clamping negatives to zero
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`

	// InputCostUSD is the prompt-side cost
	InputCostUSD decimal.Decimal `json:"input_cost_usd"`

	// OutputCostUSD is the completion-side cost
	OutputCostUSD decimal.Decimal `json:"output_cost_usd"`

	// TotalUSD is input plus output cost
	TotalUSD decimal.Decimal `json:"total_usd"`

	// TotalMYR is TotalUSD converted at the given exchange rate
	TotalMYR decimal.Decimal `json:"total_myr"`

	// PricingKnown is false when the catalog had no entry; all cost
	// fields are zero in that case
	PricingKnown bool `json:"pricing_known"`
}

// CostEstimate is a document-analysis cost projection
type CostEstimate struct {
	CostBreakdown

	// EstimatedInputTokens is the projected prompt size
	EstimatedInputTokens int64 `json:"estimated_input_tokens"`

	// EstimatedOutputTokens is the projected completion size
	EstimatedOutputTokens int64 `json:"estimated_output_tokens"`

	// Confidence grades how reliable the projection is
	Confidence Confidence `json:"confidence"`
}

// ProviderComparison is one provider's cost at its default model
type ProviderComparison struct {
	// Provider is the compared provider
	Provider string `json:"provider"`

	// Model is the provider's default model
	Model string `json:"model"`

	// TotalUSD is the cost of the workload on this provider
	TotalUSD decimal.Decimal `json:"total_usd"`

	// TotalMYR is the converted cost
	TotalMYR decimal.Decimal `json:"total_myr"`

	// Selected marks the currently selected provider
	Selected bool `json:"selected"`

	// PricingKnown is false when the catalog had no entry
	PricingKnown bool `json:"pricing_known"`
}

// Engine computes token costs against an injected catalog
type Engine struct {
	catalog Catalog
}

// NewEngine creates an engine over the given catalog. Pass
// DefaultCatalog() for the shipped pricing table.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's pricing catalog
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

var oneMillion = decimal.NewFromInt(1_000_000)

func clampTokens(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// TokenCost prices one request. An empty model selects the provider's
// default. Negative token counts are clamped to zero.
func (e *Engine) TokenCost(usage TokenUsage, provider, model string, exchangeRate decimal.Decimal) CostBreakdown {
	input := clampTokens(usage.PromptTokens)
	output := clampTokens(usage.CompletionTokens)

	pricing, resolvedModel, ok := e.catalog.Lookup(provider, model)
	result := CostBreakdown{
		Provider:      provider,
		Model:         resolvedModel,
		InputTokens:   input,
		OutputTokens:  output,
		InputCostUSD:  decimal.Zero,
		OutputCostUSD: decimal.Zero,
		TotalUSD:      decimal.Zero,
		TotalMYR:      decimal.Zero,
	}
	if !ok {
		return result
	}

	result.PricingKnown = true
	result.InputCostUSD = decimal.NewFromInt(input).Div(oneMillion).Mul(pricing.InputPricePerMillion)
	result.OutputCostUSD = decimal.NewFromInt(output).Div(oneMillion).Mul(pricing.OutputPricePerMillion)
	result.TotalUSD = result.InputCostUSD.Add(result.OutputCostUSD)
	result.TotalMYR = result.TotalUSD.Mul(exchangeRate)
	return result
}

// EstimateAnalysisCost projects the cost of analyzing a document set
// from its file count and total character count.
func (e *Engine) EstimateAnalysisCost(fileCount int, totalChars int64, provider, model string, exchangeRate decimal.Decimal) CostEstimate {
	inputTokens := int64(math.Ceil(float64(totalChars)/charsPerToken)) + systemPromptTokens
	outputTokens := int64(typicalOutputTokens + fileCount*outputTokensPerFile)
	if outputTokens > maxOutputTokens {
		outputTokens = maxOutputTokens
	}

	confidence := ConfidenceMedium
	switch {
	case fileCount > complexFileCount || totalChars > complexCharCount:
		confidence = ConfidenceLow
	case fileCount > mediumFileCount && totalChars > mediumCharCount:
		confidence = ConfidenceHigh
	}

	usage := TokenUsage{PromptTokens: inputTokens, CompletionTokens: outputTokens}
	return CostEstimate{
		CostBreakdown:         e.TokenCost(usage, provider, model, exchangeRate),
		EstimatedInputTokens:  inputTokens,
		EstimatedOutputTokens: outputTokens,
		Confidence:            confidence,
	}
}

// CompareProviderCosts prices the same workload on each provider's
// default model. Providers missing from the catalog report zero cost
// rather than dropping out of the comparison.
func (e *Engine) CompareProviderCosts(inputTokens, outputTokens int64, selectedProvider string, providers []string, exchangeRate decimal.Decimal) []ProviderComparison {
	usage := TokenUsage{PromptTokens: inputTokens, CompletionTokens: outputTokens}
	comparisons := make([]ProviderComparison, 0, len(providers))
	for _, provider := range providers {
		cost := e.TokenCost(usage, provider, "", exchangeRate)
		comparisons = append(comparisons, ProviderComparison{
			Provider:     provider,
			Model:        cost.Model,
			TotalUSD:     cost.TotalUSD,
			TotalMYR:     cost.TotalMYR,
			Selected:     provider == selectedProvider,
			PricingKnown: cost.PricingKnown,
		})
	}
	return comparisons
}

// MonthlyAICostPerCustomer projects one customer's monthly AI spend
// from per-request averages and monthly request volume.
func (e *Engine) MonthlyAICostPerCustomer(avgInputPerRequest, avgOutputPerRequest int64, requestsPerMonth int, provider, model string, exchangeRate decimal.Decimal) CostBreakdown {
	n := int64(requestsPerMonth)
	if n < 0 {
		n = 0
	}
	usage := TokenUsage{
		PromptTokens:     clampTokens(avgInputPerRequest) * n,
		CompletionTokens: clampTokens(avgOutputPerRequest) * n,
	}
	return e.TokenCost(usage, provider, model, exchangeRate)
}

// Per-request USD thresholds for cost categories
var (
	cheapThreshold    = decimal.RequireFromString("0.05")
	moderateThreshold = decimal.RequireFromString("0.20")
)

// CostCategory buckets a per-request USD cost
func CostCategory(usd decimal.Decimal) Category {
	switch {
	case usd.LessThan(cheapThreshold):
		return CategoryCheap
	case usd.LessThan(moderateThreshold):
		return CategoryModerate
	default:
		return CategoryExpensive
	}
}

var smallCostThreshold = decimal.RequireFromString("0.01")

// FormatCost renders a cost with enough precision to stay visible:
// four decimals below 0.01, two otherwise.
func FormatCost(v decimal.Decimal, currency types.Currency) string {
	if v.Abs().LessThan(smallCostThreshold) && !v.IsZero() {
		return fmt.Sprintf("%s %s", currency, v.StringFixed(4))
	}
	return fmt.Sprintf("%s %s", currency, v.StringFixed(2))
}

// FormatTokens renders a token count with a K/M suffix
func FormatTokens(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
