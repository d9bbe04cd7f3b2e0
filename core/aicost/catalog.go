// Package aicost - Provider pricing catalog
package aicost

import "github.com/shopspring/decimal"

// ModelPricing is the per-million-token price sheet for one model
type ModelPricing struct {
	// InputPricePerMillion is USD per million prompt tokens
	InputPricePerMillion decimal.Decimal `json:"input_price_per_million"`

	// OutputPricePerMillion is USD per million completion tokens
	OutputPricePerMillion decimal.Decimal `json:"output_price_per_million"`

	// ContextWindow is the model's context window in tokens
	ContextWindow int `json:"context_window"`
}

// ProviderPricing is one provider's model price sheets
type ProviderPricing struct {
	// DefaultModel is the model used when none is specified
	DefaultModel string `json:"default_model"`

	// Models maps model ID to its pricing
	Models map[string]ModelPricing `json:"models"`
}

// Catalog maps provider ID to its pricing. The catalog is read-only
// reference data; the engine never mutates it.
type Catalog map[string]ProviderPricing

// Lookup resolves pricing for a provider/model pair. An empty model
// selects the provider's default. The second return is the model ID
// the lookup resolved to (the raw input when nothing matched), so a
// miss stays attributable.
func (c Catalog) Lookup(provider, model string) (ModelPricing, string, bool) {
	p, ok := c[provider]
	if !ok {
		return ModelPricing{}, model, false
	}
	if model == "" {
		model = p.DefaultModel
	}
	pricing, ok := p.Models[model]
	return pricing, model, ok
}

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCatalog returns the shipped pricing table. Prices are USD per
// million tokens as published by each provider.
func DefaultCatalog() Catalog {
	return Catalog{
		"openai": {
			DefaultModel: "gpt-4o-mini",
			Models: map[string]ModelPricing{
				"gpt-4o":      {InputPricePerMillion: usd("2.50"), OutputPricePerMillion: usd("10.00"), ContextWindow: 128_000},
				"gpt-4o-mini": {InputPricePerMillion: usd("0.15"), OutputPricePerMillion: usd("0.60"), ContextWindow: 128_000},
				"o3-mini":     {InputPricePerMillion: usd("1.10"), OutputPricePerMillion: usd("4.40"), ContextWindow: 200_000},
			},
		},
		"anthropic": {
			DefaultModel: "claude-3-5-haiku",
			Models: map[string]ModelPricing{
				"claude-3-5-sonnet": {InputPricePerMillion: usd("3.00"), OutputPricePerMillion: usd("15.00"), ContextWindow: 200_000},
				"claude-3-5-haiku":  {InputPricePerMillion: usd("0.80"), OutputPricePerMillion: usd("4.00"), ContextWindow: 200_000},
			},
		},
		"google": {
			DefaultModel: "gemini-2.0-flash",
			Models: map[string]ModelPricing{
				"gemini-1.5-pro":   {InputPricePerMillion: usd("1.25"), OutputPricePerMillion: usd("5.00"), ContextWindow: 2_000_000},
				"gemini-2.0-flash": {InputPricePerMillion: usd("0.10"), OutputPricePerMillion: usd("0.40"), ContextWindow: 1_000_000},
			},
		},
		"deepseek": {
			DefaultModel: "deepseek-chat",
			Models: map[string]ModelPricing{
				"deepseek-chat":     {InputPricePerMillion: usd("0.27"), OutputPricePerMillion: usd("1.10"), ContextWindow: 64_000},
				"deepseek-reasoner": {InputPricePerMillion: usd("0.55"), OutputPricePerMillion: usd("2.19"), ContextWindow: 64_000},
			},
		},
	}
}
