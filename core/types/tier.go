// Package types - Pricing tier types
package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TierStatus indicates a tier's availability
type TierStatus string

const (
	// TierActive is a publicly sellable tier
	TierActive TierStatus = "active"

	// TierComingSoon is announced but not sellable
	TierComingSoon TierStatus = "coming_soon"

	// TierInternal is for internal or partner use only
	TierInternal TierStatus = "internal"
)

// LimitKind discriminates the polymorphic tier limit value
type LimitKind string

const (
	// LimitNumber is a numeric cap
	LimitNumber LimitKind = "number"

	// LimitUnlimited is the "unlimited" sentinel
	LimitUnlimited LimitKind = "unlimited"

	// LimitBoolean is an on/off feature gate
	LimitBoolean LimitKind = "boolean"
)

// LimitValue is a tagged variant over number | "unlimited" | boolean.
// It marshals back to the same JSON shape it was parsed from, so tier
// definitions round-trip losslessly.
type LimitValue struct {
	Kind    LimitKind
	Amount  float64
	Enabled bool
}

// NumberLimit constructs a numeric cap
func NumberLimit(n float64) LimitValue {
	return LimitValue{Kind: LimitNumber, Amount: n}
}

// UnlimitedLimit constructs the unlimited sentinel
func UnlimitedLimit() LimitValue {
	return LimitValue{Kind: LimitUnlimited}
}

// BooleanLimit constructs a feature gate
func BooleanLimit(enabled bool) LimitValue {
	return LimitValue{Kind: LimitBoolean, Enabled: enabled}
}

// IsUnlimited reports whether the limit is the unlimited sentinel
func (v LimitValue) IsUnlimited() bool {
	return v.Kind == LimitUnlimited
}

// MarshalJSON emits a number, the literal "unlimited", or a boolean
func (v LimitValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case LimitNumber:
		return json.Marshal(v.Amount)
	case LimitUnlimited:
		return json.Marshal("unlimited")
	case LimitBoolean:
		return json.Marshal(v.Enabled)
	default:
		return nil, fmt.Errorf("unknown limit kind: %q", v.Kind)
	}
}

// UnmarshalJSON accepts a number, the literal "unlimited", or a boolean
func (v *LimitValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BooleanLimit(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberLimit(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "unlimited" {
			*v = UnlimitedLimit()
			return nil
		}
		return fmt.Errorf("invalid limit string: %q", s)
	}

	return fmt.Errorf("invalid limit value: %s", string(data))
}

// String returns a display form of the limit
func (v LimitValue) String() string {
	switch v.Kind {
	case LimitUnlimited:
		return "unlimited"
	case LimitBoolean:
		if v.Enabled {
			return "included"
		}
		return "not included"
	default:
		return decimal.NewFromFloat(v.Amount).String()
	}
}

// TierLimit binds a feature to its cap within a tier
type TierLimit struct {
	// FeatureID identifies the limited feature
	FeatureID string `json:"feature_id"`

	// Limit is the cap: a number, "unlimited", or a boolean gate
	Limit LimitValue `json:"limit"`
}

// Tier is a pricing plan
type Tier struct {
	// ID uniquely identifies this tier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// MonthlyPrice is the monthly price in the base currency
	MonthlyPrice decimal.Decimal `json:"monthly_price"`

	// AnnualPrice is the annual price (nil when not offered)
	AnnualPrice *decimal.Decimal `json:"annual_price,omitempty"`

	// Limits bind feature IDs to their caps
	Limits []TierLimit `json:"limits,omitempty"`

	// Status is the tier's availability
	Status TierStatus `json:"status"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// IsSellable reports whether the tier counts toward revenue
func (t *Tier) IsSellable() bool {
	return t.Status == TierActive
}
