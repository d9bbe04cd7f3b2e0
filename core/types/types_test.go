package types

import (
	"encoding/json"
	"math"
	"testing"
)

func TestLimitValueMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   LimitValue
		want string
	}{
		{"number", NumberLimit(500), "500"},
		{"fractional number", NumberLimit(2.5), "2.5"},
		{"unlimited", UnlimitedLimit(), `"unlimited"`},
		{"enabled gate", BooleanLimit(true), "true"},
		{"disabled gate", BooleanLimit(false), "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestLimitValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want LimitValue
	}{
		{"number", "500", NumberLimit(500)},
		{"zero", "0", NumberLimit(0)},
		{"unlimited", `"unlimited"`, UnlimitedLimit()},
		{"boolean", "true", BooleanLimit(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got LimitValue
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("unmarshal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLimitValueUnmarshalRejectsJunk(t *testing.T) {
	for _, in := range []string{`"infinite"`, `{}`, `[1]`} {
		var v LimitValue
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestLimitValueString(t *testing.T) {
	tests := []struct {
		in   LimitValue
		want string
	}{
		{NumberLimit(500), "500"},
		{UnlimitedLimit(), "unlimited"},
		{BooleanLimit(true), "included"},
		{BooleanLimit(false), "not included"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRatioMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   Ratio
		want string
	}{
		{"finite", Ratio(2.8), "2.8"},
		{"zero", Ratio(0), "0"},
		{"positive infinity", Ratio(math.Inf(1)), "null"},
		{"negative infinity", Ratio(math.Inf(-1)), "null"},
		{"nan", Ratio(math.NaN()), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestHeadcountConstructors(t *testing.T) {
	if h := Finite(42); h.Unbounded || h.Count != 42 {
		t.Errorf("Finite(42) = %+v", h)
	}
	if h := Unbounded(); !h.Unbounded {
		t.Errorf("Unbounded() = %+v", h)
	}
}

func TestTierIsSellable(t *testing.T) {
	tests := []struct {
		status TierStatus
		want   bool
	}{
		{TierActive, true},
		{TierComingSoon, false},
		{TierInternal, false},
	}
	for _, tt := range tests {
		tier := Tier{ID: "t", Status: tt.status}
		if got := tier.IsSellable(); got != tt.want {
			t.Errorf("IsSellable(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	if s.UtilizationRate != 1 {
		t.Errorf("UtilizationRate = %v, want 1", s.UtilizationRate)
	}
	if s.CustomerCount != 0 || s.ChurnRate != 0 || s.GrowthRate != 0 {
		t.Error("default scenario should carry neutral assumptions")
	}
}
