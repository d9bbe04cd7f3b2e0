// Package workspace loads pricing workspaces from HCL files. A
// workspace declares variable_cost, fixed_cost, tier, and scenario
// blocks; the loader decodes them into the core types the engines
// consume.
package workspace

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"saas-cost/core/types"
	"saas-cost/internal/errors"
	"saas-cost/internal/logging"
)

// Workspace is a fully decoded pricing workspace
type Workspace struct {
	// Currency is the workspace's base currency
	Currency types.Currency

	// Variable are the per-customer cost drivers
	Variable []types.VariableCostItem

	// Fixed are the customer-independent monthly costs
	Fixed []types.FixedCostItem

	// Tiers are the pricing plans
	Tiers []types.Tier

	// Scenario carries the workspace's assumption scalars
	Scenario types.Scenario
}

type workspaceHCL struct {
	Settings      *settingsHCL      `hcl:"workspace,block"`
	VariableCosts []variableCostHCL `hcl:"variable_cost,block"`
	FixedCosts    []fixedCostHCL    `hcl:"fixed_cost,block"`
	Tiers         []tierHCL         `hcl:"tier,block"`
	Scenario      *scenarioHCL      `hcl:"scenario,block"`
}

type settingsHCL struct {
	Currency *string `hcl:"currency,optional"`
}

type variableCostHCL struct {
	ID               string  `hcl:"id,label"`
	Name             *string `hcl:"name,optional"`
	Unit             *string `hcl:"unit,optional"`
	CostPerUnit      float64 `hcl:"cost_per_unit"`
	UsagePerCustomer float64 `hcl:"usage_per_customer"`
	Description      *string `hcl:"description,optional"`
}

type fixedCostHCL struct {
	ID          string  `hcl:"id,label"`
	Name        *string `hcl:"name,optional"`
	MonthlyCost float64 `hcl:"monthly_cost"`
	Description *string `hcl:"description,optional"`
}

type tierHCL struct {
	ID           string     `hcl:"id,label"`
	Name         *string    `hcl:"name,optional"`
	MonthlyPrice float64    `hcl:"monthly_price"`
	AnnualPrice  *float64   `hcl:"annual_price,optional"`
	Status       *string    `hcl:"status,optional"`
	Description  *string    `hcl:"description,optional"`
	Limits       []limitHCL `hcl:"limit,block"`
}

type limitHCL struct {
	FeatureID string    `hcl:"feature,label"`
	Value     cty.Value `hcl:"value"`
}

type scenarioHCL struct {
	Customers         int            `hcl:"customers"`
	Utilization       *float64       `hcl:"utilization,optional"`
	Churn             *float64       `hcl:"churn,optional"`
	Growth            *float64       `hcl:"growth,optional"`
	CAC               *float64       `hcl:"cac,optional"`
	OperatingExpenses *float64       `hcl:"operating_expenses,optional"`
	Distribution      map[string]int `hcl:"distribution,optional"`
}

// Load reads and decodes a workspace file
func Load(path string) (*Workspace, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Workspace("failed to read workspace file", err)
	}
	return Parse(src, path)
}

// Parse decodes workspace HCL source
func Parse(src []byte, filename string) (*Workspace, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid workspace syntax", diags)
	}

	var raw workspaceHCL
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("invalid workspace structure", diags)
	}

	ws, err := convert(&raw)
	if err != nil {
		return nil, err
	}

	logging.Debug("loaded workspace",
		zap.String("file", filename),
		zap.Int("variable_costs", len(ws.Variable)),
		zap.Int("fixed_costs", len(ws.Fixed)),
		zap.Int("tiers", len(ws.Tiers)))

	return ws, nil
}

func convert(raw *workspaceHCL) (*Workspace, error) {
	ws := &Workspace{
		Currency: types.CurrencyMYR,
		Scenario: types.DefaultScenario(),
	}

	if raw.Settings != nil && raw.Settings.Currency != nil {
		ws.Currency = types.Currency(*raw.Settings.Currency)
	}

	for _, vc := range raw.VariableCosts {
		if vc.CostPerUnit < 0 || vc.UsagePerCustomer < 0 {
			return nil, errors.Input(fmt.Sprintf("variable_cost %q: cost and usage must be non-negative", vc.ID))
		}
		ws.Variable = append(ws.Variable, types.VariableCostItem{
			ID:               vc.ID,
			Name:             orDefault(vc.Name, vc.ID),
			Unit:             orDefault(vc.Unit, "unit"),
			CostPerUnit:      decimal.NewFromFloat(vc.CostPerUnit),
			UsagePerCustomer: decimal.NewFromFloat(vc.UsagePerCustomer),
			Description:      orDefault(vc.Description, ""),
		})
	}

	for _, fc := range raw.FixedCosts {
		if fc.MonthlyCost < 0 {
			return nil, errors.Input(fmt.Sprintf("fixed_cost %q: monthly cost must be non-negative", fc.ID))
		}
		ws.Fixed = append(ws.Fixed, types.FixedCostItem{
			ID:          fc.ID,
			Name:        orDefault(fc.Name, fc.ID),
			MonthlyCost: decimal.NewFromFloat(fc.MonthlyCost),
			Description: orDefault(fc.Description, ""),
		})
	}

	for _, t := range raw.Tiers {
		tier, err := convertTier(t)
		if err != nil {
			return nil, err
		}
		ws.Tiers = append(ws.Tiers, tier)
	}

	if raw.Scenario != nil {
		s := raw.Scenario
		if s.Customers < 0 {
			return nil, errors.Input("scenario: customers must be non-negative")
		}
		ws.Scenario.CustomerCount = s.Customers
		if s.Utilization != nil {
			ws.Scenario.UtilizationRate = *s.Utilization
		}
		if s.Churn != nil {
			ws.Scenario.ChurnRate = *s.Churn
		}
		if s.Growth != nil {
			ws.Scenario.GrowthRate = *s.Growth
		}
		if s.CAC != nil {
			ws.Scenario.CAC = decimal.NewFromFloat(*s.CAC)
		}
		if s.OperatingExpenses != nil {
			ws.Scenario.OperatingExpenses = decimal.NewFromFloat(*s.OperatingExpenses)
		}
		if len(s.Distribution) > 0 {
			ws.Scenario.Distribution = s.Distribution
		}
	}

	return ws, nil
}

func convertTier(t tierHCL) (types.Tier, error) {
	if t.MonthlyPrice < 0 {
		return types.Tier{}, errors.Input(fmt.Sprintf("tier %q: monthly price must be non-negative", t.ID))
	}

	status := types.TierActive
	if t.Status != nil {
		switch types.TierStatus(*t.Status) {
		case types.TierActive, types.TierComingSoon, types.TierInternal:
			status = types.TierStatus(*t.Status)
		default:
			return types.Tier{}, errors.Input(fmt.Sprintf("tier %q: unknown status %q", t.ID, *t.Status))
		}
	}

	tier := types.Tier{
		ID:           t.ID,
		Name:         orDefault(t.Name, t.ID),
		MonthlyPrice: decimal.NewFromFloat(t.MonthlyPrice),
		Status:       status,
		Description:  orDefault(t.Description, ""),
	}
	if t.AnnualPrice != nil {
		annual := decimal.NewFromFloat(*t.AnnualPrice)
		tier.AnnualPrice = &annual
	}

	for _, l := range t.Limits {
		limit, err := convertLimit(l.Value)
		if err != nil {
			return types.Tier{}, errors.Input(fmt.Sprintf("tier %q, limit %q: %v", t.ID, l.FeatureID, err))
		}
		tier.Limits = append(tier.Limits, types.TierLimit{
			FeatureID: l.FeatureID,
			Limit:     limit,
		})
	}

	return tier, nil
}

// convertLimit maps an HCL limit value onto the tagged LimitValue:
// a number, the string "unlimited", or a boolean gate.
func convertLimit(v cty.Value) (types.LimitValue, error) {
	switch {
	case v.Type() == cty.Bool:
		return types.BooleanLimit(v.True()), nil
	case v.Type() == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return types.NumberLimit(f), nil
	case v.Type() == cty.String:
		if v.AsString() == "unlimited" {
			return types.UnlimitedLimit(), nil
		}
		return types.LimitValue{}, fmt.Errorf("string limits must be %q", "unlimited")
	default:
		return types.LimitValue{}, fmt.Errorf("limit must be a number, %q, or a boolean", "unlimited")
	}
}

func orDefault(s *string, def string) string {
	if s != nil && *s != "" {
		return *s
	}
	return def
}
