// Package cmd - report command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"saas-cost/adapters/workspace"
	"saas-cost/core/aicost"
	"saas-cost/core/engine"
	"saas-cost/core/output"
	"saas-cost/internal/config"
	"saas-cost/internal/logging"
)

var (
	reportFormat      string
	reportCustomers   int
	reportUtilization float64
	reportChurn       float64
	reportGrowth      float64
	reportCAC         float64
	reportNoAI        bool
)

// reportCmd computes a unit-economics report from a workspace file
var reportCmd = &cobra.Command{
	Use:   "report <workspace.hcl>",
	Short: "Compute a unit-economics report from a pricing workspace",
	Long: `Load a pricing workspace and compute the full unit-economics
snapshot: COGS breakdown, tier margins, investor metrics, milestone
projections, and AI cost estimates.

Scenario flags override the workspace's scenario block.

Examples:
  saas-cost report pricing.hcl
  saas-cost report --format markdown pricing.hcl
  saas-cost report --customers 250 --growth 0.08 pricing.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (cli, json, markdown)")
	reportCmd.Flags().IntVar(&reportCustomers, "customers", -1, "override customer count")
	reportCmd.Flags().Float64Var(&reportUtilization, "utilization", -1, "override utilization rate (0-1)")
	reportCmd.Flags().Float64Var(&reportChurn, "churn", -1, "override monthly churn rate")
	reportCmd.Flags().Float64Var(&reportGrowth, "growth", -1, "override monthly growth rate")
	reportCmd.Flags().Float64Var(&reportCAC, "cac", -1, "override customer acquisition cost")
	reportCmd.Flags().BoolVar(&reportNoAI, "no-ai", false, "skip the AI cost projection")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	ws, err := workspace.Load(args[0])
	if err != nil {
		return err
	}

	applyOverrides(ws)

	in := engine.Input{
		Variable: ws.Variable,
		Fixed:    ws.Fixed,
		Tiers:    ws.Tiers,
		Scenario: ws.Scenario,
		Currency: ws.Currency,
	}
	if cfg.Output.ShowAICosts && !reportNoAI && cfg.AI.Provider != "" {
		in.AI = &engine.AIAssumptions{
			Provider:         cfg.AI.Provider,
			Model:            cfg.AI.Model,
			AvgInputTokens:   cfg.AI.AvgInputTokens,
			AvgOutputTokens:  cfg.AI.AvgOutputTokens,
			RequestsPerMonth: cfg.AI.RequestsPerMonth,
			ExchangeRate:     cfg.Currency.USDExchangeRate,
		}
	}

	report := engine.New(aicost.DefaultCatalog()).Snapshot(in)

	format := output.Format(reportFormat)
	if reportFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	logging.Sugar.Debugw("rendering report", "format", format)
	return formatter.Render(os.Stdout, report)
}

func applyOverrides(ws *workspace.Workspace) {
	if reportCustomers >= 0 {
		ws.Scenario.CustomerCount = reportCustomers
		// An explicit customer count replaces the workspace's tier
		// distribution, which was sized for the old count.
		ws.Scenario.Distribution = nil
	}
	if reportUtilization >= 0 {
		ws.Scenario.UtilizationRate = reportUtilization
	}
	if reportChurn >= 0 {
		ws.Scenario.ChurnRate = reportChurn
	}
	if reportGrowth >= 0 {
		ws.Scenario.GrowthRate = reportGrowth
	}
	if reportCAC >= 0 {
		ws.Scenario.CAC = decimal.NewFromFloat(reportCAC)
	}
}
