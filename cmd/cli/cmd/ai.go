// Package cmd - AI cost commands
package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"saas-cost/core/aicost"
	"saas-cost/core/types"
	"saas-cost/internal/config"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "AI token cost estimation",
}

var (
	aiProvider string
	aiModel    string
	aiFiles    int
	aiChars    int64
	aiInput    int64
	aiOutput   int64
)

// aiEstimateCmd projects the cost of analyzing a document set
var aiEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a document analysis",
	Long: `Estimate AI token costs for analyzing a set of documents from
the file count and total character count.

Examples:
  saas-cost ai estimate --files 12 --chars 48000
  saas-cost ai estimate --files 3 --chars 9000 --provider anthropic`,
	RunE: runAIEstimate,
}

// aiCompareCmd compares the same workload across providers
var aiCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a workload's cost across providers",
	RunE:  runAICompare,
}

func init() {
	aiEstimateCmd.Flags().IntVar(&aiFiles, "files", 1, "number of files to analyze")
	aiEstimateCmd.Flags().Int64Var(&aiChars, "chars", 0, "total character count")
	aiEstimateCmd.Flags().StringVar(&aiProvider, "provider", "", "AI provider (default from config)")
	aiEstimateCmd.Flags().StringVar(&aiModel, "model", "", "model ID (default: provider default)")

	aiCompareCmd.Flags().Int64Var(&aiInput, "input", 2000, "input tokens per request")
	aiCompareCmd.Flags().Int64Var(&aiOutput, "output", 800, "output tokens per request")
	aiCompareCmd.Flags().StringVar(&aiProvider, "provider", "", "currently selected provider")

	aiCmd.AddCommand(aiEstimateCmd)
	aiCmd.AddCommand(aiCompareCmd)
}

func aiDefaults() (string, types.Currency) {
	cfg := config.Get()
	if aiProvider == "" {
		aiProvider = cfg.AI.Provider
	}
	return aiProvider, cfg.Currency.Base
}

func runAIEstimate(cmd *cobra.Command, args []string) error {
	provider, base := aiDefaults()
	cfg := config.Get()

	eng := aicost.NewEngine(aicost.DefaultCatalog())
	est := eng.EstimateAnalysisCost(aiFiles, aiChars, provider, aiModel, cfg.Currency.USDExchangeRate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Provider\t%s (%s)\n", est.Provider, est.Model)
	fmt.Fprintf(tw, "Estimated input\t%s tokens\n", aicost.FormatTokens(est.EstimatedInputTokens))
	fmt.Fprintf(tw, "Estimated output\t%s tokens\n", aicost.FormatTokens(est.EstimatedOutputTokens))
	fmt.Fprintf(tw, "Cost\t%s (%s)\n",
		aicost.FormatCost(est.TotalUSD, types.CurrencyUSD),
		aicost.FormatCost(est.TotalMYR, base))
	fmt.Fprintf(tw, "Category\t%s\n", aicost.CostCategory(est.TotalUSD))
	fmt.Fprintf(tw, "Confidence\t%s\n", est.Confidence)
	if !est.PricingKnown {
		fmt.Fprintf(tw, "Note\tpricing unavailable for this model\n")
	}
	return tw.Flush()
}

func runAICompare(cmd *cobra.Command, args []string) error {
	selected, base := aiDefaults()
	cfg := config.Get()

	eng := aicost.NewEngine(aicost.DefaultCatalog())

	providers := make([]string, 0, len(eng.Catalog()))
	for provider := range eng.Catalog() {
		providers = append(providers, provider)
	}
	sort.Strings(providers)

	comparisons := eng.CompareProviderCosts(aiInput, aiOutput, selected, providers, cfg.Currency.USDExchangeRate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PROVIDER\tMODEL\tCOST\t\n")
	for _, c := range comparisons {
		marker := ""
		if c.Selected {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s (%s)\t\n",
			c.Provider, marker, c.Model,
			aicost.FormatCost(c.TotalUSD, types.CurrencyUSD),
			aicost.FormatCost(c.TotalMYR, base))
	}
	return tw.Flush()
}
