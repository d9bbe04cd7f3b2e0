// Package output - Markdown formatter
package output

import (
	"fmt"
	"io"

	"saas-cost/core/engine"
	"saas-cost/core/money"
)

// MarkdownFormatter renders the report as a markdown document,
// suitable for pasting into docs or PR comments.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the markdown report
func (f *MarkdownFormatter) Render(w io.Writer, report *engine.Report) error {
	cur := report.Currency

	fmt.Fprintf(w, "# Unit Economics\n\n")
	fmt.Fprintf(w, "%d customers at %.0f%% utilization\n\n",
		report.Scenario.CustomerCount, report.Scenario.UtilizationRate*100)

	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| COGS / customer | %s %s |\n", cur, money.RoundCurrency(report.Costs.TotalCOGS))
	fmt.Fprintf(w, "| MRR | %s |\n", money.FormatCompact(report.MRR, cur))
	fmt.Fprintf(w, "| Monthly profit | %s %s |\n", cur, money.RoundCurrency(report.MonthlyProfit))
	fmt.Fprintf(w, "| Blended gross margin | %.1f%% |\n", money.RoundPercentage(report.BlendedMargin))
	fmt.Fprintf(w, "| Operating margin | %.1f%% (%s) |\n", money.RoundPercentage(report.OperatingMargin), report.OperatingHealth)

	if len(report.TierMargins) > 0 {
		fmt.Fprintf(w, "\n## Tier margins\n\n")
		fmt.Fprintf(w, "| Tier | Price | Margin | Status |\n|---|---|---|---|\n")
		for _, tm := range report.TierMargins {
			fmt.Fprintf(w, "| %s | %s %s | %.1f%% | %s |\n",
				tm.TierName, cur, money.RoundCurrency(tm.Price),
				money.RoundPercentage(tm.Margin.Margin), tm.Margin.Status)
		}
	}

	inv := report.Investor
	fmt.Fprintf(w, "\n## Investor metrics\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| ARR | %s |\n", money.FormatCompact(inv.ARR, cur))
	fmt.Fprintf(w, "| Valuation range | %s - %s |\n",
		money.FormatCompact(inv.Valuation.ValuationLow, cur),
		money.FormatCompact(inv.Valuation.ValuationHigh, cur))
	fmt.Fprintf(w, "| Break-even customers | %s |\n", formatHeadcount(inv.BreakEvenCustomers))
	fmt.Fprintf(w, "| Months to break-even | %s |\n", formatMonths(inv.MonthsToBreakEven))
	fmt.Fprintf(w, "| Gross margin health | %s |\n", inv.GrossMarginHealth)
	fmt.Fprintf(w, "| LTV:CAC | %s |\n", formatRatio(inv.LTVCACRatio))
	fmt.Fprintf(w, "| CAC payback | %s |\n", formatMonths(inv.PaybackPeriodMonths))

	if len(inv.Milestones) > 0 {
		fmt.Fprintf(w, "\n## Milestones\n\n")
		fmt.Fprintf(w, "| Target | Customers | Time |\n|---|---|---|\n")
		for _, m := range inv.Milestones {
			fmt.Fprintf(w, "| %s | %d | %s |\n", m.Label, m.CustomersNeeded, formatMonths(m.MonthsToReach))
		}
	}

	return nil
}
