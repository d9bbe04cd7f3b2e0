// Package output - CLI formatter
package output

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"saas-cost/core/aicost"
	"saas-cost/core/engine"
	"saas-cost/core/money"
	"saas-cost/core/types"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the terminal report
func (f *CLIFormatter) Render(w io.Writer, report *engine.Report) error {
	cur := report.Currency

	fmt.Fprintf(w, "Unit Economics (%d customers, %.0f%% utilization)\n\n",
		report.Scenario.CustomerCount, report.Scenario.UtilizationRate*100)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Variable cost / customer\t%s %s\n", cur, money.RoundCurrency(report.Costs.VariableTotal))
	fmt.Fprintf(tw, "Fixed costs / month\t%s %s\n", cur, money.RoundCurrency(report.Costs.FixedTotal))
	fmt.Fprintf(tw, "Fixed cost / customer\t%s %s\n", cur, money.RoundCurrency(report.Costs.FixedPerCustomer))
	fmt.Fprintf(tw, "COGS / customer\t%s %s\n", cur, money.RoundCurrency(report.Costs.TotalCOGS))
	fmt.Fprintf(tw, "MRR\t%s\n", money.FormatCompact(report.MRR, cur))
	fmt.Fprintf(tw, "Monthly profit\t%s %s\n", cur, money.RoundCurrency(report.MonthlyProfit))
	fmt.Fprintf(tw, "Blended gross margin\t%.1f%%\n", money.RoundPercentage(report.BlendedMargin))
	fmt.Fprintf(tw, "Operating margin\t%.1f%% (%s)\n", money.RoundPercentage(report.OperatingMargin), report.OperatingHealth)
	tw.Flush()

	if len(report.TierMargins) > 0 {
		fmt.Fprintf(w, "\nTier margins\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "TIER\tPRICE\tMARGIN\tPROFIT\tSTATUS\n")
		for _, tm := range report.TierMargins {
			fmt.Fprintf(tw, "%s\t%s %s\t%.1f%%\t%s %s\t%s\n",
				tm.TierName, cur, money.RoundCurrency(tm.Price),
				money.RoundPercentage(tm.Margin.Margin),
				cur, money.RoundCurrency(tm.Margin.Profit),
				tm.Margin.Status)
		}
		tw.Flush()
	}

	inv := report.Investor
	fmt.Fprintf(w, "\nInvestor metrics\n")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ARR\t%s\n", money.FormatCompact(inv.ARR, cur))
	fmt.Fprintf(tw, "ARPU\t%s %s\n", cur, money.RoundCurrency(inv.ARPU))
	fmt.Fprintf(tw, "Valuation (5x / 10x / 15x)\t%s / %s / %s\n",
		money.FormatCompact(inv.Valuation.ValuationLow, cur),
		money.FormatCompact(inv.Valuation.ValuationMid, cur),
		money.FormatCompact(inv.Valuation.ValuationHigh, cur))
	fmt.Fprintf(tw, "Break-even customers\t%s\n", formatHeadcount(inv.BreakEvenCustomers))
	fmt.Fprintf(tw, "Customers to break-even\t%d\n", inv.CustomersToBreakEven)
	fmt.Fprintf(tw, "Months to break-even\t%s\n", formatMonths(inv.MonthsToBreakEven))
	fmt.Fprintf(tw, "Gross margin health\t%s\n", inv.GrossMarginHealth)
	fmt.Fprintf(tw, "LTV:CAC\t%s\n", formatRatio(inv.LTVCACRatio))
	fmt.Fprintf(tw, "CAC payback\t%s\n", formatMonths(inv.PaybackPeriodMonths))
	tw.Flush()

	if len(inv.Milestones) > 0 {
		fmt.Fprintf(w, "\nMilestones\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "TARGET\tCUSTOMERS\tTIME\n")
		for _, m := range inv.Milestones {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Label, m.CustomersNeeded, formatMonths(m.MonthsToReach))
		}
		tw.Flush()
	}

	if report.AICostPerCustomer != nil {
		ai := report.AICostPerCustomer
		fmt.Fprintf(w, "\nAI cost / customer / month\n")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Provider\t%s (%s)\n", ai.Provider, ai.Model)
		fmt.Fprintf(tw, "Tokens\t%s in / %s out\n", aicost.FormatTokens(ai.InputTokens), aicost.FormatTokens(ai.OutputTokens))
		fmt.Fprintf(tw, "Cost\t%s (%s)\n", aicost.FormatCost(ai.TotalUSD, types.CurrencyUSD), aicost.FormatCost(ai.TotalMYR, cur))
		if !ai.PricingKnown {
			fmt.Fprintf(tw, "Note\tpricing unavailable for this model\n")
		}
		tw.Flush()
	}

	return nil
}

func formatHeadcount(h types.Headcount) string {
	if h.Unbounded {
		return "unreachable"
	}
	return fmt.Sprintf("%d", h.Count)
}

func formatMonths(months *int) string {
	switch {
	case months == nil:
		return "unreachable"
	case *months == 0:
		return "now"
	default:
		return fmt.Sprintf("%d mo", *months)
	}
}

func formatRatio(ratio *types.Ratio) string {
	if ratio == nil {
		return "n/a"
	}
	f := float64(*ratio)
	if math.IsInf(f, 1) {
		return "unbounded"
	}
	return fmt.Sprintf("%.1f", f)
}
