package renderer

import (
	"fmt"
	"strings"

	"github.com/mtoselli/zainetto"
)

// FiscalMarkdown renders the yearly tax-basket summary to a markdown string.
func FiscalMarkdown(report *zainetto.FiscalReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Fiscal Report (%.0f%% flat rate)\n\n", report.Rate*100)
	if report.IsEmpty() {
		fmt.Fprintln(&b, "No taxable events recorded.")
		return b.String()
	}

	fmt.Fprint(&b, "## Years\n\n")
	fmt.Fprintln(&b, "| Year | Compensable | Non-compensable | New Loss | Basket Used | Expired | Taxable Base | Tax Due | Basket Left | Advice |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|:---|")
	for _, year := range report.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			year.Year,
			year.CompensableGain.SignedString(),
			year.NonCompensableGain.SignedString(),
			year.NewLoss,
			year.BasketUsed,
			year.BasketExpired,
			year.TaxableBase,
			year.TaxDue,
			year.BasketResidual,
			note(year.Advice),
		)
	}
	fmt.Fprintf(&b, "\nEstimated tax due over the whole history: %s\n", report.TotalTax)

	if len(report.Baskets) > 0 {
		fmt.Fprint(&b, "\n## Usable Loss Baskets\n\n")
		fmt.Fprintln(&b, "| Origin | Remaining |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, basket := range report.Baskets {
			fmt.Fprintf(&b, "| %d | %s |\n", basket.OriginYear, basket.Remaining)
		}
	}
	return b.String()
}

// ClosuresMarkdown renders the flat ledger of taxable sale events.
func ClosuresMarkdown(report *zainetto.FiscalReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Taxable Sale Events\n\n")
	if len(report.Closures) == 0 {
		fmt.Fprintln(&b, "No sales recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Ticker | Class | Shares | Acquired | Unit Cost | Sale Price | Proceeds | Cost | P&L |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|---:|---:|---:|---:|---:|")
	for _, c := range report.Closures {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			c.Date,
			c.Ticker,
			c.Class,
			qty(c.Shares),
			day(c.Acquired),
			c.UnitCost,
			c.SalePrice,
			c.Proceeds,
			c.Cost,
			c.PnL.SignedString(),
		)
	}
	return b.String()
}
