package renderer

import (
	"fmt"
	"strings"

	"github.com/mtoselli/zainetto"
)

// HistoryMarkdown renders the year-by-year evolution of the portfolio.
func HistoryMarkdown(report *zainetto.HistoryReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio Evolution\n\n")
	if report.IsEmpty() {
		fmt.Fprintln(&b, "No history recorded.")
		return b.String()
	}

	fmt.Fprint(&b, "## Year-end Holdings\n\n")
	fmt.Fprintln(&b, "| Year | Ticker | Class | Quantity | Invested |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, h := range report.Holdings {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			h.Year, h.Ticker, h.Class, qty(h.Quantity), h.Invested)
	}

	fmt.Fprint(&b, "\n## Yearly Cash Flows\n\n")
	fmt.Fprintln(&b, "| Year | Class | Bought | Sold | Dividends | Deposited | Withdrawn | Net |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, f := range report.CashFlows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			f.Year, f.Class, f.Bought, f.Sold, f.Dividends, f.Deposited, f.Withdrawn, f.Net.SignedString())
	}
	return b.String()
}
