package renderer

import (
	"fmt"
	"strings"

	"github.com/mtoselli/zainetto"
)

// PortfolioMarkdown renders the portfolio table to a markdown string.
func PortfolioMarkdown(report *zainetto.PortfolioReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio on %s\n\n", report.Date)
	if report.IsEmpty() {
		fmt.Fprintln(&b, "No positions recorded.")
		return b.String()
	}

	fmt.Fprint(&b, "## Positions\n\n")
	fmt.Fprintln(&b, "| Ticker | Class | Status | Shares | Avg Cost | Book Value | Alloc | Trading P&L | Dividends | Realized | ROI | Break-even | Advice |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|:---|")
	for _, line := range report.Lines {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			line.Ticker,
			line.Class,
			line.Status,
			qty(line.Shares),
			line.AverageCost,
			line.BookValue,
			line.Allocation,
			line.TradingPnL.SignedString(),
			line.Dividends.SignedString(),
			line.TotalRealized.SignedString(),
			line.TotalROI.SignedString(),
			line.BreakEven,
			note(line.Advice),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | | **%s** | **%s** | **%s** | | | |\n",
		report.BookValue,
		report.TradingPnL.SignedString(),
		report.Dividends.SignedString(),
		report.TotalRealized.SignedString(),
	)

	fmt.Fprint(&b, "\n## Trading History\n\n")
	fmt.Fprintln(&b, "| Ticker | First Buy | Held | Trades | Invested | Min Buy | Max Buy | Max Sell | Avg Sell | Sold | Revenue |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, line := range report.Lines {
		fmt.Fprintf(&b, "| %s | %s | %dd | %d | %s | %s | %s | %s | %s | %s | %s |\n",
			line.Ticker,
			day(line.FirstBuy),
			line.HoldingDays,
			line.Trades,
			line.InvestedHistorical,
			line.MinBuyPrice,
			line.MaxBuyPrice,
			line.MaxSellPrice,
			line.AvgSellPrice,
			qty(line.SoldShares),
			line.SellRevenue,
		)
	}
	return b.String()
}
