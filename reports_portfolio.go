package zainetto

import "strings"

// PortfolioLine is the per-ticker row of the portfolio table, with every
// display metric already derived. It is read-only output: regenerating it from
// the same book always yields the same values.
type PortfolioLine struct {
	Ticker             string
	Class              AssetClass
	Status             string // "open" or "closed"
	Shares             Quantity
	AverageCost        Money
	BookValue          Money
	Allocation         Percent // share of the open portfolio's book value
	TradingPnL         Money
	Dividends          Money
	TotalRealized      Money
	TradingROI         Percent
	TotalROI           Percent
	BreakEven          Money
	InvestedHistorical Money
	FirstBuy           Date
	HoldingDays        int
	MinBuyPrice        Money
	MaxBuyPrice        Money
	MaxSellPrice       Money
	AvgSellPrice       Money
	SoldShares         Quantity
	SellRevenue        Money
	Trades             int
	Advice             string
}

// Open reports whether the line is an open position.
func (l PortfolioLine) Open() bool { return l.Status == "open" }

// PortfolioReport is the portfolio table at a given date: one line per ticker
// that ever traded (subject to the book's purge rule) plus portfolio totals.
type PortfolioReport struct {
	Date          Date
	Currency      string
	Lines         []PortfolioLine
	BookValue     Money
	TradingPnL    Money
	Dividends     Money
	TotalRealized Money
}

// IsEmpty reports whether the report carries no positions at all, so callers
// can tell a missing ledger from a portfolio worth zero.
func (r *PortfolioReport) IsEmpty() bool { return len(r.Lines) == 0 }

// NewPortfolioReport derives the portfolio table from a book. It is a pure
// function of the book and the reference date: no hidden counters, running it
// twice yields identical output.
func NewPortfolioReport(b *Book, on Date) *PortfolioReport {
	cur := b.cfg.Currency
	report := &PortfolioReport{
		Date:          on,
		Currency:      cur,
		BookValue:     M(0, cur),
		TradingPnL:    M(0, cur),
		Dividends:     M(0, cur),
		TotalRealized: M(0, cur),
	}

	total := b.TotalBookValue()

	for ticker := range b.Tickers() {
		if !b.Visible(ticker) {
			continue
		}
		stats, _ := b.Stats(ticker)
		line := newPortfolioLine(b, stats, total, on)
		report.Lines = append(report.Lines, line)

		report.BookValue = report.BookValue.Add(line.BookValue)
		report.TradingPnL = report.TradingPnL.Add(line.TradingPnL)
		report.Dividends = report.Dividends.Add(line.Dividends)
		report.TotalRealized = report.TotalRealized.Add(line.TotalRealized)
	}
	return report
}

func newPortfolioLine(b *Book, stats TickerStats, totalBookValue Money, on Date) PortfolioLine {
	cur := b.cfg.Currency
	shares := b.Position(stats.Ticker)
	bookValue := b.BookValue(stats.Ticker)

	line := PortfolioLine{
		Ticker:             stats.Ticker,
		Class:              stats.Class,
		Status:             "closed",
		Shares:             shares,
		AverageCost:        M(0, cur),
		BookValue:          bookValue,
		TradingPnL:         stats.TradingPnL,
		Dividends:          stats.Dividends,
		TotalRealized:      stats.TotalRealized(),
		BreakEven:          M(0, cur),
		InvestedHistorical: stats.InvestedHistorical,
		FirstBuy:           stats.FirstBuy,
		MinBuyPrice:        stats.MinBuyPrice,
		MaxBuyPrice:        stats.MaxBuyPrice,
		MaxSellPrice:       stats.MaxSellPrice,
		AvgSellPrice:       M(0, cur),
		SoldShares:         stats.SoldShares,
		SellRevenue:        stats.SellRevenue,
		Trades:             stats.Trades,
	}

	if shares.AsFloat() > b.cfg.Epsilon {
		line.Status = "open"
		line.AverageCost = bookValue.Div(shares)
		// Break-even: the unit price at which selling the rest would bring the
		// total realized gain to exactly zero.
		line.BreakEven = bookValue.Sub(line.TotalRealized).Div(shares)
		if !totalBookValue.IsZero() {
			line.Allocation = Percent(bookValue.AsFloat() / totalBookValue.AsFloat() * 100)
		}
	}
	if !stats.SoldShares.IsZero() {
		line.AvgSellPrice = stats.SellRevenue.Div(stats.SoldShares)
	}
	if !stats.InvestedHistorical.IsZero() {
		line.TradingROI = Percent(stats.TradingPnL.AsFloat() / stats.InvestedHistorical.AsFloat() * 100)
		line.TotalROI = Percent(stats.TotalRealized().AsFloat() / stats.InvestedHistorical.AsFloat() * 100)
	}
	if !line.FirstBuy.IsZero() {
		line.HoldingDays = line.FirstBuy.Days(on)
	}
	line.Advice = advise(line)
	return line
}

// advise annotates a line with portfolio-health signals. These are heuristic
// tags meant to be actionable, not more raw numbers.
func advise(l PortfolioLine) string {
	var tags []string

	// Profitable overall, but only thanks to dividends.
	if l.TotalRealized.IsPositive() && !l.TradingPnL.IsPositive() && l.Dividends.IsPositive() {
		tags = append(tags, "dividend carried")
	}
	// Held for more than two years without ever producing a realized gain.
	if l.Open() && l.HoldingDays > 2*365 && !l.TotalRealized.IsPositive() {
		tags = append(tags, "deadweight")
	}
	// Sold on average above the highest price ever paid.
	if !l.SoldShares.IsZero() && !l.MaxBuyPrice.IsZero() && l.AvgSellPrice.GreaterThan(l.MaxBuyPrice) {
		tags = append(tags, "sniper exit")
	}
	return strings.Join(tags, ", ")
}
