package zainetto

// Holding is one row of a year-end holdings snapshot: what was owned on
// December 31 and the capital still invested in it at that instant. It is
// derived output, regenerated on every query, never stored as authoritative
// state.
type Holding struct {
	Year     int
	Ticker   string
	Class    AssetClass
	Quantity Quantity
	Invested Money
}

// CashFlow aggregates one year of cash movements for one asset class.
type CashFlow struct {
	Year      int
	Class     AssetClass
	Bought    Money
	Sold      Money
	Dividends Money
	Deposited Money
	Withdrawn Money
	Net       Money // net cash generated: sold + dividends + deposits − bought − withdrawals
}

// HistoryReport is the year-by-year evolution of the portfolio: holdings
// snapshots at every year end plus the yearly cash flows per asset class.
type HistoryReport struct {
	Currency  string
	Holdings  []Holding
	CashFlows []CashFlow
}

// IsEmpty reports whether the ledger produced no history at all.
func (r *HistoryReport) IsEmpty() bool { return len(r.Holdings) == 0 && len(r.CashFlows) == 0 }

// NewHistoryReport replays the ledger once per year boundary, from the first
// trade's year through the current year: a position bought years ago and never
// touched since still appears in every snapshot up to today. Each replay runs
// the same FIFO matcher as the live portfolio with an earlier cutoff, so a
// snapshot taken today matches the live book exactly. This is
// O(years × trades) by design: trade volumes are personal-scale.
func NewHistoryReport(l *Ledger, cfg Config) *HistoryReport {
	report := &HistoryReport{Currency: cfg.Currency}

	for year := range l.YearsThrough(Today().Year()) {
		book := NewBookAt(l, cfg, EndOfYear(year))
		for ticker := range book.Tickers() {
			quantity := book.Position(ticker)
			if quantity.AsFloat() <= cfg.Epsilon {
				continue
			}
			stats, _ := book.Stats(ticker)
			report.Holdings = append(report.Holdings, Holding{
				Year:     year,
				Ticker:   ticker,
				Class:    stats.Class,
				Quantity: quantity,
				Invested: book.BookValue(ticker),
			})
		}
		report.CashFlows = append(report.CashFlows, yearCashFlows(l, year, cfg)...)
	}
	return report
}

// yearCashFlows aggregates the cash movements of one year, one row per asset
// class with activity.
func yearCashFlows(l *Ledger, year int, cfg Config) []CashFlow {
	var rows []CashFlow
	for _, class := range []AssetClass{Stock, ETF, Crypto} {
		cur := cfg.Currency
		row := CashFlow{
			Year:      year,
			Class:     class,
			Bought:    M(0, cur),
			Sold:      M(0, cur),
			Dividends: M(0, cur),
			Deposited: M(0, cur),
			Withdrawn: M(0, cur),
		}
		active := false
		for _, t := range l.Trades(ByYear(year)) {
			if t.Class != class {
				continue
			}
			switch t.Action {
			case Buy:
				row.Bought = row.Bought.Add(t.Amount)
			case Sell:
				row.Sold = row.Sold.Add(t.Amount)
			case Dividend:
				row.Dividends = row.Dividends.Add(t.Amount)
			case Deposit:
				row.Deposited = row.Deposited.Add(t.Amount)
			case Withdraw:
				row.Withdrawn = row.Withdrawn.Add(t.Amount)
			default:
				continue
			}
			active = true
		}
		if !active {
			continue
		}
		row.Net = row.Sold.Add(row.Dividends).Add(row.Deposited).Sub(row.Bought).Sub(row.Withdrawn)
		rows = append(rows, row)
	}
	return rows
}
