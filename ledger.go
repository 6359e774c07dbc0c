package zainetto

import (
	"iter"
	"sort"
)

// Ledger represents the canonical trade history.
//
// In a Ledger trades are always in chronological order. Chronological order is
// established once, here, and every downstream engine relies on it instead of
// re-sorting defensively.
type Ledger struct {
	trades []Trade
}

// NewLedger creates an empty ledger.
func NewLedger(trades ...Trade) *Ledger {
	l := &Ledger{trades: make([]Trade, 0, len(trades))}
	l.Append(trades...)
	return l
}

// Append appends trades to this ledger and maintains the chronological order.
func (l *Ledger) Append(trades ...Trade) {
	l.trades = append(l.trades, trades...)
	l.stableSort()
}

// stableSort sorts the ledger by trade date. The sort is stable, meaning
// trades on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Date.Before(l.trades[j].Date)
	})
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Trades returns an iterator over trades in chronological order. When filters
// are given, a trade is yielded if any filter accepts it.
func (l *Ledger) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(t) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// Until returns a new ledger restricted to trades dated on or before cutoff.
// The receiver is not modified; the returned ledger shares no state with it.
func (l *Ledger) Until(cutoff Date) *Ledger {
	out := &Ledger{trades: make([]Trade, 0, len(l.trades))}
	for _, t := range l.trades {
		if t.Date.After(cutoff) {
			// The ledger is sorted, so it is safe to break.
			break
		}
		out.trades = append(out.trades, t)
	}
	return out
}

// FirstDate returns the date of the earliest trade, or the zero Date for an
// empty ledger.
func (l *Ledger) FirstDate() Date {
	if len(l.trades) == 0 {
		return Date{}
	}
	return l.trades[0].Date
}

// LastDate returns the date of the latest trade, or the zero Date for an
// empty ledger.
func (l *Ledger) LastDate() Date {
	if len(l.trades) == 0 {
		return Date{}
	}
	return l.trades[len(l.trades)-1].Date
}

// Years returns an iterator over calendar years from the first trade's year
// through the last trade's year inclusive. Empty ledgers yield nothing, so
// callers degrade to an empty report instead of failing.
func (l *Ledger) Years() iter.Seq[int] { return l.YearsThrough(0) }

// YearsThrough is like Years but extends the range through the given year when
// it lies past the last trade. Quiet trailing years matter: positions are
// still held and loss baskets still age while nothing trades.
func (l *Ledger) YearsThrough(year int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(l.trades) == 0 {
			return
		}
		last := l.LastDate().Year()
		if year > last {
			last = year
		}
		for y := l.FirstDate().Year(); y <= last; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

// ByTicker returns a predicate that filters trades by ticker.
func ByTicker(ticker string) func(Trade) bool {
	return func(t Trade) bool { return t.Ticker == ticker }
}

// ByClass returns a predicate that filters trades by asset class.
func ByClass(class AssetClass) func(Trade) bool {
	return func(t Trade) bool { return t.Class == class }
}

// ByYear returns a predicate that filters trades by calendar year.
func ByYear(year int) func(Trade) bool {
	return func(t Trade) bool { return t.Date.Year() == year }
}
