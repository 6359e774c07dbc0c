package zainetto

import (
	"iter"
	"maps"
	"slices"
)

// TickerStats is the full-history record of one ticker. It is created on the
// first trade referencing the ticker, mutated on every subsequent trade, and
// never deleted, even after the position closes.
type TickerStats struct {
	Ticker             string
	Class              AssetClass
	TradingPnL         Money // realized from lot closures only
	Dividends          Money
	InvestedHistorical Money // sum of every buy, regardless of later sales
	FirstBuy           Date
	LastActivity       Date
	MinBuyPrice        Money
	MaxBuyPrice        Money
	MaxSellPrice       Money
	SoldShares         Quantity // shares actually matched against lots
	SellRevenue        Money    // proceeds of matched shares
	Trades             int
}

// TotalRealized returns trading P&L plus dividends.
func (s TickerStats) TotalRealized() Money { return s.TradingPnL.Add(s.Dividends) }

// Closure is one taxable sale event: a quantity of shares leaving a specific
// lot. A single sell produces one closure per lot it consumes, which makes the
// list a flat fiscal ledger.
type Closure struct {
	Date      Date
	Ticker    string
	Class     AssetClass
	Shares    Quantity
	Acquired  Date  // acquisition date of the consumed lot
	UnitCost  Money // unit cost of the consumed lot
	SalePrice Money // unit sale price
	Proceeds  Money
	Cost      Money
	PnL       Money
}

// Book is the result of one full FIFO pass over a ledger: the live lot queues,
// the per-ticker stats and the flat list of closures. Each computation run
// owns a private Book; downstream consumers only ever receive copies or
// derived values.
type Book struct {
	cfg      Config
	queues   map[string]lots
	stats    map[string]*TickerStats
	hidden   map[string]bool // emptied tickers purged from position listings
	closures []Closure
}

// NewBook replays the whole ledger through the FIFO matcher.
func NewBook(l *Ledger, cfg Config) *Book {
	return NewBookAt(l, cfg, Date{})
}

// NewBookAt replays the ledger up to and including the cutoff date. A zero
// cutoff means no cutoff. This is also the historical reconstruction
// primitive: the same matcher, stopped earlier.
func NewBookAt(l *Ledger, cfg Config, cutoff Date) *Book {
	b := &Book{
		cfg:    cfg,
		queues: make(map[string]lots),
		stats:  make(map[string]*TickerStats),
		hidden: make(map[string]bool),
	}
	for _, t := range l.Trades() {
		if !cutoff.IsZero() && t.Date.After(cutoff) {
			// The ledger is sorted, so it is safe to break.
			break
		}
		b.process(t)
	}
	return b
}

// process applies a single trade to the book. It never fails: inconsistent
// trades (selling more than held) are tolerated as known data-quality gaps.
func (b *Book) process(t Trade) {
	switch {
	case t.Acquires():
		b.processBuy(t)
	case t.Action == Sell:
		b.processSell(t)
	case t.Action == Dividend:
		b.processDividend(t)
	case t.Action == Split:
		b.processSplit(t)
	default:
		// Cash movements do not touch lot queues or ticker stats.
	}
}

func (b *Book) processBuy(t Trade) {
	s := b.ensure(t)
	precision := b.cfg.precision(t.Class)
	quantity := t.Quantity.Round(precision)
	if quantity.IsZero() {
		return
	}

	b.queues[t.Ticker] = b.queues[t.Ticker].push(t.Date, quantity, t.UnitPrice)
	b.hidden[t.Ticker] = false

	s.InvestedHistorical = s.InvestedHistorical.Add(t.Amount)
	if s.FirstBuy.IsZero() {
		s.FirstBuy = t.Date
	}
	if s.MinBuyPrice.IsZero() || t.UnitPrice.LessThan(s.MinBuyPrice) {
		s.MinBuyPrice = t.UnitPrice
	}
	if t.UnitPrice.GreaterThan(s.MaxBuyPrice) {
		s.MaxBuyPrice = t.UnitPrice
	}
}

func (b *Book) processSell(t Trade) {
	s := b.ensure(t)
	precision := b.cfg.precision(t.Class)

	queue := b.queues[t.Ticker]
	remaining, consumed := queue.sell(t.Quantity, precision)
	b.queues[t.Ticker] = remaining

	for _, c := range consumed {
		proceeds := t.UnitPrice.Mul(c.shares)
		cost := c.lot.Price.Mul(c.shares)
		pnl := proceeds.Sub(cost)

		b.closures = append(b.closures, Closure{
			Date:      t.Date,
			Ticker:    t.Ticker,
			Class:     t.Class,
			Shares:    c.shares,
			Acquired:  c.lot.Acquired,
			UnitCost:  c.lot.Price,
			SalePrice: t.UnitPrice,
			Proceeds:  proceeds,
			Cost:      cost,
			PnL:       pnl,
		})

		s.TradingPnL = s.TradingPnL.Add(pnl)
		s.SoldShares = s.SoldShares.Add(c.shares)
		s.SellRevenue = s.SellRevenue.Add(proceeds)
	}
	// A sale that matched nothing (empty queue) never happened as far as the
	// stats are concerned.
	if len(consumed) > 0 && t.UnitPrice.GreaterThan(s.MaxSellPrice) {
		s.MaxSellPrice = t.UnitPrice
	}

	if len(remaining) == 0 {
		delete(b.queues, t.Ticker)
		// Crypto positions disappear as soon as they empty. Stocks emptied on
		// or after the configured cutoff stay visible with a zero quantity.
		if t.Class == Crypto || t.Date.Before(b.cfg.KeepEmptyAfter) {
			b.hidden[t.Ticker] = true
		}
	}
}

func (b *Book) processDividend(t Trade) {
	// Dividends bypass the lot queues entirely: a ticker with a zero share
	// position can still collect one.
	s := b.ensure(t)
	s.Dividends = s.Dividends.Add(t.Amount)
}

func (b *Book) processSplit(t Trade) {
	// The split factor travels in the trade quantity (2 for a 2:1 split).
	// Quantities grow, unit costs shrink, invested capital is unchanged.
	b.ensure(t)
	b.queues[t.Ticker] = b.queues[t.Ticker].split(t.Quantity, b.cfg.precision(t.Class))
}

// ensure returns the stats record for the trade's ticker, creating it on the
// ticker's first trade, and accounts for the activity.
func (b *Book) ensure(t Trade) *TickerStats {
	s, ok := b.stats[t.Ticker]
	if !ok {
		cur := b.cfg.Currency
		s = &TickerStats{
			Ticker:             t.Ticker,
			Class:              t.Class,
			TradingPnL:         M(0, cur),
			Dividends:          M(0, cur),
			InvestedHistorical: M(0, cur),
			MinBuyPrice:        M(0, cur),
			MaxBuyPrice:        M(0, cur),
			MaxSellPrice:       M(0, cur),
			SellRevenue:        M(0, cur),
		}
		b.stats[t.Ticker] = s
	}
	s.Trades++
	s.LastActivity = t.Date
	return s
}

// Position returns the number of shares currently held for a ticker.
func (b *Book) Position(ticker string) Quantity {
	return b.queues[ticker].shares()
}

// BookValue returns the invested capital still open for a ticker, each lot at
// its own cost basis.
func (b *Book) BookValue(ticker string) Money {
	return b.queues[ticker].cost(b.cfg.Currency)
}

// Lots returns a copy of the open lots for a ticker, oldest first.
func (b *Book) Lots(ticker string) []lot {
	return slices.Clone(b.queues[ticker])
}

// Stats returns a copy of the full-history stats for a ticker. The boolean is
// false when the ticker never appeared in the ledger.
func (b *Book) Stats(ticker string) (TickerStats, bool) {
	s, ok := b.stats[ticker]
	if !ok {
		return TickerStats{}, false
	}
	return *s, true
}

// Closures returns a copy of the flat fiscal ledger of taxable sale events,
// in chronological order.
func (b *Book) Closures() []Closure {
	return slices.Clone(b.closures)
}

// Tickers iterates over all tickers that ever traded, sorted, including
// closed ones. Stats survive a closed position.
func (b *Book) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		tickers := slices.Collect(maps.Keys(b.stats))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// Visible reports whether the ticker should appear in position listings. An
// emptied crypto ticker is purged immediately; an emptied stock ticker only if
// it emptied before the configured cutoff.
func (b *Book) Visible(ticker string) bool {
	if _, ok := b.stats[ticker]; !ok {
		return false
	}
	return !b.hidden[ticker]
}

// TotalBookValue sums the book value of every open position.
func (b *Book) TotalBookValue() Money {
	total := M(0, b.cfg.Currency)
	for ticker := range b.Tickers() {
		total = total.Add(b.BookValue(ticker))
	}
	return total
}
