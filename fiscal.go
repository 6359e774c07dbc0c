package zainetto

import (
	"fmt"
	"strings"
)

// LossBasket is one carryforward bucket: the residual of a loss realized in
// OriginYear. It can offset compensable gains in the four following years and
// is purged, used or not, as soon as the current year is more than
// CarryforwardYears past its origin.
type LossBasket struct {
	OriginYear int
	Remaining  Money
}

// FiscalYear is the derived tax state of one calendar year.
type FiscalYear struct {
	Year               int
	CompensableGain    Money // net stock/crypto realized result, negative for a loss year
	NonCompensableGain Money // ETF gains plus dividends, always taxed in full
	NewLoss            Money // magnitude of the loss basket opened this year
	BasketUsed         Money // gains offset by older baskets
	BasketExpired      Money // basket residue purged this year, permanently lost
	TaxableBase        Money
	TaxDue             Money
	BasketResidual     Money // total usable basket at the end of the year
	Advice             string
}

// FiscalReport is the year-by-year tax summary plus the flat ledger of
// taxable sale events it was derived from.
type FiscalReport struct {
	Currency string
	Rate     float64
	Years    []FiscalYear
	Baskets  []LossBasket // usable baskets remaining after the last year
	Closures []Closure
	TotalTax Money
}

// IsEmpty reports whether the ledger produced no fiscal year at all.
func (r *FiscalReport) IsEmpty() bool { return len(r.Years) == 0 }

// NewFiscalReport replays the ledger and runs the yearly tax state machine,
// oldest year first through the current year. Quiet trailing years still get a
// state: baskets keep aging and expiring whether or not anything traded. It
// never fails: an empty ledger yields an empty report.
func NewFiscalReport(l *Ledger, cfg Config) *FiscalReport {
	book := NewBook(l, cfg)
	report := &FiscalReport{
		Currency: cfg.Currency,
		Rate:     cfg.TaxRate,
		Closures: book.Closures(),
		TotalTax: M(0, cfg.Currency),
	}

	var baskets []LossBasket
	for year := range l.YearsThrough(Today().Year()) {
		state, rest := nextFiscalYear(year, l, book, baskets, cfg)
		baskets = rest
		report.Years = append(report.Years, state)
		report.TotalTax = report.TotalTax.Add(state.TaxDue)
	}
	report.Baskets = baskets
	return report
}

// nextFiscalYear computes the state transition for one year: expiry first,
// then basket draw-down against the year's net compensable gain, then the new
// loss entry if the year closed negative.
func nextFiscalYear(year int, l *Ledger, book *Book, baskets []LossBasket, cfg Config) (FiscalYear, []LossBasket) {
	cur := cfg.Currency
	state := FiscalYear{
		Year:               year,
		CompensableGain:    M(0, cur),
		NonCompensableGain: M(0, cur),
		NewLoss:            M(0, cur),
		BasketUsed:         M(0, cur),
		BasketExpired:      M(0, cur),
		TaxableBase:        M(0, cur),
		TaxDue:             M(0, cur),
		BasketResidual:     M(0, cur),
	}

	// 1. Purge baskets that are out of their window this year. A loss from
	// year Y is usable through Y+CarryforwardYears inclusive, independent of
	// partial use.
	kept := baskets[:0]
	for _, basket := range baskets {
		if year-basket.OriginYear > cfg.CarryforwardYears {
			state.BasketExpired = state.BasketExpired.Add(basket.Remaining)
		} else {
			kept = append(kept, basket)
		}
	}
	baskets = kept

	// 2. Partition the year's realized results. ETF gains and dividends are
	// always taxed in full; ETF losses still feed the compensable net, like
	// any other realized loss.
	for _, c := range book.Closures() {
		if c.Date.Year() != year {
			continue
		}
		if c.Class.Compensable() || c.PnL.IsNegative() {
			state.CompensableGain = state.CompensableGain.Add(c.PnL)
		} else {
			state.NonCompensableGain = state.NonCompensableGain.Add(c.PnL)
		}
	}
	for _, t := range l.Trades(ByYear(year)) {
		if t.Action == Dividend {
			state.NonCompensableGain = state.NonCompensableGain.Add(t.Amount)
		}
	}

	// 3. Net compensable gain draws down the oldest baskets first.
	taxable := M(0, cur)
	if state.CompensableGain.IsPositive() {
		remaining := state.CompensableGain
		for i := range baskets {
			if !remaining.IsPositive() {
				break
			}
			draw := baskets[i].Remaining
			if remaining.LessThan(draw) {
				draw = remaining
			}
			baskets[i].Remaining = baskets[i].Remaining.Sub(draw)
			state.BasketUsed = state.BasketUsed.Add(draw)
			remaining = remaining.Sub(draw)
		}
		taxable = remaining
	} else if state.CompensableGain.IsNegative() {
		// 4. A losing year opens a new basket entry dated to this year.
		state.NewLoss = state.CompensableGain.Neg()
		baskets = append(baskets, LossBasket{OriginYear: year, Remaining: state.NewLoss})
	}

	// Drop fully consumed entries; a zero bucket can never be drawn again.
	kept = baskets[:0]
	for _, basket := range baskets {
		if basket.Remaining.IsPositive() {
			kept = append(kept, basket)
		}
	}
	baskets = kept

	// 5. Tax the remainder plus everything non-compensable.
	state.TaxableBase = taxable.Add(state.NonCompensableGain)
	state.TaxDue = state.TaxableBase.Mul(Q(cfg.TaxRate))
	for _, basket := range baskets {
		state.BasketResidual = state.BasketResidual.Add(basket.Remaining)
	}
	state.Advice = adviseFiscal(state, baskets, year, cfg)
	return state, baskets
}

// adviseFiscal annotates a fiscal year with warnings the user can act on
// before year end.
func adviseFiscal(state FiscalYear, baskets []LossBasket, year int, cfg Config) string {
	var notes []string
	for _, basket := range baskets {
		if year-basket.OriginYear == cfg.CarryforwardYears && basket.Remaining.IsPositive() {
			notes = append(notes, fmt.Sprintf("losses from %d (%s) expire after this year", basket.OriginYear, basket.Remaining))
		}
	}
	if state.NonCompensableGain.IsPositive() && state.BasketResidual.IsPositive() {
		notes = append(notes, "taxed gains cannot draw from the available basket")
	}
	return strings.Join(notes, "; ")
}
