package zainetto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow is one spreadsheet row as read from the external tabular store, all
// fields still text. Name may be left empty by importers that have no separate
// security name column; they default it to the ticker.
type RawRow struct {
	Date     string
	Ticker   string
	Name     string
	Action   string
	Quantity string
	Price    string
	Amount   string // total spent or received, when the sheet records it.
}

// NormalizeReport tags the degraded paths taken while normalizing, so callers
// and tests can tell "no data" from "all zeros". Skipped rows are not an
// error: blank tickers and cash placeholders are expected in real sheets.
type NormalizeReport struct {
	Imported  int // rows turned into canonical trades
	Skipped   int // rows dropped (blank identifiers, cash placeholders, unknown action, bad date)
	Defaulted int // numeric fields that failed to parse and were zeroed
}

// IsEmpty reports whether normalization produced no trades at all.
func (r NormalizeReport) IsEmpty() bool { return r.Imported == 0 }

// Normalize converts raw rows of one asset class into canonical trades.
// It never fails: malformed rows are skipped or zero-defaulted and accounted
// for in the report. The returned trades are sorted by date ascending; this is
// the one place chronological order is established.
func Normalize(cfg Config, class AssetClass, rows []RawRow) ([]Trade, NormalizeReport) {
	var report NormalizeReport
	trades := make([]Trade, 0, len(rows))

	for _, row := range rows {
		action, err := ParseAction(row.Action)
		if err != nil {
			report.Skipped++
			continue
		}

		// Cash movements need no ticker; everything else does, and cash or
		// currency placeholder positions are not trades.
		ticker := strings.TrimSpace(row.Ticker)
		if action != Deposit && action != Withdraw {
			if ticker == "" || strings.TrimSpace(row.Name) == "" {
				report.Skipped++
				continue
			}
			if u := strings.ToUpper(ticker); strings.Contains(u, "CASH") || strings.Contains(u, "EUR") {
				report.Skipped++
				continue
			}
		}

		day, err := ParseDate(row.Date)
		if err != nil {
			// A trade without a date cannot be ordered.
			report.Skipped++
			continue
		}

		quantity := parseQuantity(row.Quantity, &report).Round(cfg.precision(class))
		price := parseMoney(row.Price, cfg.Currency, &report)
		amount := parseMoney(row.Amount, cfg.Currency, &report)

		t := Trade{
			Date:      day,
			Ticker:    ticker,
			Action:    action,
			Quantity:  quantity,
			UnitPrice: price,
			Amount:    amount,
			Class:     class,
		}
		trades = append(trades, normalizeAmounts(t, cfg))
		report.Imported++
	}

	// Chronological order is an explicit postcondition of normalization.
	ledger := NewLedger(trades...)
	return ledger.trades, report
}

// normalizeAmounts derives the missing numeric fields of a trade according to
// its asset class. The total amount is never trusted blindly from the sheet:
// for stocks and ETFs it is always recomputed from quantity and price.
func normalizeAmounts(t Trade, cfg Config) Trade {
	switch {
	case t.Action == Dividend:
		// Dividends never affect the share count; the raw amount is the cash.
		t.Quantity = Q(0)
		t.UnitPrice = M(0, cfg.Currency)
	case t.Action == Deposit || t.Action == Withdraw:
		if t.Amount.IsZero() && !t.Quantity.IsZero() {
			t.Amount = t.UnitPrice.Mul(t.Quantity)
		}
		t.Quantity = Q(0)
	case t.Class == Crypto:
		// Crypto sheets record either a unit price or the total spent.
		if t.UnitPrice.IsZero() && !t.Amount.IsZero() && !t.Quantity.IsZero() {
			t.UnitPrice = t.Amount.Div(t.Quantity)
		} else if t.Amount.IsZero() && !t.UnitPrice.IsZero() && !t.Quantity.IsZero() {
			t.Amount = t.UnitPrice.Mul(t.Quantity)
		}
	default:
		// Stock and ETF: the sheet's spent column is unreliable.
		t.Amount = t.UnitPrice.Mul(t.Quantity)
	}
	return t
}

// parseQuantity parses a share quantity, zeroing on failure.
func parseQuantity(s string, report *NormalizeReport) Quantity {
	d, ok := parseDecimal(s)
	if !ok && strings.TrimSpace(s) != "" {
		report.Defaulted++
	}
	if d.IsNegative() {
		// Quantities are unsigned; the action carries the direction.
		d = d.Neg()
	}
	return Q(d)
}

// parseMoney parses a monetary amount, zeroing on failure.
func parseMoney(s, currency string, report *NormalizeReport) Money {
	d, ok := parseDecimal(s)
	if !ok && strings.TrimSpace(s) != "" {
		report.Defaulted++
	}
	if d.IsNegative() {
		d = d.Neg()
	}
	return M(d, currency)
}

// parseDecimal parses a number that may use the European ("1.234,56") or the
// US ("1,234.56") convention and may carry a currency symbol. It returns false
// when nothing parseable remains.
func parseDecimal(s string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" || s == "+" {
		return decimal.Zero, false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Both separators present: the rightmost one is the decimal mark.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			// Only thousands separators.
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
