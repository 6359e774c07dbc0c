package zainetto

import (
	"fmt"
	"strings"
	"testing"
)

// yearState finds the state of one fiscal year in a report.
func yearState(t *testing.T, report *FiscalReport, year int) FiscalYear {
	t.Helper()
	for _, y := range report.Years {
		if y.Year == year {
			return y
		}
	}
	t.Fatalf("no fiscal state for year %d", year)
	return FiscalYear{}
}

// jan and jun build dates inside a given year, for scenarios anchored to the
// current year rather than to fixed history.
func jan(year int) string { return fmt.Sprintf("%d-01-10", year) }
func jun(year int) string { return fmt.Sprintf("%d-06-02", year) }

func TestFiscalLossCarriedForward(t *testing.T) {
	ledger := NewLedger(
		buy("2020-01-02", "AAPL", Stock, 10, 200),
		sell("2020-06-02", "AAPL", Stock, 10, 100), // -1000
		buy("2021-01-02", "TSLA", Stock, 10, 100),
		sell("2021-06-02", "TSLA", Stock, 10, 160), // +600
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2020 := yearState(t, report, 2020)
	if got, want := y2020.NewLoss, eur(1000); !got.Equal(want) {
		t.Errorf("2020 NewLoss got %s, want %s", got, want)
	}
	if !y2020.TaxDue.IsZero() {
		t.Errorf("2020 TaxDue got %s, want 0", y2020.TaxDue)
	}

	y2021 := yearState(t, report, 2021)
	if got, want := y2021.BasketUsed, eur(600); !got.Equal(want) {
		t.Errorf("2021 BasketUsed got %s, want %s", got, want)
	}
	if !y2021.TaxDue.IsZero() {
		t.Errorf("2021 TaxDue got %s, want 0", y2021.TaxDue)
	}
	if got, want := y2021.BasketResidual, eur(400); !got.Equal(want) {
		t.Errorf("2021 BasketResidual got %s, want %s", got, want)
	}
}

func TestFiscalBasketExpiry(t *testing.T) {
	// A loss from 2020 is usable through 2024 and purged in 2025.
	ledger := NewLedger(
		buy("2020-01-02", "AAPL", Stock, 10, 200),
		sell("2020-06-02", "AAPL", Stock, 10, 100), // -1000
		buy("2025-01-10", "TSLA", Stock, 10, 100),
		sell("2025-06-02", "TSLA", Stock, 10, 150), // +500
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2025 := yearState(t, report, 2025)
	if got, want := y2025.BasketExpired, eur(1000); !got.Equal(want) {
		t.Errorf("2025 BasketExpired got %s, want %s", got, want)
	}
	if !y2025.BasketUsed.IsZero() {
		t.Errorf("2025 BasketUsed got %s, want 0", y2025.BasketUsed)
	}
	// The gain is taxed in full: the basket was already gone.
	if got, want := y2025.TaxDue, eur(130); !got.Equal(want) {
		t.Errorf("2025 TaxDue got %s, want %s", got, want)
	}
}

func TestFiscalBasketExpiryInQuietYears(t *testing.T) {
	// A loss followed by years of silence still ages and expires: the report
	// extends through the current year even past the last trade.
	origin := Today().Year() - 5
	ledger := NewLedger(
		buy(jan(origin), "AAPL", Stock, 10, 200),
		sell(jun(origin), "AAPL", Stock, 10, 100), // -1000
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	expiry := yearState(t, report, origin+5)
	if got, want := expiry.BasketExpired, eur(1000); !got.Equal(want) {
		t.Errorf("year %d BasketExpired got %s, want %s", origin+5, got, want)
	}
	if got := len(report.Baskets); got != 0 {
		t.Errorf("surviving baskets got %d, want none", got)
	}

	// The year before expiry carries the last-chance warning.
	last := yearState(t, report, origin+4)
	if !strings.Contains(last.Advice, "expire") {
		t.Errorf("year %d Advice got %q, want an expiry warning", origin+4, last.Advice)
	}
}

func TestFiscalLastUsableYear(t *testing.T) {
	// Year Y+4 is still inside the window.
	ledger := NewLedger(
		buy("2020-01-02", "AAPL", Stock, 10, 200),
		sell("2020-06-02", "AAPL", Stock, 10, 100), // -1000
		buy("2024-01-10", "TSLA", Stock, 10, 100),
		sell("2024-06-02", "TSLA", Stock, 10, 150), // +500
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2024 := yearState(t, report, 2024)
	if got, want := y2024.BasketUsed, eur(500); !got.Equal(want) {
		t.Errorf("2024 BasketUsed got %s, want %s", got, want)
	}
	if !y2024.TaxDue.IsZero() {
		t.Errorf("2024 TaxDue got %s, want 0", y2024.TaxDue)
	}
	// The residual 500 expires after 2024: the report should warn.
	if !strings.Contains(y2024.Advice, "expire") {
		t.Errorf("2024 Advice got %q, want an expiry warning", y2024.Advice)
	}
}

func TestFiscalETFGainsNotCompensable(t *testing.T) {
	ledger := NewLedger(
		buy("2020-01-02", "AAPL", Stock, 10, 200),
		sell("2020-06-02", "AAPL", Stock, 10, 100), // -1000 stock loss
		buy("2021-01-02", "VWCE", ETF, 10, 100),
		sell("2021-06-02", "VWCE", ETF, 10, 150), // +500 etf gain
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2021 := yearState(t, report, 2021)
	if got, want := y2021.NonCompensableGain, eur(500); !got.Equal(want) {
		t.Errorf("2021 NonCompensableGain got %s, want %s", got, want)
	}
	if !y2021.BasketUsed.IsZero() {
		t.Errorf("2021 BasketUsed got %s, want 0", y2021.BasketUsed)
	}
	// Taxed in full even though a 1000 basket is sitting there.
	if got, want := y2021.TaxDue, eur(130); !got.Equal(want) {
		t.Errorf("2021 TaxDue got %s, want %s", got, want)
	}
	if got, want := y2021.BasketResidual, eur(1000); !got.Equal(want) {
		t.Errorf("2021 BasketResidual got %s, want %s", got, want)
	}
	if !strings.Contains(y2021.Advice, "basket") {
		t.Errorf("2021 Advice got %q, want an inefficiency note", y2021.Advice)
	}
}

func TestFiscalETFLossesCompensable(t *testing.T) {
	// Only ETF gains are ring-fenced: an ETF loss still opens a basket.
	ledger := NewLedger(
		buy("2020-01-02", "VWCE", ETF, 10, 200),
		sell("2020-06-02", "VWCE", ETF, 10, 100), // -1000
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2020 := yearState(t, report, 2020)
	if got, want := y2020.NewLoss, eur(1000); !got.Equal(want) {
		t.Errorf("2020 NewLoss got %s, want %s", got, want)
	}
}

func TestFiscalDividendsTaxedInFull(t *testing.T) {
	ledger := NewLedger(
		buy("2020-01-02", "AAPL", Stock, 10, 200),
		sell("2020-06-02", "AAPL", Stock, 10, 100), // -1000
		dividend("2021-03-02", "AAPL", Stock, 200),
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	y2021 := yearState(t, report, 2021)
	if got, want := y2021.NonCompensableGain, eur(200); !got.Equal(want) {
		t.Errorf("2021 NonCompensableGain got %s, want %s", got, want)
	}
	if got, want := y2021.TaxDue, eur(52); !got.Equal(want) {
		t.Errorf("2021 TaxDue got %s, want %s", got, want)
	}
}

func TestFiscalOldestBasketFirst(t *testing.T) {
	// Anchored to the current year so none of the baskets can expire.
	now := Today().Year()
	ledger := NewLedger(
		buy(jan(now-2), "A", Stock, 10, 100),
		sell(jun(now-2), "A", Stock, 10, 70), // -300
		buy(jan(now-1), "B", Stock, 10, 100),
		sell(jun(now-1), "B", Stock, 10, 80), // -200
		buy(jan(now), "C", Stock, 10, 100),
		sell(jun(now), "C", Stock, 10, 140), // +400
	)
	report := NewFiscalReport(ledger, DefaultConfig())

	gainYear := yearState(t, report, now)
	if got, want := gainYear.BasketUsed, eur(400); !got.Equal(want) {
		t.Errorf("BasketUsed got %s, want %s", got, want)
	}
	// 300 drained from the older basket, 100 from the newer: only the newer
	// survives.
	if got, want := len(report.Baskets), 1; got != want {
		t.Fatalf("baskets got %d, want %d", got, want)
	}
	if got, want := report.Baskets[0].OriginYear, now-1; got != want {
		t.Errorf("surviving basket origin got %d, want %d", got, want)
	}
	if got, want := report.Baskets[0].Remaining, eur(100); !got.Equal(want) {
		t.Errorf("surviving basket remaining got %s, want %s", got, want)
	}
}

func TestFiscalEmptyLedger(t *testing.T) {
	report := NewFiscalReport(NewLedger(), DefaultConfig())
	if !report.IsEmpty() {
		t.Error("empty ledger should yield an empty fiscal report")
	}
	if !report.TotalTax.IsZero() {
		t.Errorf("TotalTax got %s, want 0", report.TotalTax)
	}
}

func TestFiscalTotalTax(t *testing.T) {
	ledger := NewLedger(
		buy("2023-01-02", "A", Stock, 10, 100),
		sell("2023-06-02", "A", Stock, 10, 150), // +500 -> 130
		buy("2024-01-02", "B", Stock, 10, 100),
		sell("2024-06-02", "B", Stock, 10, 200), // +1000 -> 260
	)
	report := NewFiscalReport(ledger, DefaultConfig())
	if got, want := report.TotalTax, eur(390); !got.Equal(want) {
		t.Errorf("TotalTax got %s, want %s", got, want)
	}
}
