package renderer

import (
	"strings"
	"testing"

	"github.com/mtoselli/zainetto"
)

func ledger() *zainetto.Ledger {
	eur := func(v float64) zainetto.Money { return zainetto.M(v, "EUR") }
	q := func(v float64) zainetto.Quantity { return zainetto.Q(v) }
	t := func(date, ticker string, action zainetto.Action, qty, price float64) zainetto.Trade {
		return zainetto.Trade{
			Date:      zainetto.MustParse(date),
			Ticker:    ticker,
			Action:    action,
			Quantity:  q(qty),
			UnitPrice: eur(price),
			Amount:    eur(price * qty),
			Class:     zainetto.Stock,
		}
	}
	return zainetto.NewLedger(
		t("2023-01-02", "AAPL", zainetto.Buy, 10, 100),
		t("2024-06-02", "AAPL", zainetto.Sell, 5, 150),
	)
}

func TestPortfolioMarkdown(t *testing.T) {
	cfg := zainetto.DefaultConfig()
	l := ledger()
	book := zainetto.NewBook(l, cfg)
	report := zainetto.NewPortfolioReport(book, zainetto.MustParse("2024-12-31"))

	md := PortfolioMarkdown(report)

	for _, want := range []string{"# Portfolio on 2024-12-31", "## Positions", "| AAPL |", "## Trading History", "**Total**"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}

func TestPortfolioMarkdownEmpty(t *testing.T) {
	cfg := zainetto.DefaultConfig()
	book := zainetto.NewBook(zainetto.NewLedger(), cfg)
	report := zainetto.NewPortfolioReport(book, zainetto.MustParse("2024-12-31"))

	if md := PortfolioMarkdown(report); !strings.Contains(md, "No positions recorded.") {
		t.Errorf("empty report should say so:\n%s", md)
	}
}

func TestFiscalMarkdown(t *testing.T) {
	cfg := zainetto.DefaultConfig()
	report := zainetto.NewFiscalReport(ledger(), cfg)

	md := FiscalMarkdown(report)
	for _, want := range []string{"# Fiscal Report (26% flat rate)", "## Years", "| 2024 |", "Estimated tax due"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}

func TestClosuresMarkdown(t *testing.T) {
	cfg := zainetto.DefaultConfig()
	report := zainetto.NewFiscalReport(ledger(), cfg)

	md := ClosuresMarkdown(report)
	for _, want := range []string{"# Taxable Sale Events", "| 2024-06-02 | AAPL |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	cfg := zainetto.DefaultConfig()
	report := zainetto.NewHistoryReport(ledger(), cfg)

	md := HistoryMarkdown(report)
	for _, want := range []string{"# Portfolio Evolution", "## Year-end Holdings", "| 2023 | AAPL |", "## Yearly Cash Flows"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}
