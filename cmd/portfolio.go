package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mtoselli/zainetto"
	"github.com/mtoselli/zainetto/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	on string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "current positions and per-ticker statistics" }
func (*portfolioCmd) Usage() string {
	return `zfo portfolio [-on <date>]

  Displays open positions, realized results and per-ticker statistics.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", zainetto.Today().String(), "Report date. Trades after this date are ignored.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := zainetto.ParseDate(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -on date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	book := zainetto.NewBookAt(ledger, cfg, on)
	report := zainetto.NewPortfolioReport(book, on)

	printMarkdown(renderer.PortfolioMarkdown(report))
	return subcommands.ExitSuccess
}
