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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "year-by-year portfolio evolution" }
func (*historyCmd) Usage() string {
	return `zfo history

  Reconstructs the portfolio at the end of each year of activity and
  summarizes yearly cash flows per asset class.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (*historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := zainetto.NewHistoryReport(ledger, cfg)
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
