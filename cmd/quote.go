package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mtoselli/zainetto"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the latest market price of tickers" }
func (*quoteCmd) Usage() string {
	return `zfo quote <ticker>...

  Fetches the latest available price for each ticker, trying each market
  data provider in turn.
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (*quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one ticker is required")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		q := zainetto.LatestQuote(ticker)
		if q.Unavailable {
			fmt.Printf("%s: no quote available\n", ticker)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %.4f (%s)\n", q.Ticker, q.Price, q.Source)
	}
	return status
}
