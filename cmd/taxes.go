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

// taxesCmd holds the flags for the 'taxes' subcommand.
type taxesCmd struct{}

func (*taxesCmd) Name() string     { return "taxes" }
func (*taxesCmd) Synopsis() string { return "yearly tax liability and loss basket status" }
func (*taxesCmd) Usage() string {
	return `zfo taxes

  Computes the capital gain tax due per year, tracking the loss
  carryforward basket across years.
`
}

func (*taxesCmd) SetFlags(f *flag.FlagSet) {}

func (*taxesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := zainetto.NewFiscalReport(ledger, cfg)
	printMarkdown(renderer.FiscalMarkdown(report))
	return subcommands.ExitSuccess
}

// closuresCmd holds the flags for the 'closures' subcommand.
type closuresCmd struct {
	year int
}

func (*closuresCmd) Name() string     { return "closures" }
func (*closuresCmd) Synopsis() string { return "individual taxable sale events" }
func (*closuresCmd) Usage() string {
	return `zfo closures [-year <year>]

  Lists every taxable sale event with its matched lot and realized result.
`
}

func (c *closuresCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Only show closures of this year. Zero shows all.")
}

func (c *closuresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := zainetto.NewFiscalReport(ledger, cfg)
	if c.year != 0 {
		kept := report.Closures[:0:0]
		for _, cl := range report.Closures {
			if cl.Date.Year() == c.year {
				kept = append(kept, cl)
			}
		}
		report.Closures = kept
	}

	printMarkdown(renderer.ClosuresMarkdown(report))
	return subcommands.ExitSuccess
}
