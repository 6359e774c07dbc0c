// Package cmd implements the CLI application to analyze a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mtoselli/zainetto"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&portfolioCmd{}, "reports")
	c.Register(&taxesCmd{}, "reports")
	c.Register(&closuresCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&quoteCmd{}, "market")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", ".", "Path to the folder containing the ledger CSV files")
var keepEmptyAfter = flag.String("keep-empty-after", "", "Sold-out stock tickers emptied on or after this date stay visible at zero")

// ledgerFiles maps each asset class to its CSV file in the ledger folder.
var ledgerFiles = map[zainetto.AssetClass]string{
	zainetto.Stock:  "stocks.csv",
	zainetto.ETF:    "etfs.csv",
	zainetto.Crypto: "crypto.csv",
}

// LoadConfig builds the accounting configuration from the global flags.
func LoadConfig() (zainetto.Config, error) {
	cfg := zainetto.DefaultConfig()
	if *keepEmptyAfter != "" {
		d, err := zainetto.ParseDate(*keepEmptyAfter)
		if err != nil {
			return cfg, fmt.Errorf("invalid -keep-empty-after date: %w", err)
		}
		cfg.KeepEmptyAfter = d
	}
	return cfg, nil
}

// LoadLedger reads and normalizes every class CSV found in the ledger folder.
// A missing file leaves its class empty.
func LoadLedger(cfg zainetto.Config) (*zainetto.Ledger, error) {
	ledger := zainetto.NewLedger()
	for class, name := range ledgerFiles {
		filename := filepath.Join(*ledgerDir, name)
		f, err := os.Open(filename)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: %s not found, %s ledger is empty", filename, class)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot open %q: %w", filename, err)
		}
		rows, err := zainetto.ImportRows(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot read %q: %w", filename, err)
		}
		trades, report := zainetto.Normalize(cfg, class, rows)
		if !report.IsEmpty() {
			log.Printf("%s: imported %d rows, skipped %d, defaulted %d fields",
				name, report.Imported, report.Skipped, report.Defaulted)
		}
		ledger.Append(trades...)
	}
	return ledger, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
