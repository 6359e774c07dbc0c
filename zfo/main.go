package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mtoselli/zainetto/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Run
// `COMP_INSTALL=1 zfo` once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"portfolio": {Flags: map[string]complete.Predictor{"on": predict.Nothing}},
		"taxes":     {},
		"closures":  {Flags: map[string]complete.Predictor{"year": predict.Nothing}},
		"history":   {},
		"quote":     {Args: predict.Something},
		"topic":     {Args: predict.Something},
	},
	Flags: map[string]complete.Predictor{
		"ledger-dir":       predict.Dirs("*"),
		"keep-empty-after": predict.Nothing,
	},
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
