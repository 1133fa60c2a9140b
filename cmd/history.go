package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	raw bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the recorded reference prices" }
func (*historyCmd) Usage() string {
	return `nav history [-raw]

  Displays the history file as a table, one row per fetch.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := navlog.LoadHistory(*historyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(t), c.raw)
	return subcommands.ExitSuccess
}
