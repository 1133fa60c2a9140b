package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	fund string
	raw  bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the returns of a fund" }
func (*returnsCmd) Usage() string {
	return `nav returns -f <fund_id> [-raw]

  Displays the change of the reference price between consecutive as-of dates.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "fund_id to report on")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fund == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
	}

	t, err := navlog.LoadHistory(*historyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load history: %v\n", err)
		return subcommands.ExitFailure
	}
	id := navlog.ID(c.fund)
	if !slices.Contains(t.IDs(), id) {
		fmt.Fprintf(os.Stderr, "Error: fund %q is not in %s\n", c.fund, *historyFile)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReturnsMarkdown(id, navlog.Returns(t, id)), c.raw)
	return subcommands.ExitSuccess
}
