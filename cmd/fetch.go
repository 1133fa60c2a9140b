package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/navlog"
	"github.com/etnz/navlog/date"
	"github.com/etnz/navlog/renderer"
	"github.com/etnz/navlog/scrape"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	keepGoing bool
	year      string
	cache     bool
	timeout   time.Duration
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches reference prices and records them in the history" }
func (*fetchCmd) Usage() string {
	return `nav fetch [-keep-going] [-year current|recent] [-cache] [-timeout <duration>]

Fetches the page of every active fund of the registry, extracts its reference
price (基準価額) and its as-of date, and merges them into the history file.

A row of the history that already holds the same as-of date for one of the
fetched funds is replaced.

By default, any failure aborts the run and nothing is written. With -keep-going
the funds that could be fetched are recorded and the command still fails.
When no fund at all could be fetched the history file is left untouched, no
empty row is added.

Pages only show the month and day of the as-of date:
  - current: the year is the current year (default).
  - recent:  the year is chosen so that the date is not in the future.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.keepGoing, "keep-going", false, "record the funds that could be fetched even if others fail")
	f.StringVar(&c.year, "year", "current", "how to infer the year of as-of dates: current or recent")
	f.BoolVar(&c.cache, "cache", false, "cache pages on disk for the day.\n If missing it will read the environment variable \""+cacheEnv+"\"")
	f.DurationVar(&c.timeout, "timeout", 0, "timeout of each page fetch, 0 for none")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	strategy, err := date.ParseYearStrategy(c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Fprintln(os.Stderr, "ファンドマスター読込中…")
	instruments, err := navlog.LoadRegistry(*registryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load registry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(os.Stderr, "データ収集中…")
	collector := &scrape.Collector{
		Fetcher:  scrape.NewClient(c.timeout, cacheEnabled(c.cache)),
		Strategy: strategy,
		Mode:     scrape.Abort,
	}
	if c.keepGoing {
		collector.Mode = scrape.KeepGoing
	}
	batch, collectErr := collector.Collect(ctx, instruments)
	if batch == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", collectErr)
		return subcommands.ExitFailure
	}

	if batch.Len() > 0 {
		replaced, err := navlog.MergeFile(*historyFile, batch, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not update history: %v\n", err)
			return subcommands.ExitFailure
		}
		if replaced > 0 {
			fmt.Fprintf(os.Stderr, "%d previous row(s) replaced.\n", replaced)
		}
		fmt.Fprintln(os.Stderr, "保存完了:", *historyFile)
	}

	fmt.Println("\n=== 結果 ===")
	renderer.Summary(os.Stdout, batch)

	if collectErr != nil {
		fmt.Fprintf(os.Stderr, "Error: some funds could not be fetched:\n%v\n", collectErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
