// Package cmd implements the CLI application to record fund reference prices.
package cmd

import (
	"flag"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "prices")
	c.Register(&historyCmd{}, "reports")
	c.Register(&returnsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var registryFile = flag.String("registry-file", "fund_master.csv", "Path to the registry of funds (CSV with fund_id, url and status columns)")
var historyFile = flag.String("history-file", "daily_returns.csv", "Path to the history of reference prices (CSV)")

const cacheEnv = "NAVLOG_CACHE"

// cacheEnabled reads the cache flag, falling back to the environment variable when it is not set.
func cacheEnabled(flagValue bool) bool {
	if flagValue {
		return true
	}
	enabled, _ := strconv.ParseBool(os.Getenv(cacheEnv))
	return enabled
}
