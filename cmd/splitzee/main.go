// Command splitzee splits bills, converts currencies and summarizes
// expense snapshots without a server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/splitzee/splitzee/pkg/logging"
)

var logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	register(commander)

	flag.Parse()
	logging.Setup(*logLevel)
	os.Exit(int(commander.Execute(context.Background())))
}

// register adds the splitzee subcommands, writing results to stdout.
func register(c *subcommands.Commander) {
	c.Register(&splitCmd{out: os.Stdout}, "splits")
	c.Register(&convertCmd{out: os.Stdout}, "currencies")
	c.Register(&reportCmd{out: os.Stdout}, "expenses")
}
