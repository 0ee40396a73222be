package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/splitzee/splitzee/internal/currency"
)

type convertCmd struct {
	out    io.Writer
	amount float64
	from   string
	to     string
	list   bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `splitzee convert -amount <amount> -from <code> -to <code>
splitzee convert -list

  Converts with the built-in fixed rate table. No live rates are fetched.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to convert")
	f.StringVar(&c.from, "from", string(currency.Base), "Source currency code")
	f.StringVar(&c.to, "to", "", "Target currency code")
	f.BoolVar(&c.list, "list", false, "List supported currencies")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		for _, cur := range currency.Supported() {
			fmt.Fprintf(c.out, "%s  %-3s %s\n", cur.Code, cur.Symbol, cur.Name)
		}
		return subcommands.ExitSuccess
	}

	from, to := currency.Normalize(c.from), currency.Normalize(c.to)
	for _, code := range []currency.Code{from, to} {
		if !currency.IsSupported(code) {
			fmt.Fprintf(os.Stderr, "Error: unsupported currency %q\n", code)
			return subcommands.ExitUsageError
		}
	}
	if c.amount < 0 {
		fmt.Fprintln(os.Stderr, "Error: amount cannot be negative")
		return subcommands.ExitUsageError
	}

	converted := currency.Convert(c.amount, from, to)
	fmt.Fprintf(c.out, "%s = %s (rate %g)\n", currency.Format(c.amount, from), currency.Format(converted, to), currency.Rate(from, to))
	return subcommands.ExitSuccess
}
