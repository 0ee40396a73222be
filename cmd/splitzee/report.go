package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/export"
	"github.com/splitzee/splitzee/internal/report"
	"github.com/splitzee/splitzee/internal/snapshot"
)

type reportCmd struct {
	out      io.Writer
	file     string
	today    string
	search   string
	category string
	csv      bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize an expenses snapshot" }
func (*reportCmd) Usage() string {
	return `splitzee report -f <expenses.json> [-d <date>] [-search <text>] [-category <name>] [-csv]

  Reads a JSON expenses snapshot exported from the web client and prints
  totals, spending by category, the last 7 days and upcoming due dates.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "expenses.json", "Expenses snapshot file")
	f.StringVar(&c.today, "d", "", "Report date as YYYY-MM-DD (defaults to today)")
	f.StringVar(&c.search, "search", "", "Only include expenses whose title or category contains this text")
	f.StringVar(&c.category, "category", "all", "Only include this category")
	f.BoolVar(&c.csv, "csv", false, "Print the filtered expenses as CSV instead")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := date.Today()
	if c.today != "" {
		d, err := date.Parse(c.today)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		today = d
	}

	expenses, err := snapshot.LoadExpensesFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	expenses = report.Filter(expenses, c.search, c.category)

	if c.csv {
		if err := export.WriteExpensesCSV(c.out, expenses); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	d := report.Build(expenses, today)
	fmt.Fprintf(c.out, "Expenses:   %d\n", d.Count)
	fmt.Fprintf(c.out, "Total:      %.2f\n", d.Total)
	fmt.Fprintf(c.out, "This month: %.2f\n", d.MonthTotal)

	if len(d.ByCategory) > 0 {
		fmt.Fprintln(c.out, "\nBy category:")
		for _, ct := range d.ByCategory {
			fmt.Fprintf(c.out, "  %-20s %10.2f %6.2f%%\n", ct.Category, ct.Amount, ct.Percent)
		}
	}

	fmt.Fprintln(c.out, "\nLast 7 days:")
	for _, day := range d.Daily {
		fmt.Fprintf(c.out, "  %-12s %10.2f\n", day.Label, day.Amount)
	}

	if len(d.DueSoon) > 0 {
		fmt.Fprintln(c.out, "\nDue soon:")
		for _, e := range d.DueSoon {
			fmt.Fprintf(c.out, "  %s  %-20s %10.2f\n", e.DueDate, e.Title, e.Amount)
		}
	}
	return subcommands.ExitSuccess
}
