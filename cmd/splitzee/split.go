package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/splitzee/splitzee/internal/calculator"
	"github.com/splitzee/splitzee/internal/export"
	"github.com/splitzee/splitzee/internal/models"
)

// participantsFlag collects repeated -p values of the form "Name" or "Name=value".
type participantsFlag []string

func (p *participantsFlag) String() string { return strings.Join(*p, ",") }

func (p *participantsFlag) Set(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("empty participant")
	}
	*p = append(*p, v)
	return nil
}

type splitCmd struct {
	out          io.Writer
	total        float64
	strategy     string
	notes        string
	participants participantsFlag
	csv          bool
	share        bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "split a bill among participants" }
func (*splitCmd) Usage() string {
	return `splitzee split -total <amount> [-strategy equal|percentage|custom] -p <name>[=<value>]...

  Splits a bill. With -strategy percentage the value after "=" is the
  participant's percentage, with -strategy custom it is their amount.

Usage Examples:
$ splitzee split -total 90 -p Alice -p Bob -p Charlie
$ splitzee split -total 100 -strategy percentage -p Alice=60 -p Bob=40 -share
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.total, "total", 0, "Bill total")
	f.StringVar(&c.strategy, "strategy", string(models.SplitEqual), "Split strategy (equal, percentage, custom)")
	f.StringVar(&c.notes, "notes", "", "Optional notes shown in the share text")
	f.Var(&c.participants, "p", "Participant as Name or Name=value (repeatable)")
	f.BoolVar(&c.csv, "csv", false, "Print the split as CSV")
	f.BoolVar(&c.share, "share", false, "Print the shareable text")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strategy, err := calculator.ParseStrategy(c.strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	participants, err := parseParticipants(c.participants, strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := calculator.Calculate(c.total, strategy, participants, c.notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	slog.Debug("Split calculated", "strategy", strategy, "participants", len(result.Participants))

	switch {
	case c.csv:
		if err := export.WriteSplitCSV(c.out, result.Participants); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.share:
		fmt.Fprintln(c.out, export.ShareText(result))
	default:
		for _, p := range result.Participants {
			fmt.Fprintf(c.out, "%-20s %10.2f\n", p.Name, p.Amount)
		}
		fmt.Fprintf(c.out, "%-20s %10.2f\n", "Total", result.Total)
	}
	return subcommands.ExitSuccess
}

// parseParticipants turns "Name=value" arguments into participants.
// The value is a percentage or an amount depending on strategy, and is ignored for equal splits.
func parseParticipants(args []string, strategy models.SplitStrategy) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(args))
	for i, arg := range args {
		name, raw, hasValue := strings.Cut(arg, "=")
		p := models.Participant{ID: strconv.Itoa(i + 1), Name: strings.TrimSpace(name)}
		if hasValue && strategy != models.SplitEqual {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %q", p.Name, raw)
			}
			if strategy == models.SplitPercentage {
				p.Percentage = v
			} else {
				p.Amount = v
			}
		}
		out = append(out, p)
	}
	return out, nil
}
