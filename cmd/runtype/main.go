// Command runtype validates JSON documents against a type expression.
//
// Usage:
//
//	runtype check --type '{ name: string, age: ?Integer }' data.json more.json
//	cat data.json | runtype check -t 'Array<number>' -
//
// Exit status is 0 when every document validates, 1 when any is rejected
// or unreadable, and 2 for usage errors (including an unparsable type
// expression).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/runtype/runtype/adapter/json"
	"github.com/runtype/runtype/diag"
	"github.com/runtype/runtype/typeexpr"
)

func main() {
	app := &cli.App{
		Name:  "runtype",
		Usage: "validate JSON documents against a type expression",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "decode each document and validate it",
				ArgsUsage: "FILE... (use - for stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "type expression to validate against",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "strict JSON (no comments or trailing commas)",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress per-error output, report only the exit status",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "enable debug logging",
					},
				},
				Action: runCheck,
			},
		},
	}

	// ExitCoder errors terminate inside Run; anything else is a usage fault.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func runCheck(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))

	t, err := typeexpr.Parse(c.String("type"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	logger.Debug("parsed type expression", slog.String("type", t.Name()))

	if c.NArg() == 0 {
		return cli.Exit("runtype check: no input files (use - for stdin)", 2)
	}

	adapter := json.New(json.WithStrict(c.Bool("strict")))
	quiet := c.Bool("quiet")

	failed := false
	for _, arg := range c.Args().Slice() {
		label, data, err := readInput(arg)
		if err != nil {
			failed = true
			if !quiet {
				fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
			}
			continue
		}

		start := time.Now()
		r, err := adapter.DecodeValidate(data, t)
		if err != nil {
			failed = true
			if !quiet {
				fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
			}
			continue
		}
		logger.Debug("validated document",
			slog.String("source", label),
			slog.Bool("ok", r.IsOk()),
			slog.Duration("elapsed", time.Since(start)),
		)

		if r.IsErr() {
			failed = true
			if !quiet {
				for _, line := range diag.Report(r.Errors()) {
					fmt.Fprintf(os.Stderr, "%s: %s\n", label, line)
				}
			}
		}
	}

	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

// readInput reads one input argument and returns its display label and
// content. Labels are NFC-normalized so the same file named through
// differently composed Unicode paths reports identically.
func readInput(arg string) (string, []byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", data, err
	}
	label := norm.NFC.String(arg)
	data, err := os.ReadFile(arg)
	return label, data, err
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
