// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/imperium/internal/cli"
	"github.com/taibuivan/imperium/internal/core/emperor"
	"github.com/taibuivan/imperium/internal/platform/constants"
)

// dataPathEnv is read when --data is not given.
const dataPathEnv = "DATA_PATH"

// options holds the persistent flags shared by every command.
type options struct {
	dataPath string
	verbose  bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// # Command Tree

/*
newRootCommand builds the emperors command tree bound to the given streams.

Examples:

	emperors                    # walkthrough, then the year prompt
	emperors walkthrough        # report only
	emperors lookup             # year prompt only
	emperors show hadrian       # one full profile
	emperors year -- -27        # who ruled in 27 BCE
	emperors --data ./byzantine.yaml walkthrough
*/
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:     "emperors",
		Short:   "Explore the Roman emperors dataset",
		Version: constants.AppVersion,
		Long: `Explore an in-memory dataset of Roman emperors.

Without a subcommand the full walkthrough report is printed and an interactive
prompt asks for years to look up. Negative years are BCE.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.stderr, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			empire, err := opts.load()
			if err != nil {
				return err
			}
			if err := cli.Walkthrough(opts.stdout, empire); err != nil {
				return err
			}
			return cli.YearLoop(opts.stdin, opts.stdout, empire)
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataPath, "data", "", "YAML dataset to load instead of the embedded one (env "+dataPathEnv+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	root.AddCommand(
		newWalkthroughCommand(opts),
		newLookupCommand(opts),
		newShowCommand(opts),
		newYearCommand(opts),
	)

	return root
}

func newWalkthroughCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "walkthrough",
		Short: "Print the overview report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			empire, err := opts.load()
			if err != nil {
				return err
			}
			return cli.Walkthrough(opts.stdout, empire)
		},
	}
}

func newLookupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup",
		Short: "Interactively find who ruled in a given year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			empire, err := opts.load()
			if err != nil {
				return err
			}
			return cli.YearLoop(opts.stdin, opts.stdout, empire)
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the profile of the first emperor whose name matches",
		Long: `Print the full profile of the first emperor, in chronological order,
whose name contains the given text. Matching ignores case.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			empire, err := opts.load()
			if err != nil {
				return err
			}

			fragment := strings.Join(args, " ")
			found, err := cli.Profile(opts.stdout, empire, fragment)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no emperor matches %q", fragment)
			}
			return nil
		},
	}
}

func newYearCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Print who ruled in a given year",
		Long: `Print every emperor whose reign includes the given year.

Use "--" before negative (BCE) years so they are not read as flags:

  emperors year -- -27`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("year must be an integer, got %q", args[0])
			}

			empire, err := opts.load()
			if err != nil {
				return err
			}
			return cli.ReportYear(opts.stdout, empire, year)
		},
	}
}

// # Dataset Loading

// load builds the collection from --data, DATA_PATH or the embedded dataset, in that order.
func (opts *options) load() (*emperor.Empire, error) {
	path := opts.dataPath
	if path == "" {
		path = os.Getenv(dataPathEnv)
	}

	var (
		empire *emperor.Empire
		err    error
		source = "embedded"
	)

	if path == "" {
		empire, err = emperor.NewRomanEmpire()
	} else {
		source = path
		empire, err = emperor.LoadFile(path)
	}

	if err != nil {
		opts.logger.Error("dataset_load_failed", slog.String("source", source), slog.Any("error", err))
		return nil, err
	}

	opts.logger.Debug("emperors_seeded",
		slog.String("source", source),
		slog.Int("count", empire.Len()),
		slog.Int("dynasties", len(empire.Dynasties())),
	)

	return empire, nil
}

// newLogger writes text diagnostics to w: warnings by default, everything when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}
