package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arith24/search"
)

// solveFlags holds the root command configuration.
type solveFlags struct {
	target    float64
	all       bool
	preferred bool
	max       int
	timeout   time.Duration
	verbose   bool
}

// newRootCmd builds the solve24 command tree. A fresh tree per call keeps
// flag state out of package globals.
func newRootCmd() *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve24 [flags] <number>...",
		Short: "Combine numbers with + - * / to reach a target",
		Long: `solve24 searches every way to combine the given numbers, each used exactly
once, with + - * / and any parenthesization, and prints the arithmetic that
reaches the target.

Examples:
  solve24 4 1 8 7
  solve24 --all --max 5 1 2 3 4
  solve24 --preferred 3 3 8 8
  solve24 --target 10 -- -2 4 3
  solve24 verify --trace "2,2,4,+,10,10,20,+,4,20,24,+" 2 2 10 10`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f, args)
		},
	}

	cmd.PersistentFlags().Float64Var(&f.target, "target", 24, "Target value")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log search diagnostics to stderr")
	cmd.Flags().BoolVar(&f.all, "all", false, "Print every solution instead of the first")
	cmd.Flags().BoolVar(&f.preferred, "preferred", false, "Prefer a solution without negative intermediates")
	cmd.Flags().IntVar(&f.max, "max", 0, "Stop after this many solutions with --all (0 for all)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Abort the search after this long (0 for no limit)")
	cmd.MarkFlagsMutuallyExclusive("all", "preferred")

	cmd.AddCommand(newVerifyCmd(f))

	return cmd
}

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseValues converts positional arguments into search input.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a)
		}
		values[i] = v
	}
	if err := search.ValidateValues(values); err != nil {
		return nil, err
	}

	return values, nil
}

func runSolve(cmd *cobra.Command, f *solveFlags, args []string) error {
	start := time.Now()
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	out := cmd.OutOrStdout()

	values, err := parseValues(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	opts := []search.Option{search.WithContext(ctx)}

	var traces []search.Trace
	switch {
	case f.all:
		traces, err = search.FindAll(values, f.target, append(opts, search.WithMaxSolutions(f.max))...)
	case f.preferred:
		traces, err = single(search.FindPreferred(values, f.target, opts...))
	default:
		traces, err = single(search.FindFirst(values, f.target, opts...))
	}
	if err != nil {
		return err
	}

	logger.Debug("search finished",
		"values", values,
		"target", f.target,
		"solutions", len(traces),
		"duration", time.Since(start),
	)

	if len(traces) == 0 {
		fmt.Fprintln(out, "no solution")

		return nil
	}
	if f.all {
		fmt.Fprintf(out, "%d solution(s)\n", len(traces))
		for i, t := range traces {
			expr, err := search.Expression(values, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d: %s = %s\n", i+1, expr, strconv.FormatFloat(f.target, 'g', -1, 64))
		}

		return nil
	}

	return printTrace(out, values, traces[0], f.target)
}

// single adapts the (trace, ok, err) operations to a slice of zero or one.
func single(t search.Trace, ok bool, err error) ([]search.Trace, error) {
	if err != nil || !ok {
		return nil, err
	}

	return []search.Trace{t}, nil
}

// printTrace writes the steps of t followed by its infix rendering.
func printTrace(w io.Writer, values []float64, t search.Trace, target float64) error {
	expr, err := search.Expression(values, t)
	if err != nil {
		return err
	}
	if t.Len() > 0 {
		fmt.Fprintln(w, t)
	}
	fmt.Fprintf(w, "%s = %s\n", expr, strconv.FormatFloat(target, 'g', -1, 64))

	return nil
}
