package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arith24/search"
)

func newVerifyCmd(f *solveFlags) *cobra.Command {
	var raw string

	cmd := &cobra.Command{
		Use:   "verify --trace <tokens> <number>...",
		Short: "Check a submitted trace against the numbers and the target",
		Long: `verify replays a trace of comma-separated tokens, four per step
(operand, operand, result, operator), against the given numbers. It fails when
an operand is not in play, a result is wrong, a number is left unused, or the
last value misses the target.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), f.verbose)

			values, err := parseValues(args)
			if err != nil {
				return err
			}
			t := splitTrace(raw)
			if err = search.Verify(values, t, f.target); err != nil {
				logger.Debug("trace rejected", "trace", []string(t), "error", err)

				return err
			}

			return printTrace(cmd.OutOrStdout(), values, t, f.target)
		},
	}
	cmd.Flags().StringVar(&raw, "trace", "", "Comma-separated trace tokens")
	_ = cmd.MarkFlagRequired("trace")

	return cmd
}

// splitTrace parses "a,b,r,op,..." into tokens, trimming spaces.
func splitTrace(raw string) search.Trace {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return search.Trace{}
	}
	parts := strings.Split(raw, ",")
	t := make(search.Trace, len(parts))
	for i, p := range parts {
		t[i] = strings.TrimSpace(p)
	}

	return t
}
