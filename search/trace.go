package search

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Trace is the token record of one solution path. Every reduction step
// contributes four tokens in order: operand A, operand B, result, operator.
//
// Numbers are rendered in the shortest form that parses back to the same
// float64, so "8/3" shows up as "2.6666666666666665" and "10" as "10".
type Trace []string

// Step is the decoded form of one reduction step inside a Trace.
type Step struct {
	Left   string
	Right  string
	Result string
	Op     Operator
}

// String renders the step as "A op B = R".
func (s Step) String() string {
	return s.Left + " " + s.Op.Symbol() + " " + s.Right + " = " + s.Result
}

// Len returns the number of reduction steps recorded in t.
func (t Trace) Len() int {
	return len(t) / tokensPerStep
}

// Steps decodes t into reduction steps.
//
// Errors:
//   - ErrMalformedTrace if len(t) is not a multiple of four or an
//     operator token is unknown.
func (t Trace) Steps() ([]Step, error) {
	if len(t)%tokensPerStep != 0 {
		return nil, fmt.Errorf("%w: %d tokens is not a multiple of %d", ErrMalformedTrace, len(t), tokensPerStep)
	}

	steps := make([]Step, 0, t.Len())
	var (
		i   int
		op  Operator
		err error
	)
	for i = 0; i < len(t); i += tokensPerStep {
		if op, err = ParseOperator(t[i+3]); err != nil {
			return nil, fmt.Errorf("step %d: %w", i/tokensPerStep, err)
		}
		steps = append(steps, Step{Left: t[i], Right: t[i+1], Result: t[i+2], Op: op})
	}

	return steps, nil
}

// String renders t with one step per line. An empty trace renders as "".
// Malformed traces fall back to the raw tokens joined by spaces.
func (t Trace) String() string {
	steps, err := t.Steps()
	if err != nil {
		return strings.Join(t, " ")
	}
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.String()
	}

	return strings.Join(lines, "\n")
}

// clone returns an independent copy of t; the result is never nil.
func (t Trace) clone() Trace {
	out := make(Trace, len(t))
	copy(out, t)

	return out
}

// formatValue renders v as a trace token.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseValue reads a trace token back into a float64.
func parseValue(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedTrace, tok)
	}

	return v, nil
}

// matches reports |v - target| < Tolerance. NaN never matches.
func matches(v, target float64) bool {
	return math.Abs(v-target) < Tolerance
}
