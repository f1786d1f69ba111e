package search

import (
	"fmt"
	"math"
)

// strategy selects how the shared traversal treats an accepted leaf.
type strategy int

const (
	existsOnly   strategy = iota // stop at first match, no trace bookkeeping
	stopAtFirst                  // stop at first match, keep its trace
	collectAll                   // record every match, never short-circuit
)

// reduction is one of the six cases tried for every pair (i, j).
type reduction struct {
	op      Operator
	swapped bool // operands are (v[j], v[i]) instead of (v[i], v[j])
}

// reductions is the fixed exploration order of cases for a pair.
var reductions = []reduction{
	{op: Add},
	{op: Multiply},
	{op: Subtract},
	{op: Divide},
	{op: Subtract, swapped: true},
	{op: Divide, swapped: true},
}

// walker carries the search state of one call through the recursion.
type walker struct {
	target float64
	mode   strategy
	opts   Options
	trace  Trace   // current path prefix; extended on enter, truncated on exit
	found  []Trace // accepted traces, each an independent copy
}

// Exists reports whether values can be reduced to target.
//
// Errors:
//   - ErrEmptyInput, ErrNonFiniteInput (both match ErrInvalidInput).
//   - wrapped context error if opts carry a cancelled context.
//
// Complexity: O(∏_{k=2..N} 6·C(k,2)) reductions in the worst case; N=4 is
// 3888 leaves.
func Exists(values []float64, target float64, opts ...Option) (bool, error) {
	w, err := newWalker(values, target, existsOnly, opts)
	if err != nil {
		return false, err
	}
	ok, err := w.reduce(values)
	if err != nil {
		return false, err
	}

	return ok, nil
}

// FindFirst returns the first trace, in exploration order, that reduces
// values to target. ok is false when no reduction reaches it.
// For a single matching value the trace is empty and non-nil.
//
// The result is deterministic for a given input order.
func FindFirst(values []float64, target float64, opts ...Option) (t Trace, ok bool, err error) {
	w, err := newWalker(values, target, stopAtFirst, opts)
	if err != nil {
		return nil, false, err
	}
	if _, err = w.reduce(values); err != nil {
		return nil, false, err
	}
	if len(w.found) == 0 {
		return nil, false, nil
	}

	return w.found[0], true, nil
}

// FindAll returns every trace that reduces values to target, in exploration
// order. Traces are not deduplicated: "a+b" and "b+a" reached through
// different pairings both appear. An empty, non-nil slice means no solution.
//
// WithMaxSolutions stops collection once the cap is reached.
func FindAll(values []float64, target float64, opts ...Option) ([]Trace, error) {
	w, err := newWalker(values, target, collectAll, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.reduce(values); err != nil {
		return nil, err
	}

	return w.found, nil
}

// FindPreferred returns the first trace whose intermediate results are all
// non-negative. If every trace goes through a negative value, the last trace
// collected is returned instead. ok is false when there is no solution.
func FindPreferred(values []float64, target float64, opts ...Option) (Trace, bool, error) {
	all, err := FindAll(values, target, opts...)
	if err != nil {
		return nil, false, err
	}
	if len(all) == 0 {
		return nil, false, nil
	}
	for _, t := range all {
		if nonNegative(t) {
			return t, true, nil
		}
	}

	return all[len(all)-1], true, nil
}

// ValidateValues checks that values is non-empty and every value is finite.
func ValidateValues(values []float64) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: values[%d] = %v", ErrNonFiniteInput, i, v)
		}
	}

	return nil
}

// newWalker validates input and applies options.
func newWalker(values []float64, target float64, mode strategy, opts []Option) (*walker, error) {
	if err := ValidateValues(values); err != nil {
		return nil, err
	}

	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	w := &walker{
		target: target,
		mode:   mode,
		opts:   sopts,
		found:  make([]Trace, 0),
	}
	if mode != existsOnly {
		w.trace = make(Trace, 0, (len(values)-1)*tokensPerStep)
	}

	return w, nil
}

// reduce explores every reduction of values. It returns true when the
// search must stop: a match under a short-circuiting strategy, or the
// solution cap being reached.
func (w *walker) reduce(values []float64) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return true, fmt.Errorf("search: cancelled: %w", w.opts.Ctx.Err())
	default:
	}

	// 2. Base case
	n := len(values)
	if n == 1 {
		if !matches(values[0], w.target) {
			return false, nil
		}

		return w.accept()
	}

	// 3. Pairs (i, j) in ascending order; the child sequence keeps the
	//    remaining values in order and appends the new value last.
	next := make([]float64, n-1)
	var (
		i, j, k, m int
		l, r, v    float64
		mark       int
		stop       bool
		err        error
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			k = 0
			for m = 0; m < n; m++ {
				if m != i && m != j {
					next[k] = values[m]
					k++
				}
			}

			for _, c := range reductions {
				l, r = values[i], values[j]
				if c.swapped {
					l, r = r, l
				}
				v = c.op.Apply(l, r)
				next[n-2] = v

				mark = len(w.trace)
				if w.mode != existsOnly {
					w.trace = append(w.trace, formatValue(l), formatValue(r), formatValue(v), c.op.Symbol())
				}
				stop, err = w.reduce(next)
				w.trace = w.trace[:mark]
				if err != nil || stop {
					return stop, err
				}
			}
		}
	}

	return false, nil
}

// accept handles a matching leaf according to the strategy.
func (w *walker) accept() (bool, error) {
	if w.mode == existsOnly {
		return true, nil
	}

	t := w.trace.clone()
	if w.opts.OnSolution != nil {
		if err := w.opts.OnSolution(t); err != nil {
			return true, fmt.Errorf("search: OnSolution hook: %w", err)
		}
	}
	w.found = append(w.found, t)

	if w.mode == stopAtFirst {
		return true, nil
	}
	if w.opts.MaxSolutions > 0 && len(w.found) >= w.opts.MaxSolutions {
		return true, nil
	}

	return false, nil
}

// nonNegative reports whether every result token in t is >= 0.
func nonNegative(t Trace) bool {
	var (
		i   int
		v   float64
		err error
	)
	for i = 2; i < len(t); i += tokensPerStep {
		if v, err = parseValue(t[i]); err != nil || v < 0 {
			return false
		}
	}

	return true
}
