package search

import (
	"fmt"
	"strings"
)

// term is a value still in play during a replay, with its infix rendering.
type term struct {
	val  float64
	expr string
	leaf bool
}

// replay applies the steps of t to the multiset values, in the same
// sequence discipline the search uses: both operands leave the pool and the
// result is appended at the end. It returns the final pool.
func replay(values []float64, t Trace) ([]term, error) {
	if err := ValidateValues(values); err != nil {
		return nil, err
	}
	steps, err := t.Steps()
	if err != nil {
		return nil, err
	}

	pool := make([]term, len(values))
	for i, v := range values {
		pool[i] = term{val: v, expr: formatValue(v), leaf: true}
	}

	var (
		l, r, want float64
		a, b       term
	)
	for i, s := range steps {
		if len(pool) < 2 {
			return nil, fmt.Errorf("%w: step %d has no operands left", ErrIncompleteTrace, i)
		}
		if l, err = parseValue(s.Left); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if r, err = parseValue(s.Right); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if want, err = parseValue(s.Result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		if pool, a, err = take(pool, l); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s, err)
		}
		if pool, b, err = take(pool, r); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s, err)
		}

		got := s.Op.Apply(a.val, b.val)
		if !matches(got, want) {
			return nil, fmt.Errorf("%w: step %d (%s) evaluates to %s", ErrResultMismatch, i, s, formatValue(got))
		}
		pool = append(pool, term{
			val:  got,
			expr: "(" + a.expr + " " + s.Op.Symbol() + " " + b.expr + ")",
		})
	}

	return pool, nil
}

// take removes the first term within Tolerance of v from pool.
func take(pool []term, v float64) ([]term, term, error) {
	for i, p := range pool {
		if matches(p.val, v) {
			return append(pool[:i:i], pool[i+1:]...), p, nil
		}
	}

	return pool, term{}, fmt.Errorf("%w: %s", ErrOperandUnavailable, formatValue(v))
}

// Verify checks that t is a valid solution for values and target: every
// operand is in play when used, every declared result matches its operands,
// every input value is consumed exactly once, and the last value equals
// target within Tolerance.
//
// Operands are matched to values in play within Tolerance, so a submitted
// trace may use rounded tokens as long as each rounding stays inside it.
//
// Errors:
//   - ErrEmptyInput, ErrNonFiniteInput for bad values.
//   - ErrMalformedTrace, ErrIncompleteTrace, ErrOperandUnavailable,
//     ErrResultMismatch, ErrTargetMissed for bad traces.
func Verify(values []float64, t Trace, target float64) error {
	pool, err := replay(values, t)
	if err != nil {
		return err
	}
	if len(pool) != 1 {
		return fmt.Errorf("%w: %d values left after %d steps", ErrIncompleteTrace, len(pool), t.Len())
	}
	if !matches(pool[0].val, target) {
		return fmt.Errorf("%w: got %s, want %s", ErrTargetMissed, formatValue(pool[0].val), formatValue(target))
	}

	return nil
}

// Expression renders t, applied to values, as one infix expression such as
// "(2 + 2) + (10 + 10)". The outermost parentheses are dropped.
//
// t must reduce values to a single term; the target is not checked.
func Expression(values []float64, t Trace) (string, error) {
	pool, err := replay(values, t)
	if err != nil {
		return "", err
	}
	if len(pool) != 1 {
		return "", fmt.Errorf("%w: %d values left after %d steps", ErrIncompleteTrace, len(pool), t.Len())
	}

	out := pool[0]
	if !out.leaf {
		out.expr = strings.TrimSuffix(strings.TrimPrefix(out.expr, "("), ")")
	}

	return out.expr, nil
}
