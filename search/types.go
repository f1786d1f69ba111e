// Package search defines the operators, options and sentinel errors used by
// the expression search engine.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Tolerance is the maximum absolute difference between a reduced value and
// the target for the two to be considered equal.
const Tolerance = 1e-8

// tokensPerStep is the number of trace tokens one reduction step emits:
// operand A, operand B, result, operator symbol.
const tokensPerStep = 4

// Operator is one of the four binary arithmetic operators.
type Operator int

const (
	// Add is commutative; only v[i]+v[j] is tried.
	Add Operator = iota
	// Multiply is commutative; only v[i]*v[j] is tried.
	Multiply
	// Subtract is tried as v[i]-v[j] and v[j]-v[i].
	Subtract
	// Divide is tried as v[i]/v[j] and v[j]/v[i].
	Divide
)

// Symbol returns the single-character trace token of the operator.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Subtract:
		return "-"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (op Operator) String() string {
	switch op {
	case Add:
		return "Add"
	case Multiply:
		return "Multiply"
	case Subtract:
		return "Subtract"
	case Divide:
		return "Divide"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Apply returns l op r. Division by zero yields ±Inf or NaN, as float64 does.
func (op Operator) Apply(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Multiply:
		return l * r
	case Subtract:
		return l - r
	default:
		return l / r
	}
}

// ParseOperator maps a trace symbol back to its Operator.
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case "+":
		return Add, nil
	case "*":
		return Multiply, nil
	case "-":
		return Subtract, nil
	case "/":
		return Divide, nil
	}

	return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedTrace, symbol)
}

var (
	// ErrInvalidInput is the class of every structural input error.
	// Test with errors.Is(err, ErrInvalidInput).
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrEmptyInput indicates an empty value sequence.
	ErrEmptyInput = fmt.Errorf("%w: value sequence must be non-empty", ErrInvalidInput)

	// ErrNonFiniteInput indicates a NaN or ±Inf among the input values.
	ErrNonFiniteInput = fmt.Errorf("%w: values must be finite", ErrInvalidInput)

	// ErrMalformedTrace indicates a trace that cannot be decoded into steps.
	ErrMalformedTrace = errors.New("search: malformed trace")

	// ErrIncompleteTrace indicates a trace that does not reduce all values to one.
	ErrIncompleteTrace = errors.New("search: trace does not consume every value exactly once")

	// ErrOperandUnavailable indicates a step operand that is not in play.
	ErrOperandUnavailable = errors.New("search: operand not available")

	// ErrResultMismatch indicates a step whose declared result is wrong.
	ErrResultMismatch = errors.New("search: step result does not match its operands")

	// ErrTargetMissed indicates a well-formed trace ending away from the target.
	ErrTargetMissed = errors.New("search: trace does not reach the target")
)

// Option configures optional behavior of a search.
// Use with Exists, FindFirst, FindAll and FindPreferred.
type Option func(*Options)

// Options holds configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per search node.
	Ctx context.Context

	// MaxSolutions caps the number of traces FindAll collects.
	// Zero or negative means unlimited.
	MaxSolutions int

	// OnSolution, if non-nil, is invoked with every accepted trace.
	// Returning an error aborts the search with that error.
	OnSolution func(t Trace) error
}

// DefaultOptions returns Options with a background context, no cap and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSolutions: 0,
		OnSolution:   nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions returns an Option that stops FindAll after n traces.
// n <= 0 removes the cap.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSolutions = n
	}
}

// WithOnSolution returns an Option that installs fn as a per-solution hook.
func WithOnSolution(fn func(t Trace) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}
