// Package search decides whether N numbers can be combined, each used
// exactly once, with + - * / and any parenthesization, to reach a target,
// and reconstructs the arithmetic that proves it.
//
// 🚀 What is it?
//
//	The engine behind the "24 game": given 4 1 8 7, it finds 8 * (7 - 4) * 1.
//	It is a pure function over a finite search tree: no I/O, no retained
//	state, safe to call from any number of goroutines at once.
//
// ✨ Key features:
//   - Exists: yes/no, no trace bookkeeping
//   - FindFirst: the first solution in a fixed, deterministic order
//   - FindAll: every solution, in the same order, not deduplicated
//   - FindPreferred: first solution avoiding negative intermediates
//   - Verify: replay a submitted trace against the hand and the target
//   - Expression: render a trace as one infix expression
//
// Algorithm:
//  1. If one value is left, it matches when |v - target| < Tolerance.
//  2. Otherwise, for every pair i < j (ascending), remove both values and
//     append, in this order: v[i]+v[j], v[i]*v[j], v[i]-v[j], v[i]/v[j],
//     v[j]-v[i], v[j]/v[i]; recurse on each shrunk sequence.
//  3. Exists and FindFirst stop at the first match; FindAll never does.
//
// Division by zero is not special-cased: the resulting Inf or NaN simply
// fails the comparison.
//
// Options:
//
//   - WithContext(ctx)        cancellation, polled at every search node.
//   - WithMaxSolutions(n)     stop FindAll after n traces.
//   - WithOnSolution(fn)      hook per accepted trace; error aborts.
//
// Errors:
//
//   - ErrEmptyInput, ErrNonFiniteInput   (errors.Is ErrInvalidInput)
//   - ErrMalformedTrace, ErrIncompleteTrace, ErrOperandUnavailable,
//     ErrResultMismatch, ErrTargetMissed (Verify and Expression)
//   - context.Canceled / DeadlineExceeded, wrapped
//
// Complexity:
//
//   - Time:   ∏_{k=2..N} 6·k(k-1)/2 leaves; 3 888 for N=4, 233 280 for N=5.
//   - Memory: O(N²) for the recursion, plus the collected traces.
package search
