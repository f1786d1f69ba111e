// Package arith24 is a small, dependency-light toolkit for the "24 game"
// and its generalizations: can these N numbers, each used once, be combined
// with + - * / to reach a target?
//
// 🚀 What is arith24?
//
//	A pure, re-entrant search engine plus a thin command-line caller:
//		• Exists: yes/no verdict for a hand
//		• FindFirst / FindAll: deterministic solution traces
//		• FindPreferred: an answer without negative intermediates
//		• Verify: replay a player's trace against the hand and target
//		• Expression: turn a trace into "(2 + 2) + (10 + 10)"
//
// Layout:
//
//	search/       - the expression search engine (start here)
//	cmd/solve24/  - cobra CLI over the engine
//	examples/     - problem pool and submission walkthrough
//
// Quick example:
//
//	ok, err := search.Exists([]float64{4, 1, 8, 7}, 24) // true, nil
//
//	go get github.com/katalvlaran/arith24/search
package arith24
