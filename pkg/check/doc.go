// Package check implements the release consistency rule engine: an ordered
// registry of independent rules, each producing findings over a scoped set
// of text artifacts, aggregated into a pass/warn/fail report with a single
// exit status.
//
// The engine is deliberately line-oriented. Rules match substrings and
// patterns against file text; there is no AST and no parser. These are
// lint-style structural checks, and pattern matching over lines is the
// correct abstraction for them.
package check
