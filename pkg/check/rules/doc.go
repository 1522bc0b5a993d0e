// Package rules provides the rule-shape evaluators and the static
// StockenBoard rule registry.
//
// Each evaluator is a small configuration struct with a Check method; the
// concrete rules in registry.go are instances of these shapes carrying their
// own static scope paths, key lists, and exemption sets. Adding a check
// means adding data, not a new engine.
package rules
