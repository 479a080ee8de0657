// Package lint pairs token sequences with the rules that inspect them.
//
// A Rule is a total function from a SourceCode to diagnostics. Rules never
// mutate tokens, so a Registry may evaluate them in any order or at once;
// LintParallel does the latter and still returns diagnostics in registry
// order.
package lint
