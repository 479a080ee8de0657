// Package rules holds the concrete C and C++ style checks.
//
// Each rule is a matcher plus a small check over the matched window; none of
// them look past the token sequence they are given.
package rules
