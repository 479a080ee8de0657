package lint

import (
	"lint381/internal/diag"
	"lint381/internal/match"
	"lint381/internal/token"
)

// Meta describes a rule for listings and reports.
type Meta struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Summary   string   `json:"summary"`
	Languages Language `json:"-"`
}

// Rule inspects one SourceCode. Evaluate must not fail and must not modify
// src; every returned diagnostic needs at least one token.
type Rule interface {
	Meta() Meta
	Evaluate(src *SourceCode) []diag.Diagnostic
}

type funcRule struct {
	meta Meta
	fn   func(*SourceCode) []diag.Diagnostic
}

func (r funcRule) Meta() Meta { return r.meta }

func (r funcRule) Evaluate(src *SourceCode) []diag.Diagnostic { return r.fn(src) }

// NewRule builds a Rule from a plain function.
func NewRule(meta Meta, fn func(*SourceCode) []diag.Diagnostic) Rule {
	return funcRule{meta: meta, fn: fn}
}

// PerMatch builds a Rule that calls check once for every window m finds.
// check reports ok=false to skip a window.
func PerMatch(meta Meta, m *match.Matcher, check func(src *SourceCode, window []token.Token) (diag.Diagnostic, bool)) Rule {
	return NewRule(meta, func(src *SourceCode) []diag.Diagnostic {
		var out []diag.Diagnostic
		for window := range m.All(src.Tokens) {
			if d, ok := check(src, window); ok {
				out = append(out, d)
			}
		}
		return out
	})
}
