package lint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"lint381/internal/diag"
	"lint381/internal/trace"
)

// Registry is an ordered, immutable set of rules.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry keeps rules in the given order. IDs must be unique and non-empty.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{rules: slices.Clone(rules), index: make(map[string]int, len(rules))}
	for i, rule := range r.rules {
		id := rule.Meta().ID
		if id == "" {
			return nil, fmt.Errorf("rule %d has an empty ID", i)
		}
		if _, dup := r.index[id]; dup {
			return nil, fmt.Errorf("duplicate rule ID %q", id)
		}
		r.index[id] = i
	}
	return r, nil
}

// MustRegistry is NewRegistry for static rule tables.
func MustRegistry(rules ...Rule) *Registry {
	r, err := NewRegistry(rules...)
	if err != nil {
		panic(err)
	}
	return r
}

// Rules returns the rules in evaluation order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.rules) }

// Lookup finds a rule by ID.
func (r *Registry) Lookup(id string) (Rule, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.rules[i], true
}

// Filter returns a registry with the rules keep accepts, order preserved.
func (r *Registry) Filter(keep func(Rule) bool) *Registry {
	kept := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if keep(rule) {
			kept = append(kept, rule)
		}
	}
	return MustRegistry(kept...)
}

// Without drops the rules with the given IDs.
func (r *Registry) Without(ids ...string) *Registry {
	return r.Filter(func(rule Rule) bool {
		return !slices.Contains(ids, rule.Meta().ID)
	})
}

// Fingerprint identifies the rule set, for cache keys.
func (r *Registry) Fingerprint() string {
	h := sha256.New()
	for _, rule := range r.rules {
		h.Write([]byte(rule.Meta().ID))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// Lint evaluates every rule in order and concatenates the diagnostics.
func (r *Registry) Lint(src *SourceCode) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, rule := range r.rules {
		out = append(out, evaluate(rule, src)...)
	}
	return out
}

// LintParallel evaluates rules concurrently, at most jobs at a time
// (jobs <= 0 means one goroutine per rule), and returns the same result as Lint.
func (r *Registry) LintParallel(ctx context.Context, src *SourceCode, jobs int) ([]diag.Diagnostic, error) {
	results := make([][]diag.Diagnostic, len(r.rules))
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, rule := range r.rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopeRule, "rule:"+rule.Meta().ID, parent)
			results[i] = evaluate(rule, src)
			span.End(strconv.Itoa(len(results[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []diag.Diagnostic
	for _, ds := range results {
		out = append(out, ds...)
	}
	return out, nil
}

func evaluate(rule Rule, src *SourceCode) []diag.Diagnostic {
	meta := rule.Meta()
	ds := rule.Evaluate(src)
	for i := range ds {
		if !ds[i].Valid() {
			panic(fmt.Sprintf("lint: rule %s produced a diagnostic without tokens: %q", meta.ID, ds[i].Message))
		}
		ds[i].Rule = meta.ID
		ds[i].File = src.Filename
	}
	return ds
}

// SortDiagnostics orders diagnostics by the position of their first token.
func SortDiagnostics(ds []diag.Diagnostic) {
	slices.SortStableFunc(ds, diag.Compare)
}
