package match

import (
	"errors"
	"fmt"
	"iter"

	"lint381/internal/token"
)

var (
	ErrNilPredicate        = errors.New("match: nil predicate")
	ErrInvalidOption       = errors.New("match: invalid option")
	ErrLengthWithLookahead = errors.New("match: exact length cannot be combined with lookahead")
)

// Matcher is an immutable window search configuration. It is safe for
// concurrent use.
type Matcher struct {
	start     Predicate
	end       Predicate
	lookahead int
	length    int // 0 значит общий поиск
	lengthSet bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithEnd sets the predicate for the last token of the window.
func WithEnd(p Predicate) Option {
	return func(m *Matcher) { m.end = p }
}

// WithLookahead appends n extra tokens after the end token.
func WithLookahead(n int) Option {
	return func(m *Matcher) { m.lookahead = n }
}

// WithLength requests windows of exactly n tokens. Scanning resumes after a
// window, so windows never overlap.
func WithLength(n int) Option {
	return func(m *Matcher) {
		m.length = n
		m.lengthSet = true
	}
}

// New validates the configuration up front; the search itself cannot fail.
func New(start Predicate, opts ...Option) (*Matcher, error) {
	m := &Matcher{start: start}
	for _, opt := range opts {
		opt(m)
	}
	if m.start == nil {
		return nil, ErrNilPredicate
	}
	if m.end == nil {
		m.end = m.start
	}
	if m.lookahead < 0 {
		return nil, fmt.Errorf("%w: negative lookahead %d", ErrInvalidOption, m.lookahead)
	}
	if m.lengthSet {
		if m.length < 1 {
			return nil, fmt.Errorf("%w: length %d, want at least 1", ErrInvalidOption, m.length)
		}
		if m.lookahead != 0 {
			return nil, ErrLengthWithLookahead
		}
	}
	return m, nil
}

// MustNew is New for package-level rule tables.
func MustNew(start Predicate, opts ...Option) *Matcher {
	m, err := New(start, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// All yields every match in source order. Yielded slices alias tokens.
func (m *Matcher) All(tokens []token.Token) iter.Seq[[]token.Token] {
	if m.lengthSet {
		return m.exact(tokens)
	}
	return m.search(tokens)
}

// Collect gathers All into a slice.
func (m *Matcher) Collect(tokens []token.Token) [][]token.Token {
	var out [][]token.Token
	for w := range m.All(tokens) {
		out = append(out, w)
	}
	return out
}

// First returns the leftmost match, if any.
func (m *Matcher) First(tokens []token.Token) ([]token.Token, bool) {
	for w := range m.All(tokens) {
		return w, true
	}
	return nil, false
}

func (m *Matcher) search(tokens []token.Token) iter.Seq[[]token.Token] {
	return func(yield func([]token.Token) bool) {
		i := 0
		for i < len(tokens) {
			if !m.start(tokens[i]) {
				i++
				continue
			}
			spanStart, end := i, -1
			for j := i; j < len(tokens); j++ {
				if j > i && m.start(tokens[j]) {
					spanStart = j // re-arm
				}
				if m.end(tokens[j]) {
					end = j
					break
				}
			}
			if end < 0 {
				return
			}
			last := end + m.lookahead
			if last >= len(tokens) {
				return
			}
			if !yield(tokens[spanStart : last+1 : last+1]) {
				return
			}
			i = last + 1
		}
	}
}

func (m *Matcher) exact(tokens []token.Token) iter.Seq[[]token.Token] {
	return func(yield func([]token.Token) bool) {
		i := 0
		for i < len(tokens) {
			if !m.start(tokens[i]) {
				i++
				continue
			}
			last := i + m.length - 1
			if last >= len(tokens) {
				return
			}
			if !m.end(tokens[last]) {
				i++
				continue
			}
			if !yield(tokens[i : last+1 : last+1]) {
				return
			}
			i = last + 1
		}
	}
}
