package fuzztests

import (
	"testing"
	"unicode/utf8"

	"lint381/internal/lexer"
	"lint381/internal/match"
	"lint381/internal/testkit"
	"lint381/internal/token"
)

// FuzzMatcher checks the structural guarantees of every matcher mode on
// arbitrary token streams: windows are ordered, non-overlapping runs of the
// input that start with a token accepted by the start predicate.
func FuzzMatcher(f *testing.F) {
	addCorpusSeeds(f)
	start := match.ByKind(token.Identifier)
	end := match.ByValue(`[;{]`)

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		if !utf8.Valid(input) {
			t.Skip()
		}
		toks, err := lexer.Tokenize(string(input))
		if err != nil {
			return
		}
		length := 1 + len(input)%4

		matchers := map[string]*match.Matcher{
			"single":    match.MustNew(start),
			"end":       match.MustNew(start, match.WithEnd(end)),
			"lookahead": match.MustNew(start, match.WithEnd(end), match.WithLookahead(1)),
			"length":    match.MustNew(start, match.WithEnd(end), match.WithLength(length)),
		}
		for name, m := range matchers {
			windows := m.Collect(toks)
			if err := testkit.CheckWindows(toks, windows); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			for _, w := range windows {
				if !start(w[0]) {
					t.Fatalf("%s: window starts with %q", name, w[0].Value)
				}
				if name == "length" && len(w) != length {
					t.Fatalf("length: window of %d tokens, want %d", len(w), length)
				}
				if name == "single" && len(w) != 1 {
					t.Fatalf("single: window of %d tokens", len(w))
				}
				endAt := len(w) - 1
				if name == "lookahead" {
					endAt--
				}
				if name != "single" && (endAt < 1 || !end(w[endAt])) {
					t.Fatalf("%s: window %v has no end token at %d", name, w, endAt)
				}
			}
		}
	})
}
