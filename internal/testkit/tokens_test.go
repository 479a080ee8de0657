package testkit

import (
	"strings"
	"testing"

	"lint381/internal/lexer"
	"lint381/internal/match"
	"lint381/internal/source"
	"lint381/internal/token"
)

func tok(kind token.Kind, value string, r1, c1, r2, c2 int) token.Token {
	return token.Token{
		Kind:  kind,
		Value: value,
		Start: source.Position{Row: r1, Column: c1},
		End:   source.Position{Row: r2, Column: c2},
	}
}

func TestCheckTokensAcceptsLexerOutput(t *testing.T) {
	texts := []string{
		"int main() {\n}\n",
		"/* a\n * b\n */ x",
		"s = \"é\\\"\"; // ünïcode\n",
		"#define _X 1\nstruct foo { int *p; };",
		"",
	}
	for _, text := range texts {
		toks, err := lexer.Tokenize(text)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", text, err)
		}
		if err := CheckTokens(text, toks); err != nil {
			t.Errorf("CheckTokens(%q): %v", text, err)
		}
	}
}

func TestCheckTokensRejects(t *testing.T) {
	text := "ab cd"
	tests := []struct {
		name string
		toks []token.Token
		want string
	}{
		{"wrong value", []token.Token{tok(token.Identifier, "ax", 0, 0, 0, 1)}, "source holds"},
		{"overlap", []token.Token{tok(token.Identifier, "ab", 0, 0, 0, 1), tok(token.Identifier, "b", 0, 1, 0, 1)}, "overlaps"},
		{"out of order", []token.Token{tok(token.Identifier, "cd", 0, 3, 0, 4), tok(token.Identifier, "ab", 0, 0, 0, 1)}, "overlaps"},
		{"gap", []token.Token{tok(token.Identifier, "a", 0, 0, 0, 0), tok(token.Identifier, "cd", 0, 3, 0, 4)}, "non-space"},
		{"empty", []token.Token{tok(token.Identifier, "", 0, 0, 0, 0)}, "empty value"},
		{"bad kind", []token.Token{tok(token.Invalid, "ab", 0, 0, 0, 1)}, "bad kind"},
		{"reversed", []token.Token{tok(token.Identifier, "ab", 0, 1, 0, 0)}, "before start"},
		{"out of range", []token.Token{tok(token.Identifier, "ab", 3, 0, 3, 1)}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokens(text, tt.toks)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("CheckTokens = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestCheckWindows(t *testing.T) {
	toks, err := lexer.Tokenize("struct a; struct b { int x; };")
	if err != nil {
		t.Fatal(err)
	}
	m := match.MustNew(match.ByValue(`struct$`), match.WithEnd(match.ByValue(`({|;)$`)))
	windows := m.Collect(toks)
	if len(windows) != 2 {
		t.Fatalf("windows = %d", len(windows))
	}
	if err := CheckWindows(toks, windows); err != nil {
		t.Errorf("valid windows rejected: %v", err)
	}

	if err := CheckWindows(toks, [][]token.Token{windows[1], windows[0]}); err == nil {
		t.Error("out-of-order windows accepted")
	}
	if err := CheckWindows(toks, [][]token.Token{{toks[0], toks[2]}}); err == nil {
		t.Error("non-contiguous window accepted")
	}
	if err := CheckWindows(toks, [][]token.Token{{}}); err == nil {
		t.Error("empty window accepted")
	}
	if err := CheckWindows(toks, [][]token.Token{toks[len(toks)-1:], toks[len(toks)-1:]}); err == nil {
		t.Error("shared token accepted")
	}
}
