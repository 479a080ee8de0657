package diag

import (
	"testing"

	"lint381/internal/token"
)

func TestFormatShort(t *testing.T) {
	d1 := New("Struct name 'foo' should be capitalized", []token.Token{at(2, 0, "struct"), at(2, 7, "foo")})
	d1.File, d1.Rule = "./src/a.c", "C002"
	d2 := New("first line\nsecond", []token.Token{at(0, 8, "_X")})
	d2.File, d2.Rule, d2.Severity = "./src/a.c", "C001", SevWarning

	expected := "warning C001 src/a.c:1:9 first line second\n" +
		"error C002 src/a.c:3:1 Struct name 'foo' should be capitalized"
	if got := FormatShort([]Diagnostic{d1, d2}); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if FormatShort(nil) != "" {
		t.Fatal("empty input must render empty")
	}
}
