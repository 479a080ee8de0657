package lexer

import (
	"testing"

	"lint381/internal/source"
)

func TestCursorTracksRowsAndColumns(t *testing.T) {
	c := NewCursor("aé\nb")

	if r := c.Bump(); r != 'a' {
		t.Fatalf("Bump = %q", r)
	}
	if r := c.Peek(); r != 'é' {
		t.Fatalf("Peek = %q", r)
	}
	c.Bump()
	if c.Pos != (source.Position{Row: 0, Column: 2}) || c.Off != 3 {
		t.Fatalf("after é: pos %v off %d", c.Pos, c.Off)
	}
	c.Bump()
	if c.Pos != (source.Position{Row: 1, Column: 0}) {
		t.Fatalf("after newline: %v", c.Pos)
	}
	c.Bump()
	if !c.EOF() {
		t.Fatal("expected EOF")
	}
}

func TestCursorAdvanceReturnsLastRune(t *testing.T) {
	c := NewCursor("ab\ncd")
	last := c.Advance(4)
	if last != (source.Position{Row: 1, Column: 0}) {
		t.Fatalf("last = %v", last)
	}
	if c.Pos != (source.Position{Row: 1, Column: 1}) {
		t.Fatalf("pos = %v", c.Pos)
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := NewCursor("xyz")
	m := c.Mark()
	c.Bump()
	c.Bump()
	if got := c.From(m); got != "xy" {
		t.Fatalf("From = %q", got)
	}
	c.Reset(m)
	if c.Off != 0 || c.Pos != (source.Position{}) {
		t.Fatalf("Reset did not restore state: %+v", c)
	}
}

func TestScannerProposals(t *testing.T) {
	cases := []struct {
		name string
		scan scanner
		in   string
		n    int
		fail ErrorKind
	}{
		{"literal", scanLiteral, `"a\\"b`, 5, 0},
		{"literal-eof", scanLiteral, `'ab`, 0, UnterminatedLiteral},
		{"block", scanBlockComment, "/**/x", 4, 0},
		{"block-open", scanBlockComment, "/*/", 0, UnterminatedComment},
		{"line", scanLineComment, "// x\ny", 4, 0},
		{"number", scanNumber, "12.3.4", 4, 0},
		{"keyword-prefix", scanKeyword, "integer", 0, 0},
		{"ident-hash", scanIdentifier, "#include", 8, 0},
		{"ident-digit", scanIdentifier, "9x", 0, 0},
		{"multi", scanMultiOperator, ">>=x", 3, 0},
		{"single", scanSingleOperator, "@", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, _, fail := tc.scan(tc.in)
			if n != tc.n || fail != tc.fail {
				t.Fatalf("got n=%d fail=%v, want n=%d fail=%v", n, fail, tc.n, tc.fail)
			}
		})
	}
}
