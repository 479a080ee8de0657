package match

import (
	"testing"

	"lint381/internal/token"
)

func TestByValueIsPrefixAnchored(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"foo", "foobar", true},
		{"bar", "foobar", false},
		{"^foo$", "foobar", false},
		{"^foo$", "foo", true},
		{"{|;", ";", true},
		{"_", "_X", true},
		{"a|b", "b", true},
	}
	for _, tc := range cases {
		got := ByValue(tc.pattern)(token.Token{Value: tc.value})
		if got != tc.want {
			t.Errorf("ByValue(%q)(%q) = %v, want %v", tc.pattern, tc.value, got, tc.want)
		}
	}
}

func TestByValuePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ByValue("(")
}

func TestCombinators(t *testing.T) {
	null := token.Token{Kind: token.Identifier, Value: "NULL"}
	str := token.Token{Kind: token.String, Value: `"NULL"`}

	isNull := AllOf(ByKind(token.Identifier), Equals("NULL"))
	if !isNull(null) || isNull(str) {
		t.Fatal("AllOf")
	}
	if !AnyOf(ByKind(token.String), ByKind(token.Comment))(str) || AnyOf()(str) {
		t.Fatal("AnyOf")
	}
	if Not(isNull)(null) || !Not(isNull)(str) {
		t.Fatal("Not")
	}
	if !AllOf()(str) {
		t.Fatal("empty AllOf must hold")
	}
}
