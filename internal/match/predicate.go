package match

import (
	"regexp"

	"lint381/internal/token"
)

// Predicate reports whether a single token qualifies as a window boundary.
type Predicate func(token.Token) bool

// ByValue matches tokens whose value matches pattern at its start, the way
// Python's re.match does. Anchor with $ for a full match. Invalid patterns
// panic, so rule tables fail at init.
func ByValue(pattern string) Predicate {
	return ByValueRegexp(regexp.MustCompile(`^(?:` + pattern + `)`))
}

// ByValueRegexp matches tokens whose value matches re anywhere; anchor re yourself.
func ByValueRegexp(re *regexp.Regexp) Predicate {
	return func(t token.Token) bool {
		return re.MatchString(t.Value)
	}
}

// Equals matches tokens whose value is exactly s.
func Equals(s string) Predicate {
	return func(t token.Token) bool { return t.Value == s }
}

// ByKind matches tokens of the given kind.
func ByKind(kind token.Kind) Predicate {
	return func(t token.Token) bool { return t.Kind == kind }
}

// AnyOf matches when at least one of ps matches. AnyOf() matches nothing.
func AnyOf(ps ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// AllOf matches when every one of ps matches. AllOf() matches everything.
func AllOf(ps ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(t token.Token) bool { return !p(t) }
}
