package token

import (
	"fmt"

	"lint381/internal/source"
)

// Token is one lexeme with inclusive start and end positions.
type Token struct {
	Kind  Kind            `json:"kind" msgpack:"k"`
	Value string          `json:"value" msgpack:"v"`
	Start source.Position `json:"start" msgpack:"s"`
	End   source.Position `json:"end" msgpack:"e"`
}

// Is reports whether the token has the given kind and exact value.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

// MultiLine reports whether the token spans more than one row.
func (t Token) MultiLine() bool { return t.End.Row > t.Start.Row }

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s-%s", t.Kind, t.Value, t.Start, t.End)
}
