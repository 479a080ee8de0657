package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota
	Number
	Keyword
	Identifier
	Comment
	String
	UnaryOperator
	BinaryOperator
	Grouping
)

var kindNames = [...]string{
	Invalid:        "invalid",
	Number:         "number",
	Keyword:        "keyword",
	Identifier:     "identifier",
	Comment:        "comment",
	String:         "string",
	UnaryOperator:  "unary-operator",
	BinaryOperator: "binary-operator",
	Grouping:       "grouping",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds lists every kind the lexer can emit, in priority order.
func Kinds() []Kind {
	return []Kind{String, Comment, Number, Keyword, Identifier, UnaryOperator, BinaryOperator, Grouping}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, true
		}
	}
	return Invalid, false
}

// MarshalText lets kinds appear by name in JSON and msgpack payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown token kind %q", b)
	}
	*k = parsed
	return nil
}
