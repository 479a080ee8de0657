package diag

import (
	"fmt"

	"lint381/internal/source"
	"lint381/internal/token"
)

// Diagnostic is one reported style violation.
type Diagnostic struct {
	File     string        `json:"file,omitempty" msgpack:"f"`
	Rule     string        `json:"rule,omitempty" msgpack:"r"`
	Severity Severity      `json:"severity" msgpack:"s"`
	Message  string        `json:"message" msgpack:"m"`
	Hint     string        `json:"hint,omitempty" msgpack:"h"`
	Tokens   []token.Token `json:"tokens" msgpack:"t"`
}

// New builds an error-severity diagnostic over toks.
func New(message string, toks []token.Token) Diagnostic {
	return Diagnostic{Severity: SevError, Message: message, Tokens: toks}
}

// Newf is New with a format string.
func Newf(toks []token.Token, format string, args ...any) Diagnostic {
	return New(fmt.Sprintf(format, args...), toks)
}

// WithHint returns a copy carrying a suggested replacement.
func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}

// Valid reports whether the diagnostic points at at least one token.
func (d Diagnostic) Valid() bool { return len(d.Tokens) > 0 }

// Start is the first character of the first token.
func (d Diagnostic) Start() source.Position {
	if len(d.Tokens) == 0 {
		return source.Position{}
	}
	return d.Tokens[0].Start
}

// End is the last character of the last token.
func (d Diagnostic) End() source.Position {
	if len(d.Tokens) == 0 {
		return source.Position{}
	}
	return d.Tokens[len(d.Tokens)-1].End
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%s: %s: %s", d.File, d.Start(), d.Severity.Label(), d.Message)
}
