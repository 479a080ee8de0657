package lexer

import (
	"errors"
	"fmt"

	"lint381/internal/source"
)

// ErrorKind classifies tokenization failures.
type ErrorKind uint8

const (
	UnlexableCharacter ErrorKind = iota + 1
	UnterminatedLiteral
	UnterminatedComment
)

var (
	ErrUnlexableCharacter  = errors.New("unlexable character")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrUnterminatedComment = errors.New("unterminated comment")
	// ErrTabCharacter is returned before lexing starts when the text contains a tab.
	ErrTabCharacter = errors.New("tab character in source; expand tabs before tokenizing")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnlexableCharacter:
		return ErrUnlexableCharacter
	case UnterminatedLiteral:
		return ErrUnterminatedLiteral
	case UnterminatedComment:
		return ErrUnterminatedComment
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a fatal tokenization failure. Pos is where the offending lexeme
// starts: the bad character, or the opening quote or "/*".
type Error struct {
	Kind ErrorKind
	Pos  source.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos.Display(), e.Msg)
}

// Is makes errors.Is(err, ErrUnterminatedLiteral) and friends work.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// TabError reports the first tab found by the precondition check.
type TabError struct {
	Pos source.Position
}

func (e *TabError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos.Display(), ErrTabCharacter)
}

func (e *TabError) Unwrap() error { return ErrTabCharacter }
