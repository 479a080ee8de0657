package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"lint381/internal/source"
	"lint381/internal/token"
)

// scanner proposes a lexeme at the start of rest. n == 0 means no proposal.
// A non-zero fail aborts tokenization even if other scanners could proceed.
type scanner func(rest string) (n int, kind token.Kind, fail ErrorKind)

// Порядок важен: при равной длине побеждает более ранний.
var scanners = []scanner{
	scanLiteral,
	scanBlockComment,
	scanLineComment,
	scanNumber,
	scanKeyword,
	scanIdentifier,
	scanMultiOperator,
	scanSingleOperator,
}

// Tokenize splits text into tokens. The text must not contain tabs.
func Tokenize(text string) ([]token.Token, error) {
	if err := checkTabs(text); err != nil {
		return nil, err
	}

	cur := NewCursor(text)
	tokens := make([]token.Token, 0, len(text)/4)
	for {
		skipSpace(&cur)
		if cur.EOF() {
			return tokens, nil
		}
		tok, err := next(&cur)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeFile tokenizes a loaded file and prefixes errors with its path.
func TokenizeFile(f *source.File) ([]token.Token, error) {
	tokens, err := Tokenize(f.Text())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return tokens, nil
}

func next(cur *Cursor) (token.Token, error) {
	rest := cur.Rest()
	best, bestKind := 0, token.Invalid
	for _, scan := range scanners {
		n, kind, fail := scan(rest)
		if fail != 0 {
			return token.Token{}, failure(cur, fail)
		}
		if n > best {
			best, bestKind = n, kind
		}
	}
	if best == 0 {
		return token.Token{}, failure(cur, UnlexableCharacter)
	}

	start := cur.Pos
	value := rest[:best]
	end := cur.Advance(best)
	return token.Token{Kind: bestKind, Value: value, Start: start, End: end}, nil
}

func failure(cur *Cursor, kind ErrorKind) *Error {
	var msg string
	switch kind {
	case UnterminatedLiteral:
		msg = fmt.Sprintf("unterminated literal starting with %q", cur.Peek())
	case UnterminatedComment:
		msg = "unterminated block comment"
	default:
		msg = fmt.Sprintf("unexpected character %q", cur.Peek())
	}
	return &Error{Kind: kind, Pos: cur.Pos, Msg: msg}
}

func skipSpace(cur *Cursor) {
	for !cur.EOF() && unicode.IsSpace(cur.Peek()) {
		cur.Bump()
	}
}

func checkTabs(text string) error {
	idx := strings.IndexByte(text, '\t')
	if idx < 0 {
		return nil
	}
	cur := NewCursor(text)
	cur.Advance(idx)
	return &TabError{Pos: cur.Pos}
}
