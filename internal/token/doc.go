// Package token defines the lexical categories of C-family source and the
// token value produced by the lexer.
// Invariants:
//   - Token.Value is the exact source substring, never normalized.
//   - Start and End are both inclusive: the first and the last character.
//   - Whitespace is never a token; comments are.
//   - Keywords are the closed C89 set; everything else word-shaped is an Identifier.
package token
