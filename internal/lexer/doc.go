// Package lexer turns C-family source text into a flat token sequence.
//
// Lexing is maximal munch: at every position each category proposes the
// longest lexeme it can read and the longest proposal wins. Equal lengths go
// to the earlier category in this order: string/char literal, block comment,
// line comment, number, keyword, identifier, multi-character operator,
// single-character operator or grouping.
//
// A failure anywhere aborts the whole call; callers never see a prefix.
package lexer
