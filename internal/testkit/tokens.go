// Package testkit holds invariant checks shared by unit tests and fuzzers.
package testkit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"lint381/internal/token"
)

// CheckTokens verifies that toks is a faithful tokenization of text:
// every token is non-empty with a known kind, tokens are strictly ordered
// and non-overlapping, each Value is exactly the text between Start and End,
// and only whitespace lies between tokens.
func CheckTokens(text string, toks []token.Token) error {
	lines := splitRunes(text)
	var errs []error
	prev := token.Token{}
	for i, t := range toks {
		if t.Value == "" {
			errs = append(errs, fmt.Errorf("token %d: empty value", i))
			continue
		}
		if !slices.Contains(token.Kinds(), t.Kind) {
			errs = append(errs, fmt.Errorf("token %d %q: bad kind %v", i, t.Value, t.Kind))
		}
		if t.End.Less(t.Start) {
			errs = append(errs, fmt.Errorf("token %d %q: end %s before start %s", i, t.Value, t.End, t.Start))
			continue
		}
		if i > 0 && !prev.End.Less(t.Start) {
			errs = append(errs, fmt.Errorf("token %d %q at %s overlaps previous token ending %s", i, t.Value, t.Start, prev.End))
		}
		got, err := slice(lines, t.Start.Row, t.Start.Column, t.End.Row, t.End.Column+1)
		if err != nil {
			errs = append(errs, fmt.Errorf("token %d %q: %w", i, t.Value, err))
		} else if got != t.Value {
			errs = append(errs, fmt.Errorf("token %d: value %q but source holds %q at %s-%s", i, t.Value, got, t.Start, t.End))
		}
		if i > 0 && err == nil {
			gap, gapErr := slice(lines, prev.End.Row, prev.End.Column+1, t.Start.Row, t.Start.Column)
			if gapErr == nil && strings.TrimSpace(gap) != "" {
				errs = append(errs, fmt.Errorf("token %d: non-space %q skipped before it", i, gap))
			}
		}
		prev = t
		if len(errs) > 10 {
			break
		}
	}
	return errors.Join(errs...)
}

// CheckWindows verifies that every window is a contiguous run of toks, and
// that windows come in order without sharing tokens.
func CheckWindows(toks []token.Token, windows [][]token.Token) error {
	next := 0
	for w, win := range windows {
		if len(win) == 0 {
			return fmt.Errorf("window %d is empty", w)
		}
		at := -1
		for i := next; i < len(toks); i++ {
			if toks[i] == win[0] {
				at = i
				break
			}
		}
		if at < 0 {
			return fmt.Errorf("window %d starting %q at %s is not after the previous window", w, win[0].Value, win[0].Start)
		}
		if at+len(win) > len(toks) {
			return fmt.Errorf("window %d runs past the token stream", w)
		}
		for j, t := range win {
			if toks[at+j] != t {
				return fmt.Errorf("window %d is not contiguous at offset %d", w, j)
			}
		}
		next = at + len(win)
	}
	return nil
}

func splitRunes(text string) [][]rune {
	rows := strings.Split(text, "\n")
	out := make([][]rune, len(rows))
	for i, r := range rows {
		out[i] = []rune(r)
	}
	return out
}

// slice returns the text from (r1, c1) up to (r2, c2) exclusive, joining rows
// with newlines. A column equal to the row length addresses its newline.
func slice(lines [][]rune, r1, c1, r2, c2 int) (string, error) {
	if r1 < 0 || r2 >= len(lines) || r1 > r2 {
		return "", fmt.Errorf("rows %d..%d out of range", r1, r2)
	}
	if c1 < 0 || c1 > len(lines[r1])+1 || c2 < 0 || c2 > len(lines[r2])+1 {
		return "", fmt.Errorf("columns %d..%d out of range", c1, c2)
	}
	var b strings.Builder
	for r := r1; r <= r2; r++ {
		row := lines[r]
		if r < len(lines)-1 {
			row = append(row[:len(row):len(row)], '\n')
		}
		from, to := 0, len(row)
		if r == r1 {
			from = min(c1, len(row))
		}
		if r == r2 {
			to = min(c2, len(row))
		}
		if from < to {
			b.WriteString(string(row[from:to]))
		}
	}
	return b.String(), nil
}
