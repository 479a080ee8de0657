package diagfmt

import (
	"bufio"
	"fmt"
	"io"

	"lint381/internal/token"
)

type TokenOutput struct {
	Kind  string       `json:"kind"`
	Value string       `json:"value"`
	Start PositionJSON `json:"start"`
	End   PositionJSON `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for i, tok := range tokens {
		fmt.Fprintf(bw, "%3d: %-15s %q at %s-%s\n", i+1, tok.Kind.String(), tok.Value, tok.Start, tok.End)
	}
	return bw.Flush()
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Value: tok.Value,
			Start: makePosition(tok.Start),
			End:   makePosition(tok.End),
		})
	}
	return encode(w, output, false)
}
