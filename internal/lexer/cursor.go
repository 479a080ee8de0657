package lexer

import (
	"unicode/utf8"

	"lint381/internal/source"
)

// Cursor walks the text rune by rune and keeps the row/column of Off.
type Cursor struct {
	Text string
	Off  int
	Pos  source.Position
}

// NewCursor creates a cursor at the beginning of text.
func NewCursor(text string) Cursor {
	return Cursor{Text: text}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Text)
}

// Rest returns the unread suffix.
func (c *Cursor) Rest() string {
	return c.Text[c.Off:]
}

// Peek возвращает текущую руну без продвижения; на EOF utf8.RuneError.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(c.Text[c.Off:])
	return r
}

// Bump consumes one rune and returns it, updating the position.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r, size := utf8.DecodeRuneInString(c.Text[c.Off:])
	c.Off += size
	if r == '\n' {
		c.Pos.Row++
		c.Pos.Column = 0
	} else {
		c.Pos.Column++
	}
	return r
}

// Advance consumes n bytes and returns the position of the last consumed rune.
// n must end on a rune boundary.
func (c *Cursor) Advance(n int) source.Position {
	last := c.Pos
	stop := c.Off + n
	for c.Off < stop && !c.EOF() {
		last = c.Pos
		c.Bump()
	}
	return last
}

// Mark is a saved cursor state.
type Mark struct {
	off int
	pos source.Position
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, pos: c.Pos}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.Pos = m.pos
}

// From returns the text consumed since m.
func (c *Cursor) From(m Mark) string {
	return c.Text[m.off:c.Off]
}
