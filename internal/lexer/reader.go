// Package lexer turns source text into a stream of tokens: a buffered rune
// Reader underneath, and a Lexer on top that knows the Language's lexical
// grammar (keywords, operators, literals, comments).
package lexer

import (
	"strings"

	"github.com/anodelang/anode/internal/token"
)

// Reader is a buffered rune source over UTF-8 input with 1-token-worth of
// arbitrary lookahead. Line endings are normalized to '\n' before reading
// begins; '\r' is dropped (spec: "Line endings normalize on \n; \r is
// ignored").
type Reader struct {
	runes []rune
	pos   int
	line  int
	col   int
}

// NewReader creates a Reader over source, positioned at line 1, column 1.
func NewReader(source string) *Reader {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	return &Reader{runes: []rune(source), line: 1, col: 1}
}

// Peek returns the rune k positions ahead of the cursor (k=0 is the next
// unread rune) without consuming it, or 0 past the end of input.
func (r *Reader) Peek(k int) rune {
	idx := r.pos + k
	if idx < 0 || idx >= len(r.runes) {
		return 0
	}
	return r.runes[idx]
}

// Eof reports whether the cursor has reached the end of input.
func (r *Reader) Eof() bool {
	return r.pos >= len(r.runes)
}

// Position returns the cursor's current (line, column).
func (r *Reader) Position() token.Position {
	return token.Position{Line: r.line, Column: r.col}
}

// Next consumes and returns the rune at the cursor, or 0 at end of input.
// Encountering '\n' increments the line and resets the column.
func (r *Reader) Next() rune {
	if r.Eof() {
		return 0
	}
	ch := r.runes[r.pos]
	r.pos++
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

// peekMatch reports whether the upcoming runes equal literal, without
// consuming anything.
func (r *Reader) peekMatch(literal string) bool {
	for i, want := range []rune(literal) {
		if r.Peek(i) != want {
			return false
		}
	}
	return true
}

// Match atomically compares the upcoming characters to literal; if they're
// equal it consumes them and returns true, otherwise it consumes nothing
// and returns false.
func (r *Reader) Match(literal string) bool {
	if !r.peekMatch(literal) {
		return false
	}
	for range []rune(literal) {
		r.Next()
	}
	return true
}
