package lexer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/token"
)

// Lexer produces one token per call to NextToken, with a single-slot
// memoized PeekToken for 1-token lookahead. It never aborts on malformed
// input: on a problem it appends a Diagnostic and returns a synthesized
// UNEXPECTED token so the parser can keep going.
type Lexer struct {
	inputName string
	reader    *Reader
	diags     *diag.Stream
	peeked    *token.Token
}

// New creates a Lexer over source, reporting diagnostics to diags.
// inputName labels every span this Lexer produces (e.g. a file name).
func New(inputName, source string, diags *diag.Stream) *Lexer {
	return &Lexer{inputName: inputName, reader: NewReader(source), diags: diags}
}

// NextToken returns the next token, consuming it.
func (l *Lexer) NextToken() token.Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

// PeekToken returns the next token without consuming it; repeated calls
// return the same token until NextToken is called.
func (l *Lexer) PeekToken() token.Token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *Lexer) span(start token.Position) token.Span {
	return token.Span{Input: l.inputName, Start: start, End: l.reader.Position()}
}

// skipTrivia discards whitespace, single-line comments ("# ... \n"), and
// nested multi-line comments ("(# ... #)") until a significant character
// is reached or input is exhausted.
func (l *Lexer) skipTrivia() {
	for {
		switch ch := l.reader.Peek(0); {
		case ch == ' ' || ch == '\t' || ch == '\n':
			l.reader.Next()
		case ch == '#':
			l.reader.Next()
			for !l.reader.Eof() && l.reader.Peek(0) != '\n' {
				l.reader.Next()
			}
		case ch == '(' && l.reader.Peek(1) == '#':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.reader.Position()
	l.reader.Next()
	l.reader.Next()
	depth := 1
	for depth > 0 {
		if l.reader.Eof() {
			l.diags.Add(diag.UnterminatedComment, l.span(start), "unterminated multi-line comment")
			return
		}
		switch {
		case l.reader.Peek(0) == '(' && l.reader.Peek(1) == '#':
			l.reader.Next()
			l.reader.Next()
			depth++
		case l.reader.Peek(0) == '#' && l.reader.Peek(1) == ')':
			l.reader.Next()
			l.reader.Next()
			depth--
		default:
			l.reader.Next()
		}
	}
}

type candidate struct {
	text    string
	kind    token.Kind
	keyword bool
}

var candidates = buildCandidates()

func buildCandidates() []candidate {
	cs := make([]candidate, 0, len(token.MultiCharOperators)+len(token.Keywords))
	for _, op := range token.MultiCharOperators {
		cs = append(cs, candidate{text: op.Text, kind: op.Kind})
	}
	for kw, kind := range token.Keywords {
		cs = append(cs, candidate{text: kw, kind: kind, keyword: true})
	}
	sort.Slice(cs, func(i, j int) bool { return len(cs[i].text) > len(cs[j].text) })
	return cs
}

func (l *Lexer) scan() token.Token {
	l.skipTrivia()
	start := l.reader.Position()

	if l.reader.Eof() {
		return token.Token{Kind: token.END_OF_INPUT, Span: l.span(start)}
	}

	for _, c := range candidates {
		if !l.reader.peekMatch(c.text) {
			continue
		}
		if c.keyword && isIdentCont(l.reader.Peek(len([]rune(c.text)))) {
			continue
		}
		l.reader.Match(c.text)
		return token.Token{Kind: c.kind, Text: c.text, Span: l.span(start), Value: keywordValue(c.kind)}
	}

	ch := l.reader.Peek(0)

	if ch == '-' && isDigit(l.reader.Peek(1)) {
		l.reader.Next()
		return l.readNumber(true, start)
	}

	if kind, ok := token.SingleCharTokens[ch]; ok {
		l.reader.Next()
		return token.Token{Kind: kind, Text: string(ch), Span: l.span(start)}
	}

	if isIdentStart(ch) {
		return l.readIdentifier(start)
	}

	if isDigit(ch) {
		return l.readNumber(false, start)
	}

	l.reader.Next()
	sp := l.span(start)
	l.diags.Add(diag.UnexpectedCharacter, sp, "unexpected character %q", string(ch))
	return token.Token{Kind: token.UNEXPECTED, Text: string(ch), Span: sp}
}

func keywordValue(k token.Kind) token.Value {
	switch k {
	case token.TRUE:
		return token.Value{BoolValue: true}
	case token.FALSE:
		return token.Value{BoolValue: false}
	default:
		return token.Value{}
	}
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	var sb strings.Builder
	for isIdentCont(l.reader.Peek(0)) {
		sb.WriteRune(l.reader.Next())
	}
	return token.Token{Kind: token.IDENT, Text: sb.String(), Span: l.span(start)}
}

func (l *Lexer) readNumber(negative bool, start token.Position) token.Token {
	var sb strings.Builder
	if negative {
		sb.WriteRune('-')
	}
	for isDigit(l.reader.Peek(0)) {
		sb.WriteRune(l.reader.Next())
	}
	isFloat := false
	if l.reader.Peek(0) == '.' && isDigit(l.reader.Peek(1)) {
		isFloat = true
		sb.WriteRune(l.reader.Next())
		for isDigit(l.reader.Peek(0)) {
			sb.WriteRune(l.reader.Next())
		}
	}
	text := sb.String()
	sp := l.span(start)

	if isFloat {
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			l.diags.Add(diag.InvalidLiteralFloat, sp, "invalid float literal %q", text)
			return token.Token{Kind: token.UNEXPECTED, Text: text, Span: sp}
		}
		return token.Token{Kind: token.LITERAL_FLOAT, Text: text, Span: sp, Value: token.Value{FloatValue: float32(v)}}
	}

	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		l.diags.Add(diag.InvalidLiteralInt32, sp, "invalid int literal %q", text)
		return token.Token{Kind: token.UNEXPECTED, Text: text, Span: sp}
	}
	return token.Token{Kind: token.LITERAL_INT, Text: text, Span: sp, Value: token.Value{IntValue: int32(v)}}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
