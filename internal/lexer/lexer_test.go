package lexer_test

import (
	"testing"

	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/lexer"
	"github.com/anodelang/anode/internal/token"
)

func lexAll(t *testing.T, source string) ([]token.Token, *diag.Stream) {
	t.Helper()
	diags := diag.New()
	l := lexer.New("t.an", source, diags)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.END_OF_INPUT {
			break
		}
	}
	return toks, diags
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexingIsTotal(t *testing.T) {
	toks, _ := lexAll(t, "x:int = 5; x + 1.5;")
	if toks[len(toks)-1].Kind != token.END_OF_INPUT {
		t.Fatal("expected lexing to terminate with END_OF_INPUT")
	}
}

func TestSimpleExpression(t *testing.T) {
	toks, diags := lexAll(t, "1 + 2 * 3;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	want := []token.Kind{
		token.LITERAL_INT, token.PLUS, token.LITERAL_INT, token.STAR, token.LITERAL_INT, token.SEMI, token.END_OF_INPUT,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKeywordNotConfusedWithLongerIdentifier(t *testing.T) {
	toks, _ := lexAll(t, "iffy")
	if toks[0].Kind != token.IDENT || toks[0].Text != "iffy" {
		t.Fatalf("expected IDENT(iffy), got %v", toks[0])
	}
}

func TestMultiCharOperatorsGreedyMatch(t *testing.T) {
	toks, _ := lexAll(t, "a <= b && c")
	got := kinds(toks)
	want := []token.Kind{token.IDENT, token.LTE, token.IDENT, token.AND_AND, token.IDENT, token.END_OF_INPUT}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNegativeNumberLiteral(t *testing.T) {
	toks, _ := lexAll(t, "-5")
	if toks[0].Kind != token.LITERAL_INT || toks[0].Value.IntValue != -5 {
		t.Fatalf("expected LITERAL_INT(-5), got %v", toks[0])
	}
}

func TestFloatLiteral(t *testing.T) {
	toks, _ := lexAll(t, "3.25")
	if toks[0].Kind != token.LITERAL_FLOAT || toks[0].Value.FloatValue != 3.25 {
		t.Fatalf("expected LITERAL_FLOAT(3.25), got %v", toks[0])
	}
}

func TestSingleLineComment(t *testing.T) {
	toks, _ := lexAll(t, "1 # trailing comment\n+ 2;")
	got := kinds(toks)
	want := []token.Kind{token.LITERAL_INT, token.PLUS, token.LITERAL_INT, token.SEMI, token.END_OF_INPUT}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNestedBlockCommentProducesNoTokens(t *testing.T) {
	toks, diags := lexAll(t, "(# (# #) #)")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	if len(toks) != 1 || toks[0].Kind != token.END_OF_INPUT {
		t.Fatalf("expected zero tokens before EOF, got %v", toks)
	}
}

func TestUnterminatedBlockCommentReportsError(t *testing.T) {
	_, diags := lexAll(t, "(# never closes")
	if !diags.HasErrors() {
		t.Fatal("expected an UnterminatedComment diagnostic")
	}
	if diags.Diagnostics()[0].Kind != diag.UnterminatedComment {
		t.Errorf("expected UnterminatedComment, got %v", diags.Diagnostics()[0].Kind)
	}
}

func TestUnexpectedCharacterIsReportedAndSkipped(t *testing.T) {
	toks, diags := lexAll(t, "1 $ 2;")
	if !diags.HasErrors() || diags.Diagnostics()[0].Kind != diag.UnexpectedCharacter {
		t.Fatalf("expected UnexpectedCharacter diagnostic, got %v", diags.Diagnostics())
	}
	got := kinds(toks)
	want := []token.Kind{token.LITERAL_INT, token.UNEXPECTED, token.LITERAL_INT, token.SEMI, token.END_OF_INPUT}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	diags := diag.New()
	l := lexer.New("t.an", "1 + 2", diags)
	first := l.PeekToken()
	second := l.PeekToken()
	if first.Kind != second.Kind || first.Text != second.Text {
		t.Fatalf("expected PeekToken to be idempotent, got %v then %v", first, second)
	}
	consumed := l.NextToken()
	if consumed.Kind != first.Kind {
		t.Fatalf("expected NextToken to return the peeked token, got %v", consumed)
	}
	next := l.NextToken()
	if next.Kind != token.PLUS {
		t.Fatalf("expected PLUS after consuming the peeked literal, got %v", next)
	}
}

func TestKeywordsLexCorrectly(t *testing.T) {
	toks, _ := lexAll(t, "if else while func cast class assert true false")
	want := []token.Kind{
		token.IF, token.ELSE, token.WHILE, token.FUNC, token.CAST, token.CLASS, token.ASSERT, token.TRUE, token.FALSE, token.END_OF_INPUT,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTernaryOpenToken(t *testing.T) {
	toks, _ := lexAll(t, "(? 1; 2; 3)")
	if toks[0].Kind != token.TERNARY_OPEN {
		t.Fatalf("expected TERNARY_OPEN, got %v", toks[0])
	}
}
