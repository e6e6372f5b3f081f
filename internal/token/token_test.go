package token_test

import (
	"testing"

	"github.com/anodelang/anode/internal/token"
)

func TestSpanMerge(t *testing.T) {
	a := token.Span{Input: "t.an", Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 5}}
	b := token.Span{Input: "t.an", Start: token.Position{Line: 2, Column: 1}, End: token.Position{Line: 2, Column: 9}}

	merged := token.Merge(a, b)
	if merged.Start != a.Start {
		t.Errorf("expected start %v, got %v", a.Start, merged.Start)
	}
	if merged.End != b.End {
		t.Errorf("expected end %v, got %v", b.End, merged.End)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.END_OF_INPUT, "END_OF_INPUT"},
		{token.IDENT, "IDENT"},
		{token.FUNC, "FUNC"},
		{token.TERNARY_OPEN, "TERNARY_OPEN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestTokenIsComposite(t *testing.T) {
	for _, k := range []token.Kind{token.LBRACE, token.IF, token.WHILE, token.FUNC, token.CLASS} {
		tok := token.Token{Kind: k}
		if !tok.IsComposite() {
			t.Errorf("expected %s to be a composite expression head", k)
		}
	}
	for _, k := range []token.Kind{token.IDENT, token.LITERAL_INT, token.ASSERT, token.CAST} {
		tok := token.Token{Kind: k}
		if tok.IsComposite() {
			t.Errorf("expected %s not to be a composite expression head", k)
		}
	}
}

func TestKeywordsMatchSingleCharTokens(t *testing.T) {
	if _, clash := token.SingleCharTokens['t']; clash {
		t.Fatal("single-char token table unexpectedly claims 't'")
	}
	if kind, ok := token.Keywords["while"]; !ok || kind != token.WHILE {
		t.Errorf("expected keyword 'while' to map to WHILE, got %v (%v)", kind, ok)
	}
}
