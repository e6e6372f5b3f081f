// Package parser implements the Language's Pratt expression parser: prefix
// and infix parselet tables keyed by token kind, driven by a single
// precedence-climbing loop.
package parser

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/lexer"
	"github.com/anodelang/anode/internal/token"
)

// prefixFn parses an expression starting with tok, which has already been
// consumed.
type prefixFn func(p *Parser, tok token.Token) ast.Expr

// infixFn parses the continuation of an expression given the
// already-parsed left operand and the already-consumed operator token.
type infixFn func(p *Parser, left ast.Expr, tok token.Token) ast.Expr

// Parser turns a token stream into a Module AST. It never panics on
// malformed input: a parselet that hits a problem reports a diagnostic and
// returns nil, and the statement loop resynchronizes at the next ';' or
// '}' before continuing.
type Parser struct {
	lex   *lexer.Lexer
	diags *diag.Stream
	ids   *ast.IDGen
}

// New creates a Parser reading from lex, reporting to diags, and minting
// node ids from ids (the same generator the semantic passes will use for
// symbol ids).
func New(lex *lexer.Lexer, diags *diag.Stream, ids *ast.IDGen) *Parser {
	return &Parser{lex: lex, diags: diags, ids: ids}
}

// ParseModule parses an entire input as a module named name: a sequence of
// statements inside one implicit top-level, parent-less Global scope.
func (p *Parser) ParseModule(name string) *ast.Module {
	startSpan := p.lex.PeekToken().Span
	scope := ast.NewScope(ast.Global)

	var stmts []ast.Stmt
	endSpan := startSpan
	for p.lex.PeekToken().Kind != token.END_OF_INPUT {
		stmt := p.parseStmt()
		if stmt == nil {
			if !p.recoverAtStmtBoundary() {
				break
			}
			continue
		}
		stmts = append(stmts, stmt)
		endSpan = stmt.Span()
	}

	body := ast.NewCompoundExpr(p.ids, token.Merge(startSpan, endSpan), scope, stmts)
	return ast.NewModule(name, body)
}

// parseStmt parses one statement: an expression, plus a ';' that's
// required unless the expression's head token was composite (spec.md
// 4.3's "Statement parsing" rule).
func (p *Parser) parseStmt() ast.Stmt {
	head := p.lex.PeekToken()
	expr := p.parseExpr(0)
	if expr == nil {
		return nil
	}

	if head.IsComposite() {
		if p.lex.PeekToken().Kind == token.SEMI {
			p.lex.NextToken()
		}
	} else {
		semi := p.lex.NextToken()
		if semi.Kind != token.SEMI {
			p.diags.Add(diag.UnexpectedToken, semi.Span, "expected ';' after expression, found %s", semi)
			return nil
		}
	}
	return ast.NewExprStmt(p.ids, expr.Span(), expr)
}

// recoverAtStmtBoundary advances past tokens until a statement boundary
// (a ';' which it consumes, or a '}' which it leaves for the caller) or
// END_OF_INPUT, which it reports as unrecoverable.
func (p *Parser) recoverAtStmtBoundary() bool {
	for {
		tok := p.lex.PeekToken()
		switch tok.Kind {
		case token.END_OF_INPUT:
			return false
		case token.SEMI:
			p.lex.NextToken()
			return true
		case token.RBRACE:
			return true
		default:
			p.lex.NextToken()
		}
	}
}

// parseExpr implements the Pratt parsing algorithm (spec.md 4.3): consume a
// token, dispatch to its prefix parselet, then keep extending the result
// with infix parselets as long as the next operator binds tighter than
// minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	tok := p.lex.NextToken()
	if tok.Kind == token.END_OF_INPUT {
		p.diags.Add(diag.UnexpectedToken, tok.Span, "unexpected end of input while parsing an expression")
		return nil
	}

	prefix, ok := prefixParselets[tok.Kind]
	if !ok {
		p.diags.Add(diag.SurpriseToken, tok.Span, "%s cannot start an expression", tok)
		return nil
	}

	left := prefix(p, tok)
	if left == nil {
		return nil
	}

	for {
		peek := p.lex.PeekToken()
		info, ok := infixPrecedence[peek.Kind]
		if !ok || info.prec <= minPrec {
			return left
		}
		op := p.lex.NextToken()
		infix, ok := infixParselets[op.Kind]
		if !ok {
			p.diags.Add(diag.SurpriseToken, op.Span, "%s cannot be used as an infix operator", op)
			return nil
		}
		left = infix(p, left, op)
		if left == nil {
			return nil
		}
	}
}

// expect consumes the next token and reports a diagnostic if it isn't of
// kind want, returning (token, false) so callers can bail out uniformly.
func (p *Parser) expect(want token.Kind, context string) (token.Token, bool) {
	tok := p.lex.NextToken()
	if tok.Kind != want {
		p.diags.Add(diag.UnexpectedToken, tok.Span, "expected %s %s, found %s", want, context, tok)
		return tok, false
	}
	return tok, true
}
