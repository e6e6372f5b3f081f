package parser

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/token"
)

// infixParselets is keyed by operator token kind. Registered once at
// package init from the closures below (deterministic, no per-call state).
// The table is assigned in init rather than by its own declaration because
// the parselets call parseExpr, which reads this variable.
var infixParselets map[token.Kind]infixFn

func init() { infixParselets = infixTable }

var infixTable = map[token.Kind]infixFn{
	token.PLUS:    binaryInfix(ast.Add),
	token.MINUS:   binaryInfix(ast.Sub),
	token.STAR:    binaryInfix(ast.Mul),
	token.SLASH:   binaryInfix(ast.Div),
	token.EQ:      binaryInfix(ast.Eq),
	token.NOT_EQ:  binaryInfix(ast.NotEq),
	token.LT:      binaryInfix(ast.Lt),
	token.LTE:     binaryInfix(ast.Lte),
	token.GT:      binaryInfix(ast.Gt),
	token.GTE:     binaryInfix(ast.Gte),
	token.AND_AND: binaryInfix(ast.LogicalAnd),
	token.OR_OR:   binaryInfix(ast.LogicalOr),
	token.ASSIGN:  binaryInfix(ast.Assign),
	token.DOT:     dotInfix,
	token.LPAREN:  callInfix,
}

// binaryInfix builds the infix parselet for a binary operator: parse rhs
// at the operator's own binding power (left-assoc) or one less
// (right-assoc, so a chained occurrence of the same operator recurses
// into rhs instead of being picked up by this call's own loop).
func binaryInfix(op ast.BinaryOp) infixFn {
	return func(p *Parser, left ast.Expr, tok token.Token) ast.Expr {
		info := infixPrecedence[tok.Kind]
		nextMin := info.prec
		if info.right {
			nextMin = info.prec - 1
		}
		rhs := p.parseExpr(nextMin)
		if rhs == nil {
			return nil
		}
		if op == ast.Assign {
			if ref, ok := left.(*ast.VariableRef); ok {
				ref.Access = ast.Write
			}
		}
		span := token.Merge(left.Span(), rhs.Span())
		return ast.NewBinary(p.ids, span, left, op, tok.Span, rhs)
	}
}

func dotInfix(p *Parser, left ast.Expr, tok token.Token) ast.Expr {
	nameTok, ok := p.expect(token.IDENT, "member name after '.'")
	if !ok {
		return nil
	}
	span := token.Merge(left.Span(), nameTok.Span)
	return ast.NewDot(p.ids, span, left, nameTok.Text, tok.Span)
}

func callInfix(p *Parser, left ast.Expr, tok token.Token) ast.Expr {
	var args []ast.Expr
	if p.lex.PeekToken().Kind != token.RPAREN {
		for {
			arg := p.parseExpr(0)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if p.lex.PeekToken().Kind != token.COMMA {
				break
			}
			p.lex.NextToken()
		}
	}
	closeTok, ok := p.expect(token.RPAREN, "to close call")
	if !ok {
		return nil
	}
	span := token.Merge(left.Span(), closeTok.Span)
	return ast.NewFuncCall(p.ids, span, left, args, tok.Span)
}
