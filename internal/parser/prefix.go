package parser

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/token"
)

// prefixParselets is keyed by the leading token kind of the expression
// form it parses. Like infixParselets it is assigned in init, since the
// parselets call parseExpr, which reads this variable.
var prefixParselets map[token.Kind]prefixFn

func init() { prefixParselets = prefixTable }

var prefixTable = map[token.Kind]prefixFn{
	token.LITERAL_INT:   literalInt,
	token.LITERAL_FLOAT: literalFloat,
	token.TRUE:          literalBool(true),
	token.FALSE:         literalBool(false),
	token.IDENT:         identifier,
	token.BANG:          unaryPrefix(ast.Not),
	token.PLUS_PLUS:     unaryPrefix(ast.PreIncrement),
	token.MINUS_MINUS:   unaryPrefix(ast.PreDecrement),
	token.LBRACE:        block,
	token.LPAREN:        group,
	token.TERNARY_OPEN:  ternary,
	token.CAST:          cast,
	token.IF:            ifExpr,
	token.WHILE:         whileExpr,
	token.FUNC:          funcDef,
	token.CLASS:         classDef,
	token.ASSERT:        assertExpr,
}

func literalInt(p *Parser, tok token.Token) ast.Expr {
	return ast.NewLiteralInt32(p.ids, tok.Span, tok.Value.IntValue)
}

func literalFloat(p *Parser, tok token.Token) ast.Expr {
	return ast.NewLiteralFloat(p.ids, tok.Span, tok.Value.FloatValue)
}

func literalBool(value bool) prefixFn {
	return func(p *Parser, tok token.Token) ast.Expr {
		return ast.NewLiteralBool(p.ids, tok.Span, value)
	}
}

// identifier parses a bare name as a VariableRef, or — when immediately
// followed by ':typename' — a VariableDecl.
func identifier(p *Parser, tok token.Token) ast.Expr {
	if p.lex.PeekToken().Kind != token.COLON {
		return ast.NewVariableRef(p.ids, tok.Span, tok.Text)
	}
	p.lex.NextToken() // ':'
	typeTok, ok := p.expect(token.IDENT, "type name after ':'")
	if !ok {
		return nil
	}
	typeRef := ast.NewTypeRef(p.ids, typeTok.Span, typeTok.Text)
	span := token.Merge(tok.Span, typeTok.Span)
	return ast.NewVariableDecl(p.ids, span, tok.Text, typeRef)
}

func unaryPrefix(op ast.UnaryOp) prefixFn {
	return func(p *Parser, tok token.Token) ast.Expr {
		operand := p.parseExpr(unaryPrecedence)
		if operand == nil {
			return nil
		}
		span := token.Merge(tok.Span, operand.Span())
		return ast.NewUnary(p.ids, span, op, tok.Span, operand)
	}
}

// block parses "{ s1; s2; ... }" into a CompoundExpr with its own Local
// scope.
func block(p *Parser, tok token.Token) ast.Expr {
	scope := ast.NewScope(ast.Local)
	var stmts []ast.Stmt
	for p.lex.PeekToken().Kind != token.RBRACE {
		if p.lex.PeekToken().Kind == token.END_OF_INPUT {
			p.diags.Add(diag.UnexpectedToken, p.lex.PeekToken().Span, "unterminated block, expected '}'")
			return nil
		}
		stmt := p.parseStmt()
		if stmt == nil {
			if !p.recoverAtStmtBoundary() {
				return nil
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
	closeTok := p.lex.NextToken() // known to be RBRACE; confirmed by the loop's peek
	span := token.Merge(tok.Span, closeTok.Span)
	return ast.NewCompoundExpr(p.ids, span, scope, stmts)
}

// group parses a parenthesized expression, "(e)"; it contributes no AST
// node of its own.
func group(p *Parser, tok token.Token) ast.Expr {
	inner := p.parseExpr(0)
	if inner == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "to close grouped expression"); !ok {
		return nil
	}
	return inner
}

// ternary parses "(? cond; then; else)" into an IfExpr.
func ternary(p *Parser, tok token.Token) ast.Expr {
	cond := p.parseExpr(0)
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.SEMI, "after ternary condition"); !ok {
		return nil
	}
	then := p.parseExpr(0)
	if then == nil {
		return nil
	}
	if _, ok := p.expect(token.SEMI, "after ternary then-branch"); !ok {
		return nil
	}
	elseExpr := p.parseExpr(0)
	if elseExpr == nil {
		return nil
	}
	closeTok, ok := p.expect(token.RPAREN, "to close ternary")
	if !ok {
		return nil
	}
	span := token.Merge(tok.Span, closeTok.Span)
	return ast.NewIfExpr(p.ids, span, cond, then, elseExpr)
}

// cast parses "cast<T>(e)" into an explicit Cast.
func cast(p *Parser, tok token.Token) ast.Expr {
	if _, ok := p.expect(token.LT, "after 'cast'"); !ok {
		return nil
	}
	typeTok, ok := p.expect(token.IDENT, "type name in cast")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.GT, "after cast type"); !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN, "after cast<T>"); !ok {
		return nil
	}
	value := p.parseExpr(0)
	if value == nil {
		return nil
	}
	closeTok, ok := p.expect(token.RPAREN, "to close cast")
	if !ok {
		return nil
	}
	typeRef := ast.NewTypeRef(p.ids, typeTok.Span, typeTok.Text)
	span := token.Merge(tok.Span, closeTok.Span)
	return ast.NewCast(p.ids, span, typeRef, value, ast.Explicit)
}

// ifExpr parses "if (cond) then [else else_expr]".
func ifExpr(p *Parser, tok token.Token) ast.Expr {
	if _, ok := p.expect(token.LPAREN, "after 'if'"); !ok {
		return nil
	}
	cond := p.parseExpr(0)
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "after if condition"); !ok {
		return nil
	}
	then := p.parseExpr(0)
	if then == nil {
		return nil
	}
	var elseExpr ast.Expr
	end := then.Span()
	if p.lex.PeekToken().Kind == token.ELSE {
		p.lex.NextToken()
		elseExpr = p.parseExpr(0)
		if elseExpr == nil {
			return nil
		}
		end = elseExpr.Span()
	}
	span := token.Merge(tok.Span, end)
	return ast.NewIfExpr(p.ids, span, cond, then, elseExpr)
}

// whileExpr parses "while (cond) body".
func whileExpr(p *Parser, tok token.Token) ast.Expr {
	if _, ok := p.expect(token.LPAREN, "after 'while'"); !ok {
		return nil
	}
	cond := p.parseExpr(0)
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "after while condition"); !ok {
		return nil
	}
	body := p.parseExpr(0)
	if body == nil {
		return nil
	}
	span := token.Merge(tok.Span, body.Span())
	return ast.NewWhileExpr(p.ids, span, cond, body)
}

// funcDef parses "func name:ReturnType(p1:T1, p2:T2, ...) body".
func funcDef(p *Parser, tok token.Token) ast.Expr {
	nameTok, ok := p.expect(token.IDENT, "after 'func'")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON, "after function name"); !ok {
		return nil
	}
	retTok, ok := p.expect(token.IDENT, "as return type")
	if !ok {
		return nil
	}
	returnTypeRef := ast.NewTypeRef(p.ids, retTok.Span, retTok.Text)

	if _, ok := p.expect(token.LPAREN, "to begin parameter list"); !ok {
		return nil
	}
	paramScope := ast.NewScope(ast.Local)
	var params []*ast.ParameterDef
	if p.lex.PeekToken().Kind != token.RPAREN {
		for {
			paramNameTok, ok := p.expect(token.IDENT, "as parameter name")
			if !ok {
				return nil
			}
			if _, ok := p.expect(token.COLON, "after parameter name"); !ok {
				return nil
			}
			paramTypeTok, ok := p.expect(token.IDENT, "as parameter type")
			if !ok {
				return nil
			}
			paramTypeRef := ast.NewTypeRef(p.ids, paramTypeTok.Span, paramTypeTok.Text)
			paramSpan := token.Merge(paramNameTok.Span, paramTypeTok.Span)
			params = append(params, ast.NewParameterDef(p.ids, paramSpan, paramNameTok.Text, paramTypeRef))
			if p.lex.PeekToken().Kind != token.COMMA {
				break
			}
			p.lex.NextToken()
		}
	}
	if _, ok := p.expect(token.RPAREN, "to close parameter list"); !ok {
		return nil
	}
	body := p.parseExpr(0)
	if body == nil {
		return nil
	}
	span := token.Merge(tok.Span, body.Span())
	return ast.NewFuncDef(p.ids, span, nameTok.Text, returnTypeRef, params, paramScope, body)
}

// classDef parses "class Name body", wrapping a non-compound body in a
// single-statement CompoundExpr and stamping its scope as the class's
// instance scope.
func classDef(p *Parser, tok token.Token) ast.Expr {
	nameTok, ok := p.expect(token.IDENT, "after 'class'")
	if !ok {
		return nil
	}
	bodyExpr := p.parseExpr(0)
	if bodyExpr == nil {
		return nil
	}
	body, ok := bodyExpr.(*ast.CompoundExpr)
	if !ok {
		scope := ast.NewScope(ast.Instance)
		stmt := ast.NewExprStmt(p.ids, bodyExpr.Span(), bodyExpr)
		body = ast.NewCompoundExpr(p.ids, bodyExpr.Span(), scope, []ast.Stmt{stmt})
	}
	body.Scope.Kind = ast.Instance
	body.Scope.Name = nameTok.Text
	span := token.Merge(tok.Span, bodyExpr.Span())
	return ast.NewClassDef(p.ids, span, nameTok.Text, body)
}

// assertExpr parses "assert(e)".
func assertExpr(p *Parser, tok token.Token) ast.Expr {
	if _, ok := p.expect(token.LPAREN, "after 'assert'"); !ok {
		return nil
	}
	cond := p.parseExpr(0)
	if cond == nil {
		return nil
	}
	closeTok, ok := p.expect(token.RPAREN, "to close assert")
	if !ok {
		return nil
	}
	span := token.Merge(tok.Span, closeTok.Span)
	return ast.NewAssert(p.ids, span, cond)
}
