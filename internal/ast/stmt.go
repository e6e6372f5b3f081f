package ast

import "github.com/anodelang/anode/internal/token"

// Stmt is implemented by every statement node. The Language has exactly
// one: ExprStmt, a statement that wraps an expression.
type Stmt interface {
	Node
	stmtNode()
}

// ExprStmt wraps an expression occurring in statement position. Every
// statement reaches the tree through one of these, a top-level FuncDef
// included; there is no separate statement kind for function definitions.
type ExprStmt struct {
	base
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

func NewExprStmt(ids *IDGen, span token.Span, expr Expr) *ExprStmt {
	return &ExprStmt{base: newBase(ids, span), Expr: expr}
}
