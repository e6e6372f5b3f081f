package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
)

// markDotWrites is pass 7: for every Binary(lhs: Dot, op: Assign, rhs),
// mark the Dot as a write so codegen and the pretty printer can tell a
// field store from a field load.
func markDotWrites(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundDotWrites(module.Body)
}

func walkCompoundDotWrites(c *ast.CompoundExpr) {
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprDotWrites(es.Expr)
		}
	}
}

func walkExprDotWrites(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Binary:
		if n.Op == ast.Assign {
			if dot, ok := n.LHS.(*ast.Dot); ok {
				dot.IsWrite = true
			}
		}
		walkExprDotWrites(n.LHS)
		walkExprDotWrites(n.RHS)
	case *ast.CompoundExpr:
		walkCompoundDotWrites(n)
	case *ast.FuncDef:
		walkExprDotWrites(n.Body)
	case *ast.ClassDef:
		walkCompoundDotWrites(n.Body)
	case *ast.IfExpr:
		walkExprDotWrites(n.Cond)
		walkExprDotWrites(n.Then)
		if n.Else != nil {
			walkExprDotWrites(n.Else)
		}
	case *ast.WhileExpr:
		walkExprDotWrites(n.Cond)
		walkExprDotWrites(n.Body)
	case *ast.Unary:
		walkExprDotWrites(n.Operand)
	case *ast.Cast:
		walkExprDotWrites(n.Value)
	case *ast.FuncCall:
		walkExprDotWrites(n.Target)
		for _, a := range n.Args {
			walkExprDotWrites(a)
		}
	case *ast.Dot:
		walkExprDotWrites(n.LHS)
	case *ast.Assert:
		walkExprDotWrites(n.Cond)
	}
}
