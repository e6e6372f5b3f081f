package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// checkBinarySemantics is pass 8: reject arithmetic operators (+ - * /)
// applied to a non-arithmetic result type. Comparison and logical operators
// are exempt — their operands were already normalized to comparable/bool
// types back in pass 6. This pass also carries the increment/decrement
// writability check: '++'/'--' require an assignable operand, the same
// rule '=' enforces on its lhs (spec.md §4.5), so it belongs alongside the
// other "is this expression shaped legally" checks rather than its own
// single-purpose pass.
func checkBinarySemantics(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundBinarySemantics(module.Body, diags)
}

func walkCompoundBinarySemantics(c *ast.CompoundExpr, diags *diag.Stream) {
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprBinarySemantics(es.Expr, diags)
		}
	}
}

func walkExprBinarySemantics(e ast.Expr, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.Binary:
		walkExprBinarySemantics(n.LHS, diags)
		walkExprBinarySemantics(n.RHS, diags)
		if !n.Op.IsLogical() && !n.Op.IsComparison() && n.Op != ast.Assign {
			if n.Type() != nil && !types.IsArithmetic(n.Type()) {
				diags.Add(diag.OperatorCannotBeUsedWithType, n.OpSpan, "operator %s cannot be used with type %s", n.Op, n.Type().Name())
			}
		}
	case *ast.Unary:
		walkExprBinarySemantics(n.Operand, diags)
		if n.Op == ast.PreIncrement || n.Op == ast.PreDecrement {
			if !isWritable(n.Operand) {
				diags.Add(diag.CannotAssignToLValue, n.OpSpan, "operand of %s must be assignable", n.Op)
			}
		}
	case *ast.CompoundExpr:
		walkCompoundBinarySemantics(n, diags)
	case *ast.FuncDef:
		walkExprBinarySemantics(n.Body, diags)
	case *ast.ClassDef:
		walkCompoundBinarySemantics(n.Body, diags)
	case *ast.IfExpr:
		walkExprBinarySemantics(n.Cond, diags)
		walkExprBinarySemantics(n.Then, diags)
		if n.Else != nil {
			walkExprBinarySemantics(n.Else, diags)
		}
	case *ast.WhileExpr:
		walkExprBinarySemantics(n.Cond, diags)
		walkExprBinarySemantics(n.Body, diags)
	case *ast.Cast:
		walkExprBinarySemantics(n.Value, diags)
	case *ast.FuncCall:
		walkExprBinarySemantics(n.Target, diags)
		for _, a := range n.Args {
			walkExprBinarySemantics(a, diags)
		}
	case *ast.Dot:
		walkExprBinarySemantics(n.LHS, diags)
	case *ast.Assert:
		walkExprBinarySemantics(n.Cond, diags)
	}
}
