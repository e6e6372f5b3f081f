package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// checkCastSemantics is pass 9: every explicit cast<T>(e) must be
// convertible in at least one direction (spec.md §4.4/GLOSSARY); a cast
// between two types with no implicit path either way — e.g. bool to a
// class — is rejected. Compiler-inserted implicit casts are never checked
// here; they were only ever grafted where CanImplicitCast already held.
func checkCastSemantics(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundCastSemantics(module.Body, diags)
}

func walkCompoundCastSemantics(c *ast.CompoundExpr, diags *diag.Stream) {
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprCastSemantics(es.Expr, diags)
		}
	}
}

func walkExprCastSemantics(e ast.Expr, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.Cast:
		walkExprCastSemantics(n.Value, diags)
		if n.Kind == ast.Explicit && n.Value.Type() != nil && n.TargetTypeRef.ResolvedType != nil {
			from, to := n.Value.Type(), n.TargetTypeRef.ResolvedType
			if !types.CanExplicitCast(from, to) {
				diags.Add(diag.InvalidExplicitCast, n.Span(), "cannot cast %s to %s", from.Name(), to.Name())
			}
		}
	case *ast.Binary:
		walkExprCastSemantics(n.LHS, diags)
		walkExprCastSemantics(n.RHS, diags)
	case *ast.Unary:
		walkExprCastSemantics(n.Operand, diags)
	case *ast.CompoundExpr:
		walkCompoundCastSemantics(n, diags)
	case *ast.FuncDef:
		walkExprCastSemantics(n.Body, diags)
	case *ast.ClassDef:
		walkCompoundCastSemantics(n.Body, diags)
	case *ast.IfExpr:
		walkExprCastSemantics(n.Cond, diags)
		walkExprCastSemantics(n.Then, diags)
		if n.Else != nil {
			walkExprCastSemantics(n.Else, diags)
		}
	case *ast.WhileExpr:
		walkExprCastSemantics(n.Cond, diags)
		walkExprCastSemantics(n.Body, diags)
	case *ast.FuncCall:
		walkExprCastSemantics(n.Target, diags)
		for _, a := range n.Args {
			walkExprCastSemantics(a, diags)
		}
	case *ast.Dot:
		walkExprCastSemantics(n.LHS, diags)
	case *ast.Assert:
		walkExprCastSemantics(n.Cond, diags)
	}
}
