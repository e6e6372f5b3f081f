package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
)

// setScopeParents is pass 1: every Scope's Parent is set to the nearest
// enclosing scope, except the module's outermost scope, which has none.
// A recursive walk mirrors the teacher's explicit scope-stack: the Go call
// stack plays the stack's role, pushing on CompoundExpr/FuncDef/ClassDef
// boundaries and popping on return.
func setScopeParents(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundScopeParents(module.Body, nil)
}

func walkCompoundScopeParents(c *ast.CompoundExpr, enclosing *ast.Scope) {
	ast.Assertf(c.Scope != nil, "CompoundExpr at %s has no Scope to parent", c.Span())
	if enclosing != nil {
		c.Scope.Parent = enclosing
	}
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprScopeParents(es.Expr, c.Scope)
		}
	}
}

func walkExprScopeParents(e ast.Expr, enclosing *ast.Scope) {
	switch n := e.(type) {
	case *ast.CompoundExpr:
		walkCompoundScopeParents(n, enclosing)
	case *ast.FuncDef:
		ast.Assertf(n.ParameterScope != nil, "FuncDef %q at %s has no ParameterScope to parent", n.Name, n.Span())
		n.ParameterScope.Parent = enclosing
		walkExprScopeParents(n.Body, n.ParameterScope)
	case *ast.ClassDef:
		walkCompoundScopeParents(n.Body, enclosing)
	case *ast.IfExpr:
		walkExprScopeParents(n.Cond, enclosing)
		walkExprScopeParents(n.Then, enclosing)
		if n.Else != nil {
			walkExprScopeParents(n.Else, enclosing)
		}
	case *ast.WhileExpr:
		walkExprScopeParents(n.Cond, enclosing)
		walkExprScopeParents(n.Body, enclosing)
	case *ast.Binary:
		walkExprScopeParents(n.LHS, enclosing)
		walkExprScopeParents(n.RHS, enclosing)
	case *ast.Unary:
		walkExprScopeParents(n.Operand, enclosing)
	case *ast.Cast:
		walkExprScopeParents(n.Value, enclosing)
	case *ast.FuncCall:
		walkExprScopeParents(n.Target, enclosing)
		for _, a := range n.Args {
			walkExprScopeParents(a, enclosing)
		}
	case *ast.Dot:
		walkExprScopeParents(n.LHS, enclosing)
	case *ast.Assert:
		walkExprScopeParents(n.Cond, enclosing)
	}
}
