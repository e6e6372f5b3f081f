package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
)

// resolveSymbolRefs is pass 5: every VariableRef is resolved against its
// enclosing scope chain, and use-before-definition is tracked per symbol.
//
// A symbol becomes "defined" the moment its declaring VariableDecl has been
// fully processed — except when the VariableDecl is the lhs of an '='
// initializer, in which case the rhs is analyzed first so that a
// self-referential initializer ("x:int = x + 1;") still reports
// VariableUsedBeforeDefinition for the read of x on the rhs, even though x's
// symbol already exists in the scope table (inserted back in pass 2).
func resolveSymbolRefs(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	defined := make(map[ast.ID]bool)
	walkCompoundRefs(module.Body, defined, diags)
}

func walkCompoundRefs(c *ast.CompoundExpr, defined map[ast.ID]bool, diags *diag.Stream) {
	scope := c.Scope
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprRefs(es.Expr, scope, defined, diags)
		}
	}
}

func walkExprRefs(e ast.Expr, scope *ast.Scope, defined map[ast.ID]bool, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.VariableRef:
		sym, ok := scope.RecursiveFind(n.Name)
		if !ok {
			diags.Add(diag.VariableNotDefined, n.Span(), "%q is not defined", n.Name)
			return
		}
		switch s := sym.(type) {
		case *ast.VariableSymbol:
			if !defined[s.SymbolID()] {
				diags.Add(diag.VariableUsedBeforeDefinition, n.Span(), "%q is used before it is defined", n.Name)
			}
			n.Symbol = s
		case *ast.FunctionSymbol:
			// Functions are visible throughout the scope that declares them;
			// unlike variables, calling one ahead of its textual declaration
			// is not a use-before-definition error.
			n.FuncSymbol = s
		default:
			diags.Add(diag.VariableNotDefined, n.Span(), "%q does not name a variable", n.Name)
		}
	case *ast.VariableDecl:
		if n.Symbol != nil {
			defined[n.Symbol.SymbolID()] = true
		}
	case *ast.Binary:
		if n.Op == ast.Assign {
			if decl, ok := n.LHS.(*ast.VariableDecl); ok {
				walkExprRefs(n.RHS, scope, defined, diags)
				if decl.Symbol != nil {
					defined[decl.Symbol.SymbolID()] = true
				}
				return
			}
		}
		walkExprRefs(n.LHS, scope, defined, diags)
		walkExprRefs(n.RHS, scope, defined, diags)
	case *ast.CompoundExpr:
		walkCompoundRefs(n, defined, diags)
	case *ast.FuncDef:
		for _, param := range n.Params {
			if param.Symbol != nil {
				defined[param.Symbol.SymbolID()] = true
			}
		}
		walkExprRefs(n.Body, n.ParameterScope, defined, diags)
	case *ast.ClassDef:
		walkCompoundRefs(n.Body, defined, diags)
	case *ast.IfExpr:
		walkExprRefs(n.Cond, scope, defined, diags)
		walkExprRefs(n.Then, scope, defined, diags)
		if n.Else != nil {
			walkExprRefs(n.Else, scope, defined, diags)
		}
	case *ast.WhileExpr:
		walkExprRefs(n.Cond, scope, defined, diags)
		walkExprRefs(n.Body, scope, defined, diags)
	case *ast.Unary:
		walkExprRefs(n.Operand, scope, defined, diags)
	case *ast.Cast:
		walkExprRefs(n.Value, scope, defined, diags)
	case *ast.FuncCall:
		walkExprRefs(n.Target, scope, defined, diags)
		for _, a := range n.Args {
			walkExprRefs(a, scope, defined, diags)
		}
	case *ast.Dot:
		walkExprRefs(n.LHS, scope, defined, diags)
	case *ast.Assert:
		walkExprRefs(n.Cond, scope, defined, diags)
	}
}
