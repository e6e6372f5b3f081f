package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// populateSymbolTables is pass 2: walk the tree, inserting a symbol into the
// enclosing scope for every VariableDecl, FuncDef (plus one per parameter,
// into its own ParameterScope), and ClassDef. A name collision within a
// scope reports SymbolAlreadyDefinedInScope but does not stop the walk —
// the colliding node is given the symbol already declared under that name
// when it is of the same kind, and no Symbol otherwise.
func populateSymbolTables(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundSymbols(module.Body, ids, diags)
}

func walkCompoundSymbols(c *ast.CompoundExpr, ids *ast.IDGen, diags *diag.Stream) {
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprSymbols(es.Expr, c.Scope, ids, diags)
		}
	}
}

func walkExprSymbols(e ast.Expr, scope *ast.Scope, ids *ast.IDGen, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.VariableDecl:
		sym, inserted := ast.NewVariableSymbol(ids, scope, n.Name, nil)
		if !inserted {
			diags.Add(diag.SymbolAlreadyDefinedInScope, n.Span(), "%q is already defined in this scope", n.Name)
		}
		n.Symbol = sym
	case *ast.FuncDef:
		sym, inserted := ast.NewFunctionSymbol(ids, scope, n.Name, &types.Function{})
		if !inserted {
			diags.Add(diag.SymbolAlreadyDefinedInScope, n.Span(), "%q is already defined in this scope", n.Name)
		}
		n.Symbol = sym
		for _, param := range n.Params {
			pSym, pInserted := ast.NewVariableSymbol(ids, n.ParameterScope, param.Name, nil)
			if !pInserted {
				diags.Add(diag.SymbolAlreadyDefinedInScope, param.Span(), "parameter %q is already defined", param.Name)
			}
			param.Symbol = pSym
		}
		walkExprSymbols(n.Body, n.ParameterScope, ids, diags)
	case *ast.ClassDef:
		sym, inserted := ast.NewTypeSymbol(ids, scope, n.Name, &types.Class{ClassName: n.Name})
		if !inserted {
			diags.Add(diag.SymbolAlreadyDefinedInScope, n.Span(), "%q is already defined in this scope", n.Name)
		}
		n.Symbol = sym
		walkCompoundSymbols(n.Body, ids, diags)
	case *ast.CompoundExpr:
		walkCompoundSymbols(n, ids, diags)
	case *ast.IfExpr:
		walkExprSymbols(n.Cond, scope, ids, diags)
		walkExprSymbols(n.Then, scope, ids, diags)
		if n.Else != nil {
			walkExprSymbols(n.Else, scope, ids, diags)
		}
	case *ast.WhileExpr:
		walkExprSymbols(n.Cond, scope, ids, diags)
		walkExprSymbols(n.Body, scope, ids, diags)
	case *ast.Binary:
		walkExprSymbols(n.LHS, scope, ids, diags)
		walkExprSymbols(n.RHS, scope, ids, diags)
	case *ast.Unary:
		walkExprSymbols(n.Operand, scope, ids, diags)
	case *ast.Cast:
		walkExprSymbols(n.Value, scope, ids, diags)
	case *ast.FuncCall:
		walkExprSymbols(n.Target, scope, ids, diags)
		for _, a := range n.Args {
			walkExprSymbols(a, scope, ids, diags)
		}
	case *ast.Dot:
		walkExprSymbols(n.LHS, scope, ids, diags)
	case *ast.Assert:
		walkExprSymbols(n.Cond, scope, ids, diags)
	}
}
