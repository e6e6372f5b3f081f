package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// resolveTypeRefs is pass 4: every TypeRef in the tree (a VariableDecl's
// declared type, a Cast's target, a FuncDef's return and parameter types)
// is resolved against the primitive-type table and, failing that, the
// enclosing scope. A class field's Type is synced from its declaration's
// TypeRef as it resolves, since pass 3 left it empty.
func resolveTypeRefs(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundTypeRefs(module.Body, nil, diags)
}

func resolveTypeRef(ref *ast.TypeRef, scope *ast.Scope, diags *diag.Stream) types.Type {
	if prim, ok := types.Primitives[ref.Name]; ok {
		ref.ResolvedType = prim
		return prim
	}
	sym, ok := scope.RecursiveFind(ref.Name)
	if !ok {
		diags.Add(diag.TypeNotDefined, ref.Span(), "type %q is not defined", ref.Name)
		return nil
	}
	tsym, ok := sym.(*ast.TypeSymbol)
	if !ok {
		diags.Add(diag.SymbolIsNotAType, ref.Span(), "%q is not a type", ref.Name)
		return nil
	}
	ref.ResolvedType = tsym.Type
	return tsym.Type
}

// walkCompoundTypeRefs resolves every TypeRef reachable from c. currentClass
// is non-nil exactly when c is a ClassDef's own body, so a field's Type can
// be synced the moment its declaration's TypeRef resolves.
func walkCompoundTypeRefs(c *ast.CompoundExpr, currentClass *types.Class, diags *diag.Stream) {
	scope := c.Scope
	for _, stmt := range c.Stmts {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		decl, ok := es.Expr.(*ast.VariableDecl)
		if !ok {
			walkExprTypeRefs(es.Expr, scope, diags)
			continue
		}
		typ := resolveTypeRef(decl.TypeRef, scope, diags)
		if decl.Symbol != nil {
			decl.Symbol.Type = typ
		}
		if currentClass != nil {
			for i := range currentClass.Fields {
				if currentClass.Fields[i].Name == decl.Name {
					currentClass.Fields[i].Type = typ
				}
			}
		}
	}
}

func walkExprTypeRefs(e ast.Expr, scope *ast.Scope, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.VariableDecl:
		typ := resolveTypeRef(n.TypeRef, scope, diags)
		if n.Symbol != nil {
			n.Symbol.Type = typ
		}
	case *ast.Cast:
		resolveTypeRef(n.TargetTypeRef, scope, diags)
		walkExprTypeRefs(n.Value, scope, diags)
	case *ast.FuncDef:
		retType := resolveTypeRef(n.ReturnTypeRef, scope, diags)
		var paramTypes []types.Type
		for _, param := range n.Params {
			pt := resolveTypeRef(param.TypeRef, scope, diags)
			if param.Symbol != nil {
				param.Symbol.Type = pt
			}
			paramTypes = append(paramTypes, pt)
		}
		if n.Symbol != nil {
			n.Symbol.Type.ReturnType = retType
			n.Symbol.Type.ParamTypes = paramTypes
		}
		walkExprTypeRefs(n.Body, n.ParameterScope, diags)
	case *ast.ClassDef:
		walkCompoundTypeRefs(n.Body, classTypeOf(n), diags)
	case *ast.CompoundExpr:
		walkCompoundTypeRefs(n, nil, diags)
	case *ast.IfExpr:
		walkExprTypeRefs(n.Cond, scope, diags)
		walkExprTypeRefs(n.Then, scope, diags)
		if n.Else != nil {
			walkExprTypeRefs(n.Else, scope, diags)
		}
	case *ast.WhileExpr:
		walkExprTypeRefs(n.Cond, scope, diags)
		walkExprTypeRefs(n.Body, scope, diags)
	case *ast.Binary:
		walkExprTypeRefs(n.LHS, scope, diags)
		walkExprTypeRefs(n.RHS, scope, diags)
	case *ast.Unary:
		walkExprTypeRefs(n.Operand, scope, diags)
	case *ast.FuncCall:
		walkExprTypeRefs(n.Target, scope, diags)
		for _, a := range n.Args {
			walkExprTypeRefs(a, scope, diags)
		}
	case *ast.Dot:
		walkExprTypeRefs(n.LHS, scope, diags)
	case *ast.Assert:
		walkExprTypeRefs(n.Cond, scope, diags)
	}
}

func classTypeOf(def *ast.ClassDef) *types.Class {
	if def.Symbol == nil {
		return nil
	}
	ct, _ := def.Symbol.Type.(*types.Class)
	return ct
}
