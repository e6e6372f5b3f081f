package codegen

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/printer"
)

// Transform lowers an analyzed module to IR, one Function per top-level
// func definition. Top-level expressions that aren't func definitions
// (the module's "main" statements) carry nothing a backend signature
// needs and are left to the caller to dump separately if it wants them.
func Transform(m *ast.Module) *Module {
	out := &Module{Name: m.Name}
	for _, stmt := range m.Body.Stmts {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		fn, ok := es.Expr.(*ast.FuncDef)
		if !ok {
			continue
		}
		out.Functions = append(out.Functions, transformFunc(fn))
	}
	return out
}

func transformFunc(fn *ast.FuncDef) *Function {
	params := make([]Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = Param{Name: p.Name, Type: p.TypeRef.ResolvedType}
	}
	return &Function{
		Name:       fn.Name,
		Params:     params,
		ReturnType: fn.ReturnTypeRef.ResolvedType,
		Body:       printer.PrintExpr(fn.Body),
	}
}
