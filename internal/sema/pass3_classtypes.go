package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// populateClassTypes is pass 3: for every ClassDef, build its ClassType's
// Fields and Methods from the declarations directly inside its body — a
// nested VariableDecl becomes a field, a nested FuncDef becomes a method.
// Field types are left empty here; they're filled in by pass 4 once the
// declarations' TypeRefs resolve. A method's Function type is the very
// same object its FunctionSymbol carries, so pass 4 only ever needs to
// mutate one place.
func populateClassTypes(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	walkCompoundClassTypes(module.Body)
}

func walkCompoundClassTypes(c *ast.CompoundExpr) {
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			walkExprClassTypes(es.Expr)
		}
	}
}

func walkExprClassTypes(e ast.Expr) {
	switch n := e.(type) {
	case *ast.ClassDef:
		populateOneClassType(n)
		walkCompoundClassTypes(n.Body)
	case *ast.CompoundExpr:
		walkCompoundClassTypes(n)
	case *ast.FuncDef:
		walkExprClassTypes(n.Body)
	case *ast.IfExpr:
		walkExprClassTypes(n.Cond)
		walkExprClassTypes(n.Then)
		if n.Else != nil {
			walkExprClassTypes(n.Else)
		}
	case *ast.WhileExpr:
		walkExprClassTypes(n.Cond)
		walkExprClassTypes(n.Body)
	case *ast.Binary:
		walkExprClassTypes(n.LHS)
		walkExprClassTypes(n.RHS)
	case *ast.Unary:
		walkExprClassTypes(n.Operand)
	case *ast.Cast:
		walkExprClassTypes(n.Value)
	case *ast.FuncCall:
		walkExprClassTypes(n.Target)
		for _, a := range n.Args {
			walkExprClassTypes(a)
		}
	case *ast.Dot:
		walkExprClassTypes(n.LHS)
	case *ast.Assert:
		walkExprClassTypes(n.Cond)
	}
}

func populateOneClassType(def *ast.ClassDef) {
	if def.Symbol == nil {
		return
	}
	classType, ok := def.Symbol.Type.(*types.Class)
	if !ok {
		return
	}
	for _, stmt := range def.Body.Stmts {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		switch inner := es.Expr.(type) {
		case *ast.VariableDecl:
			classType.Fields = append(classType.Fields, types.Field{Name: inner.Name})
		case *ast.FuncDef:
			var fnType *types.Function
			if inner.Symbol != nil {
				fnType = inner.Symbol.Type
			}
			if fnType == nil {
				fnType = &types.Function{}
			}
			classType.Methods = append(classType.Methods, types.Method{Name: inner.Name, Type: fnType})
		}
	}
}
