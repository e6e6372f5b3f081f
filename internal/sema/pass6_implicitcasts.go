package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/types"
)

// addImplicitCasts is pass 6: a single post-order walk that both computes
// every expression's Type (bottom-up from its children) and, while doing
// so, grafts an implicit Cast around any operand whose type doesn't
// already match what its context requires — a Binary's operands, an
// IfExpr's condition and mismatched branches, a WhileExpr's condition. The
// graft replaces the child's own field (LHS/RHS/Cond/...) with the new Cast
// node wrapping the original child.
func addImplicitCasts(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	typeCompound(module.Body, ids, diags)
}

func typeCompound(c *ast.CompoundExpr, ids *ast.IDGen, diags *diag.Stream) {
	last := types.Type(types.Void)
	for _, stmt := range c.Stmts {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		typeExpr(es.Expr, ids, diags)
		last = es.Expr.Type()
	}
	c.SetType(last)
}

func typeExpr(e ast.Expr, ids *ast.IDGen, diags *diag.Stream) {
	switch n := e.(type) {
	case *ast.LiteralInt32:
		n.SetType(types.Int32)
	case *ast.LiteralFloat:
		n.SetType(types.Float)
	case *ast.LiteralBool:
		n.SetType(types.Bool)
	case *ast.VariableRef:
		switch {
		case n.Symbol != nil:
			n.SetType(n.Symbol.Type)
		case n.FuncSymbol != nil:
			n.SetType(n.FuncSymbol.Type)
		default:
			n.SetType(types.Void)
		}
	case *ast.VariableDecl:
		if n.TypeRef != nil && n.TypeRef.ResolvedType != nil {
			n.SetType(n.TypeRef.ResolvedType)
		} else {
			n.SetType(types.Void)
		}
	case *ast.CompoundExpr:
		typeCompound(n, ids, diags)
	case *ast.Unary:
		typeExpr(n.Operand, ids, diags)
		if n.Op == ast.Not {
			n.SetType(types.Bool)
		} else if n.Operand.Type() != nil {
			n.SetType(n.Operand.Type())
		} else {
			n.SetType(types.Void)
		}
	case *ast.Cast:
		typeExpr(n.Value, ids, diags)
		if n.TargetTypeRef.ResolvedType != nil {
			n.SetType(n.TargetTypeRef.ResolvedType)
		}
	case *ast.Binary:
		typeExpr(n.LHS, ids, diags)
		typeExpr(n.RHS, ids, diags)
		typeBinary(n, ids, diags)
	case *ast.IfExpr:
		typeExpr(n.Cond, ids, diags)
		typeExpr(n.Then, ids, diags)
		if n.Else != nil {
			typeExpr(n.Else, ids, diags)
		}
		typeIf(n, ids, diags)
	case *ast.WhileExpr:
		typeExpr(n.Cond, ids, diags)
		typeExpr(n.Body, ids, diags)
		typeWhile(n, ids, diags)
		n.SetType(types.Void)
	case *ast.FuncDef:
		typeExpr(n.Body, ids, diags)
		if n.Symbol != nil {
			n.SetType(n.Symbol.Type)
		} else {
			n.SetType(types.Void)
		}
	case *ast.FuncCall:
		typeExpr(n.Target, ids, diags)
		for _, a := range n.Args {
			typeExpr(a, ids, diags)
		}
		if ft, ok := n.Target.Type().(*types.Function); ok && ft.ReturnType != nil {
			n.SetType(ft.ReturnType)
		} else {
			n.SetType(types.Void)
		}
	case *ast.Dot:
		typeExpr(n.LHS, ids, diags)
		typeDot(n, diags)
	case *ast.Assert:
		typeExpr(n.Cond, ids, diags)
		n.Cond = coerceToBool(ids, n.Cond, diags, diag.InvalidImplicitCastInBinaryExpr)
		n.SetType(types.Void)
	case *ast.ClassDef:
		typeCompound(n.Body, ids, diags)
		n.SetType(types.Void)
	}
}

func typeDot(n *ast.Dot, diags *diag.Stream) {
	ct, ok := n.LHS.Type().(*types.Class)
	if !ok {
		diags.Add(diag.LeftOfDotNotClass, n.Span(), "left of '.' is not a class instance")
		n.SetType(types.Void)
		return
	}
	if field, ok := ct.Field(n.MemberName); ok {
		n.SetType(field.Type)
		return
	}
	if method, ok := ct.Method(n.MemberName); ok {
		n.SetType(method.Type)
		return
	}
	diags.Add(diag.ClassMemberNotFound, n.Span(), "%s has no member %q", ct.Name(), n.MemberName)
	n.SetType(types.Void)
}

// coerceToBool wraps e in an implicit Cast to bool if e's type permits one,
// otherwise reports kind at e's span and returns e unchanged.
func coerceToBool(ids *ast.IDGen, e ast.Expr, diags *diag.Stream, kind diag.Kind) ast.Expr {
	if e.Type() == nil || types.Equal(e.Type(), types.Bool) {
		return e
	}
	if types.CanImplicitCast(e.Type(), types.Bool) {
		return ast.NewImplicitCast(ids, e, types.Bool)
	}
	diags.Add(kind, e.Span(), "cannot implicitly convert %s to bool", e.Type().Name())
	return e
}

func typeBinary(n *ast.Binary, ids *ast.IDGen, diags *diag.Stream) {
	switch {
	case n.Op.IsLogical():
		n.LHS = coerceToBool(ids, n.LHS, diags, diag.InvalidImplicitCastInBinaryExpr)
		n.RHS = coerceToBool(ids, n.RHS, diags, diag.InvalidImplicitCastInBinaryExpr)
		n.SetType(types.Bool)
	case n.Op == ast.Assign:
		if !isWritable(n.LHS) {
			diags.Add(diag.CannotAssignToLValue, n.OpSpan, "left-hand side of '=' is not assignable")
		}
		lhsType, rhsType := n.LHS.Type(), n.RHS.Type()
		if lhsType != nil && rhsType != nil && !types.Equal(lhsType, rhsType) {
			if types.CanImplicitCast(rhsType, lhsType) {
				n.RHS = ast.NewImplicitCast(ids, n.RHS, lhsType)
			} else {
				diags.Add(diag.InvalidImplicitCastInBinaryExpr, n.OpSpan, "cannot assign %s to %s", rhsType.Name(), lhsType.Name())
			}
		}
		n.SetType(lhsType)
	default:
		lhsType, rhsType := n.LHS.Type(), n.RHS.Type()
		if lhsType != nil && rhsType != nil && !types.Equal(lhsType, rhsType) {
			switch {
			case types.CanImplicitCast(lhsType, rhsType):
				n.LHS = ast.NewImplicitCast(ids, n.LHS, rhsType)
				lhsType = rhsType
			case types.CanImplicitCast(rhsType, lhsType):
				n.RHS = ast.NewImplicitCast(ids, n.RHS, lhsType)
				rhsType = lhsType
			default:
				diags.Add(diag.InvalidImplicitCastInBinaryExpr, n.OpSpan, "cannot unify operand types %s and %s", lhsType.Name(), rhsType.Name())
			}
		}
		if n.Op.IsComparison() {
			n.SetType(types.Bool)
		} else {
			n.SetType(lhsType)
		}
	}
}

func typeIf(n *ast.IfExpr, ids *ast.IDGen, diags *diag.Stream) {
	n.Cond = coerceToBool(ids, n.Cond, diags, diag.InvalidImplicitCastInIfCondition)
	if n.Else == nil {
		n.SetType(types.Void)
		return
	}
	thenType, elseType := n.Then.Type(), n.Else.Type()
	if thenType != nil && elseType != nil && !types.Equal(thenType, elseType) {
		switch {
		case types.CanImplicitCast(thenType, elseType):
			n.Then = ast.NewImplicitCast(ids, n.Then, elseType)
			thenType = elseType
		case types.CanImplicitCast(elseType, thenType):
			n.Else = ast.NewImplicitCast(ids, n.Else, thenType)
			elseType = thenType
		default:
			diags.Add(diag.InvalidImplicitCastInIfBodies, n.Span(), "if branches have incompatible types %s and %s", thenType.Name(), elseType.Name())
		}
	}
	n.SetType(thenType)
}

func typeWhile(n *ast.WhileExpr, ids *ast.IDGen, diags *diag.Stream) {
	n.Cond = coerceToBool(ids, n.Cond, diags, diag.InvalidImplicitCastInInWhileCondition)
}
