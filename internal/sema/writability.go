package sema

import "github.com/anodelang/anode/internal/ast"

// isWritable reports whether e may appear as the lhs of '=', or as the
// operand of '++'/'--' (spec.md §4.5): a plain variable reference bound to a
// real symbol, a VariableDecl (the declaration itself is always an lvalue of
// its declared type), or a Dot member access. Everything else — literals,
// arithmetic, calls, nested assignments — is not.
func isWritable(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.VariableRef:
		return n.Symbol != nil
	case *ast.VariableDecl:
		return true
	case *ast.Dot:
		return true
	default:
		return false
	}
}
