// Package printer implements the Language's pretty printer: a read-only
// walk producing an indented textual dump of an annotated AST, used for
// debugging and golden-file tests (spec.md §4.5/§6). It never mutates the
// tree it walks.
package printer

import (
	"fmt"
	"strings"

	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/types"
)

// Print renders module as a deterministic, indented textual dump: one
// "Kind: detail" header line per node, two spaces of indent per depth
// level, with a compound expression's header additionally listing its
// scope's variables in alphabetical order as "(name:Type, ...)".
func Print(module *ast.Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Module: %s\n", module.Name)
	printCompound(&sb, module.Body, 1)
	return sb.String()
}

// PrintExpr renders a single expression the same way Print renders a
// module body, starting at depth 0 — useful for dumping a sub-tree (e.g.
// one function's body) in isolation.
func PrintExpr(e ast.Expr) string {
	var sb strings.Builder
	printExpr(&sb, e, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func typeName(t types.Type) string {
	if t == nil {
		return "?"
	}
	return t.Name()
}

func printCompound(sb *strings.Builder, c *ast.CompoundExpr, depth int) {
	indent(sb, depth)
	sb.WriteString("Compound: ")
	sb.WriteString(varList(c.Scope))
	sb.WriteString("\n")
	for _, stmt := range c.Stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			printExpr(sb, es.Expr, depth+1)
		}
	}
}

// varList renders scope's directly-declared variables, alphabetically
// sorted, as "(name:Type, ...)" — functions and nested types declared in
// the same scope are not variables and are omitted (spec.md §4.5: "append
// their scope's variables").
func varList(scope *ast.Scope) string {
	var parts []string
	for _, name := range scope.SortedNames() {
		sym, ok := scope.Lookup(name)
		if !ok {
			continue
		}
		v, ok := sym.(*ast.VariableSymbol)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%s", name, typeName(v.Type)))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printExpr(sb *strings.Builder, e ast.Expr, depth int) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.LiteralInt32:
		header(sb, depth, "LiteralInt32", fmt.Sprintf("%d", n.Value))
	case *ast.LiteralFloat:
		header(sb, depth, "LiteralFloat", fmt.Sprintf("%g", n.Value))
	case *ast.LiteralBool:
		header(sb, depth, "LiteralBool", fmt.Sprintf("%t", n.Value))
	case *ast.VariableRef:
		header(sb, depth, "VariableRef", fmt.Sprintf("%s (%s) : %s", n.Name, n.Access, typeName(n.Type())))
	case *ast.VariableDecl:
		header(sb, depth, "VariableDecl", fmt.Sprintf("%s : %s", n.Name, n.TypeRef.Name))
	case *ast.Binary:
		header(sb, depth, "Binary", fmt.Sprintf("%s : %s", n.Op, typeName(n.Type())))
		printExpr(sb, n.LHS, depth+1)
		printExpr(sb, n.RHS, depth+1)
	case *ast.Unary:
		header(sb, depth, "Unary", fmt.Sprintf("%s : %s", n.Op, typeName(n.Type())))
		printExpr(sb, n.Operand, depth+1)
	case *ast.Cast:
		header(sb, depth, "Cast", fmt.Sprintf("%s -> %s", n.Kind, n.TargetTypeRef.Name))
		printExpr(sb, n.Value, depth+1)
	case *ast.IfExpr:
		header(sb, depth, "If", typeName(n.Type()))
		printExpr(sb, n.Cond, depth+1)
		printExpr(sb, n.Then, depth+1)
		if n.Else != nil {
			printExpr(sb, n.Else, depth+1)
		}
	case *ast.WhileExpr:
		header(sb, depth, "While", "")
		printExpr(sb, n.Cond, depth+1)
		printExpr(sb, n.Body, depth+1)
	case *ast.CompoundExpr:
		printCompound(sb, n, depth)
	case *ast.FuncDef:
		header(sb, depth, "FuncDef", fmt.Sprintf("%s(%s) : %s", n.Name, paramList(n.Params), n.ReturnTypeRef.Name))
		printExpr(sb, n.Body, depth+1)
	case *ast.FuncCall:
		header(sb, depth, "FuncCall", typeName(n.Type()))
		printExpr(sb, n.Target, depth+1)
		for _, a := range n.Args {
			printExpr(sb, a, depth+1)
		}
	case *ast.Dot:
		access := ast.Read
		if n.IsWrite {
			access = ast.Write
		}
		header(sb, depth, "Dot", fmt.Sprintf(".%s (%s) : %s", n.MemberName, access, typeName(n.Type())))
		printExpr(sb, n.LHS, depth+1)
	case *ast.Assert:
		header(sb, depth, "Assert", "")
		printExpr(sb, n.Cond, depth+1)
	case *ast.ClassDef:
		header(sb, depth, "ClassDef", n.Name)
		printCompound(sb, n.Body, depth+1)
	}
}

func header(sb *strings.Builder, depth int, kind, detail string) {
	indent(sb, depth)
	sb.WriteString(kind)
	sb.WriteString(":")
	if detail != "" {
		sb.WriteString(" ")
		sb.WriteString(detail)
	}
	sb.WriteString("\n")
}

func paramList(params []*ast.ParameterDef) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s:%s", p.Name, p.TypeRef.Name)
	}
	return strings.Join(parts, ", ")
}
