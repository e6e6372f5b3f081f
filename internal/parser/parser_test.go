package parser_test

import (
	"testing"

	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/lexer"
	"github.com/anodelang/anode/internal/parser"
)

func parseModule(t *testing.T, source string) (*ast.Module, *diag.Stream) {
	t.Helper()
	diags := diag.New()
	ids := &ast.IDGen{}
	l := lexer.New("t.an", source, diags)
	p := parser.New(l, diags, ids)
	return p.ParseModule("t"), diags
}

func singleExpr(t *testing.T, m *ast.Module) ast.Expr {
	t.Helper()
	if len(m.Body.Stmts) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(m.Body.Stmts))
	}
	return m.Body.Stmts[0].(*ast.ExprStmt).Expr
}

func TestPrecedenceClimbsMulOverAdd(t *testing.T) {
	m, diags := parseModule(t, "1 + 2 * 3;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	top, ok := singleExpr(t, m).(*ast.Binary)
	if !ok || top.Op != ast.Add {
		t.Fatalf("expected top-level Add, got %#v", singleExpr(t, m))
	}
	rhs, ok := top.RHS.(*ast.Binary)
	if !ok || rhs.Op != ast.Mul {
		t.Fatalf("expected rhs to be Mul, got %#v", top.RHS)
	}
	if _, ok := top.LHS.(*ast.LiteralInt32); !ok {
		t.Errorf("expected lhs to be a literal, got %#v", top.LHS)
	}
}

func TestAssignIsRightAssociative(t *testing.T) {
	m, diags := parseModule(t, "x:int; y:int; x = y = 1;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	stmt := m.Body.Stmts[2].(*ast.ExprStmt).Expr.(*ast.Binary)
	if stmt.Op != ast.Assign {
		t.Fatalf("expected outer Assign, got %v", stmt.Op)
	}
	inner, ok := stmt.RHS.(*ast.Binary)
	if !ok || inner.Op != ast.Assign {
		t.Fatalf("expected rhs of x=y=1 to itself be an Assign, got %#v", stmt.RHS)
	}
}

func TestVariableDeclWithInitializerIsAssignLHS(t *testing.T) {
	m, diags := parseModule(t, "x:int = 5;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	bin := singleExpr(t, m).(*ast.Binary)
	if _, ok := bin.LHS.(*ast.VariableDecl); !ok {
		t.Fatalf("expected lhs to be a VariableDecl, got %#v", bin.LHS)
	}
}

func TestBareVariableRefDefaultsToRead(t *testing.T) {
	m, diags := parseModule(t, "x:int; x + 1;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	bin := m.Body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Binary)
	ref, ok := bin.LHS.(*ast.VariableRef)
	if !ok {
		t.Fatalf("expected lhs to be a VariableRef, got %#v", bin.LHS)
	}
	if ref.Access != ast.Read {
		t.Errorf("expected default access Read, got %v", ref.Access)
	}
}

func TestAssignToIdentifierSetsWriteAccess(t *testing.T) {
	m, diags := parseModule(t, "x:int; x = 2;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	bin := m.Body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Binary)
	ref := bin.LHS.(*ast.VariableRef)
	if ref.Access != ast.Write {
		t.Errorf("expected access Write for assignment lhs, got %v", ref.Access)
	}
}

func TestIfWithElseParsesBothBranches(t *testing.T) {
	m, diags := parseModule(t, "if (1 == 1) 2 else 3;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	ifExpr, ok := singleExpr(t, m).(*ast.IfExpr)
	if !ok {
		t.Fatalf("expected IfExpr, got %#v", singleExpr(t, m))
	}
	if _, ok := ifExpr.Cond.(*ast.Binary); !ok {
		t.Errorf("expected condition to be a Binary, got %#v", ifExpr.Cond)
	}
	if ifExpr.Else == nil {
		t.Error("expected an else branch")
	}
}

func TestIfWithoutElseLeavesElseNil(t *testing.T) {
	m, diags := parseModule(t, "if (1) 2;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	ifExpr := singleExpr(t, m).(*ast.IfExpr)
	if ifExpr.Else != nil {
		t.Errorf("expected nil else branch, got %#v", ifExpr.Else)
	}
}

func TestTernaryParsesAsIfExpr(t *testing.T) {
	m, diags := parseModule(t, "(? 1; 2; 3);")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	ifExpr, ok := singleExpr(t, m).(*ast.IfExpr)
	if !ok || ifExpr.Else == nil {
		t.Fatalf("expected a complete ternary IfExpr, got %#v", singleExpr(t, m))
	}
}

func TestWhileParsesCondAndBody(t *testing.T) {
	m, diags := parseModule(t, "while (1) { 2; }")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	wh, ok := singleExpr(t, m).(*ast.WhileExpr)
	if !ok {
		t.Fatalf("expected WhileExpr, got %#v", singleExpr(t, m))
	}
	if _, ok := wh.Body.(*ast.CompoundExpr); !ok {
		t.Errorf("expected block body, got %#v", wh.Body)
	}
}

func TestExplicitCast(t *testing.T) {
	m, diags := parseModule(t, "cast<int>(2.5);")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	c, ok := singleExpr(t, m).(*ast.Cast)
	if !ok || c.Kind != ast.Explicit {
		t.Fatalf("expected explicit Cast, got %#v", singleExpr(t, m))
	}
	if c.TargetTypeRef.Name != "int" {
		t.Errorf("expected target type int, got %s", c.TargetTypeRef.Name)
	}
}

func TestFuncDefParsesParametersAndBody(t *testing.T) {
	m, diags := parseModule(t, "func add:int(a:int, b:int) { a + b; }")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	fn, ok := singleExpr(t, m).(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected FuncDef, got %#v", singleExpr(t, m))
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("expected add/2 params, got %s/%d", fn.Name, len(fn.Params))
	}
	if fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("unexpected parameter names: %s, %s", fn.Params[0].Name, fn.Params[1].Name)
	}
}

func TestFuncDefOptionalTrailingSemicolon(t *testing.T) {
	_, diags := parseModule(t, "func f:void() {} func g:void() {};")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
}

func TestClassWrapsNonCompoundBodyInCompound(t *testing.T) {
	m, diags := parseModule(t, "class Point x:int;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	cd, ok := singleExpr(t, m).(*ast.ClassDef)
	if !ok {
		t.Fatalf("expected ClassDef, got %#v", singleExpr(t, m))
	}
	if cd.Body.Scope.Kind != ast.Instance || cd.Body.Scope.Name != "Point" {
		t.Errorf("expected Instance scope named Point, got kind=%v name=%s", cd.Body.Scope.Kind, cd.Body.Scope.Name)
	}
	if len(cd.Body.Stmts) != 1 {
		t.Errorf("expected the bare field decl to be wrapped as the sole statement, got %d", len(cd.Body.Stmts))
	}
}

func TestClassWithExplicitCompoundBodyIsUsedDirectly(t *testing.T) {
	m, diags := parseModule(t, "class Point { x:int; y:int; }")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	cd := singleExpr(t, m).(*ast.ClassDef)
	if len(cd.Body.Stmts) != 2 {
		t.Fatalf("expected 2 field statements, got %d", len(cd.Body.Stmts))
	}
}

func TestAssertParsesCondition(t *testing.T) {
	m, diags := parseModule(t, "assert(1 == 1);")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	if _, ok := singleExpr(t, m).(*ast.Assert); !ok {
		t.Fatalf("expected Assert, got %#v", singleExpr(t, m))
	}
}

func TestDotAndCallPrecedenceOverArithmetic(t *testing.T) {
	m, diags := parseModule(t, "a.b() + 1;")
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics())
	}
	top := singleExpr(t, m).(*ast.Binary)
	if top.Op != ast.Add {
		t.Fatalf("expected top-level Add, got %v", top.Op)
	}
	call, ok := top.LHS.(*ast.FuncCall)
	if !ok {
		t.Fatalf("expected lhs to be a FuncCall, got %#v", top.LHS)
	}
	if _, ok := call.Target.(*ast.Dot); !ok {
		t.Errorf("expected call target to be a Dot, got %#v", call.Target)
	}
}

func TestMissingSemicolonReportsUnexpectedToken(t *testing.T) {
	_, diags := parseModule(t, "1 + 2 3;")
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for the missing ';'")
	}
	if diags.Diagnostics()[0].Kind != diag.UnexpectedToken {
		t.Errorf("expected UnexpectedToken, got %v", diags.Diagnostics()[0].Kind)
	}
}

func TestSurpriseTokenRecoversAtNextStatement(t *testing.T) {
	m, diags := parseModule(t, ") ; 1 + 1;")
	if !diags.HasErrors() {
		t.Fatal("expected a SurpriseToken diagnostic for the leading ')'")
	}
	if diags.Diagnostics()[0].Kind != diag.SurpriseToken {
		t.Errorf("expected SurpriseToken, got %v", diags.Diagnostics()[0].Kind)
	}
	if len(m.Body.Stmts) != 1 {
		t.Fatalf("expected parsing to recover and still capture the trailing statement, got %d stmts", len(m.Body.Stmts))
	}
}

func TestAssignToLiteralParsesStructurallyLeavingWritabilityToSema(t *testing.T) {
	m, diags := parseModule(t, "1 = 2;")
	if diags.HasErrors() {
		t.Fatalf("expected no parse-time diagnostics (writability is a semantic concern), got %v", diags.Diagnostics())
	}
	bin := singleExpr(t, m).(*ast.Binary)
	if bin.Op != ast.Assign {
		t.Fatalf("expected Assign, got %v", bin.Op)
	}
	if _, ok := bin.LHS.(*ast.LiteralInt32); !ok {
		t.Errorf("expected lhs to remain a literal, got %#v", bin.LHS)
	}
}
