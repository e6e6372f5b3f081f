package codegen_test

import (
	"testing"

	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/codegen"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/lexer"
	"github.com/anodelang/anode/internal/parser"
	"github.com/anodelang/anode/internal/sema"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, source string) *ast.Module {
	t.Helper()
	diags := diag.New()
	ids := &ast.IDGen{}
	l := lexer.New("t.an", source, diags)
	p := parser.New(l, diags, ids)
	module := p.ParseModule("t")
	require.False(t, diags.HasErrors(), "unexpected parse diagnostics: %v", diags.Diagnostics())
	sema.Analyze(module, ids, diags)
	require.False(t, diags.HasErrors(), "unexpected semantic diagnostics: %v", diags.Diagnostics())
	return module
}

func TestTransformCollectsTopLevelFunctions(t *testing.T) {
	module := analyze(t, "func add:int(a:int, b:int) { a + b; }")
	ir := codegen.Transform(module)
	require.Len(t, ir.Functions, 1)

	fn := ir.Functions[0]
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name)
	require.Equal(t, "b", fn.Params[1].Name)
	require.NotNil(t, fn.ReturnType)
	require.Equal(t, "int", fn.ReturnType.Name())
}

func TestTransformIgnoresNonFunctionTopLevelStatements(t *testing.T) {
	module := analyze(t, "x:int = 1; func f:int() { 1; }")
	ir := codegen.Transform(module)
	require.Len(t, ir.Functions, 1)
}

func TestDumpBackendEmitsSignatureAndBody(t *testing.T) {
	module := analyze(t, "func inc:int(a:int) { a + 1; }")
	out, err := codegen.Emit(module, codegen.DumpBackend{})
	require.NoError(t, err)
	require.Contains(t, out, "func inc(a:int) : int")
	require.Contains(t, out, "Binary: + : int")
}
