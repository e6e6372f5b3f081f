package codegen

import "github.com/anodelang/anode/internal/ast"

// Emit lowers m and hands the result to b. Callers that only need the
// built-in dump can use DumpBackend{}; a future LLVM backend would satisfy
// the same Backend interface and need no changes here.
func Emit(m *ast.Module, b Backend) (string, error) {
	return b.Generate(Transform(m))
}
