// Package codegen is the seam between a fully analyzed AST and whatever
// backend eventually consumes it (an LLVM-based code generator, per
// spec.md §1, is explicitly out of scope for this module). It lowers a
// *ast.Module to a small, backend-agnostic IR and hands that to a Backend.
package codegen

import "github.com/anodelang/anode/internal/types"

// Module is the lowered form of a compilation unit: its top-level
// functions, stripped of everything a backend doesn't need to decide how
// to emit a call or a signature.
type Module struct {
	Name      string
	Functions []*Function
}

// Function is one function definition ready for a backend: its signature,
// plus a pretty-printed dump of its body standing in for a real
// instruction sequence (see DumpBackend).
type Function struct {
	Name       string
	Params     []Param
	ReturnType types.Type
	Body       string
}

// Param is one parameter of a lowered Function.
type Param struct {
	Name string
	Type types.Type
}
