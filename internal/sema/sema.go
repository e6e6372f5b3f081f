// Package sema implements the Language's semantic analysis: nine ordered
// passes over a parsed Module that set scope parents, populate symbol
// tables and class types, resolve type and symbol references, insert
// implicit casts, and validate the remaining typing rules. Each pass
// mutates only the AST fields documented for it; if a pass reports any
// diagnostic, the remaining passes are skipped.
package sema

import (
	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
)

type pass func(module *ast.Module, ids *ast.IDGen, diags *diag.Stream)

var passes = []pass{
	setScopeParents,
	populateSymbolTables,
	populateClassTypes,
	resolveTypeRefs,
	resolveSymbolRefs,
	addImplicitCasts,
	markDotWrites,
	checkBinarySemantics,
	checkCastSemantics,
}

// Analyze runs every semantic pass over module in order, stopping after the
// first pass that reports any diagnostic (spec: "remaining passes are
// skipped and the compiler reports the error count").
func Analyze(module *ast.Module, ids *ast.IDGen, diags *diag.Stream) {
	for _, p := range passes {
		p(module, ids, diags)
		if diags.HasErrors() {
			return
		}
	}
}
