package codegen

import (
	"fmt"

	"github.com/anodelang/anode/internal/types"
)

// Backend turns lowered IR into target output. spec.md §1 places an actual
// LLVM backend out of scope; this interface is the seam a real one would
// implement without touching anything upstream of Transform.
type Backend interface {
	Generate(*Module) (string, error)
}

// DumpBackend is the one Backend this module ships: instead of machine
// code it emits the lowered IR itself, one function signature followed by
// its pretty-printed, type-annotated body. Useful for tests and for
// inspecting what a real backend would receive.
type DumpBackend struct{}

func (DumpBackend) Generate(m *Module) (string, error) {
	var out string
	out += fmt.Sprintf("module %s\n", m.Name)
	for _, fn := range m.Functions {
		out += fmt.Sprintf("func %s(%s) : %s\n", fn.Name, paramList(fn.Params), typeNameOrUnknown(fn.ReturnType))
		out += fn.Body
	}
	return out, nil
}

func paramList(params []Param) string {
	s := ""
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s:%s", p.Name, typeNameOrUnknown(p.Type))
	}
	return s
}

func typeNameOrUnknown(t types.Type) string {
	if t == nil {
		return "?"
	}
	return t.Name()
}
