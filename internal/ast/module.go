package ast

// Module is the root of a single compilation's AST: a name and the
// top-level compound expression holding its statements.
type Module struct {
	Name string
	Body *CompoundExpr
}

func NewModule(name string, body *CompoundExpr) *Module {
	return &Module{Name: name, Body: body}
}
