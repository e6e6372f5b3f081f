// Package ast defines the Language's Abstract Syntax Tree: a closed set of
// tagged node variants, plus the Scope/Symbol model semantic passes build
// over them. Nodes are constructed by the parser with an empty type/symbol
// slot; semantic passes fill those slots in, each one touching only the
// fields documented for it.
package ast

import "github.com/anodelang/anode/internal/token"

// ID is a node or symbol identifier, unique within a single compilation.
type ID uint32

// IDGen hands out monotonically increasing IDs for one compilation. A
// single IDGen is shared by the parser (node ids) and the semantic passes
// (symbol ids).
type IDGen struct {
	next ID
}

// Next returns the next unused ID.
func (g *IDGen) Next() ID {
	g.next++
	return g.next
}

// Node is implemented by every AST node: statements, expressions, type
// references, and parameter definitions.
type Node interface {
	NodeID() ID
	Span() token.Span
}

// base carries the fields every node has: its id and source span. Embed it
// in every concrete node type.
type base struct {
	id   ID
	span token.Span
}

func (b base) NodeID() ID        { return b.id }
func (b base) Span() token.Span { return b.span }

func newBase(ids *IDGen, span token.Span) base {
	return base{id: ids.Next(), span: span}
}
