package ast

import (
	"github.com/anodelang/anode/internal/token"
	"github.com/anodelang/anode/internal/types"
)

// TypeRef is the syntactic occurrence of a type name, e.g. the "int" in
// "x:int". ResolvedType is empty until pass 4 (Resolve Type References).
type TypeRef struct {
	base
	Name         string
	ResolvedType types.Type
}

func NewTypeRef(ids *IDGen, span token.Span, name string) *TypeRef {
	return &TypeRef{base: newBase(ids, span), Name: name}
}

// ParameterDef is one "name:Type" entry in a FuncDef's parameter list.
// Symbol is filled in by pass 2 alongside the function's parameter scope.
type ParameterDef struct {
	base
	Name    string
	TypeRef *TypeRef
	Symbol  *VariableSymbol
}

func NewParameterDef(ids *IDGen, span token.Span, name string, typeRef *TypeRef) *ParameterDef {
	return &ParameterDef{base: newBase(ids, span), Name: name, TypeRef: typeRef}
}
