// Package types implements the Language's type lattice: a small set of
// primitive types with a fixed widening order, plus class and function
// types, and the assignability rules the semantic passes consult when
// deciding whether to insert an implicit cast.
package types

import "strings"

// Type is implemented by every type value in the Language: Primitive,
// *Class, and *Function.
type Type interface {
	// Name is the type's display name, used in diagnostics and the pretty
	// printer.
	Name() string
	// OperandPriority is the widening rank used by implicit-conversion
	// rules. Non-primitive types return 0 (never implicitly convertible to
	// or from anything but themselves).
	OperandPriority() int
	typeNode()
}

// Primitive is one of the Language's built-in scalar types. Instances are
// process-wide singletons (Void, Bool, Int32, Float, Double below); nodes
// hold a reference to one of them rather than owning a copy.
type Primitive struct {
	name     string
	priority int
}

func (p *Primitive) Name() string        { return p.name }
func (p *Primitive) OperandPriority() int { return p.priority }
func (p *Primitive) typeNode()           {}

// The five primitive types, in increasing operand priority. Every
// compilation shares these exact instances.
var (
	Void   = &Primitive{name: "void", priority: 1}
	Bool   = &Primitive{name: "bool", priority: 2}
	Int32  = &Primitive{name: "int", priority: 3}
	Float  = &Primitive{name: "float", priority: 4}
	Double = &Primitive{name: "double", priority: 5}
)

// Primitives maps the Language's primitive-type keywords to their
// singleton, consulted by type-reference resolution before falling back to
// scope lookup.
var Primitives = map[string]*Primitive{
	"void":   Void,
	"bool":   Bool,
	"int":    Int32,
	"float":  Float,
	"double": Double,
}

// Field is a named, typed member of a Class.
type Field struct {
	Name string
	Type Type
}

// Method is a named member function of a Class; its signature is a
// Function type.
type Method struct {
	Name string
	Type *Function
}

// Class is a user-defined type: a name plus its fields and methods. The
// slice contents are populated by the "Populate Class Types" semantic pass
// (spec.md §4.4 pass 3); before that pass runs, a Class exists but has no
// fields or methods yet.
type Class struct {
	ClassName string
	Fields    []Field
	Methods   []Method
}

func (c *Class) Name() string        { return c.ClassName }
func (c *Class) OperandPriority() int { return 0 }
func (c *Class) typeNode()           {}

// Field looks up a field by name, returning (field, true) if found.
func (c *Class) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Method looks up a method by name, returning (method, true) if found.
func (c *Class) Method(name string) (Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

// Function is a function's signature: its return type and ordered
// parameter types.
type Function struct {
	ReturnType Type
	ParamTypes []Type
}

func (f *Function) Name() string {
	var sb strings.Builder
	sb.WriteString("func(")
	for i, p := range f.ParamTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name())
	}
	sb.WriteString(") ")
	sb.WriteString(f.ReturnType.Name())
	return sb.String()
}

func (f *Function) OperandPriority() int { return 0 }
func (f *Function) typeNode()           {}

// Equal reports structural equality: for primitives, instance identity
// (they're singletons); for classes, name identity (the Language has no
// structural typing for classes); for functions, identical signatures.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch at := a.(type) {
	case *Primitive:
		bt, ok := b.(*Primitive)
		return ok && at == bt
	case *Class:
		bt, ok := b.(*Class)
		return ok && at.ClassName == bt.ClassName
	case *Function:
		bt, ok := b.(*Function)
		if !ok || len(at.ParamTypes) != len(bt.ParamTypes) {
			return false
		}
		if !Equal(at.ReturnType, bt.ReturnType) {
			return false
		}
		for i := range at.ParamTypes {
			if !Equal(at.ParamTypes[i], bt.ParamTypes[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// CanImplicitCast reports whether a value of type from may be implicitly
// converted to type to. Primitive-to-primitive conversion is permitted only
// from lower operand priority to higher-or-equal (GLOSSARY: "Operand
// priority"); any other pairing requires structural equality.
func CanImplicitCast(from, to Type) bool {
	if Equal(from, to) {
		return true
	}
	fp, fok := from.(*Primitive)
	tp, tok := to.(*Primitive)
	if fok && tok {
		return fp.priority <= tp.priority
	}
	return false
}

// CanExplicitCast reports whether an explicit cast from one type to the
// other is permitted: either direction must be implicitly convertible
// (spec.md §4.4 pass 9 / GLOSSARY).
func CanExplicitCast(from, to Type) bool {
	return CanImplicitCast(from, to) || CanImplicitCast(to, from)
}

// IsArithmetic reports whether values of this type support the arithmetic
// binary operators (Add/Sub/Mul/Div).
func IsArithmetic(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p == Int32 || p == Float || p == Double)
}
