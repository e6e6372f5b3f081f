package ast

import (
	"sort"
	"strings"

	"github.com/anodelang/anode/internal/types"
)

// StorageKind classifies what a Scope's symbols live in.
type StorageKind int

const (
	NotSet StorageKind = iota
	Global
	Local
	Instance
)

func (k StorageKind) String() string {
	switch k {
	case Global:
		return "Global"
	case Local:
		return "Local"
	case Instance:
		return "Instance"
	default:
		return "NotSet"
	}
}

// Scope (SymbolTable) is a named, parented container of symbols. Parent is
// a non-owning back-reference: the Module's scopes own the tree, a child's
// Parent pointer never creates a retain cycle since scopes are never freed
// independently of the Module that owns them.
type Scope struct {
	Kind   StorageKind
	Name   string
	Parent *Scope

	names   []string
	symbols map[string]Symbol
}

// NewScope creates an empty scope of the given kind. Parent is set later,
// by the "Set Scope Parents" pass, except for the module's outermost scope
// which is constructed with kind Global and never gets a parent.
func NewScope(kind StorageKind) *Scope {
	return &Scope{Kind: kind, symbols: make(map[string]Symbol)}
}

// Insert adds sym under its own name, returning false without modifying the
// scope if a symbol with that name already exists.
func (s *Scope) Insert(sym Symbol) bool {
	name := sym.SymbolName()
	if _, exists := s.symbols[name]; exists {
		return false
	}
	s.symbols[name] = sym
	s.names = append(s.names, name)
	return true
}

// Lookup finds a symbol declared directly in this scope (no parent walk).
func (s *Scope) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// RecursiveFind walks from s up through Parent links, returning the first
// scope that declares name directly (case-sensitive, first match wins).
func (s *Scope) RecursiveFind(name string) (Symbol, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Names returns the symbol names declared directly in this scope, in
// insertion order.
func (s *Scope) Names() []string {
	return s.names
}

// SortedNames returns the symbol names declared directly in this scope,
// sorted alphabetically — the order the pretty printer requires.
func (s *Scope) SortedNames() []string {
	out := append([]string(nil), s.names...)
	sort.Strings(out)
	return out
}

// qualifiedName builds a dotted path from the root-most named ancestor
// scope down through name, assigned once when a symbol is inserted.
func qualifiedName(scope *Scope, name string) string {
	var parts []string
	for s := scope; s != nil; s = s.Parent {
		if s.Name != "" {
			parts = append([]string{s.Name}, parts...)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, ".")
}

// Symbol is implemented by VariableSymbol, FunctionSymbol, and TypeSymbol.
type Symbol interface {
	SymbolID() ID
	SymbolName() string
	QualifiedName() string
	Storage() StorageKind
	symbolNode()
}

type symbolBase struct {
	id            ID
	name          string
	qualifiedName string
	storage       StorageKind
}

func (s symbolBase) SymbolID() ID          { return s.id }
func (s symbolBase) SymbolName() string    { return s.name }
func (s symbolBase) QualifiedName() string { return s.qualifiedName }
func (s symbolBase) Storage() StorageKind  { return s.storage }

func newSymbolBase(ids *IDGen, scope *Scope, name string) symbolBase {
	return symbolBase{
		id:            ids.Next(),
		name:          name,
		qualifiedName: qualifiedName(scope, name),
		storage:       scope.Kind,
	}
}

// VariableSymbol is a declared variable or function parameter.
type VariableSymbol struct {
	symbolBase
	Type types.Type
}

func (*VariableSymbol) symbolNode() {}

// NewVariableSymbol creates and inserts a VariableSymbol into scope,
// returning (symbol, true) on success or (existing, false) if scope
// already has a symbol by that name.
func NewVariableSymbol(ids *IDGen, scope *Scope, name string, typ types.Type) (*VariableSymbol, bool) {
	if existing, ok := scope.Lookup(name); ok {
		if v, ok := existing.(*VariableSymbol); ok {
			return v, false
		}
		return nil, false
	}
	sym := &VariableSymbol{symbolBase: newSymbolBase(ids, scope, name), Type: typ}
	scope.Insert(sym)
	return sym, true
}

// FunctionSymbol is a declared function.
type FunctionSymbol struct {
	symbolBase
	Type *types.Function
}

func (*FunctionSymbol) symbolNode() {}

// NewFunctionSymbol creates and inserts a FunctionSymbol into scope,
// returning (symbol, true) on success or (existing, false) on collision.
func NewFunctionSymbol(ids *IDGen, scope *Scope, name string, typ *types.Function) (*FunctionSymbol, bool) {
	if existing, ok := scope.Lookup(name); ok {
		if f, ok := existing.(*FunctionSymbol); ok {
			return f, false
		}
		return nil, false
	}
	sym := &FunctionSymbol{symbolBase: newSymbolBase(ids, scope, name), Type: typ}
	scope.Insert(sym)
	return sym, true
}

// TypeSymbol names a user-defined class type.
type TypeSymbol struct {
	symbolBase
	Type types.Type
}

func (*TypeSymbol) symbolNode() {}

// NewTypeSymbol creates and inserts a TypeSymbol into scope, returning
// (symbol, true) on success or (existing, false) on collision.
func NewTypeSymbol(ids *IDGen, scope *Scope, name string, typ types.Type) (*TypeSymbol, bool) {
	if existing, ok := scope.Lookup(name); ok {
		if t, ok := existing.(*TypeSymbol); ok {
			return t, false
		}
		return nil, false
	}
	sym := &TypeSymbol{symbolBase: newSymbolBase(ids, scope, name), Type: typ}
	scope.Insert(sym)
	return sym, true
}
