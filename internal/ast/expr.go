package ast

import (
	"github.com/anodelang/anode/internal/token"
	"github.com/anodelang/anode/internal/types"
)

// Expr is implemented by every expression node. Every expression carries a
// type slot, empty until a semantic pass fills it in (passes 4-6).
type Expr interface {
	Node
	Type() types.Type
	SetType(types.Type)
	exprNode()
}

// exprBase gives every expression its node identity plus the type slot.
type exprBase struct {
	base
	typ types.Type
}

func (e *exprBase) Type() types.Type      { return e.typ }
func (e *exprBase) SetType(t types.Type) { e.typ = t }

func newExprBase(ids *IDGen, span token.Span) exprBase {
	return exprBase{base: newBase(ids, span)}
}

// Access distinguishes a read occurrence of a VariableRef from one being
// assigned to.
type Access int

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// LiteralInt32 is an int literal, e.g. "42".
type LiteralInt32 struct {
	exprBase
	Value int32
}

func (*LiteralInt32) exprNode() {}

func NewLiteralInt32(ids *IDGen, span token.Span, value int32) *LiteralInt32 {
	return &LiteralInt32{exprBase: newExprBase(ids, span), Value: value}
}

// LiteralFloat is a float literal, e.g. "3.5".
type LiteralFloat struct {
	exprBase
	Value float32
}

func (*LiteralFloat) exprNode() {}

func NewLiteralFloat(ids *IDGen, span token.Span, value float32) *LiteralFloat {
	return &LiteralFloat{exprBase: newExprBase(ids, span), Value: value}
}

// LiteralBool is "true" or "false".
type LiteralBool struct {
	exprBase
	Value bool
}

func (*LiteralBool) exprNode() {}

func NewLiteralBool(ids *IDGen, span token.Span, value bool) *LiteralBool {
	return &LiteralBool{exprBase: newExprBase(ids, span), Value: value}
}

// VariableRef is a bare identifier occurring in expression position. Symbol
// is filled in by pass 5; Access starts as Read and is flipped to Write by
// the parser when the ref is the lhs of '='. A ref naming a function (the
// callee position of a FuncCall) resolves to FuncSymbol instead of Symbol —
// the two are mutually exclusive, since a name denotes either a variable or
// a function, never both, within one scope.
type VariableRef struct {
	exprBase
	Name       string
	Symbol     *VariableSymbol
	FuncSymbol *FunctionSymbol
	Access     Access
}

func (*VariableRef) exprNode() {}

func NewVariableRef(ids *IDGen, span token.Span, name string) *VariableRef {
	return &VariableRef{exprBase: newExprBase(ids, span), Name: name, Access: Read}
}

// VariableDecl is "name:TypeName" in expression position. It both declares
// a new symbol (pass 2) and is itself an lvalue of the declared type.
type VariableDecl struct {
	exprBase
	Name    string
	TypeRef *TypeRef
	Symbol  *VariableSymbol
}

func (*VariableDecl) exprNode() {}

func NewVariableDecl(ids *IDGen, span token.Span, name string, typeRef *TypeRef) *VariableDecl {
	return &VariableDecl{exprBase: newExprBase(ids, span), Name: name, TypeRef: typeRef}
}

// BinaryOp enumerates the Language's binary operators.
type BinaryOp int

const (
	Assign BinaryOp = iota
	Add
	Sub
	Mul
	Div
	Eq
	NotEq
	Lt
	Lte
	Gt
	Gte
	LogicalAnd
	LogicalOr
)

var binaryOpNames = map[BinaryOp]string{
	Assign: "=", Add: "+", Sub: "-", Mul: "*", Div: "/",
	Eq: "==", NotEq: "!=", Lt: "<", Lte: "<=", Gt: ">", Gte: ">=",
	LogicalAnd: "&&", LogicalOr: "||",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "?"
}

// IsLogical reports whether op is one of the short-circuit boolean
// operators (&&, ||).
func (op BinaryOp) IsLogical() bool {
	return op == LogicalAnd || op == LogicalOr
}

// IsComparison reports whether op produces a bool from comparing its
// operands.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case Eq, NotEq, Lt, Lte, Gt, Gte:
		return true
	default:
		return false
	}
}

// Binary is a two-operand expression: lhs op rhs.
type Binary struct {
	exprBase
	LHS    Expr
	Op     BinaryOp
	OpSpan token.Span
	RHS    Expr
}

func (*Binary) exprNode() {}

func NewBinary(ids *IDGen, span token.Span, lhs Expr, op BinaryOp, opSpan token.Span, rhs Expr) *Binary {
	return &Binary{exprBase: newExprBase(ids, span), LHS: lhs, Op: op, OpSpan: opSpan, RHS: rhs}
}

// UnaryOp enumerates the Language's prefix unary operators.
type UnaryOp int

const (
	Not UnaryOp = iota
	PreIncrement
	PreDecrement
)

func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	case PreIncrement:
		return "++"
	case PreDecrement:
		return "--"
	default:
		return "?"
	}
}

// Unary is a prefix unary expression: op operand.
type Unary struct {
	exprBase
	Operand Expr
	Op      UnaryOp
	OpSpan  token.Span
}

func (*Unary) exprNode() {}

func NewUnary(ids *IDGen, span token.Span, op UnaryOp, opSpan token.Span, operand Expr) *Unary {
	return &Unary{exprBase: newExprBase(ids, span), Operand: operand, Op: op, OpSpan: opSpan}
}

// CastKind distinguishes a compiler-inserted cast from one written with
// cast<T>(e).
type CastKind int

const (
	Implicit CastKind = iota
	Explicit
)

func (k CastKind) String() string {
	if k == Explicit {
		return "explicit"
	}
	return "implicit"
}

// Cast converts Value to the type named by TargetTypeRef.
type Cast struct {
	exprBase
	TargetTypeRef *TypeRef
	Value         Expr
	Kind          CastKind
}

func (*Cast) exprNode() {}

func NewCast(ids *IDGen, span token.Span, targetTypeRef *TypeRef, value Expr, kind CastKind) *Cast {
	return &Cast{exprBase: newExprBase(ids, span), TargetTypeRef: targetTypeRef, Value: value, Kind: kind}
}

// NewImplicitCast grafts an implicit Cast around value, targeting the
// already-resolved type to. Used by pass 6 to replace a child slot in
// place (the "graft-with-lambda" pattern, here just a slot swap).
func NewImplicitCast(ids *IDGen, value Expr, to types.Type) *Cast {
	c := &Cast{
		exprBase: newExprBase(ids, value.Span()),
		TargetTypeRef: &TypeRef{
			base:         newBase(ids, value.Span()),
			Name:         to.Name(),
			ResolvedType: to,
		},
		Value: value,
		Kind:  Implicit,
	}
	c.SetType(to)
	return c
}

// IfExpr is a conditional expression: "if (cond) then [else else]", or the
// ternary form "(? cond; then; else)". Else is nil when absent.
type IfExpr struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

func (*IfExpr) exprNode() {}

func NewIfExpr(ids *IDGen, span token.Span, cond, then, els Expr) *IfExpr {
	return &IfExpr{exprBase: newExprBase(ids, span), Cond: cond, Then: then, Else: els}
}

// WhileExpr is "while (cond) body".
type WhileExpr struct {
	exprBase
	Cond Expr
	Body Expr
}

func (*WhileExpr) exprNode() {}

func NewWhileExpr(ids *IDGen, span token.Span, cond, body Expr) *WhileExpr {
	return &WhileExpr{exprBase: newExprBase(ids, span), Cond: cond, Body: body}
}

// CompoundExpr is a block: "{ s1; s2; ... }". Its type is the type of its
// last statement's expression, or void if empty.
type CompoundExpr struct {
	exprBase
	Scope *Scope
	Stmts []Stmt
}

func (*CompoundExpr) exprNode() {}

func NewCompoundExpr(ids *IDGen, span token.Span, scope *Scope, stmts []Stmt) *CompoundExpr {
	return &CompoundExpr{exprBase: newExprBase(ids, span), Scope: scope, Stmts: stmts}
}

// FuncDef is a function definition: "func name:ReturnType(p1:T1, ...) body".
type FuncDef struct {
	exprBase
	Name           string
	ReturnTypeRef  *TypeRef
	Params         []*ParameterDef
	ParameterScope *Scope
	Body           Expr
	Symbol         *FunctionSymbol
}

func (*FuncDef) exprNode() {}

func NewFuncDef(ids *IDGen, span token.Span, name string, returnTypeRef *TypeRef, params []*ParameterDef, paramScope *Scope, body Expr) *FuncDef {
	return &FuncDef{
		exprBase:       newExprBase(ids, span),
		Name:           name,
		ReturnTypeRef:  returnTypeRef,
		Params:         params,
		ParameterScope: paramScope,
		Body:           body,
	}
}

// FuncCall is "target(arg1, arg2, ...)".
type FuncCall struct {
	exprBase
	Target        Expr
	Args          []Expr
	OpenParenSpan token.Span
}

func (*FuncCall) exprNode() {}

func NewFuncCall(ids *IDGen, span token.Span, target Expr, args []Expr, openParenSpan token.Span) *FuncCall {
	return &FuncCall{exprBase: newExprBase(ids, span), Target: target, Args: args, OpenParenSpan: openParenSpan}
}

// Dot is "lhs.memberName"; IsWrite is set by pass 7 when it's the lhs of an
// assignment.
type Dot struct {
	exprBase
	LHS        Expr
	MemberName string
	DotSpan    token.Span
	IsWrite    bool
}

func (*Dot) exprNode() {}

func NewDot(ids *IDGen, span token.Span, lhs Expr, memberName string, dotSpan token.Span) *Dot {
	return &Dot{exprBase: newExprBase(ids, span), LHS: lhs, MemberName: memberName, DotSpan: dotSpan}
}

// Assert is "assert(cond)"; always typed void.
type Assert struct {
	exprBase
	Cond Expr
}

func (*Assert) exprNode() {}

func NewAssert(ids *IDGen, span token.Span, cond Expr) *Assert {
	return &Assert{exprBase: newExprBase(ids, span), Cond: cond}
}

// ClassDef is "class Name body". Body is always a CompoundExpr: the parser
// wraps a single-statement body in one. Always typed void.
type ClassDef struct {
	exprBase
	Name   string
	Body   *CompoundExpr
	Symbol *TypeSymbol
}

func (*ClassDef) exprNode() {}

func NewClassDef(ids *IDGen, span token.Span, name string, body *CompoundExpr) *ClassDef {
	return &ClassDef{exprBase: newExprBase(ids, span), Name: name, Body: body}
}
