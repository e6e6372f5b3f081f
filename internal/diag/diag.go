// Package diag accumulates compiler diagnostics. The lexer, parser, and
// semantic passes never abort on a recoverable problem; they append a
// Diagnostic to a Stream and, where possible, synthesize a placeholder token
// or node so that analysis can continue.
package diag

import (
	"fmt"

	"github.com/anodelang/anode/internal/token"
)

// Kind is the closed set of diagnostic kinds the compiler can report.
type Kind string

const (
	InvalidLiteralInt32                  Kind = "InvalidLiteralInt32"
	InvalidLiteralFloat                  Kind = "InvalidLiteralFloat"
	UnexpectedCharacter                  Kind = "UnexpectedCharacter"
	UnterminatedComment                  Kind = "UnterminatedComment"
	UnexpectedToken                      Kind = "UnexpectedToken"
	SurpriseToken                        Kind = "SurpriseToken"
	SymbolAlreadyDefinedInScope          Kind = "SymbolAlreadyDefinedInScope"
	VariableNotDefined                   Kind = "VariableNotDefined"
	VariableUsedBeforeDefinition         Kind = "VariableUsedBeforeDefinition"
	TypeNotDefined                       Kind = "TypeNotDefined"
	SymbolIsNotAType                     Kind = "SymbolIsNotAType"
	InvalidImplicitCastInBinaryExpr      Kind = "InvalidImplicitCastInBinaryExpr"
	InvalidImplicitCastInIfCondition     Kind = "InvalidImplicitCastInIfCondition"
	InvalidImplicitCastInIfBodies        Kind = "InvalidImplicitCastInIfBodies"
	InvalidImplicitCastInInWhileCondition Kind = "InvalidImplicitCastInInWhileCondition"
	InvalidExplicitCast                  Kind = "InvalidExplicitCast"
	CannotAssignToLValue                 Kind = "CannotAssignToLValue"
	OperatorCannotBeUsedWithType         Kind = "OperatorCannotBeUsedWithType"
	LeftOfDotNotClass                    Kind = "LeftOfDotNotClass"
	ClassMemberNotFound                  Kind = "ClassMemberNotFound"
)

// Diagnostic is one reported problem: its kind, the span it applies to, and
// a human-readable message.
type Diagnostic struct {
	Kind    Kind
	Span    token.Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Kind, d.Message)
}

// Stream is an append-only diagnostic sink shared by the lexer, parser, and
// semantic passes of a single compilation.
type Stream struct {
	diagnostics []Diagnostic
}

// New creates an empty Stream.
func New() *Stream {
	return &Stream{}
}

// Add appends a diagnostic, formatting Message from format/args.
func (s *Stream) Add(kind Kind, span token.Span, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    kind,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns every diagnostic added so far, in the order added.
func (s *Stream) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Len reports how many diagnostics have been recorded.
func (s *Stream) Len() int {
	return len(s.diagnostics)
}

// HasErrors reports whether any diagnostic has been recorded. There is
// currently only one severity (error); the method name matches the
// compiler's "error_count > 0 halts further passes" rule (spec.md §4.4/§7).
func (s *Stream) HasErrors() bool {
	return len(s.diagnostics) > 0
}
