package diag_test

import (
	"testing"

	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNewStreamHasNoErrors(t *testing.T) {
	s := diag.New()
	require.False(t, s.HasErrors())
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Diagnostics())
}

func TestAddAppendsAndFormatsMessage(t *testing.T) {
	s := diag.New()
	span := token.Span{Input: "t.an", Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 2}}
	s.Add(diag.VariableNotDefined, span, "%q is not defined", "x")

	require.True(t, s.HasErrors())
	require.Len(t, s.Diagnostics(), 1)

	d := s.Diagnostics()[0]
	require.Equal(t, diag.VariableNotDefined, d.Kind)
	require.Equal(t, span, d.Span)
	require.Equal(t, `"x" is not defined`, d.Message)
}

func TestDiagnosticStringIncludesSpanKindAndMessage(t *testing.T) {
	span := token.Span{Input: "t.an", Start: token.Position{Line: 3, Column: 5}, End: token.Position{Line: 3, Column: 6}}
	d := diag.Diagnostic{Kind: diag.UnexpectedToken, Span: span, Message: "found ')'"}
	require.Equal(t, `t.an:3:5-3:6: UnexpectedToken: found ')'`, d.String())
}

func TestDiagnosticsPreserveInsertionOrder(t *testing.T) {
	s := diag.New()
	span := token.Span{}
	s.Add(diag.VariableNotDefined, span, "first")
	s.Add(diag.TypeNotDefined, span, "second")

	got := s.Diagnostics()
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Message)
	require.Equal(t, "second", got[1].Message)
}
