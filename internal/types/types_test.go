package types_test

import (
	"testing"

	"github.com/anodelang/anode/internal/types"
)

func TestOperandPriorityOrdering(t *testing.T) {
	ordered := []*types.Primitive{types.Void, types.Bool, types.Int32, types.Float, types.Double}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].OperandPriority() >= ordered[i].OperandPriority() {
			t.Fatalf("%s priority %d not < %s priority %d",
				ordered[i-1].Name(), ordered[i-1].OperandPriority(),
				ordered[i].Name(), ordered[i].OperandPriority())
		}
	}
}

func TestCanImplicitCastPrimitives(t *testing.T) {
	tests := []struct {
		from, to types.Type
		want     bool
	}{
		{types.Int32, types.Float, true},
		{types.Int32, types.Double, true},
		{types.Bool, types.Int32, true},
		{types.Double, types.Int32, false},
		{types.Float, types.Bool, false},
		{types.Int32, types.Int32, true},
	}
	for _, tt := range tests {
		if got := types.CanImplicitCast(tt.from, tt.to); got != tt.want {
			t.Errorf("CanImplicitCast(%s, %s) = %v, want %v", tt.from.Name(), tt.to.Name(), got, tt.want)
		}
	}
}

func TestCanExplicitCastIsSymmetricOverImplicit(t *testing.T) {
	if !types.CanExplicitCast(types.Double, types.Int32) {
		t.Error("expected double->int explicit cast to be permitted (reverse of a valid implicit cast)")
	}
	if types.CanExplicitCast(types.Bool, &types.Class{ClassName: "Widget"}) {
		t.Error("expected bool->class explicit cast to be rejected")
	}
}

func TestClassEqualityIsByName(t *testing.T) {
	a := &types.Class{ClassName: "Point"}
	b := &types.Class{ClassName: "Point"}
	c := &types.Class{ClassName: "Vector"}
	if !types.Equal(a, b) {
		t.Error("expected classes with the same name to be equal")
	}
	if types.Equal(a, c) {
		t.Error("expected classes with different names to be unequal")
	}
}

func TestClassFieldAndMethodLookup(t *testing.T) {
	point := &types.Class{
		ClassName: "Point",
		Fields: []types.Field{
			{Name: "x", Type: types.Int32},
			{Name: "y", Type: types.Int32},
		},
		Methods: []types.Method{
			{Name: "length", Type: &types.Function{ReturnType: types.Double}},
		},
	}
	if f, ok := point.Field("x"); !ok || f.Type != types.Int32 {
		t.Errorf("expected field x:int, got %+v, %v", f, ok)
	}
	if _, ok := point.Field("z"); ok {
		t.Error("expected no field named z")
	}
	if m, ok := point.Method("length"); !ok || m.Type.ReturnType != types.Double {
		t.Errorf("expected method length:double, got %+v, %v", m, ok)
	}
}

func TestFunctionEqualityBySignature(t *testing.T) {
	a := &types.Function{ReturnType: types.Int32, ParamTypes: []types.Type{types.Int32, types.Bool}}
	b := &types.Function{ReturnType: types.Int32, ParamTypes: []types.Type{types.Int32, types.Bool}}
	c := &types.Function{ReturnType: types.Int32, ParamTypes: []types.Type{types.Int32}}
	if !types.Equal(a, b) {
		t.Error("expected identical signatures to be equal")
	}
	if types.Equal(a, c) {
		t.Error("expected different-arity signatures to be unequal")
	}
}

func TestIsArithmetic(t *testing.T) {
	for _, tp := range []types.Type{types.Int32, types.Float, types.Double} {
		if !types.IsArithmetic(tp) {
			t.Errorf("expected %s to be arithmetic", tp.Name())
		}
	}
	for _, tp := range []types.Type{types.Bool, types.Void, &types.Class{ClassName: "Widget"}} {
		if types.IsArithmetic(tp) {
			t.Errorf("expected %s not to be arithmetic", tp.Name())
		}
	}
}
