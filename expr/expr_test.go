package expr

import (
	"testing"

	"github.com/Marcos30004347/math/bigint"
)

func TestFractionReducesAndCollapses(t *testing.T) {
	f, err := NewFraction(bigint.FromInt64(2), bigint.FromInt64(4))
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind != Fraction {
		t.Fatalf("want FRACTION, got %v", f.Kind)
	}
	if Numerator(f).Int.Cmp(bigint.One) != 0 || Denominator(f).Int.Cmp(bigint.FromInt64(2)) != 0 {
		t.Errorf("2/4 did not reduce to 1/2: got %v/%v", Numerator(f).Int, Denominator(f).Int)
	}

	collapsed, err := NewFraction(bigint.FromInt64(6), bigint.FromInt64(3))
	if err != nil {
		t.Fatal(err)
	}
	if collapsed.Kind != Integer || collapsed.Int.Cmp(bigint.FromInt64(2)) != 0 {
		t.Errorf("6/3 should collapse to INTEGER(2), got %v %v", collapsed.Kind, collapsed.Int)
	}

	if _, err := NewFraction(bigint.One, bigint.Zero); err == nil {
		t.Error("fraction with zero denominator should fail")
	}
}

func TestFractionNegativeDenominatorNormalizes(t *testing.T) {
	f, err := NewFraction(bigint.FromInt64(1), bigint.FromInt64(-2))
	if err != nil {
		t.Fatal(err)
	}
	if Denominator(f).Int.Sign() <= 0 {
		t.Errorf("denominator should be positive, got %v", Denominator(f).Int)
	}
	if Numerator(f).Int.Sign() >= 0 {
		t.Errorf("numerator should carry the sign, got %v", Numerator(f).Int)
	}
}

func TestCloneIsDeep(t *testing.T) {
	x := NewSymbol("x")
	orig := NewAdd(x, Int64(1))
	clone := Clone(orig)
	SetOperand(clone, 1, Int64(99))
	if Equal(orig, clone) {
		t.Error("mutating the clone should not affect the original")
	}
	if GetOperand(orig, 1).Int.Cmp(bigint.One) != 0 {
		t.Error("original should be untouched")
	}
}

func TestEqual(t *testing.T) {
	a := NewAdd(NewSymbol("x"), Int64(1))
	b := NewAdd(NewSymbol("x"), Int64(1))
	c := NewAdd(NewSymbol("y"), Int64(1))
	if !Equal(a, b) {
		t.Error("structurally identical trees should be equal")
	}
	if Equal(a, c) {
		t.Error("trees differing in a symbol name should not be equal")
	}
}

func TestFreeVariablesExcludesFunctionHeads(t *testing.T) {
	e := NewFunction("f", NewSymbol("x"), NewSymbol("y"))
	vars := FreeVariables(e)
	if len(vars) != 2 {
		t.Fatalf("want 2 free variables, got %d", len(vars))
	}
	names := map[string]bool{vars[0].Name: true, vars[1].Name: true}
	if !names["x"] || !names["y"] {
		t.Errorf("want {x,y}, got %v", names)
	}

	fAsName := NewFunction("notAVariable")
	if len(FreeVariables(fAsName)) != 0 {
		t.Error("a zero-argument function head must not count as a free variable")
	}
}

func TestOperandMutation(t *testing.T) {
	e := NewAdd(Int64(1), Int64(2))
	InsertOperand(e, 1, Int64(3))
	if NumOperands(e) != 3 || GetOperand(e, 1).Int.Cmp(bigint.FromInt64(3)) != 0 {
		t.Errorf("insert failed: %v", e.Children)
	}
	RemoveOperand(e, 0)
	if NumOperands(e) != 2 || GetOperand(e, 0).Int.Cmp(bigint.FromInt64(3)) != 0 {
		t.Errorf("remove failed: %v", e.Children)
	}
}
