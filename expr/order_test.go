// Verifies the total order ≺ of spec.md §4.2: reflexivity (e ≺ e is
// false), antisymmetry, and the documented cross-kind ladder. Modeled on
// the teacher's order_test.go, which hand-builds a slice of values and
// checks the order pairwise.
package expr

import (
	"testing"

	"github.com/Marcos30004347/math/bigint"
)

func TestOrderReflexiveAndAntisymmetric(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	es := []*Expr{
		Int64(0), Int64(1), Int64(2),
		x, y,
		NewFunction("f", x),
		NewFactorial(x),
		NewAdd(x, y),
		NewPow(x, Int64(2)),
		NewMul(Int64(2), x),
	}
	for _, e := range es {
		if Less(e, e) {
			t.Errorf("Less(%v, %v) (same expr) = true, want false", e.Kind, e.Kind)
		}
	}
	for i := range es {
		for j := range es {
			if i == j {
				continue
			}
			a, b := es[i], es[j]
			if Equal(a, b) {
				continue
			}
			if Less(a, b) == Less(b, a) {
				t.Errorf("antisymmetry violated for %v(%d) and %v(%d)", a.Kind, i, b.Kind, j)
			}
		}
	}
}

func TestOrderConstants(t *testing.T) {
	if !Less(Int64(1), Int64(2)) {
		t.Error("1 should be less than 2")
	}
	half, _ := NewFraction(bigint.FromInt64(1), bigint.FromInt64(2))
	if !Less(Int64(0), half) {
		t.Error("0 should be less than 1/2")
	}
	if !Less(half, Int64(1)) {
		t.Error("1/2 should be less than 1")
	}
}

func TestOrderLadder(t *testing.T) {
	// constant < symbol < function < factorial holds kind by kind. ADD, POW
	// and MUL operands are compared after the lower-ranked operand is
	// promoted to the higher kind, so their order follows from their
	// contents: x+1 < x!, x+1 < x^2 and 2*x < x^2.
	c := Int64(3)
	s := NewSymbol("x")
	f := NewFunction("sin", s)
	fac := NewFactorial(s)
	add := NewAdd(s, Int64(1))
	pow := NewPow(s, Int64(2))
	mul := NewMul(Int64(2), s)
	chain := []*Expr{c, s, f, fac}
	for i := 0; i < len(chain)-1; i++ {
		if !Less(chain[i], chain[i+1]) {
			t.Errorf("expected %v < %v in ladder position %d", chain[i].Kind, chain[i+1].Kind, i)
		}
	}
	if !Less(add, fac) {
		t.Errorf("expected x+1 < x! under promotion")
	}
	if !Less(add, pow) {
		t.Errorf("expected x+1 < x^2 under promotion")
	}
	if !Less(mul, pow) {
		t.Errorf("expected 2*x < x^2 under promotion")
	}
}

func TestOrderPromotionSymbolVsMul(t *testing.T) {
	x := NewSymbol("x")
	twoX := NewMul(Int64(2), x)
	if !Less(x, twoX) {
		t.Error("x should be less than 2*x under promotion")
	}
}
