package factor

import (
	"context"
	"testing"

	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

func mustExpand(t *testing.T, e *expr.Expr) *expr.Expr {
	t.Helper()
	r, err := reduce.Expand(e)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	return r
}

// TestFactorScenario covers spec.md §8 scenario 3:
// factor(x^4-1) -> (x-1)(x+1)(x^2+1).
func TestFactorScenario(t *testing.T) {
	x := expr.NewSymbol("x")
	f := expr.NewSub(expr.NewPow(x, expr.Int64(4)), expr.Int64(1))

	got, err := FactorPolyExprAndExpand(context.Background(), f, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustExpand(t, f)
	if !expr.Equal(got, want) {
		t.Errorf("factor(x^4-1) expanded = %v, want %v (reduce(f))", got, want)
	}

	_, factors, err := Factors(context.Background(), f, x)
	if err != nil {
		t.Fatal(err)
	}
	if len(factors) != 3 {
		t.Fatalf("factor(x^4-1): got %d irreducible factors, want 3: %v", len(factors), factors)
	}
	var haveQuadratic bool
	linearRoots := map[int64]bool{}
	for _, fac := range factors {
		deg, err := polyexpr.Degree(fac.Poly, x)
		if err != nil {
			t.Fatal(err)
		}
		switch deg {
		case 1:
			c0, err := polyexpr.Coeff(fac.Poly, x, 0)
			if err != nil {
				t.Fatal(err)
			}
			if c0.Kind == expr.Integer {
				if v, ok := c0.Int.Int64(); ok {
					linearRoots[v] = true
				}
			}
		case 2:
			haveQuadratic = true
		default:
			t.Errorf("factor(x^4-1): unexpected irreducible factor of degree %d: %v", deg, fac.Poly)
		}
	}
	if !linearRoots[-1] || !linearRoots[1] {
		t.Errorf("factor(x^4-1): expected linear factors (x-1) and (x+1), got roots %v", linearRoots)
	}
	if !haveQuadratic {
		t.Errorf("factor(x^4-1): expected an irreducible quadratic factor (x^2+1)")
	}
}

// TestFactorExpandedEqualsReduce is the universal property spec.md §4.7
// requires: factoring and re-expanding must reproduce the original
// polynomial, for any square-free or repeated-root input.
func TestFactorExpandedEqualsReduce(t *testing.T) {
	x := expr.NewSymbol("x")
	cases := []*expr.Expr{
		expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1)),
		expr.NewSub(expr.NewPow(x, expr.Int64(4)), expr.Int64(1)),
		expr.NewPow(expr.NewSub(x, expr.Int64(1)), expr.Int64(3)),
		expr.NewAdd(expr.NewPow(x, expr.Int64(2)), expr.NewMul(expr.Int64(2), x), expr.Int64(1)),
	}
	for _, f := range cases {
		got, err := FactorPolyExprAndExpand(context.Background(), f, x)
		if err != nil {
			t.Fatalf("factor(%v): %v", f, err)
		}
		want := mustExpand(t, f)
		if !expr.Equal(got, want) {
			t.Errorf("factor(%v) expanded = %v, want %v", f, got, want)
		}
	}
}

func TestFactorRepeatedRoot(t *testing.T) {
	x := expr.NewSymbol("x")
	// (x-1)^3 -> single irreducible factor (x-1) with multiplicity 3.
	f := expr.NewPow(expr.NewSub(x, expr.Int64(1)), expr.Int64(3))
	_, factors, err := Factors(context.Background(), f, x)
	if err != nil {
		t.Fatal(err)
	}
	if len(factors) != 1 {
		t.Fatalf("factor((x-1)^3): got %d factors, want 1: %v", len(factors), factors)
	}
	if factors[0].Multiplicity != 3 {
		t.Errorf("factor((x-1)^3): multiplicity = %d, want 3", factors[0].Multiplicity)
	}
	deg, err := polyexpr.Degree(factors[0].Poly, x)
	if err != nil {
		t.Fatal(err)
	}
	if deg != 1 {
		t.Errorf("factor((x-1)^3): factor degree = %d, want 1", deg)
	}
}

// TestFactorNonMonic covers the leading-coefficient case spec.md §4.7
// requires but a monic-only pipeline would miss: 2x^2+3x+1 has content 1
// but a leading coefficient of 2, so its irreducible factors (x+1) and
// (2x+1) are not simply g mod its content.
func TestFactorNonMonic(t *testing.T) {
	x := expr.NewSymbol("x")
	cases := []struct {
		f     *expr.Expr
		pairs map[[2]int64]bool // {constant term, x coefficient} of each expected linear factor
	}{
		{
			// 2x^2+3x+1 = (x+1)(2x+1)
			f:     expr.NewAdd(expr.NewMul(expr.Int64(2), expr.NewPow(x, expr.Int64(2))), expr.NewMul(expr.Int64(3), x), expr.Int64(1)),
			pairs: map[[2]int64]bool{{1, 1}: true, {1, 2}: true},
		},
		{
			// 6x^2+5x+1 = (2x+1)(3x+1)
			f:     expr.NewAdd(expr.NewMul(expr.Int64(6), expr.NewPow(x, expr.Int64(2))), expr.NewMul(expr.Int64(5), x), expr.Int64(1)),
			pairs: map[[2]int64]bool{{1, 2}: true, {1, 3}: true},
		},
	}
	for _, c := range cases {
		got, err := FactorPolyExprAndExpand(context.Background(), c.f, x)
		if err != nil {
			t.Fatalf("factor(%v): %v", c.f, err)
		}
		want := mustExpand(t, c.f)
		if !expr.Equal(got, want) {
			t.Errorf("factor(%v) expanded = %v, want %v", c.f, got, want)
		}

		_, factors, err := Factors(context.Background(), c.f, x)
		if err != nil {
			t.Fatal(err)
		}
		if len(factors) != 2 {
			t.Fatalf("factor(%v): got %d irreducible factors, want 2: %v", c.f, len(factors), factors)
		}
		seen := map[[2]int64]bool{}
		for _, fac := range factors {
			if deg, err := polyexpr.Degree(fac.Poly, x); err != nil {
				t.Fatal(err)
			} else if deg != 1 {
				t.Errorf("factor(%v): expected a linear factor, got degree %d: %v", c.f, deg, fac.Poly)
				continue
			}
			c0, err := polyexpr.Coeff(fac.Poly, x, 0)
			if err != nil {
				t.Fatal(err)
			}
			c1, err := polyexpr.Coeff(fac.Poly, x, 1)
			if err != nil {
				t.Fatal(err)
			}
			v0, ok0 := c0.Int.Int64()
			v1, ok1 := c1.Int.Int64()
			if c0.Kind != expr.Integer || c1.Kind != expr.Integer || !ok0 || !ok1 {
				t.Errorf("factor(%v): non-integer linear factor %v", c.f, fac.Poly)
				continue
			}
			seen[[2]int64{v0, v1}] = true
		}
		for pair := range c.pairs {
			if !seen[pair] {
				t.Errorf("factor(%v): missing expected factor with (const, x-coeff) = %v, got factors %v", c.f, pair, factors)
			}
		}
	}
}

func TestFactorConstantIsNoOp(t *testing.T) {
	x := expr.NewSymbol("x")
	unit, factors, err := Factors(context.Background(), expr.Int64(7), x)
	if err != nil {
		t.Fatal(err)
	}
	if len(factors) != 0 {
		t.Errorf("factor(7): expected no polynomial factors, got %v", factors)
	}
	if !expr.Equal(unit, expr.Int64(7)) {
		t.Errorf("factor(7): unit = %v, want 7", unit)
	}
}
