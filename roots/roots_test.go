package roots

import (
	"context"
	"testing"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
)

func ratio(num, den int64) *expr.Expr {
	f, err := expr.NewFraction(bigint.FromInt64(num), bigint.FromInt64(den))
	if err != nil {
		panic(err)
	}
	return f
}

// TestIsolateQuadraticRationalRoots covers x^2-1, whose roots -1 and 1
// are exact rationals that a bisection midpoint lands on exactly, so both
// come back as exact roots.
func TestIsolateQuadraticRationalRoots(t *testing.T) {
	x := expr.NewSymbol("x")
	f := expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1))

	got, err := Isolate(context.Background(), f, x, ratio(1, 1000))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("roots(x^2-1): got %d intervals, want 2: %+v", len(got), got)
	}
	seen := map[int64]bool{}
	for _, iv := range got {
		if iv.Exact == nil {
			t.Errorf("roots(x^2-1): expected exact rational root, got interval [%v, %v]", iv.Lo, iv.Hi)
			continue
		}
		if iv.Exact.Kind == expr.Integer {
			if v, ok := iv.Exact.Int.Int64(); ok {
				seen[v] = true
			}
		}
	}
	if !seen[1] || !seen[-1] {
		t.Errorf("roots(x^2-1): expected roots {-1, 1}, got %v", seen)
	}
}

// TestIsolateIrrationalRoots covers x^2-2, whose roots are irrational
// and must come back as bisected brackets narrower than the requested
// precision.
func TestIsolateIrrationalRoots(t *testing.T) {
	x := expr.NewSymbol("x")
	f := expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(2))
	precision := ratio(1, 1000)

	got, err := Isolate(context.Background(), f, x, precision)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("roots(x^2-2): got %d intervals, want 2: %+v", len(got), got)
	}
	for _, iv := range got {
		if iv.Exact != nil {
			t.Errorf("roots(x^2-2): root %v should not be exactly rational", iv.Exact)
			continue
		}
		width, err := rationalSub(iv.Hi, iv.Lo)
		if err != nil {
			t.Fatal(err)
		}
		if lt, err := rationalLess(precision, width); err != nil {
			t.Fatal(err)
		} else if lt {
			t.Errorf("roots(x^2-2): bracket [%v, %v] wider than precision %v", iv.Lo, iv.Hi, precision)
		}
		sLo, err := evalSign(f, x, iv.Lo)
		if err != nil {
			t.Fatal(err)
		}
		sHi, err := evalSign(f, x, iv.Hi)
		if err != nil {
			t.Fatal(err)
		}
		if sLo == sHi && sLo != 0 {
			t.Errorf("roots(x^2-2): bracket [%v, %v] does not bracket a sign change", iv.Lo, iv.Hi)
		}
	}
}

// TestIsolateNoRealRoots covers x^2+1, which has no real roots.
func TestIsolateNoRealRoots(t *testing.T) {
	x := expr.NewSymbol("x")
	f := expr.NewAdd(expr.NewPow(x, expr.Int64(2)), expr.Int64(1))
	got, err := Isolate(context.Background(), f, x, ratio(1, 100))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("roots(x^2+1): expected no real roots, got %+v", got)
	}
}
