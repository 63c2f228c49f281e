package polyops

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

func TestGCDScenario(t *testing.T) {
	x := expr.NewSymbol("x")
	// gcd(x^3-x, x^2-1) -> x^2-1
	f := expr.NewSub(expr.NewPow(x, expr.Int64(3)), x)
	g := expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1))
	got, err := GCD(context.Background(), f, g, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustExpand(t, g)
	if !expr.Equal(got, want) {
		t.Errorf("gcd(x^3-x, x^2-1) = %v, want %v", got, want)
	}
}

func TestGCDWithZero(t *testing.T) {
	x := expr.NewSymbol("x")
	g := expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1))
	got, err := GCD(context.Background(), expr.Int64(0), g, x)
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(got, mustExpand(t, g)) {
		t.Errorf("gcd(0, g) = %v, want g", got)
	}
}

func TestLCMDividesBothWays(t *testing.T) {
	x := expr.NewSymbol("x")
	f := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(2)))
	g := expr.NewMul(expr.NewSub(x, expr.Int64(2)), expr.NewSub(x, expr.Int64(3)))
	l, err := LCM(context.Background(), f, g, x)
	if err != nil {
		t.Fatal(err)
	}
	if _, r, err := polyexpr.PseudoDivide(l, f, x); err != nil || !isZeroExpr(r) {
		t.Errorf("lcm not divisible by f: r=%v err=%v", r, err)
	}
	if _, r, err := polyexpr.PseudoDivide(l, g, x); err != nil || !isZeroExpr(r) {
		t.Errorf("lcm not divisible by g: r=%v err=%v", r, err)
	}
}

func TestResultantScenario(t *testing.T) {
	x := expr.NewSymbol("x")
	y := expr.NewSymbol("y")
	// resultant(x^2-y, x-y^2) -> y^4-y
	f := expr.NewSub(expr.NewPow(x, expr.Int64(2)), y)
	g := expr.NewSub(x, expr.NewPow(y, expr.Int64(2)))
	got, err := Resultant(f, g)
	if err != nil {
		t.Fatal(err)
	}
	want := mustExpand(t, expr.NewSub(expr.NewPow(y, expr.Int64(4)), y))
	if !expr.Equal(got, want) {
		t.Errorf("resultant(x^2-y, x-y^2) = %v, want %v", got, want)
	}
}
