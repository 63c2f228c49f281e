package calculus

import (
	"testing"

	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

func mustReduce(t *testing.T, e *expr.Expr) *expr.Expr {
	t.Helper()
	r, err := reduce.Expand(e)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	return r
}

// TestDerivativeSinChainRule covers spec.md §8 scenario 5:
// derivative(sin(x^2), x) -> 2*x*cos(x^2).
func TestDerivativeSinChainRule(t *testing.T) {
	x := expr.NewSymbol("x")
	e := reduce.Sin(expr.NewPow(x, expr.Int64(2)))

	got, err := Derivative(e, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewMul(expr.Int64(2), x, reduce.Cos(expr.NewPow(x, expr.Int64(2)))))
	if !expr.Equal(got, want) {
		t.Errorf("derivative(sin(x^2), x) = %v, want %v", got, want)
	}
}

func TestDerivativePowerRule(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewPow(x, expr.Int64(5))
	got, err := Derivative(e, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewMul(expr.Int64(5), expr.NewPow(x, expr.Int64(4))))
	if !expr.Equal(got, want) {
		t.Errorf("derivative(x^5, x) = %v, want %v", got, want)
	}
}

func TestDerivativeProductRule(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewMul(x, reduce.Sin(x))
	got, err := Derivative(e, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewAdd(reduce.Sin(x), expr.NewMul(x, reduce.Cos(x))))
	if !expr.Equal(got, want) {
		t.Errorf("derivative(x*sin(x), x) = %v, want %v", got, want)
	}
}

func TestDerivativeQuotientRule(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewDiv(x, expr.NewAdd(x, expr.Int64(1)))
	got, err := Derivative(e, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewPow(expr.NewAdd(x, expr.Int64(1)), expr.Int64(-2)))
	if !expr.Equal(got, want) {
		t.Errorf("derivative(x/(x+1), x) = %v, want %v", got, want)
	}
}

func TestDerivativeConstantIsZero(t *testing.T) {
	x := expr.NewSymbol("x")
	got, err := Derivative(expr.Int64(42), x)
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(got, expr.Int64(0)) {
		t.Errorf("derivative(42, x) = %v, want 0", got)
	}
}

func TestDerivativeSymbolicExponent(t *testing.T) {
	x := expr.NewSymbol("x")
	n := expr.NewSymbol("n")
	e := expr.NewPow(x, n)
	got, err := Derivative(e, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewMul(n, expr.NewPow(x, expr.NewSub(n, expr.Int64(1)))))
	if !expr.Equal(got, want) {
		t.Errorf("derivative(x^n, x) = %v, want %v", got, want)
	}
}
