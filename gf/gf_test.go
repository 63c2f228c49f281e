package gf

import (
	"testing"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
)

func TestNewFieldRejectsComposite(t *testing.T) {
	if _, err := NewField(bigint.FromInt64(9)); err == nil {
		t.Fatal("expected DomainError for composite modulus")
	}
	if _, err := NewField(bigint.FromInt64(7)); err != nil {
		t.Fatalf("NewField(7): %v", err)
	}
}

func TestInvAndDiv(t *testing.T) {
	f, err := NewField(bigint.FromInt64(7))
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(1); n < 7; n++ {
		a := bigint.FromInt64(n)
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%d): %v", n, err)
		}
		if f.Mul(a, inv).Cmp(bigint.One) != 0 {
			t.Errorf("%d * inv(%d) != 1 mod 7", n, n)
		}
	}
	if _, err := f.Inv(bigint.Zero); err == nil {
		t.Error("expected error inverting 0")
	}
}

func TestProjectReducesCoefficients(t *testing.T) {
	f, err := NewField(bigint.FromInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	x := expr.NewSymbol("x")
	// 7x^2 + 10x + 3 mod 5 -> 2x^2 + 3
	poly := expr.NewAdd(
		expr.NewMul(expr.Int64(7), expr.NewPow(x, expr.Int64(2))),
		expr.NewMul(expr.Int64(10), x),
		expr.Int64(3),
	)
	got, err := f.Project(poly, x)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.NewAdd(expr.NewMul(expr.Int64(2), expr.NewPow(x, expr.Int64(2))), expr.Int64(3))
	if !expr.Equal(got, want) {
		t.Errorf("project(7x^2+10x+3, 5) = %v, want %v", got, want)
	}
}

func TestGCDInGFpx(t *testing.T) {
	f, err := NewField(bigint.FromInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	x := expr.NewSymbol("x")
	// (x-1)*(x-2) and (x-1)*(x-3) over GF(5): gcd should be monic x-1 (x+4 mod 5)
	a := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(2)))
	b := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(3)))
	g, err := f.GCD(a, b, x)
	if err != nil {
		t.Fatal(err)
	}
	deg, err := polyexpr.Degree(g, x)
	if err != nil {
		t.Fatal(err)
	}
	if deg != 1 {
		t.Errorf("deg(gcd) = %d, want 1", deg)
	}
}

func TestLCMAndDivPolyInGFpx(t *testing.T) {
	f, err := NewField(bigint.FromInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	x := expr.NewSymbol("x")
	a := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(2)))
	b := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(3)))
	l, err := f.LCM(a, b, x)
	if err != nil {
		t.Fatal(err)
	}
	// lcm should be exactly divisible by both a and b, with zero remainder.
	if _, r, err := f.QuoRem(l, a, x); err != nil || !polyexpr.IsZero(r) {
		t.Errorf("lcm not divisible by a: r=%v err=%v", r, err)
	}
	if _, r, err := f.QuoRem(l, b, x); err != nil || !polyexpr.IsZero(r) {
		t.Errorf("lcm not divisible by b: r=%v err=%v", r, err)
	}
	deg, err := polyexpr.Degree(l, x)
	if err != nil {
		t.Fatal(err)
	}
	if deg != 3 {
		t.Errorf("deg(lcm) = %d, want 3 ((x-1)(x-2)(x-3), since gcd(a,b)=x-1)", deg)
	}
	q, err := f.DivPoly(l, a, x)
	if err != nil {
		t.Fatal(err)
	}
	qDeg, err := polyexpr.Degree(q, x)
	if err != nil {
		t.Fatal(err)
	}
	if qDeg != 1 {
		t.Errorf("lcm/a degree = %d, want 1 (x-3)", qDeg)
	}
}
