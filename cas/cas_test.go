package cas

import (
	"testing"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

func mustReduce(t *testing.T, e *expr.Expr) *expr.Expr {
	t.Helper()
	r, err := reduce.Reduce(e)
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	return r
}

func TestConfigDefaults(t *testing.T) {
	var cfg *Config
	if cfg.OutputBase() != DefaultOutputBase {
		t.Errorf("nil Config.OutputBase() = %d, want %d", cfg.OutputBase(), DefaultOutputBase)
	}
	num, den := cfg.Precision()
	if num != DefaultPrecisionNum || den != DefaultPrecisionDen {
		t.Errorf("nil Config.Precision() = %d/%d, want %d/%d", num, den, DefaultPrecisionNum, DefaultPrecisionDen)
	}
	if cfg.Context() != nil {
		t.Errorf("nil Config.Context() = %v, want nil", cfg.Context())
	}

	cfg = &Config{}
	cfg.SetOutputBase(16)
	if cfg.OutputBase() != 16 {
		t.Errorf("after SetOutputBase(16), OutputBase() = %d", cfg.OutputBase())
	}
}

func TestNumberFromDoubleRecoversSimpleFractions(t *testing.T) {
	cases := []struct {
		v        float64
		num, den int64
	}{
		{0.5, 1, 2},
		{0.25, 1, 4},
		{-0.75, -3, 4},
		{3, 3, 1},
	}
	for _, c := range cases {
		got, err := NumberFromDouble(c.v)
		if err != nil {
			t.Fatalf("NumberFromDouble(%v): %v", c.v, err)
		}
		want, err := expr.NewFraction(bigint.FromInt64(c.num), bigint.FromInt64(c.den))
		if err != nil {
			t.Fatal(err)
		}
		if !expr.Equal(got, want) {
			t.Errorf("NumberFromDouble(%v) = %v, want %v", c.v, got, want)
		}
	}
}

func TestArithmeticCombinators(t *testing.T) {
	x := Symbol("x")
	sum, err := Add(x, IntFromLong(1))
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewAdd(x, expr.Int64(1)))
	if !expr.Equal(sum, want) {
		t.Errorf("Add(x,1) = %v, want %v", sum, want)
	}

	sq, err := Sqrt(IntFromLong(4))
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(sq, expr.Int64(2)) {
		t.Errorf("Sqrt(4) = %v, want 2", sq)
	}
}

func TestToStringRoundTrip(t *testing.T) {
	x := Symbol("x")
	cfg := &Config{}
	cases := []*expr.Expr{
		mustReduce(t, expr.NewAdd(expr.NewPow(x, expr.Int64(2)), expr.NewMul(expr.Int64(3), x), expr.Int64(1))),
		mustReduce(t, expr.NewSub(x, expr.Int64(5))),
		mustReduce(t, expr.NewDiv(expr.Int64(3), expr.Int64(4))),
		mustReduce(t, expr.NewSqrt(x)),
		expr.NewInteger(bigint.FromInt64(-42)),
	}
	for _, e := range cases {
		s, err := ToString(cfg, e)
		if err != nil {
			t.Fatalf("ToString(%v): %v", e, err)
		}
		parsed, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		got := mustReduce(t, parsed)
		if !expr.Equal(got, e) {
			t.Errorf("round-trip(%v) via %q = %v, want %v", e, s, got, e)
		}
	}
}

func TestToLatexFraction(t *testing.T) {
	cfg := &Config{}
	half, err := expr.NewFraction(bigint.FromInt64(1), bigint.FromInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ToLatex(cfg, half, false, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != `\frac{1}{2}` {
		t.Errorf(`ToLatex(1/2) = %q, want \frac{1}{2}`, got)
	}
}

func TestPolynomialFacadeFactorAndRoots(t *testing.T) {
	x := Symbol("x")
	cfg := &Config{}
	f := mustReduce(t, expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1)))

	_, factors, err := Factor(cfg, f, x)
	if err != nil {
		t.Fatal(err)
	}
	if len(factors) != 2 {
		t.Fatalf("Factor(x^2-1): got %d factors, want 2", len(factors))
	}

	ivs, err := Roots(cfg, f, x)
	if err != nil {
		t.Fatal(err)
	}
	if len(ivs) != 2 {
		t.Fatalf("Roots(x^2-1): got %d roots, want 2", len(ivs))
	}
}

func TestGFRingFacade(t *testing.T) {
	x := Symbol("x")
	ring, err := NewGFRing(bigint.FromInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	a := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(2)))
	b := expr.NewMul(expr.NewSub(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(3)))
	g, err := ring.GCD(a, b, x)
	if err != nil {
		t.Fatal(err)
	}
	deg, err := Degree(g, x)
	if err != nil {
		t.Fatal(err)
	}
	if deg != 1 {
		t.Errorf("GFRing.GCD degree = %d, want 1", deg)
	}

	if _, err := NewGFRing(bigint.FromInt64(4)); err == nil {
		t.Error("NewGFRing(4): expected DomainError for composite modulus")
	}
}

func TestTransformFacade(t *testing.T) {
	x := Symbol("x")
	y := Symbol("y")
	e, err := Replace(expr.NewAdd(x, expr.Int64(1)), x, y)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.NewAdd(y, expr.Int64(1))
	if !expr.Equal(e, want) {
		t.Errorf("Replace(x+1, x, y) = %v, want %v", e, want)
	}

	free := FreeVariables(expr.NewAdd(x, y))
	if len(free) != 2 {
		t.Errorf("FreeVariables(x+y): got %d symbols, want 2", len(free))
	}
}

func TestRationalPolynomialFacade(t *testing.T) {
	cfg := &Config{}
	x := Symbol("x")
	f := mustReduce(t, expr.NewSub(expr.NewPow(x, expr.Int64(3)), x))
	g := mustReduce(t, expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1)))
	got, err := GCDPoly(cfg, f, g, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, g)
	if !expr.Equal(got, want) {
		t.Errorf("GCDPoly(x^3-x, x^2-1) = %v, want %v", got, want)
	}
}

func TestCalculusFacade(t *testing.T) {
	x := Symbol("x")
	f := mustReduce(t, expr.NewPow(x, expr.Int64(3)))
	d, err := Derivative(f, x)
	if err != nil {
		t.Fatal(err)
	}
	want := mustReduce(t, expr.NewMul(expr.Int64(3), expr.NewPow(x, expr.Int64(2))))
	if !expr.Equal(d, want) {
		t.Errorf("Derivative(x^3) = %v, want %v", d, want)
	}
}
