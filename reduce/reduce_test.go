package reduce

import (
	"testing"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
)

func mustReduce(t *testing.T, e *expr.Expr) *expr.Expr {
	t.Helper()
	r, err := Reduce(e)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	return r
}

func mustExpand(t *testing.T, e *expr.Expr) *expr.Expr {
	t.Helper()
	r, err := Expand(e)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	return r
}

func TestIdempotence(t *testing.T) {
	x := expr.NewSymbol("x")
	cases := []*expr.Expr{
		expr.NewAdd(x, Int1(), x),
		expr.NewMul(Int1(), x, x),
		expr.NewPow(expr.NewAdd(x, Int1()), Int1()),
		expr.NewSub(x, x),
	}
	for _, c := range cases {
		once := mustReduce(t, c)
		twice := mustReduce(t, once)
		if !expr.Equal(once, twice) {
			t.Errorf("reduce not idempotent on %v: once=%v twice=%v", c, once, twice)
		}
	}
}

func Int1() *expr.Expr { return expr.Int64(1) }

func TestScenarioDifferenceOfSquares(t *testing.T) {
	x := expr.NewSymbol("x")
	// (x+1)*(x-1) - (x^2 - 1) -> 0
	lhs := expr.NewMul(expr.NewAdd(x, expr.Int64(1)), expr.NewSub(x, expr.Int64(1)))
	rhs := expr.NewSub(expr.NewPow(x, expr.Int64(2)), expr.Int64(1))
	e := expr.NewSub(lhs, rhs)
	got := mustExpand(t, e)
	if got.Kind != expr.Integer || !got.Int.IsZero() {
		t.Errorf("(x+1)(x-1)-(x^2-1) = %v, want 0", got)
	}
}

func TestScenarioExpandCubic(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewMul(
		expr.NewAdd(x, expr.Int64(2)),
		expr.NewAdd(x, expr.Int64(3)),
		expr.NewAdd(x, expr.Int64(4)),
	)
	got := mustExpand(t, e)
	// x^3 + 9x^2 + 26x + 24
	want := mustReduce(t, expr.NewAdd(
		expr.NewPow(x, expr.Int64(3)),
		expr.NewMul(expr.Int64(9), expr.NewPow(x, expr.Int64(2))),
		expr.NewMul(expr.Int64(26), x),
		expr.Int64(24),
	))
	if !expr.Equal(got, want) {
		t.Errorf("expand((x+2)(x+3)(x+4)) = %v, want %v", got, want)
	}
}

func TestSumLikeTermCombination(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewAdd(x, x, x)
	got := mustReduce(t, e)
	want := mustReduce(t, expr.NewMul(expr.Int64(3), x))
	if !expr.Equal(got, want) {
		t.Errorf("x+x+x = %v, want %v", got, want)
	}
}

func TestProductCombinesPowers(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewMul(expr.NewPow(x, expr.Int64(2)), expr.NewPow(x, expr.Int64(3)))
	got := mustReduce(t, e)
	want := mustReduce(t, expr.NewPow(x, expr.Int64(5)))
	if !expr.Equal(got, want) {
		t.Errorf("x^2*x^3 = %v, want %v", got, want)
	}
}

func TestSqrtTimesSqrtIsRadicand(t *testing.T) {
	x := expr.NewSymbol("x")
	e := expr.NewMul(expr.NewSqrt(x), expr.NewSqrt(x))
	got := mustReduce(t, e)
	if !expr.Equal(got, x) {
		t.Errorf("sqrt(x)*sqrt(x) = %v, want x", got)
	}
}

func TestPowerIdentities(t *testing.T) {
	x := expr.NewSymbol("x")
	if got := mustReduce(t, expr.NewPow(x, expr.Int64(0))); got.Kind != expr.Integer || got.Int.Cmp(bigint.One) != 0 {
		t.Errorf("x^0 = %v, want 1", got)
	}
	if got := mustReduce(t, expr.NewPow(x, expr.Int64(1))); !expr.Equal(got, x) {
		t.Errorf("x^1 = %v, want x", got)
	}
	if got := mustReduce(t, expr.NewPow(expr.Int64(0), expr.Int64(0))); got.Kind != expr.Undefined {
		t.Errorf("0^0 = %v, want UNDEFINED", got)
	}
	if got := mustReduce(t, expr.NewPow(expr.NewPow(x, expr.Int64(2)), expr.Int64(3))); !expr.Equal(got, mustReduce(t, expr.NewPow(x, expr.Int64(6)))) {
		t.Errorf("(x^2)^3 = %v, want x^6", got)
	}
}

func TestReplaceAndEval(t *testing.T) {
	x := expr.NewSymbol("x")
	u := expr.NewAdd(x, expr.Int64(1))
	r, err := Replace(u, x, expr.Int64(5))
	if err != nil {
		t.Fatal(err)
	}
	v, err := Reduce(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != expr.Integer || v.Int.Cmp(bigint.FromInt64(6)) != 0 {
		t.Errorf("(x+1)|x=5 = %v, want 6", v)
	}

	ev, err := Eval(expr.NewPow(expr.NewAdd(x, expr.Int64(1)), expr.Int64(2)), x, expr.Int64(2))
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != expr.Integer || ev.Int.Cmp(bigint.FromInt64(9)) != 0 {
		t.Errorf("eval (x+1)^2 at x=2 = %v, want 9", ev)
	}

	if _, err := Replace(u, expr.Int64(1), expr.Int64(2)); err == nil {
		t.Error("replace with a non-symbol key should fail")
	}
}
