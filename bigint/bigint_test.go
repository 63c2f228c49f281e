// Verify that DivMod satisfies the identity
//
//	quo = x div y  such that
//	rem = x - y*quo  with 0 <= rem < |y|
//
// the same property the teacher's quorem_test.go checks for math/big's
// own DivMod, applied here to bigint.Int.DivMod (spec.md §8).
package bigint

import "testing"

type pair struct{ x, y int64 }

var divModTests = []pair{
	{5, 3}, {-5, 3}, {5, -3}, {-5, -3},
	{5, 5}, {-5, 5}, {5, -5}, {-5, -5},
	{0, 7}, {7, 1}, {-7, 1},
}

func TestDivMod(t *testing.T) {
	for _, test := range divModTests {
		x, y := FromInt64(test.x), FromInt64(test.y)
		q, r, err := x.DivMod(y)
		if err != nil {
			t.Fatalf("DivMod(%d,%d): %v", test.x, test.y, err)
		}
		qi, _ := q.Int64()
		ri, _ := r.Int64()
		absY := test.y
		if absY < 0 {
			absY = -absY
		}
		if ri < 0 || ri >= absY {
			t.Errorf("DivMod(%d,%d) = %d,%d (remainder out of range)", test.x, test.y, qi, ri)
		}
		if expect := test.x - test.y*qi; ri != expect {
			t.Errorf("DivMod(%d,%d) = %d,%d yielding remainder %d, want %d", test.x, test.y, qi, ri, ri, expect)
		}
	}
}

func TestQuoRemSignTable(t *testing.T) {
	// sign(quotient) = sign(x)*sign(y); sign(remainder) = sign(x) or zero.
	for _, test := range divModTests {
		if test.y == 0 {
			continue
		}
		x, y := FromInt64(test.x), FromInt64(test.y)
		q, r, err := x.QuoRem(y)
		if err != nil {
			t.Fatalf("QuoRem(%d,%d): %v", test.x, test.y, err)
		}
		wantQSign := sign64(test.x) * sign64(test.y)
		if !q.IsZero() && q.Sign() != wantQSign {
			t.Errorf("QuoRem(%d,%d) quotient sign = %d, want %d", test.x, test.y, q.Sign(), wantQSign)
		}
		if !r.IsZero() && r.Sign() != sign64(test.x) {
			t.Errorf("QuoRem(%d,%d) remainder sign = %d, want %d", test.x, test.y, r.Sign(), sign64(test.x))
		}
	}
}

func sign64(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func TestDivideByZero(t *testing.T) {
	if _, _, err := FromInt64(1).DivMod(Zero); err == nil {
		t.Error("DivMod by zero: want error, got nil")
	}
	if _, _, err := FromInt64(1).QuoRem(Zero); err == nil {
		t.Error("QuoRem by zero: want error, got nil")
	}
}

func TestFactorial(t *testing.T) {
	f, err := Factorial(20)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "2432902008176640000"; got != want {
		t.Errorf("20! = %s, want %s", got, want)
	}
	if _, err := Factorial(-1); err == nil {
		t.Error("factorial of negative: want error, got nil")
	}
}

func TestGcdLcm(t *testing.T) {
	a, b := FromInt64(12), FromInt64(18)
	if g := Gcd(a, b); g.Cmp(FromInt64(6)) != 0 {
		t.Errorf("gcd(12,18) = %s, want 6", g)
	}
	if l := Lcm(a, b); l.Cmp(FromInt64(36)) != 0 {
		t.Errorf("lcm(12,18) = %s, want 36", l)
	}
}

func TestSqrt(t *testing.T) {
	r, err := Sqrt(FromInt64(10))
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(FromInt64(3)) != 0 {
		t.Errorf("isqrt(10) = %s, want 3", r)
	}
	if !IsPerfectSquare(FromInt64(144)) {
		t.Error("144 should be a perfect square")
	}
	if IsPerfectSquare(FromInt64(145)) {
		t.Error("145 should not be a perfect square")
	}
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		n    int64
		want int
	}{{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {1024, 10}}
	for _, c := range cases {
		got, err := CeilLog2(FromInt64(c.n))
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestMulAndSquare(t *testing.T) {
	a := FromInt64(123456789)
	if a.Mul(a).Cmp(a.Square()) != 0 {
		t.Error("Mul(a,a) and Square(a) disagree")
	}
}

func TestPowAndNthRoot(t *testing.T) {
	if got := FromInt64(3).Pow(4); got.Cmp(FromInt64(81)) != 0 {
		t.Errorf("3^4 = %s, want 81", got)
	}
	if r, ok := NthRoot(FromInt64(81), 4); !ok || r.Cmp(FromInt64(3)) != 0 {
		t.Errorf("NthRoot(81,4) = %s,%v want 3,true", r, ok)
	}
	if _, ok := NthRoot(FromInt64(80), 4); ok {
		t.Error("NthRoot(80,4) should not be exact")
	}
}

func TestProbablyPrime(t *testing.T) {
	if !ProbablyPrime(FromInt64(97)) {
		t.Error("97 should be prime")
	}
	if ProbablyPrime(FromInt64(100)) {
		t.Error("100 should not be prime")
	}
}
