// Package primes provides the small number-theoretic helpers package
// factor needs to pick a reduction prime and a Hensel-lifting precision,
// kept out of the public surface since spec.md §6 does not name them as
// external interfaces.
package primes

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
)

// SquareFreeModP reports whether g's image mod p (projected by the
// caller-supplied project function) remains square-free, i.e.
// gcd(g mod p, g' mod p) is a nonzero constant. This is the condition
// spec.md §4.7 states as "p not dividing disc(g)" — disc(g) is, up to
// sign and a leading-coefficient power, resultant(g, g'), which is zero
// mod p exactly when g mod p and g' mod p share a nontrivial factor, so
// checking that gcd directly avoids a separate discriminant computation.
func SquareFreeModP(gcdModP func(a, b, x *expr.Expr) (*expr.Expr, error), g, x *expr.Expr) (bool, error) {
	gp, err := polyexpr.Derivative(g, x)
	if err != nil {
		return false, err
	}
	h, err := gcdModP(g, gp, x)
	if err != nil {
		return false, err
	}
	d, err := polyexpr.Degree(h, x)
	if err != nil {
		return false, err
	}
	return d == 0, nil
}

// NextOddPrime returns the smallest prime strictly greater than n (or
// equal to n if n itself is already prime and odd), skipping 2 — package
// factor's Cantor–Zassenhaus equal-degree split assumes odd
// characteristic.
func NextOddPrime(n bigint.Int) bigint.Int {
	if n.Cmp(bigint.FromInt64(3)) < 0 {
		n = bigint.FromInt64(3)
	}
	c := n
	two := bigint.FromInt64(2)
	if _, r, _ := c.DivMod(two); r.IsZero() {
		c = c.Add(bigint.One)
	}
	for !bigint.ProbablyPrime(c) {
		c = c.Add(two)
	}
	return c
}

// MignotteBound returns a conservative (deliberately loose — tightness
// only affects how many Hensel lifting rounds run, never correctness)
// upper bound on the absolute value of any coefficient of any integer
// factor of f: (n+1) * 2^n * maxCoeff(f), with n = deg(f, x).
func MignotteBound(f, x *expr.Expr) (bigint.Int, error) {
	n, err := polyexpr.Degree(f, x)
	if err != nil {
		return bigint.Int{}, err
	}
	maxCoeff := bigint.Zero
	for d := int64(0); d <= n; d++ {
		c, err := polyexpr.Coeff(f, x, d)
		if err != nil {
			return bigint.Int{}, err
		}
		if c.Kind != expr.Integer {
			return bigint.Int{}, casio.New(casio.NotAPolynomial, "Mignotte bound requires integer coefficients")
		}
		if c.Int.Abs().Cmp(maxCoeff) > 0 {
			maxCoeff = c.Int.Abs()
		}
	}
	nPlus1 := bigint.FromInt64(n + 1)
	two := bigint.FromInt64(2)
	return nPlus1.Mul(two.Pow(n)).Mul(maxCoeff), nil
}
