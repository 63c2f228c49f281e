package factor

import (
	"math/rand"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/gf"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// ddfTerm is the product of all degree-d irreducible factors of a
// monic square-free polynomial over GF(p).
type ddfTerm struct {
	degree int64
	poly   *expr.Expr
}

// distinctDegreeFactor implements the distinct-degree step of spec.md
// §4.7's "distinct-degree then equal-degree / Cantor-Zassenhaus" via
// repeated gcd(f, x^(p^d) - x).
func distinctDegreeFactor(f, x *expr.Expr, fld *gf.Field) ([]ddfTerm, error) {
	var terms []ddfTerm
	remaining, err := fld.Project(f, x)
	if err != nil {
		return nil, err
	}
	h := x
	for d := int64(1); ; d++ {
		degRemaining, err := polyexpr.Degree(remaining, x)
		if err != nil {
			return nil, err
		}
		if degRemaining == 0 || 2*d > degRemaining {
			break
		}
		h, err = modPow(h, remaining, x, fld.P, fld)
		if err != nil {
			return nil, err
		}
		diff, err := fld.SubPoly(h, x, x)
		if err != nil {
			return nil, err
		}
		gd, err := fld.GCD(remaining, diff, x)
		if err != nil {
			return nil, err
		}
		if degGd, err := polyexpr.Degree(gd, x); err != nil {
			return nil, err
		} else if degGd > 0 {
			terms = append(terms, ddfTerm{degree: d, poly: gd})
			_, remaining, err = fld.QuoRem(remaining, gd, x)
			if err != nil {
				return nil, err
			}
			_, h, err = fld.QuoRem(h, remaining, x)
			if err != nil {
				return nil, err
			}
		}
	}
	if degRemaining, err := polyexpr.Degree(remaining, x); err != nil {
		return nil, err
	} else if degRemaining > 0 {
		terms = append(terms, ddfTerm{degree: degRemaining, poly: remaining})
	}
	return terms, nil
}

// modPow computes base^exp mod (modulus) in GF(p)[x] via square-and-multiply.
func modPow(base, modulus, x *expr.Expr, exp bigint.Int, fld *gf.Field) (*expr.Expr, error) {
	result := expr.Int64(1)
	b, err := fld.Project(base, x)
	if err != nil {
		return nil, err
	}
	_, b, err = fld.QuoRem(b, modulus, x)
	if err != nil {
		return nil, err
	}
	e := exp
	two := bigint.FromInt64(2)
	for e.Sign() > 0 {
		half, rem, err := e.QuoRem(two)
		if err != nil {
			return nil, err
		}
		if !rem.IsZero() {
			p, err := fld.MulPoly(result, b, x)
			if err != nil {
				return nil, err
			}
			_, result, err = fld.QuoRem(p, modulus, x)
			if err != nil {
				return nil, err
			}
		}
		sq, err := fld.MulPoly(b, b, x)
		if err != nil {
			return nil, err
		}
		_, b, err = fld.QuoRem(sq, modulus, x)
		if err != nil {
			return nil, err
		}
		e = half
	}
	return result, nil
}

// equalDegreeFactor splits f (a product of irreducible degree-d factors
// over GF(p), p odd) into its irreducible factors via randomized
// Cantor-Zassenhaus splitting.
func equalDegreeFactor(f, x *expr.Expr, d int64, fld *gf.Field, rng *rand.Rand) ([]*expr.Expr, error) {
	deg, err := polyexpr.Degree(f, x)
	if err != nil {
		return nil, err
	}
	if deg == d {
		return []*expr.Expr{f}, nil
	}
	if deg == 0 {
		return nil, nil
	}
	if fld.P.Cmp(bigint.FromInt64(2)) == 0 {
		return nil, casio.New(casio.ArithmeticError, "equal-degree factorization over GF(2) is not supported")
	}

	pd := fld.P.Pow(d)
	exp, _, err := pd.Sub(bigint.One).QuoRem(bigint.FromInt64(2))
	if err != nil {
		return nil, err
	}

	const maxAttempts = 200
	for attempt := 0; attempt < maxAttempts; attempt++ {
		r, err := randomPoly(fld, x, deg-1, rng)
		if err != nil {
			return nil, err
		}
		t, err := modPow(r, f, x, exp, fld)
		if err != nil {
			return nil, err
		}
		tm1, err := fld.SubPoly(t, expr.Int64(1), x)
		if err != nil {
			return nil, err
		}
		g, err := fld.GCD(f, tm1, x)
		if err != nil {
			return nil, err
		}
		degG, err := polyexpr.Degree(g, x)
		if err != nil {
			return nil, err
		}
		if degG == 0 || degG == deg {
			continue
		}
		_, rest, err := fld.QuoRem(f, g, x)
		if err != nil {
			return nil, err
		}
		left, err := equalDegreeFactor(g, x, d, fld, rng)
		if err != nil {
			return nil, err
		}
		right, err := equalDegreeFactor(rest, x, d, fld, rng)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
	return nil, casio.New(casio.Fail, "equal-degree factorization did not converge after %d attempts", maxAttempts)
}

// randomPoly returns a uniformly random nonzero polynomial of degree at
// most maxDeg with coefficients in GF(p).
func randomPoly(fld *gf.Field, x *expr.Expr, maxDeg int64, rng *rand.Rand) (*expr.Expr, error) {
	pInt, ok := fld.P.Int64()
	if !ok || pInt <= 0 {
		return nil, casio.New(casio.ArithmeticError, "randomPoly: modulus too large for randomized splitting")
	}
	for tries := 0; tries < 100; tries++ {
		var terms []*expr.Expr
		for d := maxDeg; d >= 0; d-- {
			c := rng.Int63n(pInt)
			if c == 0 {
				continue
			}
			terms = append(terms, monomialInt(c, x, d))
		}
		if len(terms) == 0 {
			continue
		}
		if len(terms) == 1 {
			return terms[0], nil
		}
		return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
	}
	return expr.Int64(1), nil
}

func monomialInt(c int64, x *expr.Expr, d int64) *expr.Expr {
	if d == 0 {
		return expr.Int64(c)
	}
	var p *expr.Expr
	if d == 1 {
		p = x
	} else {
		p = expr.NewPow(x, expr.Int64(d))
	}
	if c == 1 {
		return p
	}
	return expr.NewMul(expr.Int64(c), p)
}
