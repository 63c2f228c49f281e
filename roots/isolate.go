package roots

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// bracket is a half-open-on-neither-end real interval [lo, hi] known to
// contain exactly one root of the square-free polynomial it was isolated
// from.
type bracket struct {
	lo, hi *expr.Expr
}

// isolateSquareFree brackets every real root of the square-free integer
// polynomial g using a Cauchy bound to seed the search interval and a
// Sturm-sequence bisection to split it until every bracket contains
// exactly one root.
func isolateSquareFree(g, x *expr.Expr) ([]bracket, error) {
	seq, err := sturmSequence(g, x)
	if err != nil {
		return nil, err
	}
	bound, err := cauchyBound(g, x)
	if err != nil {
		return nil, err
	}
	negBound, err := reduce.Reduce(expr.NewMul(expr.Int64(-1), bound))
	if err != nil {
		return nil, err
	}

	var result []bracket
	work := []bracket{{lo: negBound, hi: bound}}
	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]

		vLo, err := varCount(seq, x, b.lo)
		if err != nil {
			return nil, err
		}
		vHi, err := varCount(seq, x, b.hi)
		if err != nil {
			return nil, err
		}
		n := vLo - vHi
		if n <= 0 {
			continue
		}
		if n == 1 {
			result = append(result, b)
			continue
		}
		mid, err := midpoint(b.lo, b.hi)
		if err != nil {
			return nil, err
		}
		if sMid, err := evalSign(g, x, mid); err != nil {
			return nil, err
		} else if sMid == 0 {
			// mid is itself an exact rational root; isolate it directly,
			// then shrink a window around it (halving until the window
			// contains no other root) before recursing into what remains
			// on either side.
			result = append(result, bracket{lo: mid, hi: mid})
			loExcl, hiExcl, err := excludeWindow(seq, x, b.lo, mid, b.hi)
			if err != nil {
				return nil, err
			}
			work = append(work, bracket{lo: b.lo, hi: loExcl}, bracket{lo: hiExcl, hi: b.hi})
			continue
		}
		work = append(work, bracket{lo: b.lo, hi: mid}, bracket{lo: mid, hi: b.hi})
	}
	return result, nil
}

// excludeWindow returns loExcl, hiExcl with lo < loExcl < mid < hiExcl < hi
// such that (loExcl, hiExcl) contains no root of the polynomial besides
// mid itself, by halving the window around mid until the Sturm variation
// drop across it accounts for exactly the one known root.
func excludeWindow(seq []*expr.Expr, x, lo, mid, hi *expr.Expr) (loExcl, hiExcl *expr.Expr, err error) {
	left, right := lo, hi
	for i := 0; i < 128; i++ {
		loExcl, err = midpoint(left, mid)
		if err != nil {
			return nil, nil, err
		}
		hiExcl, err = midpoint(mid, right)
		if err != nil {
			return nil, nil, err
		}
		vLo, err := varCount(seq, x, loExcl)
		if err != nil {
			return nil, nil, err
		}
		vHi, err := varCount(seq, x, hiExcl)
		if err != nil {
			return nil, nil, err
		}
		if vLo-vHi == 1 {
			return loExcl, hiExcl, nil
		}
		left, right = loExcl, hiExcl
	}
	return loExcl, hiExcl, nil
}

// midpoint returns (lo+hi)/2 as a reduced rational.
func midpoint(lo, hi *expr.Expr) (*expr.Expr, error) {
	sum, err := reduce.Reduce(expr.NewAdd(lo, hi))
	if err != nil {
		return nil, err
	}
	return reduce.Reduce(expr.NewMul(sum, mustFraction(1, 2)))
}

func mustFraction(num, den int64) *expr.Expr {
	f, err := expr.NewFraction(bigint.FromInt64(num), bigint.FromInt64(den))
	if err != nil {
		panic(err)
	}
	return f
}

// cauchyBound returns a rational B such that every real root of g lies
// in [-B, B]: B = 1 + max(|a_i/a_n|) over all i < n, the classical
// Cauchy bound, computed over the rationals since g may not be monic.
func cauchyBound(g, x *expr.Expr) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(g, x)
	if err != nil {
		return nil, err
	}
	lc, err := polyexpr.LeadingCoeff(g, x)
	if err != nil {
		return nil, err
	}
	invLc, err := reduce.Reduce(expr.NewPow(lc, expr.Int64(-1)))
	if err != nil {
		return nil, err
	}
	max := expr.Int64(0)
	for d := int64(0); d < deg; d++ {
		c, err := polyexpr.Coeff(g, x, d)
		if err != nil {
			return nil, err
		}
		if polyexpr.IsZero(c) {
			continue
		}
		ratio, err := reduce.Reduce(expr.NewMul(c, invLc))
		if err != nil {
			return nil, err
		}
		absRatio, err := absRational(ratio)
		if err != nil {
			return nil, err
		}
		if greater, err := rationalLess(max, absRatio); err != nil {
			return nil, err
		} else if greater {
			max = absRatio
		}
	}
	return reduce.Reduce(expr.NewAdd(expr.Int64(1), max))
}

func absRational(e *expr.Expr) (*expr.Expr, error) {
	switch e.Kind {
	case expr.Integer:
		return expr.NewInteger(e.Int.Abs()), nil
	case expr.Fraction:
		num := e.Children[0].Int.Abs()
		den := e.Children[1].Int
		return expr.NewFraction(num, den)
	default:
		return e, nil
	}
}

func asRatio(e *expr.Expr) (num, den bigint.Int) {
	switch e.Kind {
	case expr.Integer:
		return e.Int, bigint.One
	case expr.Fraction:
		return e.Children[0].Int, e.Children[1].Int
	default:
		return bigint.Zero, bigint.One
	}
}

func rationalLess(a, b *expr.Expr) (bool, error) {
	an, ad := asRatio(a)
	bn, bd := asRatio(b)
	lhs := an.Mul(bd)
	rhs := bn.Mul(ad)
	return lhs.Cmp(rhs) < 0, nil
}
