package roots

import "github.com/Marcos30004347/math/expr"

// refine bisects b to width <= precision (spec.md §4.8 "bisection to a
// specified precision"), short-circuiting to an exact rational result
// the moment the midpoint itself evaluates to zero.
func refine(g, x *expr.Expr, b bracket, precision *expr.Expr) (Interval, error) {
	if equalRational(b.lo, b.hi) {
		return Interval{Lo: b.lo, Hi: b.hi, Exact: b.lo}, nil
	}

	lo, hi := b.lo, b.hi
	sLo, err := evalSign(g, x, lo)
	if err != nil {
		return Interval{}, err
	}

	for i := 0; i < 1024; i++ {
		width, err := rationalSub(hi, lo)
		if err != nil {
			return Interval{}, err
		}
		if wide, err := rationalLess(precision, width); err != nil {
			return Interval{}, err
		} else if !wide {
			break
		}
		mid, err := midpoint(lo, hi)
		if err != nil {
			return Interval{}, err
		}
		sMid, err := evalSign(g, x, mid)
		if err != nil {
			return Interval{}, err
		}
		if sMid == 0 {
			return Interval{Lo: mid, Hi: mid, Exact: mid}, nil
		}
		if sMid == sLo {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

func equalRational(a, b *expr.Expr) bool {
	an, ad := asRatio(a)
	bn, bd := asRatio(b)
	return an.Mul(bd).Cmp(bn.Mul(ad)) == 0
}

func rationalSub(a, b *expr.Expr) (*expr.Expr, error) {
	an, ad := asRatio(a)
	bn, bd := asRatio(b)
	num := an.Mul(bd).Sub(bn.Mul(ad))
	den := ad.Mul(bd)
	return expr.NewFraction(num, den)
}
