package reduce

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
)

// reducePow implements spec.md §4.3 power reduction.
func reducePow(base, exp *expr.Expr) (*expr.Expr, error) {
	if expr.Is(base, expr.ErrorMask) {
		return base, nil
	}
	if expr.Is(exp, expr.ErrorMask) {
		return exp, nil
	}

	if isZeroConst(exp) {
		if isZeroConst(base) {
			return expr.NewUndefined(), nil
		}
		return expr.Int64(1), nil
	}
	if isOneConst(exp) {
		return base, nil
	}

	if base.Kind == expr.Infinity {
		if isConstant(exp) && expr.Numerator(exp).Int.Sign() < 0 {
			return expr.Int64(0), nil
		}
		return expr.NewInfinity(), nil
	}

	if isZeroConst(base) {
		if isConstant(exp) {
			switch expr.Numerator(exp).Int.Sign() {
			case 1:
				return expr.Int64(0), nil
			case -1:
				return expr.NewUndefined(), nil
			}
		}
		return expr.NewPow(base, exp), nil
	}

	// Constant base, integer exponent: exact evaluation.
	if isConstant(base) && exp.Kind == expr.Integer {
		n, exact := exp.Int.Int64()
		if exact {
			v, ok, err := evalConstIntPow(base, n)
			if err != nil {
				return nil, err
			}
			if ok {
				return v, nil
			}
		}
	}

	// Constant base, fractional exponent: partial evaluation when the
	// base is an exact power (spec.md §4.3).
	if isConstant(base) && exp.Kind == expr.Fraction {
		if v, ok := evalConstFractionalPow(base, exp); ok {
			return v, nil
		}
	}

	// (x^a)^b -> x^(a*b) when safe: b is an integer, or both a and b are
	// constant (so the combined exponent is itself exact).
	if base.Kind == expr.Pow {
		innerBase, innerExp := base.Children[0], base.Children[1]
		if exp.Kind == expr.Integer || (isConstant(innerExp) && isConstant(exp)) {
			combined, err := addExponentsMul(innerExp, exp)
			if err != nil {
				return nil, err
			}
			return reducePow(innerBase, combined)
		}
	}

	// (x*y)^n -> x^n * y^n for integer n.
	if base.Kind == expr.Mul && exp.Kind == expr.Integer {
		factors := make([]*expr.Expr, len(base.Children))
		for i, c := range base.Children {
			p, err := reducePow(c, exp)
			if err != nil {
				return nil, err
			}
			factors[i] = p
		}
		return reduceProduct(factors)
	}

	return expr.NewPow(base, exp), nil
}

// addExponentsMul multiplies two exponent expressions (the (x^a)^b ->
// x^(a*b) rule), using the fast rational path when possible.
func addExponentsMul(a, b *expr.Expr) (*expr.Expr, error) {
	if isConstant(a) && isConstant(b) {
		return rneMul(a, b)
	}
	return reduceProduct([]*expr.Expr{a, b})
}

// evalConstFractionalPow evaluates base^(p/q) exactly when base (restricted
// to numerator/denominator integers raised independently) is a perfect
// q-th power; otherwise it reports ok=false and the caller leaves the POW
// node symbolic. Negative bases with an even root are left symbolic (this
// kernel has no complex-number support, spec.md §1 Non-goals).
func evalConstFractionalPow(base, exp *expr.Expr) (*expr.Expr, bool) {
	p, exactP := expr.Numerator(exp).Int.Int64()
	q, exactQ := expr.Denominator(exp).Int.Int64()
	if !exactP || !exactQ || q <= 0 {
		return nil, false
	}
	num := expr.Numerator(base).Int
	den := expr.Denominator(base).Int

	numRoot, numOK := rootWithSign(num, q)
	if !numOK {
		return nil, false
	}
	denRoot, denOK := rootWithSign(den, q)
	if !denOK {
		return nil, false
	}

	neg := p < 0
	if neg {
		p = -p
	}
	n := numRoot.Pow(p)
	d := denRoot.Pow(p)
	if neg {
		n, d = d, n
	}
	f, err := expr.NewFraction(n, d)
	if err != nil {
		return nil, false
	}
	return f, true
}

// rootWithSign returns the exact q'th root of v, honoring sign: a negative
// v only has a real q'th root when q is odd.
func rootWithSign(v bigint.Int, q int64) (bigint.Int, bool) {
	if v.Sign() >= 0 {
		return bigint.NthRoot(v, q)
	}
	if q%2 == 0 {
		return bigint.Int{}, false
	}
	r, ok := bigint.NthRoot(v.Abs(), q)
	if !ok {
		return bigint.Int{}, false
	}
	return r.Neg(), true
}
