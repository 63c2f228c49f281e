package reduce

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// isConstant reports whether e is INTEGER or FRACTION.
func isConstant(e *expr.Expr) bool { return e.Kind == expr.Integer || e.Kind == expr.Fraction }

func isZeroConst(e *expr.Expr) bool {
	return e.Kind == expr.Integer && e.Int.IsZero()
}

func isOneConst(e *expr.Expr) bool {
	return e.Kind == expr.Integer && e.Int.Cmp(bigint.One) == 0
}

func isMinusOneConst(e *expr.Expr) bool {
	return e.Kind == expr.Integer && e.Int.Cmp(bigint.MinusOne) == 0
}

// rneAdd, rneSub, rneMul and rneInv implement the rational number engine
// (spec.md §4.3 reduceRNE) restricted to two already-constant operands,
// the fast path used throughout sum/product reduction to fold numeric
// sub-expressions.
func rneAdd(a, b *expr.Expr) (*expr.Expr, error) {
	an, ad := expr.Numerator(a).Int, expr.Denominator(a).Int
	bn, bd := expr.Numerator(b).Int, expr.Denominator(b).Int
	num := an.Mul(bd).Add(bn.Mul(ad))
	den := ad.Mul(bd)
	return expr.NewFraction(num, den)
}

func rneSub(a, b *expr.Expr) (*expr.Expr, error) { return rneAdd(a, rneNeg(b)) }

func rneNeg(a *expr.Expr) *expr.Expr {
	n := expr.Numerator(a).Int.Neg()
	d := expr.Denominator(a).Int
	f, _ := expr.NewFraction(n, d)
	return f
}

func rneMul(a, b *expr.Expr) (*expr.Expr, error) {
	an, ad := expr.Numerator(a).Int, expr.Denominator(a).Int
	bn, bd := expr.Numerator(b).Int, expr.Denominator(b).Int
	return expr.NewFraction(an.Mul(bn), ad.Mul(bd))
}

func rneInv(a *expr.Expr) (*expr.Expr, error) {
	n, d := expr.Numerator(a).Int, expr.Denominator(a).Int
	if n.IsZero() {
		return nil, casio.New(casio.ArithmeticError, "division by zero in rational number engine")
	}
	return expr.NewFraction(d, n)
}

func rneDiv(a, b *expr.Expr) (*expr.Expr, error) {
	inv, err := rneInv(b)
	if err != nil {
		return nil, err
	}
	return rneMul(a, inv)
}

// evaluateRNE recursively folds an expression whose leaves are all
// INTEGER/FRACTION into a single INTEGER or FRACTION (spec.md §4.3). It is
// the fast path reduce.go calls before falling back to the general
// sum/product/power reducers.
func evaluateRNE(e *expr.Expr) (*expr.Expr, bool, error) {
	switch e.Kind {
	case expr.Integer, expr.Fraction:
		return e, true, nil
	case expr.Add:
		acc, ok, err := evaluateRNE(e.Children[0])
		if err != nil || !ok {
			return nil, ok, err
		}
		for _, c := range e.Children[1:] {
			v, ok, err := evaluateRNE(c)
			if err != nil || !ok {
				return nil, ok, err
			}
			acc, err = rneAdd(acc, v)
			if err != nil {
				return nil, false, err
			}
		}
		return acc, true, nil
	case expr.Mul:
		acc, ok, err := evaluateRNE(e.Children[0])
		if err != nil || !ok {
			return nil, ok, err
		}
		for _, c := range e.Children[1:] {
			v, ok, err := evaluateRNE(c)
			if err != nil || !ok {
				return nil, ok, err
			}
			acc, err = rneMul(acc, v)
			if err != nil {
				return nil, false, err
			}
		}
		return acc, true, nil
	case expr.Pow:
		base, ok, err := evaluateRNE(e.Children[0])
		if err != nil || !ok {
			return nil, ok, err
		}
		if e.Children[1].Kind != expr.Integer {
			return nil, false, nil
		}
		n, exact := e.Children[1].Int.Int64()
		if !exact {
			return nil, false, nil
		}
		return evalConstIntPow(base, n)
	default:
		return nil, false, nil
	}
}

// evalConstIntPow computes base^n exactly for a constant base and machine
// integer exponent n (possibly negative).
func evalConstIntPow(base *expr.Expr, n int64) (*expr.Expr, bool, error) {
	if n == 0 {
		if isZeroConst(base) {
			return nil, false, nil // 0^0: leave to the power reducer (Undefined)
		}
		return expr.Int64(1), true, nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	num := expr.Numerator(base).Int.Pow(n)
	den := expr.Denominator(base).Int.Pow(n)
	if neg {
		num, den = den, num
	}
	f, err := expr.NewFraction(num, den)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}
