package polyexpr

import (
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// QuoRem implements spec.md §6's `quo/rem (over ℚ)`: exact polynomial
// division in x with rational coefficients, returning q, r such that
// f = q*g + r and deg(r, x) < deg(g, x). Unlike PseudoDivide, QuoRem
// divides by lc(g) at every step instead of scaling f, so it requires a
// rational leading coefficient for g but never needs a caller-side
// unscaling pass — the natural operation for a Sturm sequence (package
// roots), where remainder signs must be exact, not scaled by an
// arbitrary positive-or-negative constant.
func QuoRem(f, g, x *expr.Expr) (q, r *expr.Expr, err error) {
	degG, err := Degree(g, x)
	if err != nil {
		return nil, nil, err
	}
	lcG, err := Coeff(g, x, degG)
	if err != nil {
		return nil, nil, err
	}
	if isZero(lcG) {
		return nil, nil, casio.New(casio.DomainError, "division by the zero polynomial")
	}
	if lcG.Kind != expr.Integer && lcG.Kind != expr.Fraction {
		return nil, nil, casio.New(casio.ArithmeticError, "QuoRem requires a rational leading coefficient in %s", x.Name)
	}
	invLcG, err := reduce.Reduce(expr.NewPow(lcG, expr.Int64(-1)))
	if err != nil {
		return nil, nil, err
	}

	r, err = reduce.Expand(f)
	if err != nil {
		return nil, nil, err
	}
	q = expr.Int64(0)

	for {
		degR, err := Degree(r, x)
		if err != nil {
			return nil, nil, err
		}
		if isZero(r) || degR < degG {
			break
		}
		lcR, err := Coeff(r, x, degR)
		if err != nil {
			return nil, nil, err
		}
		termCoeff, err := reduce.Reduce(expr.NewMul(lcR, invLcG))
		if err != nil {
			return nil, nil, err
		}
		shift := makeTerm(termCoeff, x, degR-degG)

		shiftG, err := reduce.Expand(expr.NewMul(shift, g))
		if err != nil {
			return nil, nil, err
		}
		r, err = reduce.Expand(expr.NewSub(r, shiftG))
		if err != nil {
			return nil, nil, err
		}
		q, err = reduce.Expand(expr.NewAdd(q, shift))
		if err != nil {
			return nil, nil, err
		}
	}
	return q, r, nil
}
