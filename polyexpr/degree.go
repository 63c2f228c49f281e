package polyexpr

import (
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Degree returns the degree of f in x (spec.md §4.4 degree(f, x)). The
// zero polynomial has degree 0, matching robpike.io/ivy's convention of
// treating absent structure as the additive identity rather than -Inf.
func Degree(f, x *expr.Expr) (int64, error) {
	expanded, err := reduce.Expand(f)
	if err != nil {
		return 0, err
	}
	maxDeg := int64(0)
	for _, term := range termsOfAdd(expanded) {
		d, coeff, err := splitByVar(term, x)
		if err != nil {
			return 0, err
		}
		if isZero(coeff) {
			continue
		}
		if d > maxDeg {
			maxDeg = d
		}
	}
	return maxDeg, nil
}

// Coeff returns the coefficient of x^n in f (spec.md §4.4 coeff(f, x, n)).
func Coeff(f, x *expr.Expr, n int64) (*expr.Expr, error) {
	expanded, err := reduce.Expand(f)
	if err != nil {
		return nil, err
	}
	var parts []*expr.Expr
	for _, term := range termsOfAdd(expanded) {
		d, coeff, err := splitByVar(term, x)
		if err != nil {
			return nil, err
		}
		if d == n {
			parts = append(parts, coeff)
		}
	}
	if len(parts) == 0 {
		return expr.Int64(0), nil
	}
	return reduce.Reduce(sumOf(parts))
}

// LeadingCoeff returns coeff(f, x, degree(f, x)).
func LeadingCoeff(f, x *expr.Expr) (*expr.Expr, error) {
	d, err := Degree(f, x)
	if err != nil {
		return nil, err
	}
	return Coeff(f, x, d)
}
