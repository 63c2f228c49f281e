// Package roots implements spec.md §4.8: real-root isolation for
// univariate rational polynomials via Sturm-sequence sign-change
// counting and bisection refinement.
package roots

import (
	"context"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/factor"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// Interval is a real-root bracket: Lo and Hi are rationals with
// Lo <= root <= Hi. Exact is non-nil when the root was found to be
// exactly rational (Lo == Hi == Exact).
type Interval struct {
	Lo, Hi *expr.Expr
	Exact  *expr.Expr
}

// Isolate brackets every distinct real root of f (univariate, rational
// coefficients in x) into disjoint intervals, then bisects each bracket
// until its width is below the requested precision (spec.md §4.8
// "clear denominators; square-free decomposition; Sturm-sequence
// sign-change counting to bracket each real root; bisection to a
// specified precision").
//
// precision is a positive rational: bisection for a bracket stops once
// Hi-Lo <= precision (or the root is found to be exactly rational).
//
// ctx is polled once per square-free factor (spec.md §5's optional
// cooperative cancellation); a nil ctx never cancels.
func Isolate(ctx context.Context, f, x, precision *expr.Expr) ([]Interval, error) {
	ef, err := reduce.Expand(f)
	if err != nil {
		return nil, err
	}
	if polyexpr.IsZero(ef) {
		return nil, casio.New(casio.DomainError, "roots.Isolate: the zero polynomial has infinitely many roots")
	}
	deg, err := polyexpr.Degree(ef, x)
	if err != nil {
		return nil, err
	}
	if deg == 0 {
		return nil, nil
	}

	_, sqFreeFactors, err := factor.Factors(ctx, ef, x)
	if err != nil {
		return nil, err
	}

	var result []Interval
	for _, sf := range sqFreeFactors {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		g, err := clearToIntegerPoly(sf.Poly, x)
		if err != nil {
			return nil, err
		}
		brackets, err := isolateSquareFree(g, x)
		if err != nil {
			return nil, err
		}
		for _, b := range brackets {
			refined, err := refine(g, x, b, precision)
			if err != nil {
				return nil, err
			}
			result = append(result, refined)
		}
	}
	return result, nil
}

// clearToIntegerPoly scales f by the LCM of its coefficient
// denominators so every coefficient is an integer; does not affect the
// real roots.
func clearToIntegerPoly(f, x *expr.Expr) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(f, x)
	if err != nil {
		return nil, err
	}
	lcm := bigint.One
	for d := int64(0); d <= deg; d++ {
		c, err := polyexpr.Coeff(f, x, d)
		if err != nil {
			return nil, err
		}
		den := expr.Denominator(c).Int
		lcm = bigint.Lcm(lcm, den)
	}
	if lcm.Cmp(bigint.One) == 0 {
		return f, nil
	}
	return reduce.Expand(expr.NewMul(expr.NewInteger(lcm), f))
}
