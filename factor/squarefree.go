// Package factor implements spec.md §4.7: square-free decomposition,
// distinct-degree and equal-degree (Cantor–Zassenhaus) factorization over
// GF(p), Hensel lifting bounded by the Mignotte bound, and trial-division
// recombination back to ℤ[x]. Scope: univariate polynomials in one free
// variable, matching every worked example in spec.md §8 and the
// single-variable notions (g', disc(g)) the spec's own §4.7 text uses.
package factor

import (
	"context"

	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/polyops"
	"github.com/Marcos30004347/math/reduce"
)

// SquareFreeFactor is one term gᵢ^i of a square-free decomposition.
type SquareFreeFactor struct {
	Poly       *expr.Expr
	Multiplicity int64
}

// SquareFreeDecompose computes f = prod gᵢ^i via Yun's algorithm
// (spec.md §4.7 "square-free decomposition g = prod gᵢ^i via
// gcd(g, g')"), assuming f has a nonzero leading coefficient and positive
// degree in x.
func SquareFreeDecompose(ctx context.Context, f, x *expr.Expr) ([]SquareFreeFactor, error) {
	fp, err := polyexpr.Derivative(f, x)
	if err != nil {
		return nil, err
	}
	a0, err := polyops.GCD(ctx, f, fp, x)
	if err != nil {
		return nil, err
	}
	if deg, err := polyexpr.Degree(a0, x); err != nil {
		return nil, err
	} else if deg == 0 {
		return []SquareFreeFactor{{Poly: f, Multiplicity: 1}}, nil
	}

	b, err := polyexpr.ExactDivide(f, a0, x)
	if err != nil {
		return nil, err
	}
	c, err := polyexpr.ExactDivide(fp, a0, x)
	if err != nil {
		return nil, err
	}
	bp, err := polyexpr.Derivative(b, x)
	if err != nil {
		return nil, err
	}
	d, err := reduce.Expand(expr.NewSub(c, bp))
	if err != nil {
		return nil, err
	}

	var result []SquareFreeFactor
	for i := int64(1); ; i++ {
		degB, err := polyexpr.Degree(b, x)
		if err != nil {
			return nil, err
		}
		if degB == 0 {
			break
		}
		a, err := polyops.GCD(ctx, b, d, x)
		if err != nil {
			return nil, err
		}
		if degA, err := polyexpr.Degree(a, x); err != nil {
			return nil, err
		} else if degA > 0 {
			result = append(result, SquareFreeFactor{Poly: a, Multiplicity: i})
		}
		b2, err := polyexpr.ExactDivide(b, a, x)
		if err != nil {
			return nil, err
		}
		c2, err := polyexpr.ExactDivide(d, a, x)
		if err != nil {
			return nil, err
		}
		b2p, err := polyexpr.Derivative(b2, x)
		if err != nil {
			return nil, err
		}
		d2, err := reduce.Expand(expr.NewSub(c2, b2p))
		if err != nil {
			return nil, err
		}
		b, d = b2, d2
	}
	return result, nil
}
