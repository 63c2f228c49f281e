package cas

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/factor"
	"github.com/Marcos30004347/math/gf"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/polyops"
	"github.com/Marcos30004347/math/reduce"
	"github.com/Marcos30004347/math/roots"
)

// Degree, Coeff, LeadingCoeff expose PolyExpr's structural accessors
// (spec.md §6 "Polynomial: factor, degree, coeff, leadingCoeff,
// resultant, roots").
func Degree(f, x *expr.Expr) (int64, error)         { return polyexpr.Degree(f, x) }
func Coeff(f, x *expr.Expr, n int64) (*expr.Expr, error) { return polyexpr.Coeff(f, x, n) }
func LeadingCoeff(f, x *expr.Expr) (*expr.Expr, error)   { return polyexpr.LeadingCoeff(f, x) }

// Resultant eliminates, between f and g, the first variable in expr.Less
// order among the free variables of f and g together (spec.md §4.6), by
// delegating to polyops.Resultant.
func Resultant(f, g *expr.Expr) (*expr.Expr, error) { return polyops.Resultant(f, g) }

// Factor factors f over ℤ[x] into a unit and a list of irreducible
// factors with multiplicity (spec.md §4.7), cooperatively cancellable
// via cfg's Context.
func Factor(cfg *Config, f, x *expr.Expr) (unit *expr.Expr, factors []factor.Factor, err error) {
	return factor.Factors(cfg.Context(), f, x)
}

// FactorAndExpand is spec.md §4.7's `factorPolyExprAndExpand`.
func FactorAndExpand(cfg *Config, f, x *expr.Expr) (*expr.Expr, error) {
	return factor.FactorPolyExprAndExpand(cfg.Context(), f, x)
}

// Roots isolates every real root of f in x to cfg's configured precision
// (spec.md §4.8), cooperatively cancellable via cfg's Context.
func Roots(cfg *Config, f, x *expr.Expr) ([]roots.Interval, error) {
	num, den := cfg.Precision()
	precision, err := expr.NewFraction(bigint.FromInt64(num), bigint.FromInt64(den))
	if err != nil {
		return nil, err
	}
	return roots.Isolate(cfg.Context(), f, x, precision)
}

// AddPoly..LCMPoly are spec.md §6's "add/sub/mul/div/quo/rem/gcd/lcm
// (over ℚ)": PolyExpr arithmetic with rational coefficients.
func AddPoly(a, b *expr.Expr) (*expr.Expr, error) { return polyexpr.Add(a, b) }
func SubPoly(a, b *expr.Expr) (*expr.Expr, error) { return polyexpr.Sub(a, b) }
func MulPoly(a, b *expr.Expr) (*expr.Expr, error) { return polyexpr.Mul(a, b) }
func DivPoly(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewDiv(a, b)) }

// QuoRemPoly is the exact ℚ[x] division spec.md §6 names `quo/rem`.
func QuoRemPoly(f, g, x *expr.Expr) (q, r *expr.Expr, err error) {
	return polyexpr.QuoRem(f, g, x)
}

func GCDPoly(cfg *Config, a, b, x *expr.Expr) (*expr.Expr, error) {
	return polyops.GCD(cfg.Context(), a, b, x)
}

func LCMPoly(cfg *Config, a, b, x *expr.Expr) (*expr.Expr, error) {
	return polyops.LCM(cfg.Context(), a, b, x)
}

// GFRing is spec.md §6's "parallel set over GF(p)": the same
// add/sub/mul/div/quo/rem/gcd/lcm vocabulary, scoped to a fixed prime
// field so callers don't thread p through every call.
type GFRing struct {
	Field *gf.Field
}

// NewGFRing builds the GF(p) façade, rejecting a non-prime p the same
// way gf.NewField does (spec.md §4.6 "reject non-prime p").
func NewGFRing(p bigint.Int) (*GFRing, error) {
	f, err := gf.NewField(p)
	if err != nil {
		return nil, err
	}
	return &GFRing{Field: f}, nil
}

func (r *GFRing) Add(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.AddPoly(a, b, x) }
func (r *GFRing) Sub(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.SubPoly(a, b, x) }
func (r *GFRing) Mul(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.MulPoly(a, b, x) }
func (r *GFRing) Div(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.DivPoly(a, b, x) }
func (r *GFRing) QuoRem(a, b, x *expr.Expr) (q, rem *expr.Expr, err error) {
	return r.Field.QuoRem(a, b, x)
}
func (r *GFRing) GCD(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.GCD(a, b, x) }
func (r *GFRing) LCM(a, b, x *expr.Expr) (*expr.Expr, error) { return r.Field.LCM(a, b, x) }
