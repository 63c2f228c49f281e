package factor

import (
	"context"
	"math/rand"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/gf"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// henselLiftAll lifts the GF(p) factorization facsModP of f (pairwise
// coprime, each a GF(p)[x] polynomial) to a factorization of f modulo
// p^k, by recursively splitting the factor list in half and applying
// two-factor linear Hensel lifting to each split (spec.md §4.7
// "Hensel-lifting... for k large enough that factor coefficients are
// bounded by the Mignotte bound").
func henselLiftAll(f, x *expr.Expr, fld *gf.Field, facsModP []*expr.Expr, k int64) ([]*expr.Expr, error) {
	if len(facsModP) <= 1 {
		return []*expr.Expr{f}, nil
	}
	mid := len(facsModP) / 2
	g0, err := productOf(facsModP[:mid])
	if err != nil {
		return nil, err
	}
	h0, err := productOf(facsModP[mid:])
	if err != nil {
		return nil, err
	}
	G, H, err := twoFactorHenselLift(f, g0, h0, x, fld, k)
	if err != nil {
		return nil, err
	}
	left, err := henselLiftAll(G, x, fld, facsModP[:mid], k)
	if err != nil {
		return nil, err
	}
	right, err := henselLiftAll(H, x, fld, facsModP[mid:], k)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

func productOf(ps []*expr.Expr) (*expr.Expr, error) {
	acc := ps[0]
	for _, p := range ps[1:] {
		var err error
		acc, err = reduce.Expand(expr.NewMul(acc, p))
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// twoFactorHenselLift lifts g0*h0 ≡ f (mod p) to G*H ≡ f (mod p^k), via
// the standard linear Hensel step (von zur Gathen & Gerhard, "Modern
// Computer Algebra"): compute Bezout coefficients s,t with
// s*g0 + t*h0 ≡ 1 (mod p) once, then repeatedly correct G,H by one power
// of p at a time.
func twoFactorHenselLift(f, g0raw, h0raw, x *expr.Expr, fld *gf.Field, k int64) (G, H *expr.Expr, err error) {
	g0, err := makeMonicGF(g0raw, x, fld)
	if err != nil {
		return nil, nil, err
	}
	h0, err := makeMonicGF(h0raw, x, fld)
	if err != nil {
		return nil, nil, err
	}
	g, s, t, err := gfExtendedGcd(fld, g0, h0, x)
	if err != nil {
		return nil, nil, err
	}
	degG, err := polyexpr.Degree(g, x)
	if err != nil {
		return nil, nil, err
	}
	if degG != 0 || polyexpr.IsZero(g) {
		return nil, nil, casio.New(casio.ArithmeticError, "hensel lift: factors are not coprime mod p")
	}
	gc, err := polyexpr.Coeff(g, x, 0)
	if err != nil {
		return nil, nil, err
	}
	inv, err := fld.Inv(gc.Int)
	if err != nil {
		return nil, nil, err
	}
	s, err = fld.MulPoly(s, expr.NewInteger(inv), x)
	if err != nil {
		return nil, nil, err
	}
	t, err = fld.MulPoly(t, expr.NewInteger(inv), x)
	if err != nil {
		return nil, nil, err
	}

	G, H = g0, h0
	pm := fld.P
	for m := int64(1); m < k; m++ {
		prod, err := reduce.Expand(expr.NewMul(G, H))
		if err != nil {
			return nil, nil, err
		}
		e, err := reduce.Expand(expr.NewSub(f, prod))
		if err != nil {
			return nil, nil, err
		}
		c, err := divideCoeffsAndProject(e, x, pm, fld)
		if err != nil {
			return nil, nil, err
		}
		tc, err := fld.MulPoly(t, c, x)
		if err != nil {
			return nil, nil, err
		}
		q, r, err := fld.QuoRem(tc, g0, x)
		if err != nil {
			return nil, nil, err
		}
		sc, err := fld.MulPoly(s, c, x)
		if err != nil {
			return nil, nil, err
		}
		qh, err := fld.MulPoly(q, h0, x)
		if err != nil {
			return nil, nil, err
		}
		hAdj, err := fld.AddPoly(sc, qh, x)
		if err != nil {
			return nil, nil, err
		}
		G, err = reduce.Expand(expr.NewAdd(G, expr.NewMul(expr.NewInteger(pm), r)))
		if err != nil {
			return nil, nil, err
		}
		H, err = reduce.Expand(expr.NewAdd(H, expr.NewMul(expr.NewInteger(pm), hAdj)))
		if err != nil {
			return nil, nil, err
		}
		pm = pm.Mul(fld.P)
	}
	return G, H, nil
}

// divideCoeffsAndProject divides every coefficient of e by pm (assumed
// exact by the Hensel invariant; any remainder is dropped, matching the
// algorithm's working-mod-p^(m+1) semantics) and reduces the quotient
// into GF(p).
func divideCoeffsAndProject(e, x *expr.Expr, pm bigint.Int, fld *gf.Field) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(e, x)
	if err != nil {
		return nil, err
	}
	var terms []*expr.Expr
	for d := deg; d >= 0; d-- {
		c, err := polyexpr.Coeff(e, x, d)
		if err != nil {
			return nil, err
		}
		if c.Kind != expr.Integer || c.Int.IsZero() {
			continue
		}
		q, _, err := c.Int.QuoRem(pm)
		if err != nil {
			return nil, err
		}
		rq := fld.Reduce(q)
		if rq.IsZero() {
			continue
		}
		terms = append(terms, monomialInt2(rq, x, d))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}

func monomialInt2(c bigint.Int, x *expr.Expr, d int64) *expr.Expr {
	if d == 0 {
		return expr.NewInteger(c)
	}
	var p *expr.Expr
	if d == 1 {
		p = x
	} else {
		p = expr.NewPow(x, expr.Int64(d))
	}
	if c.Cmp(bigint.One) == 0 {
		return p
	}
	return expr.NewMul(expr.NewInteger(c), p)
}

// makeMonicGF scales p so its leading coefficient in x is 1 in GF(p).
func makeMonicGF(p, x *expr.Expr, fld *gf.Field) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(p, x)
	if err != nil {
		return nil, err
	}
	lc, err := polyexpr.Coeff(p, x, deg)
	if err != nil {
		return nil, err
	}
	if lc.Kind != expr.Integer {
		return nil, casio.New(casio.NotAPolynomial, "makeMonicGF requires integer coefficients")
	}
	if lc.Int.Cmp(bigint.One) == 0 {
		return fld.Project(p, x)
	}
	inv, err := fld.Inv(lc.Int)
	if err != nil {
		return nil, err
	}
	return fld.MulPoly(p, expr.NewInteger(inv), x)
}

// gfExtendedGcd returns g, s, t with s*a + t*b = g = gcd(a, b) in GF(p)[x].
func gfExtendedGcd(fld *gf.Field, a, b, x *expr.Expr) (g, s, t *expr.Expr, err error) {
	if polyexpr.IsZero(b) {
		return a, expr.Int64(1), expr.Int64(0), nil
	}
	q, r, err := fld.QuoRem(a, b, x)
	if err != nil {
		return nil, nil, nil, err
	}
	g1, s1, t1, err := gfExtendedGcd(fld, b, r, x)
	if err != nil {
		return nil, nil, nil, err
	}
	qt1, err := fld.MulPoly(q, t1, x)
	if err != nil {
		return nil, nil, nil, err
	}
	newT, err := fld.SubPoly(s1, qt1, x)
	if err != nil {
		return nil, nil, nil, err
	}
	return g1, t1, newT, nil
}

// factorNonMonic factors a primitive, square-free, non-monic integer
// polynomial g by substituting it to the monic polynomial gStar(x) =
// lc^(deg-1) * g(x/lc), running the ordinary (monic-only) factoring
// pipeline on gStar, and undoing the substitution on each resulting
// factor (von zur Gathen & Gerhard, "Modern Computer Algebra" §15.4,
// the "leading coefficient" trick): g0*h0 ≡ g (mod p) only holds when
// g is monic, so every non-monic g must route through here before
// distinctDegreeFactor/equalDegreeFactor/henselLiftAll ever see it.
func factorNonMonic(ctx context.Context, g, x *expr.Expr, lc bigint.Int, deg int64, rng *rand.Rand) ([]*expr.Expr, error) {
	gStar, err := monicSubstitute(g, x, lc, deg)
	if err != nil {
		return nil, err
	}
	starFactors, err := factorSquareFree(ctx, gStar, x, rng)
	if err != nil {
		return nil, err
	}
	result := make([]*expr.Expr, 0, len(starFactors))
	for _, h := range starFactors {
		gi, err := undoMonicSubstitute(h, x, lc)
		if err != nil {
			return nil, err
		}
		result = append(result, gi)
	}
	return result, nil
}

// monicSubstitute builds gStar(x) = lc^(deg-1) * g(x/lc). Every
// coefficient of gStar is an integer (the x^deg coefficient is exactly
// c_deg/lc = 1 since c_deg == lc; every lower-degree coefficient c_d is
// scaled by the non-negative power lc^(deg-1-d)), so gStar is monic with
// integer coefficients whenever g is an integer polynomial.
func monicSubstitute(g, x *expr.Expr, lc bigint.Int, deg int64) (*expr.Expr, error) {
	terms := []*expr.Expr{monomialInt2(bigint.One, x, deg)}
	for d := deg - 1; d >= 0; d-- {
		c, err := polyexpr.Coeff(g, x, d)
		if err != nil {
			return nil, err
		}
		if c.Kind != expr.Integer || c.Int.IsZero() {
			continue
		}
		scaled := c.Int.Mul(lc.Pow(deg - 1 - d))
		terms = append(terms, monomialInt2(scaled, x, d))
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}

// undoMonicSubstitute reverses monicSubstitute on one monic integer
// factor h of gStar: it substitutes x -> lc*x into h and strips the
// resulting integer content, recovering an irreducible integer factor of
// the original (non-monic) g. Gauss's lemma guarantees the contents
// stripped from every factor this way multiply back out to exactly
// lc^(deg-1), so the product of the results reconstructs g exactly.
func undoMonicSubstitute(h, x *expr.Expr, lc bigint.Int) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(h, x)
	if err != nil {
		return nil, err
	}
	coeffs := make([]bigint.Int, deg+1)
	content := bigint.Zero
	for d := int64(0); d <= deg; d++ {
		c, err := polyexpr.Coeff(h, x, d)
		if err != nil {
			return nil, err
		}
		if c.Kind != expr.Integer {
			return nil, casio.New(casio.NotAPolynomial, "undoMonicSubstitute requires integer coefficients")
		}
		coeffs[d] = c.Int.Mul(lc.Pow(d))
		content = bigint.Gcd(content, coeffs[d].Abs())
	}
	if content.IsZero() {
		content = bigint.One
	}
	var terms []*expr.Expr
	for d := deg; d >= 0; d-- {
		if coeffs[d].IsZero() {
			continue
		}
		q, _, err := coeffs[d].QuoRem(content)
		if err != nil {
			return nil, err
		}
		terms = append(terms, monomialInt2(q, x, d))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}
