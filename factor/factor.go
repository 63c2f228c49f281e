package factor

import (
	"context"
	"math/rand"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/gf"
	"github.com/Marcos30004347/math/internal/primes"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// Factor implements spec.md §4.7: clears denominators, decomposes into
// square-free parts, factors each part over a well-chosen GF(p), Hensel
// lifts to ℤ/p^k past the Mignotte bound, and recombines by trial
// division. Factor is scoped to polynomials with a single free variable
// (see package doc).
//
// The result is the list of irreducible integer factors of f together
// with their multiplicities and an overall rational unit (sign and
// denominator-clearing scale) such that f == unit * prod(factor_i^mult_i).
type Factor struct {
	Poly         *expr.Expr
	Multiplicity int64
}

// Factors accepts an optional ctx, polled once per square-free part and
// once per reduction-prime attempt (spec.md §5's cooperative
// cancellation); a nil ctx never cancels.
func Factors(ctx context.Context, f, x *expr.Expr) (unit *expr.Expr, factors []Factor, err error) {
	ef, err := reduce.Expand(f)
	if err != nil {
		return nil, nil, err
	}
	if polyexpr.IsZero(ef) {
		return expr.Int64(0), nil, nil
	}
	deg, err := polyexpr.Degree(ef, x)
	if err != nil {
		return nil, nil, err
	}
	if deg == 0 {
		return ef, nil, nil
	}

	scale, g, err := clearDenominators(ef, x)
	if err != nil {
		return nil, nil, err
	}

	sqFree, err := SquareFreeDecompose(ctx, g, x)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(1))
	var result []Factor
	for _, sf := range sqFree {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		irr, err := factorSquareFree(ctx, sf.Poly, x, rng)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range irr {
			result = append(result, Factor{Poly: p, Multiplicity: sf.Multiplicity})
		}
	}
	return scale, result, nil
}

// FactorPolyExprAndExpand implements spec.md §4.7's
// `factorPolyExprAndExpand`: the fully expanded ADD/MUL tree equivalent
// to unit * prod(factors).
func FactorPolyExprAndExpand(ctx context.Context, f, x *expr.Expr) (*expr.Expr, error) {
	unit, factors, err := Factors(ctx, f, x)
	if err != nil {
		return nil, err
	}
	acc := unit
	for _, fac := range factors {
		pw, err := reduce.Reduce(expr.NewPow(fac.Poly, expr.Int64(fac.Multiplicity)))
		if err != nil {
			return nil, err
		}
		acc, err = reduce.Expand(expr.NewMul(acc, pw))
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// clearDenominators multiplies f by the LCM of its coefficient
// denominators and the inverse of its integer content, returning a
// primitive integer polynomial g with positive leading coefficient and
// the rational unit such that f == unit * g.
func clearDenominators(f, x *expr.Expr) (unit *expr.Expr, g *expr.Expr, err error) {
	deg, err := polyexpr.Degree(f, x)
	if err != nil {
		return nil, nil, err
	}
	denomLCM := bigint.One
	for d := int64(0); d <= deg; d++ {
		c, err := polyexpr.Coeff(f, x, d)
		if err != nil {
			return nil, nil, err
		}
		den := expr.Denominator(c).Int
		denomLCM = bigint.Lcm(denomLCM, den)
	}
	scaled, err := reduce.Expand(expr.NewMul(expr.NewInteger(denomLCM), f))
	if err != nil {
		return nil, nil, err
	}
	content := integerContentOf(scaled, x, deg)
	if content.IsZero() {
		content = bigint.One
	}
	lc, err := polyexpr.Coeff(scaled, x, deg)
	if err != nil {
		return nil, nil, err
	}
	sign := bigint.One
	if lc.Kind == expr.Integer && lc.Int.Sign() < 0 {
		sign = bigint.MinusOne
	}
	g, err = divideIntPoly(scaled, x, deg, content.Mul(sign))
	if err != nil {
		return nil, nil, err
	}
	unitVal, err := reduce.Reduce(expr.NewDiv(expr.NewInteger(content.Mul(sign)), expr.NewInteger(denomLCM)))
	if err != nil {
		return nil, nil, err
	}
	return unitVal, g, nil
}

func integerContentOf(e, x *expr.Expr, deg int64) bigint.Int {
	g := bigint.Zero
	for d := int64(0); d <= deg; d++ {
		c, err := polyexpr.Coeff(e, x, d)
		if err != nil || c.Kind != expr.Integer {
			continue
		}
		g = bigint.Gcd(g, c.Int.Abs())
	}
	return g
}

func divideIntPoly(e, x *expr.Expr, deg int64, c bigint.Int) (*expr.Expr, error) {
	var terms []*expr.Expr
	for d := deg; d >= 0; d-- {
		coeff, err := polyexpr.Coeff(e, x, d)
		if err != nil {
			return nil, err
		}
		if coeff.Kind != expr.Integer || coeff.Int.IsZero() {
			continue
		}
		q, _, err := coeff.Int.QuoRem(c)
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

// factorSquareFree factors a primitive, square-free integer polynomial
// into its irreducible integer factors.
func factorSquareFree(ctx context.Context, g, x *expr.Expr, rng *rand.Rand) ([]*expr.Expr, error) {
	deg, err := polyexpr.Degree(g, x)
	if err != nil {
		return nil, err
	}
	if deg <= 1 {
		return []*expr.Expr{g}, nil
	}
	lc, err := polyexpr.Coeff(g, x, deg)
	if err != nil {
		return nil, err
	}
	if lc.Kind != expr.Integer {
		return nil, casio.New(casio.NotAPolynomial, "factorSquareFree requires integer coefficients")
	}
	if lc.Int.Cmp(bigint.One) != 0 {
		// g is not monic: the Cantor-Zassenhaus/Hensel pipeline below
		// assumes g0*h0 ≡ g (mod p), which only holds when lc(g) ≡ 1.
		// Factor the monic substitute instead and undo it afterward
		// (von zur Gathen & Gerhard, "Modern Computer Algebra" §15.4).
		return factorNonMonic(ctx, g, x, lc.Int, deg, rng)
	}

	p, fld, err := chooseGoodPrime(ctx, g, x)
	if err != nil {
		return nil, err
	}

	proj, err := fld.Project(g, x)
	if err != nil {
		return nil, err
	}
	ddf, err := distinctDegreeFactor(proj, x, fld)
	if err != nil {
		return nil, err
	}
	var gfFactors []*expr.Expr
	for _, term := range ddf {
		irr, err := equalDegreeFactor(term.poly, x, term.degree, fld, rng)
		if err != nil {
			return nil, err
		}
		gfFactors = append(gfFactors, irr...)
	}
	if len(gfFactors) <= 1 {
		return []*expr.Expr{g}, nil
	}

	bound, err := primes.MignotteBound(g, x)
	if err != nil {
		return nil, err
	}
	two := bigint.FromInt64(2)
	k := int64(1)
	pk := p
	target := bound.Mul(two)
	for pk.Cmp(target) <= 0 {
		pk = pk.Mul(p)
		k++
	}

	lifted, err := henselLiftAll(g, x, fld, gfFactors, k)
	if err != nil {
		return nil, err
	}

	return recombine(g, x, lifted, pk)
}

// recombine trial-divides subsets of the lifted factors (represented in
// the symmetric range (-p^k/2, p^k/2]) to find the true integer factors
// of g, growing the subset size by one only when no smaller subset
// divides and restarting from single factors after each find (spec.md §4.7
// "recombine lifted factors by trial division").
func recombine(g, x *expr.Expr, lifted []*expr.Expr, pk bigint.Int) ([]*expr.Expr, error) {
	centered := make([]*expr.Expr, len(lifted))
	for i, l := range lifted {
		c, err := centerCoefficients(l, x, pk)
		if err != nil {
			return nil, err
		}
		centered[i] = c
	}

	remaining := g
	var result []*expr.Expr
	avail := centered
	for subsetSize := 1; subsetSize <= len(avail) && len(avail) > 0; subsetSize++ {
		progressed := true
		for progressed {
			progressed = false
			idxs := make([]int, subsetSize)
			for i := range idxs {
				idxs[i] = i
			}
			for combinationExists(idxs, len(avail)) {
				cand, err := productOf(pickIndices(avail, idxs))
				if err == nil {
					candCentered, err2 := centerCoefficients(cand, x, pk)
					if err2 == nil {
						if q, err3 := polyexpr.ExactDivide(remaining, candCentered, x); err3 == nil {
							degCand, _ := polyexpr.Degree(candCentered, x)
							if degCand > 0 {
								result = append(result, candCentered)
								remaining = q
								avail = removeIndices(avail, idxs)
								progressed = true
								break
							}
						}
					}
				}
				if !nextCombination(idxs, len(avail)) {
					break
				}
			}
			if progressed {
				subsetSize = 0
				break
			}
		}
	}
	if deg, err := polyexpr.Degree(remaining, x); err == nil && deg > 0 {
		result = append(result, remaining)
	}
	if len(result) == 0 {
		result = []*expr.Expr{g}
	}
	return result, nil
}

func pickIndices(avail []*expr.Expr, idxs []int) []*expr.Expr {
	out := make([]*expr.Expr, len(idxs))
	for i, ix := range idxs {
		out[i] = avail[ix]
	}
	return out
}

func removeIndices(avail []*expr.Expr, idxs []int) []*expr.Expr {
	skip := map[int]bool{}
	for _, i := range idxs {
		skip[i] = true
	}
	var out []*expr.Expr
	for i, v := range avail {
		if !skip[i] {
			out = append(out, v)
		}
	}
	return out
}

func combinationExists(idxs []int, n int) bool {
	return len(idxs) > 0 && idxs[len(idxs)-1] < n
}

func nextCombination(idxs []int, n int) bool {
	k := len(idxs)
	i := k - 1
	for i >= 0 && idxs[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idxs[i]++
	for j := i + 1; j < k; j++ {
		idxs[j] = idxs[j-1] + 1
	}
	return true
}

// centerCoefficients reduces every coefficient of e into the symmetric
// range (-pk/2, pk/2].
func centerCoefficients(e, x *expr.Expr, pk bigint.Int) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(e, x)
	if err != nil {
		return nil, err
	}
	half, _, err := pk.QuoRem(bigint.FromInt64(2))
	if err != nil {
		return nil, err
	}
	var terms []*expr.Expr
	for d := deg; d >= 0; d-- {
		c, err := polyexpr.Coeff(e, x, d)
		if err != nil {
			return nil, err
		}
		if c.Kind != expr.Integer {
			return nil, casio.New(casio.NotAPolynomial, "centerCoefficients requires integer coefficients")
		}
		_, r, err := c.Int.DivMod(pk)
		if err != nil {
			return nil, err
		}
		if r.Cmp(half) > 0 {
			r = r.Sub(pk)
		}
		if r.IsZero() {
			continue
		}
		terms = append(terms, monomialInt2(r, x, d))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}

// chooseGoodPrime picks the smallest odd prime not dividing lc(g) for
// which g mod p stays square-free (spec.md §4.7 "a prime p not dividing
// lc(gᵢ) nor disc(gᵢ)" — see internal/primes.SquareFreeModP for why this
// is an equivalent, cheaper-to-check condition than computing disc(g)).
func chooseGoodPrime(ctx context.Context, g, x *expr.Expr) (bigint.Int, *gf.Field, error) {
	deg, err := polyexpr.Degree(g, x)
	if err != nil {
		return bigint.Int{}, nil, err
	}
	lc, err := polyexpr.Coeff(g, x, deg)
	if err != nil {
		return bigint.Int{}, nil, err
	}
	candidate := bigint.FromInt64(3)
	for attempts := 0; attempts < 10000; attempts++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return bigint.Int{}, nil, err
			}
		}
		candidate = primes.NextOddPrime(candidate)
		if lc.Kind == expr.Integer {
			if _, r, err := lc.Int.DivMod(candidate); err == nil && r.IsZero() {
				candidate = candidate.Add(bigint.FromInt64(2))
				continue
			}
		}
		fld, err := gf.NewField(candidate)
		if err != nil {
			candidate = candidate.Add(bigint.FromInt64(2))
			continue
		}
		ok, err := primes.SquareFreeModP(fld.GCD, g, x)
		if err != nil {
			return bigint.Int{}, nil, err
		}
		if ok {
			return candidate, fld, nil
		}
		candidate = candidate.Add(bigint.FromInt64(2))
	}
	return bigint.Int{}, nil, casio.New(casio.Fail, "no suitable reduction prime found for factorization")
}
