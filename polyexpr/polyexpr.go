// Package polyexpr implements spec.md §4.4: normalization of a reduced
// expr.Expr into the recursive multivariate polynomial shape of
// spec.md §3.3, relative to an ordered variable list, plus degree and
// coefficient extraction.
//
// A PolyExpr is not a distinct Go type from expr.Expr — spec.md §3.3
// defines it as "Expr restricted to the recursive polynomial shape" — so
// every function here both consumes and produces *expr.Expr, and Poly
// below is a thin, optional carrier for the variable list a given
// normalized tree was built against (the same way robpike.io/ivy's
// value.Matrix carries its shape alongside a flat value slice rather than
// inventing a parallel tree type).
package polyexpr

import (
	"sort"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Poly pairs a normalized expr.Expr with the ordered variable list it was
// normalized against.
type Poly struct {
	Vars []*expr.Expr
	Expr *expr.Expr
}

// Normalize produces a PolyExpr for e relative to the ordered variable
// list L (spec.md §4.4 polyExpr(e, L)). When L is empty the remainder of
// e must be a constant of the coefficient domain, or normalization fails
// with NotAPolynomial.
func Normalize(e *expr.Expr, L []*expr.Expr) (*expr.Expr, error) {
	if len(L) == 0 {
		red, err := reduce.Reduce(e)
		if err != nil {
			return nil, err
		}
		if red.Kind != expr.Integer && red.Kind != expr.Fraction {
			return nil, casio.New(casio.NotAPolynomial, "expected a constant of the coefficient domain, got %v", red.Kind)
		}
		return red, nil
	}

	mainVar := L[0]
	rest := L[1:]

	expanded, err := reduce.Expand(e)
	if err != nil {
		return nil, err
	}

	byDegree := map[int64][]*expr.Expr{}
	for _, term := range termsOfAdd(expanded) {
		d, coeff, err := splitByVar(term, mainVar)
		if err != nil {
			return nil, err
		}
		byDegree[d] = append(byDegree[d], coeff)
	}

	degrees := make([]int64, 0, len(byDegree))
	for d := range byDegree {
		degrees = append(degrees, d)
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i] > degrees[j] })

	var terms []*expr.Expr
	for _, d := range degrees {
		sumCoeff, err := reduce.Reduce(sumOf(byDegree[d]))
		if err != nil {
			return nil, err
		}
		if isZero(sumCoeff) {
			continue
		}
		coeffPoly, err := Normalize(sumCoeff, rest)
		if err != nil {
			return nil, err
		}
		terms = append(terms, makeTerm(coeffPoly, mainVar, d))
	}

	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &expr.Expr{Kind: expr.Add, Children: terms}, nil
}

// NormalizeToPolyExprs implements spec.md §4.4 normalizeToPolyExprs: the
// sorted union of a and b's free variables, and both operands normalized
// against it.
func NormalizeToPolyExprs(a, b *expr.Expr) (L []*expr.Expr, pa, pb *expr.Expr, err error) {
	L = sortedUnion(expr.FreeVariables(a), expr.FreeVariables(b))
	pa, err = Normalize(a, L)
	if err != nil {
		return nil, nil, nil, err
	}
	pb, err = Normalize(b, L)
	if err != nil {
		return nil, nil, nil, err
	}
	return L, pa, pb, nil
}

func sortedUnion(a, b []*expr.Expr) []*expr.Expr {
	seen := map[string]*expr.Expr{}
	for _, v := range a {
		seen[v.Name] = v
	}
	for _, v := range b {
		seen[v.Name] = v
	}
	out := make([]*expr.Expr, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return expr.Less(out[i], out[j]) })
	return out
}

// makeTerm builds coeff * x^d in the minimal reduced shape (dropping the
// power when d<=1 and the coefficient when it is exactly 1), matching the
// general Expr invariants of spec.md §3.2 applied to a single term.
func makeTerm(coeff, x *expr.Expr, d int64) *expr.Expr {
	var powPart *expr.Expr
	switch d {
	case 0:
		return coeff
	case 1:
		powPart = x
	default:
		powPart = expr.NewPow(x, expr.Int64(d))
	}
	if isOne(coeff) {
		return powPart
	}
	return &expr.Expr{Kind: expr.Mul, Children: []*expr.Expr{coeff, powPart}}
}

func termsOfAdd(e *expr.Expr) []*expr.Expr {
	if e.Kind == expr.Add {
		return e.Children
	}
	return []*expr.Expr{e}
}

func termsOfMul(e *expr.Expr) []*expr.Expr {
	if e.Kind == expr.Mul {
		return e.Children
	}
	return []*expr.Expr{e}
}

func sumOf(es []*expr.Expr) *expr.Expr {
	if len(es) == 1 {
		return es[0]
	}
	return &expr.Expr{Kind: expr.Add, Children: es}
}

func isZero(e *expr.Expr) bool { return e.Kind == expr.Integer && e.Int.IsZero() }
func isOne(e *expr.Expr) bool  { return e.Kind == expr.Integer && e.Int.Cmp(bigint.One) == 0 }

// splitByVar separates an expanded MUL term into the integer degree of x
// it carries and the remaining coefficient factors. Fails with
// NotAPolynomial if x occurs with a non-integer or negative exponent.
func splitByVar(term *expr.Expr, x *expr.Expr) (degree int64, coeff *expr.Expr, err error) {
	var coeffFactors []*expr.Expr
	for _, f := range termsOfMul(term) {
		switch {
		case f.Kind == expr.Symbol && f.Name == x.Name:
			degree++
		case f.Kind == expr.Pow && f.Children[0].Kind == expr.Symbol && f.Children[0].Name == x.Name:
			if f.Children[1].Kind != expr.Integer {
				return 0, nil, casio.New(casio.NotAPolynomial, "non-integer exponent of %s", x.Name)
			}
			n, exact := f.Children[1].Int.Int64()
			if !exact || n < 0 {
				return 0, nil, casio.New(casio.NotAPolynomial, "negative or unrepresentable exponent of %s", x.Name)
			}
			degree += n
		default:
			coeffFactors = append(coeffFactors, f)
		}
	}
	switch len(coeffFactors) {
	case 0:
		return degree, expr.Int64(1), nil
	case 1:
		return degree, coeffFactors[0], nil
	default:
		return degree, &expr.Expr{Kind: expr.Mul, Children: coeffFactors}, nil
	}
}
