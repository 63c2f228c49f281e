package reduce

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// maxExpandExponent bounds the multinomial expansion of spec.md §4.3's
// expand to avoid an accidental O(2^n)-term blowup on adversarial input;
// a degree this high is outside any realistic symbolic-algebra workload
// for this kernel.
const maxExpandExponent = 200

// Expand implements spec.md §4.3: distributes multiplication over
// addition, applies multinomial expansion to POW with non-negative
// integer exponent, lifts numerator/denominator splits through DIV, then
// reduces the result.
func Expand(e *expr.Expr) (*expr.Expr, error) {
	r, err := Reduce(e)
	if err != nil {
		return nil, err
	}
	ex, err := expandNode(r)
	if err != nil {
		return nil, err
	}
	return Reduce(ex)
}

func expandNode(e *expr.Expr) (*expr.Expr, error) {
	switch e.Kind {
	case expr.Add:
		cs, err := expandChildren(e.Children)
		if err != nil {
			return nil, err
		}
		return reduceAddNode(expr.NewAdd(cs...))
	case expr.Sub:
		a, err := expandNode(e.Children[0])
		if err != nil {
			return nil, err
		}
		b, err := expandNode(e.Children[1])
		if err != nil {
			return nil, err
		}
		return reduceAddNode(expr.NewAdd(a, expr.NewMul(expr.Int64(-1), b)))
	case expr.Mul:
		cs, err := expandChildren(e.Children)
		if err != nil {
			return nil, err
		}
		acc := cs[0]
		for _, c := range cs[1:] {
			acc = distributeMul(acc, c)
		}
		return reduceNode(acc)
	case expr.Pow:
		base, err := expandNode(e.Children[0])
		if err != nil {
			return nil, err
		}
		exp, err := reduceNode(e.Children[1])
		if err != nil {
			return nil, err
		}
		if base.Kind == expr.Add && exp.Kind == expr.Integer {
			n, exact := exp.Int.Int64()
			if exact && n >= 0 {
				if n > maxExpandExponent {
					return nil, casio.New(casio.InvalidArgument, "exponent too large to expand: %d", n)
				}
				return expandPowerSum(base.Children, n)
			}
		}
		return reducePow(base, exp)
	case expr.Div:
		num, err := expandNode(e.Children[0])
		if err != nil {
			return nil, err
		}
		den, err := expandNode(e.Children[1])
		if err != nil {
			return nil, err
		}
		if num.Kind == expr.Add {
			terms := make([]*expr.Expr, len(num.Children))
			for i, t := range num.Children {
				terms[i] = expr.NewMul(t, expr.NewPow(den, expr.Int64(-1)))
			}
			return reduceAddNode(expr.NewAdd(terms...))
		}
		return reduceMulNode(expr.NewMul(num, expr.NewPow(den, expr.Int64(-1))))
	case expr.Function:
		cs, err := expandChildren(e.Children)
		if err != nil {
			return nil, err
		}
		return simplifyFunction(e.Name, cs)
	case expr.Sqrt, expr.Factorial:
		cs, err := expandChildren(e.Children)
		if err != nil {
			return nil, err
		}
		return &expr.Expr{Kind: e.Kind, Children: cs}, nil
	default:
		return e, nil
	}
}

func expandChildren(children []*expr.Expr) ([]*expr.Expr, error) {
	out := make([]*expr.Expr, len(children))
	for i, c := range children {
		r, err := expandNode(c)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// termsOf treats a as a sum of terms: its ADD children, or itself.
func termsOf(a *expr.Expr) []*expr.Expr {
	if a.Kind == expr.Add {
		return a.Children
	}
	return []*expr.Expr{a}
}

// distributeMul builds (unreduced) the pairwise-product expansion of a*b.
func distributeMul(a, b *expr.Expr) *expr.Expr {
	as, bs := termsOf(a), termsOf(b)
	terms := make([]*expr.Expr, 0, len(as)*len(bs))
	for _, x := range as {
		for _, y := range bs {
			terms = append(terms, expr.NewMul(x, y))
		}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return expr.NewAdd(terms...)
}

// expandPowerSum computes (terms[0]+...+terms[k-1])^n via the multinomial
// theorem.
func expandPowerSum(terms []*expr.Expr, n int64) (*expr.Expr, error) {
	k := len(terms)
	if n == 0 {
		return expr.Int64(1), nil
	}
	var combos [][]int64
	cur := make([]int64, k)
	var rec func(idx int, remaining int64)
	rec = func(idx int, remaining int64) {
		if idx == k-1 {
			cur[idx] = remaining
			combos = append(combos, append([]int64(nil), cur...))
			return
		}
		for i := int64(0); i <= remaining; i++ {
			cur[idx] = i
			rec(idx+1, remaining-i)
		}
	}
	rec(0, n)

	sumTerms := make([]*expr.Expr, 0, len(combos))
	for _, combo := range combos {
		coeff, err := multinomialCoeff(n, combo)
		if err != nil {
			return nil, err
		}
		factors := []*expr.Expr{expr.NewInteger(coeff)}
		for i, p := range combo {
			if p == 0 {
				continue
			}
			factors = append(factors, expr.NewPow(terms[i], expr.NewInteger(bigint.FromInt64(p))))
		}
		sumTerms = append(sumTerms, expr.NewMul(factors...))
	}
	return reduceAddNode(expr.NewAdd(sumTerms...))
}

func multinomialCoeff(n int64, parts []int64) (bigint.Int, error) {
	nf, err := bigint.Factorial(n)
	if err != nil {
		return bigint.Int{}, err
	}
	den := bigint.One
	for _, p := range parts {
		pf, err := bigint.Factorial(p)
		if err != nil {
			return bigint.Int{}, err
		}
		den = den.Mul(pf)
	}
	q, _, err := nf.DivMod(den)
	if err != nil {
		return bigint.Int{}, err
	}
	return q, nil
}
