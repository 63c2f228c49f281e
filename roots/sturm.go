package roots

import (
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// sturmSequence builds p0=f, p1=f', p_{i+1} = -(p_{i-1} mod p_i) using
// exact rational division (polyexpr.QuoRem), stopping once a term is
// constant (spec.md §4.8 "Sturm-sequence sign-change counting").
func sturmSequence(f, x *expr.Expr) ([]*expr.Expr, error) {
	fp, err := polyexpr.Derivative(f, x)
	if err != nil {
		return nil, err
	}
	seq := []*expr.Expr{f, fp}
	for {
		last := seq[len(seq)-1]
		prev := seq[len(seq)-2]
		if deg, err := polyexpr.Degree(last, x); err != nil {
			return nil, err
		} else if deg == 0 {
			break
		}
		_, r, err := polyexpr.QuoRem(prev, last, x)
		if err != nil {
			return nil, err
		}
		neg, err := reduce.Expand(expr.NewMul(expr.Int64(-1), r))
		if err != nil {
			return nil, err
		}
		if polyexpr.IsZero(neg) {
			break
		}
		seq = append(seq, neg)
	}
	return seq, nil
}

// signChanges counts strict sign changes across vals, ignoring zeros
// (the standard convention for evaluating a Sturm sequence at a point
// that is not itself a root of any sequence member).
func signChanges(vals []int) int {
	count := 0
	prevSign := 0
	for _, v := range vals {
		if v == 0 {
			continue
		}
		if prevSign != 0 && v != prevSign {
			count++
		}
		prevSign = v
	}
	return count
}

// evalSign evaluates p at the rational x0 and returns its sign: it
// substitutes x with x0 and expands (reduce.Eval), building the full
// rational value, then reads the sign of its numerator.
func evalSign(p, x, x0 *expr.Expr) (int, error) {
	v, err := reduce.Eval(p, x, x0)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case expr.Integer:
		return v.Int.Sign(), nil
	case expr.Fraction:
		return v.Children[0].Int.Sign(), nil
	default:
		return 0, nil
	}
}

// varCount returns the number of sign changes in the Sturm sequence seq
// evaluated at x0.
func varCount(seq []*expr.Expr, x, x0 *expr.Expr) (int, error) {
	vals := make([]int, len(seq))
	for i, p := range seq {
		s, err := evalSign(p, x, x0)
		if err != nil {
			return 0, err
		}
		vals[i] = s
	}
	return signChanges(vals), nil
}
