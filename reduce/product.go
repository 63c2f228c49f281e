package reduce

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
)

type prodEntry struct {
	base *expr.Expr
	exp  *expr.Expr
}

// baseExp extracts (base, exponent) for the purposes of MUL's exponent
// combination (spec.md §4.3 "partition into base of a power and an
// exponent expression"). A bare factor has implicit exponent 1; a SQRT
// node is treated as base^(1/index) so that SQRT(a)*SQRT(a) combines to
// a^1 == a the same way any other matching-base power pair would.
func baseExp(factor *expr.Expr) (base, exp *expr.Expr) {
	switch factor.Kind {
	case expr.Pow:
		return factor.Children[0], factor.Children[1]
	case expr.Sqrt:
		if factor.Children[1].Kind == expr.Integer && !factor.Children[1].Int.IsZero() {
			f, err := expr.NewFraction(bigint.One, factor.Children[1].Int)
			if err == nil {
				return factor.Children[0], f
			}
		}
		return factor, expr.Int64(1)
	default:
		return factor, expr.Int64(1)
	}
}

// reduceProduct implements spec.md §4.3 product reduction.
func reduceProduct(children []*expr.Expr) (*expr.Expr, error) {
	flat := flattenKind(children, expr.Mul)

	for _, c := range flat {
		if expr.Is(c, expr.ErrorMask) {
			return c, nil
		}
	}

	hasZero := false
	for _, c := range flat {
		if isZeroConst(c) {
			hasZero = true
		}
	}
	hasInf := false
	for _, c := range flat {
		if c.Kind == expr.Infinity || c.Kind == expr.NegInfinity {
			hasInf = true
		}
	}
	if hasZero && hasInf {
		return expr.NewUndefined(), nil
	}
	if hasZero {
		return expr.Int64(0), nil
	}

	constAcc := expr.Int64(1)
	negInfParity := false
	for _, c := range flat {
		switch c.Kind {
		case expr.Infinity:
		case expr.NegInfinity:
			negInfParity = !negInfParity
		}
	}

	var order []string
	terms := map[string]*prodEntry{}

	for _, f := range flat {
		if f.Kind == expr.Infinity || f.Kind == expr.NegInfinity {
			continue
		}
		if isConstant(f) {
			var err error
			constAcc, err = rneMul(constAcc, f)
			if err != nil {
				return nil, err
			}
			if isZeroConst(constAcc) {
				return expr.Int64(0), nil
			}
			continue
		}
		base, exp := baseExp(f)
		key := expr.Key(base)
		if e, ok := terms[key]; ok {
			combined, err := addExponents(e.exp, exp)
			if err != nil {
				return nil, err
			}
			e.exp = combined
		} else {
			terms[key] = &prodEntry{base: base, exp: exp}
			order = append(order, key)
		}
	}

	if hasInf {
		sign := constAcc.Kind == expr.Integer && constAcc.Int.Sign() < 0
		if sign {
			negInfParity = !negInfParity
		}
		if negInfParity {
			return expr.NewNegInfinity(), nil
		}
		return expr.NewInfinity(), nil
	}

	var result []*expr.Expr
	if !isOneConst(constAcc) {
		result = append(result, constAcc)
	}
	for _, key := range order {
		e := terms[key]
		if isZeroConst(e.exp) {
			continue
		}
		if isOneConst(e.exp) {
			result = append(result, e.base)
			continue
		}
		p, err := reducePow(e.base, e.exp)
		if err != nil {
			return nil, err
		}
		if isOneConst(p) {
			continue
		}
		if isZeroConst(p) {
			return expr.Int64(0), nil
		}
		result = append(result, p)
	}

	if len(result) == 0 {
		return expr.Int64(1), nil
	}
	if len(result) == 1 && isOneConst(constAcc) {
		return result[0], nil
	}
	expr.SortByOrder(result)
	if isOneConst(constAcc) && len(result) == 1 {
		return result[0], nil
	}
	return expr.NewMul(result...), nil
}

// addExponents adds two exponent expressions, using the fast rational
// path when both are constant and falling back to a general sum
// reduction otherwise (e.g. x^(n) * x^(m) for symbolic m).
func addExponents(a, b *expr.Expr) (*expr.Expr, error) {
	if isConstant(a) && isConstant(b) {
		return rneAdd(a, b)
	}
	return reduceSum([]*expr.Expr{a, b})
}
