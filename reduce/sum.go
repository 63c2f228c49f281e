package reduce

import "github.com/Marcos30004347/math/expr"

// splitCoeffBase splits a reduced MUL term into its numeric coefficient
// and its "base" (spec.md §4.3: "the base of a term c·u is u, the
// coefficient is c"). Non-MUL terms have an implicit coefficient of 1.
func splitCoeffBase(term *expr.Expr) (coeff, base *expr.Expr) {
	if term.Kind == expr.Mul && len(term.Children) > 0 && isConstant(term.Children[0]) {
		rest := term.Children[1:]
		if len(rest) == 1 {
			return term.Children[0], rest[0]
		}
		return term.Children[0], expr.NewMul(rest...)
	}
	return expr.Int64(1), term
}

// sumEntry accumulates the coefficient of one distinct base during
// reduceSum.
type sumEntry struct {
	base  *expr.Expr
	coeff *expr.Expr
}

// reduceSum implements spec.md §4.3 sum reduction: flatten nested ADDs,
// fold constants, combine like terms by base, drop zero-coefficient
// terms, and sort the remainder by the total order.
func reduceSum(children []*expr.Expr) (*expr.Expr, error) {
	flat := flattenKind(children, expr.Add)

	if inf, undef := scanInfinitiesAdd(flat); undef {
		return expr.NewUndefined(), nil
	} else if inf != nil {
		return inf, nil
	}
	for _, c := range flat {
		if expr.Is(c, expr.ErrorMask) {
			return c, nil
		}
	}

	constAcc := expr.Int64(0)
	var order []string
	terms := map[string]*sumEntry{}

	for _, t := range flat {
		if t.Kind == expr.Infinity || t.Kind == expr.NegInfinity {
			continue // handled by scanInfinitiesAdd above
		}
		if isConstant(t) {
			var err error
			constAcc, err = rneAdd(constAcc, t)
			if err != nil {
				return nil, err
			}
			continue
		}
		coeff, base := splitCoeffBase(t)
		key := expr.Key(base)
		if e, ok := terms[key]; ok {
			var err error
			e.coeff, err = rneAddGeneral(e.coeff, coeff)
			if err != nil {
				return nil, err
			}
		} else {
			terms[key] = &sumEntry{base: base, coeff: coeff}
			order = append(order, key)
		}
	}

	var result []*expr.Expr
	if !isZeroConst(constAcc) {
		result = append(result, constAcc)
	}
	for _, key := range order {
		e := terms[key]
		if isZeroConst(e.coeff) {
			continue
		}
		if isOneConst(e.coeff) {
			result = append(result, e.base)
			continue
		}
		term, err := reduceProduct([]*expr.Expr{e.coeff, e.base})
		if err != nil {
			return nil, err
		}
		result = append(result, term)
	}

	switch len(result) {
	case 0:
		return expr.Int64(0), nil
	case 1:
		return result[0], nil
	}
	expr.SortByOrder(result)
	return expr.NewAdd(result...), nil
}

// rneAddGeneral adds two coefficients that may themselves not both be
// pure constants is never the case here (coefficients are always
// constants by construction) but is kept as a named seam so callers read
// intent rather than rneAdd's narrower name.
func rneAddGeneral(a, b *expr.Expr) (*expr.Expr, error) { return rneAdd(a, b) }

// flattenKind concatenates children, splicing in the children of any
// direct child that is itself of kind k (ADD-in-ADD, MUL-in-MUL).
func flattenKind(children []*expr.Expr, k expr.Kind) []*expr.Expr {
	out := make([]*expr.Expr, 0, len(children))
	for _, c := range children {
		if c.Kind == k {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// scanInfinitiesAdd resolves ADD's infinity arithmetic: +∞ plus any finite
// term is +∞; +∞ plus -∞ is UNDEFINED; symmetric for -∞.
func scanInfinitiesAdd(flat []*expr.Expr) (result *expr.Expr, undefined bool) {
	sawPos, sawNeg := false, false
	for _, c := range flat {
		switch c.Kind {
		case expr.Infinity:
			sawPos = true
		case expr.NegInfinity:
			sawNeg = true
		}
	}
	switch {
	case sawPos && sawNeg:
		return nil, true
	case sawPos:
		return expr.NewInfinity(), false
	case sawNeg:
		return expr.NewNegInfinity(), false
	}
	return nil, false
}
