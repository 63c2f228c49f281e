package polyops

import (
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// Resultant computes the resultant of f and g by eliminating the first
// variable (in the total order of expr.Less) among the free variables of
// f and g together, whether or not both contain it — matching
// spec.md §8 scenario 6, `resultant(x^2-y, x-y^2) -> y^4-y` eliminating
// x — via the determinant of the Sylvester matrix (spec.md §4.5). The
// determinant is computed by cofactor expansion rather than a
// fraction-free elimination: cofactor expansion needs only +, -, * and
// so is correct over the coefficient-ring entries a multivariate
// resultant produces (polynomials in the remaining variables), at the
// cost of O(n!) arithmetic operations for an n x n matrix — acceptable
// since the Sylvester matrices this kernel constructs from realistic
// polynomial inputs are small.
func Resultant(f, g *expr.Expr) (*expr.Expr, error) {
	free := sortedUnion(expr.FreeVariables(f), expr.FreeVariables(g))
	if len(free) == 0 {
		return reduce.Reduce(expr.Int64(1))
	}
	x := free[0]
	return ResultantIn(f, g, x)
}

// ResultantIn computes the resultant of f and g eliminating the named
// variable x explicitly.
func ResultantIn(f, g, x *expr.Expr) (*expr.Expr, error) {
	ef, err := reduce.Expand(f)
	if err != nil {
		return nil, err
	}
	eg, err := reduce.Expand(g)
	if err != nil {
		return nil, err
	}
	if isZeroExpr(ef) && isZeroExpr(eg) {
		return expr.Int64(0), nil
	}
	m, err := sylvesterMatrix(ef, eg, x)
	if err != nil {
		return nil, err
	}
	return determinant(m)
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
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && expr.Less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func sylvesterMatrix(f, g, x *expr.Expr) ([][]*expr.Expr, error) {
	m, err := polyexpr.Degree(f, x)
	if err != nil {
		return nil, err
	}
	n, err := polyexpr.Degree(g, x)
	if err != nil {
		return nil, err
	}
	fCoeffs, err := coeffsDescending(f, x, m)
	if err != nil {
		return nil, err
	}
	gCoeffs, err := coeffsDescending(g, x, n)
	if err != nil {
		return nil, err
	}

	size := m + n
	mat := make([][]*expr.Expr, size)
	for i := range mat {
		mat[i] = make([]*expr.Expr, size)
		for j := range mat[i] {
			mat[i][j] = expr.Int64(0)
		}
	}
	for i := int64(0); i < n; i++ {
		for j, c := range fCoeffs {
			mat[i][int64(j)+i] = c
		}
	}
	for i := int64(0); i < m; i++ {
		for j, c := range gCoeffs {
			mat[n+i][int64(j)+i] = c
		}
	}
	return mat, nil
}

// coeffsDescending returns coeff(p, x, deg), coeff(p, x, deg-1), ..., coeff(p, x, 0).
func coeffsDescending(p, x *expr.Expr, deg int64) ([]*expr.Expr, error) {
	out := make([]*expr.Expr, deg+1)
	for d := int64(0); d <= deg; d++ {
		c, err := polyexpr.Coeff(p, x, deg-d)
		if err != nil {
			return nil, err
		}
		out[d] = c
	}
	return out, nil
}

// determinant computes det(m) by cofactor expansion along the first row.
func determinant(m [][]*expr.Expr) (*expr.Expr, error) {
	n := len(m)
	if n == 0 {
		return expr.Int64(1), nil
	}
	if n == 1 {
		return reduce.Reduce(m[0][0])
	}
	sum := expr.Int64(0)
	for j := 0; j < n; j++ {
		if isZeroExpr(m[0][j]) {
			continue
		}
		sub, err := determinant(minor(m, 0, j))
		if err != nil {
			return nil, err
		}
		term, err := reduce.Expand(expr.NewMul(m[0][j], sub))
		if err != nil {
			return nil, err
		}
		if j%2 == 1 {
			term, err = reduce.Expand(expr.NewMul(expr.Int64(-1), term))
			if err != nil {
				return nil, err
			}
		}
		sum, err = reduce.Reduce(expr.NewAdd(sum, term))
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

func minor(m [][]*expr.Expr, row, col int) [][]*expr.Expr {
	n := len(m)
	out := make([][]*expr.Expr, 0, n-1)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		rowOut := make([]*expr.Expr, 0, n-1)
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			rowOut = append(rowOut, m[i][j])
		}
		out = append(out, rowOut)
	}
	return out
}
