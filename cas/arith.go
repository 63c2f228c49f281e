package cas

import (
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Add, Sub, Mul, Div, Pow are spec.md §6's "arithmetic combinators":
// they build the corresponding unreduced node and immediately reduce it,
// since a bare ADD/MUL/... node is never itself the answer a caller of
// the façade wants back.
func Add(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewAdd(a, b)) }
func Sub(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewSub(a, b)) }
func Mul(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewMul(a, b)) }
func Div(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewDiv(a, b)) }
func Pow(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Reduce(expr.NewPow(a, b)) }

// Sqrt builds and reduces sqrt(a) (index 2).
func Sqrt(a *expr.Expr) (*expr.Expr, error) {
	return reduce.Reduce(expr.NewSqrt(a))
}

// Root builds and reduces the n'th root of a, `root(a, n)` of spec.md §6.
func Root(a, n *expr.Expr) (*expr.Expr, error) {
	return reduce.Reduce(expr.NewSqrt(a, n))
}
