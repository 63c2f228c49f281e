package cas

import (
	"github.com/Marcos30004347/math/calculus"
	"github.com/Marcos30004347/math/expr"
)

// Derivative is spec.md §6's "derivative(e, x)".
func Derivative(e, x *expr.Expr) (*expr.Expr, error) { return calculus.Derivative(e, x) }
