package cas

import (
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Expand, Reduce, Replace, Eval, FreeVariables are direct façade
// pass-throughs to package reduce/expr (spec.md §6 "Transformation").
func Expand(u *expr.Expr) (*expr.Expr, error)             { return reduce.Expand(u) }
func Reduce(u *expr.Expr) (*expr.Expr, error)             { return reduce.Reduce(u) }
func Replace(u, x, v *expr.Expr) (*expr.Expr, error)      { return reduce.Replace(u, x, v) }
func Eval(u, x, v *expr.Expr) (*expr.Expr, error)         { return reduce.Eval(u, x, v) }
func FreeVariables(u *expr.Expr) []*expr.Expr             { return expr.FreeVariables(u) }

// Log, Ln, Exp are spec.md §6's transformation-side logarithm/exponential
// operations, each returning a fully reduced result (unlike the
// Trigonometric constructors, which hand back an unreduced FUNCTION node
// for the caller to simplify separately).
func Log(a, b *expr.Expr) (*expr.Expr, error) { return reduce.Log(a, b) }
func Ln(a *expr.Expr) (*expr.Expr, error)     { return reduce.Reduce(reduce.Ln(a)) }
func Exp(a *expr.Expr) (*expr.Expr, error)    { return reduce.Reduce(reduce.Exp(a)) }
