package cas

import "github.com/Marcos30004347/math/reduce"

// Sin, Cos, Tan, Csc, Sec, Cot and their hyperbolic/arc variants are
// spec.md §6's "Trigonometric constructors": each builds an unreduced
// FUNCTION expression for the caller to pass through Reduce, rather than
// evaluating eagerly — callers chain e.g. cas.Reduce(cas.Sin(x)) exactly
// as reduce/trig.go's own constructors are used internally by the
// reducer's FUNCTION-node dispatch.
var (
	Sin  = reduce.Sin
	Cos  = reduce.Cos
	Tan  = reduce.Tan
	Csc  = reduce.Csc
	Sec  = reduce.Sec
	Cot  = reduce.Cot
	Asin = reduce.Asin
	Acos = reduce.Acos
	Atan = reduce.Atan
	Sinh = reduce.Sinh
	Cosh = reduce.Cosh
	Tanh = reduce.Tanh
)
