// Package reduce implements the canonicalizing reducer of spec.md §4.3:
// the idempotent transformation that puts every expr.Expr into the
// reduced/canonical form every other layer of the kernel assumes as its
// input and produces as its output.
package reduce

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// Reduce puts e into canonical form: reduce(reduce(e)) == reduce(e)
// (spec.md §8 idempotence). It never mutates e; the result is built from
// fresh nodes (or shares unreduced atomic leaves, which is safe since
// those are treated as immutable throughout the kernel).
func Reduce(e *expr.Expr) (*expr.Expr, error) {
	return reduceNode(e)
}

func reduceNode(e *expr.Expr) (*expr.Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind {
	case expr.Integer, expr.Symbol, expr.Infinity, expr.NegInfinity, expr.Undefined, expr.Fail:
		return e, nil
	case expr.Fraction:
		return expr.NewFraction(expr.Numerator(e).Int, expr.Denominator(e).Int)
	case expr.Sub:
		return reduceSub(e)
	case expr.Div:
		return reduceDiv(e)
	case expr.Add:
		return reduceAddNode(e)
	case expr.Mul:
		return reduceMulNode(e)
	case expr.Pow:
		return reducePowNode(e)
	case expr.Sqrt:
		return reduceSqrtNode(e)
	case expr.Factorial:
		return reduceFactorialNode(e)
	case expr.Function:
		return reduceFunctionNode(e)
	case expr.Matrix, expr.List:
		return reduceChildrenOnly(e)
	default:
		return e, nil
	}
}

func reduceChildren(e *expr.Expr) ([]*expr.Expr, error) {
	out := make([]*expr.Expr, len(e.Children))
	for i, c := range e.Children {
		r, err := reduceNode(c)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func reduceChildrenOnly(e *expr.Expr) (*expr.Expr, error) {
	cs, err := reduceChildren(e)
	if err != nil {
		return nil, err
	}
	return &expr.Expr{Kind: e.Kind, Name: e.Name, Children: cs}, nil
}

// reduceSub eliminates SUB per spec.md §3.2: a - b -> a + (-1)*b.
func reduceSub(e *expr.Expr) (*expr.Expr, error) {
	a, err := reduceNode(e.Children[0])
	if err != nil {
		return nil, err
	}
	b, err := reduceNode(e.Children[1])
	if err != nil {
		return nil, err
	}
	return reduceAddNode(expr.NewAdd(a, expr.NewMul(expr.Int64(-1), b)))
}

// reduceDiv eliminates DIV per spec.md §3.2: a / b -> a * b^(-1).
func reduceDiv(e *expr.Expr) (*expr.Expr, error) {
	a, err := reduceNode(e.Children[0])
	if err != nil {
		return nil, err
	}
	b, err := reduceNode(e.Children[1])
	if err != nil {
		return nil, err
	}
	return reduceMulNode(expr.NewMul(a, expr.NewPow(b, expr.Int64(-1))))
}

func reduceAddNode(e *expr.Expr) (*expr.Expr, error) {
	if v, ok, err := evaluateRNE(e); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	cs, err := reduceChildren(e)
	if err != nil {
		return nil, err
	}
	return reduceSum(cs)
}

func reduceMulNode(e *expr.Expr) (*expr.Expr, error) {
	if v, ok, err := evaluateRNE(e); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	cs, err := reduceChildren(e)
	if err != nil {
		return nil, err
	}
	return reduceProduct(cs)
}

func reducePowNode(e *expr.Expr) (*expr.Expr, error) {
	if v, ok, err := evaluateRNE(e); err != nil {
		return nil, err
	} else if ok {
		return v, nil
	}
	base, err := reduceNode(e.Children[0])
	if err != nil {
		return nil, err
	}
	exp, err := reduceNode(e.Children[1])
	if err != nil {
		return nil, err
	}
	return reducePow(base, exp)
}

// reduceSqrtNode reduces SQRT(radicand, index); SQRT is retained as its
// own kind (spec.md §3.2) rather than eagerly rewritten to POW, but
// product reduction (baseExp in product.go) treats it as base^(1/index)
// for the purpose of combining like radicals.
func reduceSqrtNode(e *expr.Expr) (*expr.Expr, error) {
	radicand, err := reduceNode(e.Children[0])
	if err != nil {
		return nil, err
	}
	index, err := reduceNode(e.Children[1])
	if err != nil {
		return nil, err
	}
	if index.Kind == expr.Integer && isConstant(radicand) {
		if n, exact := index.Int.Int64(); exact && n > 0 {
			if v, ok := evalConstFractionalPow(radicand, mustFraction(1, n)); ok {
				return v, nil
			}
		}
	}
	if isOneConst(radicand) {
		return expr.Int64(1), nil
	}
	if isZeroConst(radicand) {
		return expr.Int64(0), nil
	}
	return expr.NewSqrt(radicand, index), nil
}

func mustFraction(num, den int64) *expr.Expr {
	f, err := expr.NewFraction(bigint.FromInt64(num), bigint.FromInt64(den))
	if err != nil {
		panic(err)
	}
	return f
}

func bigintFactorial(n int64) (bigint.Int, error) { return bigint.Factorial(n) }

func factorialOfNegative(x *expr.Expr) error {
	return casio.New(casio.InvalidArgument, "factorial of negative integer: %s", x.Int.String())
}

func reduceFactorialNode(e *expr.Expr) (*expr.Expr, error) {
	x, err := reduceNode(e.Children[0])
	if err != nil {
		return nil, err
	}
	if x.Kind == expr.Integer {
		if x.Int.Sign() < 0 {
			return nil, factorialOfNegative(x)
		}
		n, exact := x.Int.Int64()
		if exact {
			f, err := bigintFactorial(n)
			if err != nil {
				return nil, err
			}
			return expr.NewInteger(f), nil
		}
	}
	return expr.NewFactorial(x), nil
}

func reduceFunctionNode(e *expr.Expr) (*expr.Expr, error) {
	args, err := reduceChildren(e)
	if err != nil {
		return nil, err
	}
	return simplifyFunction(e.Name, args)
}
