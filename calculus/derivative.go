// Package calculus implements spec.md §4.9: symbolic differentiation.
// derivative(e, x) applies linearity, the product and quotient rules,
// the power rule (with symbolic exponents), and the chain rule through
// FUNCTION heads, returning a reduced expression.
package calculus

import (
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Derivative computes d/dx(e) and returns the result in reduced
// canonical form (spec.md §4.9).
func Derivative(e, x *expr.Expr) (*expr.Expr, error) {
	d, err := derive(e, x)
	if err != nil {
		return nil, err
	}
	return reduce.Expand(d)
}

func derive(e, x *expr.Expr) (*expr.Expr, error) {
	if !expr.ContainsSymbol(e, x.Name) {
		return expr.Int64(0), nil
	}
	switch e.Kind {
	case expr.Integer, expr.Fraction, expr.Infinity, expr.NegInfinity, expr.Undefined, expr.Fail:
		return expr.Int64(0), nil
	case expr.Symbol:
		if e.Name == x.Name {
			return expr.Int64(1), nil
		}
		return expr.Int64(0), nil
	case expr.Add:
		return deriveAdd(e, x)
	case expr.Sub:
		return deriveSub(e, x)
	case expr.Mul:
		return deriveMul(e, x)
	case expr.Div:
		return deriveDiv(e, x)
	case expr.Pow:
		return derivePow(e, x)
	case expr.Sqrt:
		return deriveSqrt(e, x)
	case expr.Function:
		return deriveFunction(e, x)
	case expr.Factorial:
		return nil, casio.New(casio.DomainError, "derivative of a factorial expression is undefined for non-integer perturbation of %v", e)
	default:
		return nil, casio.New(casio.InvalidArgument, "derivative: unsupported expression kind %v", e.Kind)
	}
}

func deriveAdd(e, x *expr.Expr) (*expr.Expr, error) {
	terms := make([]*expr.Expr, len(e.Children))
	for i, c := range e.Children {
		d, err := derive(c, x)
		if err != nil {
			return nil, err
		}
		terms[i] = d
	}
	return expr.NewAdd(terms...), nil
}

func deriveSub(e, x *expr.Expr) (*expr.Expr, error) {
	da, err := derive(e.Children[0], x)
	if err != nil {
		return nil, err
	}
	db, err := derive(e.Children[1], x)
	if err != nil {
		return nil, err
	}
	return expr.NewSub(da, db), nil
}

// deriveMul applies the generalized product rule to an n-ary MUL:
// d/dx(f1*f2*...*fn) = sum_i (d/dx fi) * prod_{j != i} fj.
func deriveMul(e, x *expr.Expr) (*expr.Expr, error) {
	n := len(e.Children)
	var terms []*expr.Expr
	for i := 0; i < n; i++ {
		di, err := derive(e.Children[i], x)
		if err != nil {
			return nil, err
		}
		if isZeroLiteral(di) {
			continue
		}
		factors := make([]*expr.Expr, 0, n)
		factors = append(factors, di)
		for j := 0; j < n; j++ {
			if j != i {
				factors = append(factors, e.Children[j])
			}
		}
		terms = append(terms, expr.NewMul(factors...))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	return expr.NewAdd(terms...), nil
}

// deriveDiv applies the quotient rule:
// d/dx(f/g) = (f'*g - f*g') / g^2.
func deriveDiv(e, x *expr.Expr) (*expr.Expr, error) {
	f, g := e.Children[0], e.Children[1]
	fp, err := derive(f, x)
	if err != nil {
		return nil, err
	}
	gp, err := derive(g, x)
	if err != nil {
		return nil, err
	}
	num := expr.NewSub(expr.NewMul(fp, g), expr.NewMul(f, gp))
	den := expr.NewPow(g, expr.Int64(2))
	return expr.NewDiv(num, den), nil
}

// derivePow applies the general exponentiation rule
// d/dx(f^g) = f^g * (g' * ln(f) + g * f'/f), specializing to the plain
// power rule n*f^(n-1)*f' when the exponent does not depend on x, and to
// f^g*g'*ln(f) when the base does not depend on x (spec.md §4.9 "power
// rule (with symbolic exponents)").
func derivePow(e, x *expr.Expr) (*expr.Expr, error) {
	f, g := e.Children[0], e.Children[1]
	baseDepends := expr.ContainsSymbol(f, x.Name)
	expDepends := expr.ContainsSymbol(g, x.Name)

	if !expDepends {
		fp, err := derive(f, x)
		if err != nil {
			return nil, err
		}
		gMinus1 := expr.NewSub(g, expr.Int64(1))
		return expr.NewMul(g, expr.NewPow(f, gMinus1), fp), nil
	}
	if !baseDepends {
		gp, err := derive(g, x)
		if err != nil {
			return nil, err
		}
		return expr.NewMul(e, gp, reduce.Ln(f)), nil
	}
	fp, err := derive(f, x)
	if err != nil {
		return nil, err
	}
	gp, err := derive(g, x)
	if err != nil {
		return nil, err
	}
	inner := expr.NewAdd(
		expr.NewMul(gp, reduce.Ln(f)),
		expr.NewDiv(expr.NewMul(g, fp), f),
	)
	return expr.NewMul(e, inner), nil
}

// deriveSqrt rewrites sqrt[n]{f} as f^(1/n) before differentiating, so
// it reuses derivePow's logic rather than duplicating the chain rule.
func deriveSqrt(e, x *expr.Expr) (*expr.Expr, error) {
	radicand, index := e.Children[0], e.Children[1]
	invIndex := expr.NewPow(index, expr.Int64(-1))
	asPow := expr.NewPow(radicand, invIndex)
	return derivePow(asPow, x)
}

// functionDerivative maps a FUNCTION head to its derivative with respect to
// its single argument u (spec.md §4.9 "chain rule through FUNCTION
// heads (sin, cos, tan, log, exp, …)").
func functionDerivative(name string, u *expr.Expr) (*expr.Expr, error) {
	one := expr.Int64(1)
	two := expr.Int64(2)
	switch name {
	case "sin":
		return reduce.Cos(u), nil
	case "cos":
		return expr.NewMul(expr.Int64(-1), reduce.Sin(u)), nil
	case "tan":
		return expr.NewPow(reduce.Sec(u), two), nil
	case "csc":
		return expr.NewMul(expr.Int64(-1), reduce.Csc(u), reduce.Cot(u)), nil
	case "sec":
		return expr.NewMul(reduce.Sec(u), reduce.Tan(u)), nil
	case "cot":
		return expr.NewMul(expr.Int64(-1), expr.NewPow(reduce.Csc(u), two)), nil
	case "asin":
		return expr.NewPow(expr.NewSub(one, expr.NewPow(u, two)), expr.NewMul(expr.Int64(-1), expr.NewPow(two, expr.Int64(-1)))), nil
	case "acos":
		inner, err := functionDerivative("asin", u)
		if err != nil {
			return nil, err
		}
		return expr.NewMul(expr.Int64(-1), inner), nil
	case "atan":
		return expr.NewPow(expr.NewAdd(one, expr.NewPow(u, two)), expr.Int64(-1)), nil
	case "sinh":
		return reduce.Cosh(u), nil
	case "cosh":
		return reduce.Sinh(u), nil
	case "tanh":
		return expr.NewSub(one, expr.NewPow(reduce.Tanh(u), two)), nil
	case "ln":
		return expr.NewPow(u, expr.Int64(-1)), nil
	case "exp":
		return reduce.Exp(u), nil
	default:
		return nil, casio.New(casio.InvalidArgument, "derivative: unknown function %q", name)
	}
}

// deriveFunction applies the chain rule: d/dx f(u) = f'(u) * u'.
func deriveFunction(e, x *expr.Expr) (*expr.Expr, error) {
	if len(e.Children) != 1 {
		return nil, casio.New(casio.InvalidArgument, "derivative: multi-argument function %q is not supported", e.Name)
	}
	u := e.Children[0]
	outer, err := functionDerivative(e.Name, u)
	if err != nil {
		return nil, err
	}
	inner, err := derive(u, x)
	if err != nil {
		return nil, err
	}
	return expr.NewMul(outer, inner), nil
}

func isZeroLiteral(e *expr.Expr) bool {
	return e.Kind == expr.Integer && e.Int.IsZero()
}
