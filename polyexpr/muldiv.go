package polyexpr

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/reduce"
)

// Mul multiplies two polynomial expressions and re-expands/reduces the
// result (spec.md §4.4 "multiplication... distributes then collects like
// terms").
func Mul(a, b *expr.Expr) (*expr.Expr, error) {
	return reduce.Expand(expr.NewMul(a, b))
}

// Add sums two polynomial expressions.
func Add(a, b *expr.Expr) (*expr.Expr, error) {
	return reduce.Reduce(expr.NewAdd(a, b))
}

// Sub subtracts two polynomial expressions.
func Sub(a, b *expr.Expr) (*expr.Expr, error) {
	return reduce.Expand(expr.NewSub(a, b))
}

// PseudoDivide implements spec.md §4.4's pseudo-division over ℤ: given
// f, g with deg(g,x) <= deg(f,x), it finds q, r and a nonnegative integer
// d such that lc(g,x)^d * f = q*g + r with deg(r,x) < deg(g,x), without
// introducing rational coefficients. This realizes the division step used
// by the primitive PRS (GCD) and by LCM in package polyops.
func PseudoDivide(f, g, x *expr.Expr) (q, r *expr.Expr, err error) {
	degG, err := Degree(g, x)
	if err != nil {
		return nil, nil, err
	}
	lcG, err := Coeff(g, x, degG)
	if err != nil {
		return nil, nil, err
	}
	if isZero(lcG) {
		return nil, nil, casio.New(casio.DomainError, "pseudo-division by the zero polynomial")
	}

	r, err = reduce.Expand(f)
	if err != nil {
		return nil, nil, err
	}
	q = expr.Int64(0)

	for {
		degR, err := Degree(r, x)
		if err != nil {
			return nil, nil, err
		}
		if isZero(r) || degR < degG {
			break
		}
		lcR, err := Coeff(r, x, degR)
		if err != nil {
			return nil, nil, err
		}
		shift := expr.NewMul(lcR, expr.NewPow(x, expr.Int64(degR-degG)))

		scaledR, err := reduce.Expand(expr.NewMul(r, lcG))
		if err != nil {
			return nil, nil, err
		}
		shiftG, err := reduce.Expand(expr.NewMul(shift, g))
		if err != nil {
			return nil, nil, err
		}
		r, err = reduce.Expand(expr.NewSub(scaledR, shiftG))
		if err != nil {
			return nil, nil, err
		}

		scaledQ, err := reduce.Expand(expr.NewMul(q, lcG))
		if err != nil {
			return nil, nil, err
		}
		q, err = reduce.Expand(expr.NewAdd(scaledQ, shift))
		if err != nil {
			return nil, nil, err
		}
	}
	return q, r, nil
}

// IsZero reports whether e is the zero polynomial.
func IsZero(e *expr.Expr) bool { return isZero(e) }

// Derivative computes d/dx of the univariate polynomial f (termwise power
// rule), used by package factor's square-free decomposition (spec.md
// §4.7 "gcd(g, g')") without depending on the general symbolic
// differentiation rules in package calculus.
func Derivative(f, x *expr.Expr) (*expr.Expr, error) {
	deg, err := Degree(f, x)
	if err != nil {
		return nil, err
	}
	var terms []*expr.Expr
	for d := deg; d >= 1; d-- {
		c, err := Coeff(f, x, d)
		if err != nil {
			return nil, err
		}
		if isZero(c) {
			continue
		}
		nc, err := reduce.Reduce(expr.NewMul(c, expr.Int64(d)))
		if err != nil {
			return nil, err
		}
		if isZero(nc) {
			continue
		}
		terms = append(terms, makeTerm(nc, x, d-1))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}

// ExactDivide divides f by g in x, requiring a zero pseudo-remainder and
// a rational leading coefficient for g (true for every univariate ℚ[x]
// division this kernel performs); anything else is an ArithmeticError
// rather than a silently wrong quotient.
func ExactDivide(f, g, x *expr.Expr) (*expr.Expr, error) {
	q, r, err := PseudoDivide(f, g, x)
	if err != nil {
		return nil, err
	}
	if !isZero(r) {
		return nil, casio.New(casio.ArithmeticError, "exact division of %v by %v has a nonzero remainder", f, g)
	}
	degF, err := Degree(f, x)
	if err != nil {
		return nil, err
	}
	degG, err := Degree(g, x)
	if err != nil {
		return nil, err
	}
	d := int64(0)
	if degF >= degG {
		d = degF - degG + 1
	}
	lcG, err := LeadingCoeff(g, x)
	if err != nil {
		return nil, err
	}
	if d == 0 || isOne(lcG) {
		return reduce.Reduce(q)
	}
	if lcG.Kind != expr.Integer && lcG.Kind != expr.Fraction {
		return nil, casio.New(casio.ArithmeticError, "exact division requires a rational leading coefficient in %s", x.Name)
	}
	q, _, err = QuoRem(f, g, x)
	return q, err
}

// IntegerContentAndPrimitivePart splits an integer-coefficient univariate
// polynomial f into content(f) (the GCD of its integer coefficients) and
// its primitive part f/content(f) (spec.md §5.1 "content/primitive
// splitting").
func IntegerContentAndPrimitivePart(f, x *expr.Expr) (content bigint.Int, primitive *expr.Expr, err error) {
	degF, err := Degree(f, x)
	if err != nil {
		return bigint.Int{}, nil, err
	}
	content = bigint.Zero
	for d := int64(0); d <= degF; d++ {
		c, err := Coeff(f, x, d)
		if err != nil {
			return bigint.Int{}, nil, err
		}
		if isZero(c) {
			continue
		}
		if c.Kind != expr.Integer {
			return bigint.Int{}, nil, casio.New(casio.NotAPolynomial, "integer content requires integer coefficients")
		}
		content = bigint.Gcd(content, c.Int.Abs())
	}
	if content.IsZero() {
		return bigint.One, f, nil
	}
	primitive, err = PseudoDivide2(f, x, content)
	if err != nil {
		return bigint.Int{}, nil, err
	}
	return content, primitive, nil
}

// PseudoDivide2 divides every integer coefficient of f (in x) by the
// exact integer c.
func PseudoDivide2(f, x *expr.Expr, c bigint.Int) (*expr.Expr, error) {
	degF, err := Degree(f, x)
	if err != nil {
		return nil, err
	}
	var terms []*expr.Expr
	for d := degF; d >= 0; d-- {
		coeff, err := Coeff(f, x, d)
		if err != nil {
			return nil, err
		}
		if isZero(coeff) {
			continue
		}
		if coeff.Kind != expr.Integer {
			return nil, casio.New(casio.NotAPolynomial, "exact content division requires integer coefficients")
		}
		q, rem, err := coeff.Int.QuoRem(c)
		if err != nil {
			return nil, err
		}
		if !rem.IsZero() {
			return nil, casio.New(casio.ArithmeticError, "content %s does not exactly divide coefficient", c.String())
		}
		terms = append(terms, makeTerm(expr.NewInteger(q), x, d))
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return reduce.Reduce(&expr.Expr{Kind: expr.Add, Children: terms})
}
