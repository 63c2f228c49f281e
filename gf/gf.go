// Package gf implements spec.md §4.6: GF(p) finite-field arithmetic on
// integer-coefficient polynomial expressions, used as the coefficient
// domain for package factor's Cantor–Zassenhaus factorization.
package gf

import (
	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
	"github.com/Marcos30004347/math/polyexpr"
	"github.com/Marcos30004347/math/reduce"
)

// Field is GF(p) for a prime modulus p.
type Field struct {
	P bigint.Int
}

// NewField validates p is prime and returns the field GF(p) (spec.md §4.6
// "reject non-prime p with DomainError"). Primality goes through
// bigint.ProbablyPrime (math/big's Miller-Rabin/Baillie-PSW test) rather
// than modernc.org/mathutil's prime helpers, which operate on
// machine-width ints and are unsuitable for the arbitrary-precision
// moduli this kernel admits.
func NewField(p bigint.Int) (*Field, error) {
	if p.Sign() <= 0 {
		return nil, casio.New(casio.DomainError, "field modulus must be positive, got %s", p.String())
	}
	if !bigint.ProbablyPrime(p) {
		return nil, casio.New(casio.DomainError, "%s is not prime", p.String())
	}
	return &Field{P: p}, nil
}

// Reduce maps an integer into the canonical representative [0, p).
func (f *Field) Reduce(a bigint.Int) bigint.Int {
	_, r, err := a.DivMod(f.P)
	if err != nil {
		return bigint.Zero
	}
	return r
}

// Add, Sub, Mul, Neg are field element operations returning the canonical
// representative.
func (f *Field) Add(a, b bigint.Int) bigint.Int { return f.Reduce(a.Add(b)) }
func (f *Field) Sub(a, b bigint.Int) bigint.Int { return f.Reduce(a.Sub(b)) }
func (f *Field) Mul(a, b bigint.Int) bigint.Int { return f.Reduce(a.Mul(b)) }
func (f *Field) Neg(a bigint.Int) bigint.Int    { return f.Reduce(a.Neg()) }

// Inv returns the multiplicative inverse of a (a must be nonzero mod p),
// via the extended Euclidean algorithm (spec.md §4.6 "division by the
// modular inverse of the divisor").
func (f *Field) Inv(a bigint.Int) (bigint.Int, error) {
	a = f.Reduce(a)
	if a.IsZero() {
		return bigint.Int{}, casio.New(casio.ArithmeticError, "no inverse of 0 in GF(%s)", f.P.String())
	}
	g, x, _ := extendedGcd(a, f.P)
	if g.Cmp(bigint.One) != 0 {
		return bigint.Int{}, casio.New(casio.ArithmeticError, "%s is not invertible mod %s", a.String(), f.P.String())
	}
	return f.Reduce(x), nil
}

// Div implements a/b in GF(p).
func (f *Field) Div(a, b bigint.Int) (bigint.Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return bigint.Int{}, err
	}
	return f.Mul(a, inv), nil
}

// extendedGcd returns g, x, y such that a*x + b*y = g = gcd(a, b).
func extendedGcd(a, b bigint.Int) (g, x, y bigint.Int) {
	if b.IsZero() {
		return a, bigint.One, bigint.Zero
	}
	q, r, _ := a.QuoRem(b)
	g1, x1, y1 := extendedGcd(b, r)
	return g1, y1, x1.Sub(q.Mul(y1))
}

// Project reduces every integer coefficient of a univariate polynomial
// expression f (in x) modulo p, producing its image in GF(p)[x] (spec.md
// §4.6 "project(f, p)").
func (f *Field) Project(poly, x *expr.Expr) (*expr.Expr, error) {
	deg, err := polyexpr.Degree(poly, x)
	if err != nil {
		return nil, err
	}
	var terms []*expr.Expr
	for d := deg; d >= 0; d-- {
		c, err := polyexpr.Coeff(poly, x, d)
		if err != nil {
			return nil, err
		}
		if c.Kind != expr.Integer {
			return nil, casio.New(casio.NotAPolynomial, "GF(p) projection requires integer coefficients")
		}
		rc := f.Reduce(c.Int)
		if rc.IsZero() {
			continue
		}
		switch d {
		case 0:
			terms = append(terms, expr.NewInteger(rc))
		case 1:
			if rc.Cmp(bigint.One) == 0 {
				terms = append(terms, x)
			} else {
				terms = append(terms, expr.NewMul(expr.NewInteger(rc), x))
			}
		default:
			if rc.Cmp(bigint.One) == 0 {
				terms = append(terms, expr.NewPow(x, expr.Int64(d)))
			} else {
				terms = append(terms, expr.NewMul(expr.NewInteger(rc), expr.NewPow(x, expr.Int64(d))))
			}
		}
	}
	if len(terms) == 0 {
		return expr.Int64(0), nil
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &expr.Expr{Kind: expr.Add, Children: terms}, nil
}

// AddPoly, SubPoly, MulPoly operate on GF(p)[x] polynomial expressions, reducing
// coefficients after every arithmetic step.
func (f *Field) AddPoly(a, b, x *expr.Expr) (*expr.Expr, error) {
	s, err := reduce.Reduce(expr.NewAdd(a, b))
	if err != nil {
		return nil, err
	}
	return f.Project(s, x)
}

func (f *Field) SubPoly(a, b, x *expr.Expr) (*expr.Expr, error) {
	s, err := reduce.Expand(expr.NewSub(a, b))
	if err != nil {
		return nil, err
	}
	return f.Project(s, x)
}

func (f *Field) MulPoly(a, b, x *expr.Expr) (*expr.Expr, error) {
	p, err := reduce.Expand(expr.NewMul(a, b))
	if err != nil {
		return nil, err
	}
	return f.Project(p, x)
}

// QuoRem divides a by b in GF(p)[x] via schoolbook division scaled by
// modular inverses of the leading coefficient at each step (the GF(p)
// analogue of polyexpr.PseudoDivide, which instead scales to avoid
// division — here division is exact since GF(p) is a field).
func (f *Field) QuoRem(a, b, x *expr.Expr) (q, r *expr.Expr, err error) {
	degB, err := polyexpr.Degree(b, x)
	if err != nil {
		return nil, nil, err
	}
	lcB, err := polyexpr.Coeff(b, x, degB)
	if err != nil {
		return nil, nil, err
	}
	if lcB.Kind != expr.Integer {
		return nil, nil, casio.New(casio.NotAPolynomial, "GF(p) division requires integer coefficients")
	}
	lcBInv, err := f.Inv(lcB.Int)
	if err != nil {
		return nil, nil, err
	}

	r, err = f.Project(a, x)
	if err != nil {
		return nil, nil, err
	}
	q = expr.Int64(0)
	for {
		degR, err := polyexpr.Degree(r, x)
		if err != nil {
			return nil, nil, err
		}
		if polyexpr.IsZero(r) || degR < degB {
			break
		}
		lcR, err := polyexpr.Coeff(r, x, degR)
		if err != nil {
			return nil, nil, err
		}
		if lcR.Kind != expr.Integer {
			return nil, nil, casio.New(casio.NotAPolynomial, "GF(p) division requires integer coefficients")
		}
		factor := f.Mul(lcR.Int, lcBInv)
		if factor.IsZero() {
			break
		}
		term := monomial(factor, x, degR-degB)
		shiftB, err := reduce.Expand(expr.NewMul(term, b))
		if err != nil {
			return nil, nil, err
		}
		r, err = f.SubPoly(r, shiftB, x)
		if err != nil {
			return nil, nil, err
		}
		q, err = f.AddPoly(q, term, x)
		if err != nil {
			return nil, nil, err
		}
	}
	return q, r, nil
}

// DivPoly is QuoRem's quotient alone, the GF(p)[x] analogue of
// polyexpr's rational division (spec.md §6's "a parallel set over GF(p)"
// of add/sub/mul/div/quo/rem/gcd/lcm).
func (f *Field) DivPoly(a, b, x *expr.Expr) (*expr.Expr, error) {
	q, _, err := f.QuoRem(a, b, x)
	return q, err
}

func monomial(c bigint.Int, x *expr.Expr, d int64) *expr.Expr {
	if d == 0 {
		return expr.NewInteger(c)
	}
	var p *expr.Expr
	if d == 1 {
		p = x
	} else {
		p = expr.NewPow(x, expr.Int64(d))
	}
	if c.Cmp(bigint.One) == 0 {
		return p
	}
	return expr.NewMul(expr.NewInteger(c), p)
}

// GCD computes gcd(a, b) in GF(p)[x] via the Euclidean algorithm, made
// monic at the end (GF(p)[x] is a Euclidean domain, so plain remaindering
// works — no pseudo-division/content-stripping is needed, unlike the
// integer-coefficient case in package polyops).
func (f *Field) GCD(a, b, x *expr.Expr) (*expr.Expr, error) {
	a, err := f.Project(a, x)
	if err != nil {
		return nil, err
	}
	b, err = f.Project(b, x)
	if err != nil {
		return nil, err
	}
	for !polyexpr.IsZero(b) {
		_, r, err := f.QuoRem(a, b, x)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	if polyexpr.IsZero(a) {
		return a, nil
	}
	deg, err := polyexpr.Degree(a, x)
	if err != nil {
		return nil, err
	}
	lc, err := polyexpr.Coeff(a, x, deg)
	if err != nil {
		return nil, err
	}
	inv, err := f.Inv(lc.Int)
	if err != nil {
		return nil, err
	}
	return f.MulPoly(a, expr.NewInteger(inv), x)
}

// LCM computes (a*b)/gcd(a,b) in GF(p)[x] (spec.md §6's GF(p) parallel
// set); GF(p)[x] is a Euclidean domain so DivPoly's quotient is exact
// whenever the divisor is nonzero.
func (f *Field) LCM(a, b, x *expr.Expr) (*expr.Expr, error) {
	g, err := f.GCD(a, b, x)
	if err != nil {
		return nil, err
	}
	prod, err := f.MulPoly(a, b, x)
	if err != nil {
		return nil, err
	}
	if polyexpr.IsZero(prod) {
		return expr.Int64(0), nil
	}
	if polyexpr.IsZero(g) {
		return nil, casio.New(casio.ArithmeticError, "lcm: both operands are zero in GF(p)[x]")
	}
	return f.DivPoly(prod, g, x)
}
