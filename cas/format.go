package cas

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// precedence controls when ToString/ToLatex must parenthesize a child to
// preserve the parent/child grouping on re-parse (spec.md §6's bit-exact
// round-trip requirement on toString's canonical form).
const (
	precAdd = 1
	precMul = 2
	precPow = 3
	precAtom = 4
)

func precedenceOf(e *expr.Expr) int {
	switch e.Kind {
	case expr.Add:
		return precAdd
	case expr.Mul:
		return precMul
	case expr.Pow:
		return precPow
	default:
		return precAtom
	}
}

func formatBigInt(v bigint.Int, base int) string {
	if base == 10 || base == 0 {
		return v.String()
	}
	return v.Big().Text(base)
}

// ToString renders e in the kernel's own canonical infix syntax,
// honoring cfg's output base for integer literals (spec.md §6
// "toString(e)"). The grammar is exactly what Parse accepts, so
// Reduce(Parse(ToString(e))) equals e whenever e is already in reduced
// canonical form (spec.md §6's bit-exact round-trip requirement); Parse
// itself returns the unreduced tree (SUB, DIV, nested POW) of the text.
func ToString(cfg *Config, e *expr.Expr) (string, error) {
	return toStringNode(cfg, e, 0)
}

func toStringNode(cfg *Config, e *expr.Expr, parentPrec int) (string, error) {
	if e == nil {
		return "", casio.New(casio.InvalidArgument, "ToString: nil expression")
	}
	base := cfg.OutputBase()
	switch e.Kind {
	case expr.Integer:
		return formatBigInt(e.Int, base), nil
	case expr.Fraction:
		num := formatBigInt(expr.Numerator(e).Int, base)
		den := formatBigInt(expr.Denominator(e).Int, base)
		return num + "/" + den, nil
	case expr.Symbol:
		return e.Name, nil
	case expr.Infinity:
		return "inf", nil
	case expr.NegInfinity:
		return "-inf", nil
	case expr.Undefined:
		return "undef", nil
	case expr.Fail:
		return "fail", nil
	case expr.Factorial:
		inner, err := toStringNode(cfg, e.Children[0], precAtom)
		if err != nil {
			return "", err
		}
		if precedenceOf(e.Children[0]) < precAtom {
			inner = "(" + inner + ")"
		}
		return inner + "!", nil
	case expr.Sqrt:
		radicand, err := toStringNode(cfg, e.Children[0], 0)
		if err != nil {
			return "", err
		}
		if isSmallInt(e.Children[1], 2) {
			return "sqrt(" + radicand + ")", nil
		}
		index, err := toStringNode(cfg, e.Children[1], 0)
		if err != nil {
			return "", err
		}
		return "root(" + radicand + ", " + index + ")", nil
	case expr.Function:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			s, err := toStringNode(cfg, c, 0)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return e.Name + "(" + strings.Join(parts, ", ") + ")", nil
	case expr.Add:
		return toStringAdd(cfg, e, parentPrec)
	case expr.Mul:
		return toStringMul(cfg, e, parentPrec)
	case expr.Pow:
		return toStringPow(cfg, e, parentPrec)
	default:
		return "", casio.New(casio.InvalidArgument, "ToString: unsupported expression kind %v", e.Kind)
	}
}

func isSmallInt(e *expr.Expr, n int64) bool {
	if e.Kind != expr.Integer {
		return false
	}
	v, ok := e.Int.Int64()
	return ok && v == n
}

// isNegativeLeadingTerm reports whether term prints more naturally as a
// subtracted quantity: either a negative INTEGER/FRACTION outright, or a
// MUL whose first factor is a negative numeric literal.
func isNegativeLeadingTerm(term *expr.Expr) (abs *expr.Expr, negative bool) {
	switch term.Kind {
	case expr.Integer:
		if term.Int.Sign() < 0 {
			return expr.NewInteger(term.Int.Neg()), true
		}
	case expr.Fraction:
		num := expr.Numerator(term).Int
		if num.Sign() < 0 {
			neg, _ := expr.NewFraction(num.Neg(), expr.Denominator(term).Int)
			return neg, true
		}
	case expr.Mul:
		if len(term.Children) > 0 {
			first := term.Children[0]
			if isSmallInt(first, -1) {
				rest := term.Children[1:]
				if len(rest) == 1 {
					return rest[0], true
				}
				return &expr.Expr{Kind: expr.Mul, Children: append([]*expr.Expr(nil), rest...)}, true
			}
			if first.Kind == expr.Integer && first.Int.Sign() < 0 {
				negFirst := expr.NewInteger(first.Int.Neg())
				rest := append([]*expr.Expr{negFirst}, term.Children[1:]...)
				return &expr.Expr{Kind: expr.Mul, Children: rest}, true
			}
		}
	}
	return term, false
}

func toStringAdd(cfg *Config, e *expr.Expr, parentPrec int) (string, error) {
	var b strings.Builder
	for i, term := range e.Children {
		abs, negative := isNegativeLeadingTerm(term)
		s, err := toStringNode(cfg, abs, precAdd)
		if err != nil {
			return "", err
		}
		switch {
		case i == 0 && negative:
			b.WriteString("-")
			b.WriteString(s)
		case i == 0:
			b.WriteString(s)
		case negative:
			b.WriteString(" - ")
			b.WriteString(s)
		default:
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	out := b.String()
	if parentPrec > precAdd {
		out = "(" + out + ")"
	}
	return out, nil
}

func toStringMul(cfg *Config, e *expr.Expr, parentPrec int) (string, error) {
	parts := make([]string, len(e.Children))
	for i, f := range e.Children {
		s, err := toStringNode(cfg, f, precMul)
		if err != nil {
			return "", err
		}
		if precedenceOf(f) < precMul {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	out := strings.Join(parts, "*")
	if parentPrec > precMul {
		out = "(" + out + ")"
	}
	return out, nil
}

func toStringPow(cfg *Config, e *expr.Expr, parentPrec int) (string, error) {
	base, exp := e.Children[0], e.Children[1]
	baseStr, err := toStringNode(cfg, base, precPow+1)
	if err != nil {
		return "", err
	}
	if precedenceOf(base) < precAtom || base.Kind == expr.Fraction || (base.Kind == expr.Integer && base.Int.Sign() < 0) {
		baseStr = "(" + baseStr + ")"
	}
	expStr, err := toStringNode(cfg, exp, 0)
	if err != nil {
		return "", err
	}
	if precedenceOf(exp) < precAtom || exp.Kind == expr.Fraction || (exp.Kind == expr.Integer && exp.Int.Sign() < 0) {
		expStr = "(" + expStr + ")"
	}
	out := baseStr + "^" + expStr
	if parentPrec > precPow {
		out = "(" + out + ")"
	}
	return out, nil
}

// ToLatex renders e as a LaTeX math fragment (spec.md §6 "toLatex(e,
// showParens, precision)"). Per SPEC_FULL.md §6 this is intentionally a
// thin formatter: it renders the same expression kinds ToString does
// (fractions as \frac, sqrt as \sqrt, powers with braced exponents); the
// package has no LaTeX parser, so its output is not read back. It does
// not attempt the showParens/precision-driven typographic choices a
// full LaTeX pretty-printer would make (spec.md §1 treats LaTeX rendering
// as an external collaborator's concern). precision rounds the
// textual form of Fraction nodes to a fixed number of decimal digits
// when >= 0; a negative precision renders the exact fraction.
func ToLatex(cfg *Config, e *expr.Expr, showParens bool, precision int) (string, error) {
	return toLatexNode(cfg, e, showParens, precision, 0)
}

func toLatexNode(cfg *Config, e *expr.Expr, showParens bool, precision, parentPrec int) (string, error) {
	if e == nil {
		return "", casio.New(casio.InvalidArgument, "ToLatex: nil expression")
	}
	base := cfg.OutputBase()
	switch e.Kind {
	case expr.Integer:
		return formatBigInt(e.Int, base), nil
	case expr.Fraction:
		if precision >= 0 {
			r := new(big.Rat).SetFrac(expr.Numerator(e).Int.Big(), expr.Denominator(e).Int.Big())
			return r.FloatString(precision), nil
		}
		num := formatBigInt(expr.Numerator(e).Int, base)
		den := formatBigInt(expr.Denominator(e).Int, base)
		return fmt.Sprintf(`\frac{%s}{%s}`, num, den), nil
	case expr.Symbol:
		return e.Name, nil
	case expr.Infinity:
		return `\infty`, nil
	case expr.NegInfinity:
		return `-\infty`, nil
	case expr.Undefined:
		return `\text{undef}`, nil
	case expr.Fail:
		return `\text{fail}`, nil
	case expr.Factorial:
		inner, err := toLatexNode(cfg, e.Children[0], showParens, precision, precAtom)
		if err != nil {
			return "", err
		}
		return inner + "!", nil
	case expr.Sqrt:
		radicand, err := toLatexNode(cfg, e.Children[0], showParens, precision, 0)
		if err != nil {
			return "", err
		}
		if isSmallInt(e.Children[1], 2) {
			return fmt.Sprintf(`\sqrt{%s}`, radicand), nil
		}
		index, err := toLatexNode(cfg, e.Children[1], showParens, precision, 0)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\sqrt[%s]{%s}`, index, radicand), nil
	case expr.Function:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			s, err := toLatexNode(cfg, c, showParens, precision, 0)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return `\` + e.Name + "(" + strings.Join(parts, ", ") + ")", nil
	case expr.Add:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			s, err := toLatexNode(cfg, c, showParens, precision, precAdd)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		out := strings.Join(parts, " + ")
		if showParens || parentPrec > precAdd {
			out = "(" + out + ")"
		}
		return out, nil
	case expr.Mul:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			s, err := toLatexNode(cfg, c, showParens, precision, precMul)
			if err != nil {
				return "", err
			}
			if showParens || precedenceOf(c) < precMul {
				s = "(" + s + ")"
			}
			parts[i] = s
		}
		out := strings.Join(parts, " \\cdot ")
		if parentPrec > precMul {
			out = "(" + out + ")"
		}
		return out, nil
	case expr.Pow:
		base, exp := e.Children[0], e.Children[1]
		baseStr, err := toLatexNode(cfg, base, showParens, precision, precPow+1)
		if err != nil {
			return "", err
		}
		if showParens || precedenceOf(base) < precAtom {
			baseStr = "(" + baseStr + ")"
		}
		expStr, err := toLatexNode(cfg, exp, showParens, precision, 0)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s^{%s}", baseStr, expStr), nil
	default:
		return "", casio.New(casio.InvalidArgument, "ToLatex: unsupported expression kind %v", e.Kind)
	}
}
