package cas

import (
	"strings"
	"unicode"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// Parse reads the canonical infix syntax ToString produces back into an
// Expr tree, the companion half of spec.md §6's "Bit-exact requirement
// for toString: parseable by the same library". This is a small,
// self-contained recursive-descent/precedence-climbing parser scoped to
// the façade's own minimal expression grammar (integers, fractions,
// symbols, +, -, *, /, ^, !, parenthesized groups, sqrt(...)/root(...,
// ...) and named function calls) — not ivy's own full language (its
// assignment statements, vectors, matrices, user ops), which
// packages lex/scan/parse already implement for a different purpose.
func Parse(s string) (*expr.Expr, error) {
	p := &parser{toks: tokenize(s)}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEnd {
		return nil, casio.New(casio.InvalidArgument, "Parse: unexpected trailing input at %q", p.peek().text)
	}
	return e, nil
}

type tokKind int

const (
	tokEnd tokKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokKind
	text string
}

func tokenize(s string) []token {
	var toks []token
	r := []rune(s)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case strings.ContainsRune("+-*/^!", c):
			toks = append(toks, token{tokOp, string(c)})
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(r) && unicode.IsDigit(r[j]) {
				j++
			}
			toks = append(toks, token{tokNumber, string(r[i:j])})
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(r) && (unicode.IsLetter(r[j]) || unicode.IsDigit(r[j]) || r[j] == '_') {
				j++
			}
			toks = append(toks, token{tokIdent, string(r[i:j])})
			i = j
		default:
			i++ // skip unrecognized rune rather than fail the whole parse
		}
	}
	toks = append(toks, token{tokEnd, ""})
	return toks
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseExpr implements precedence climbing over +,-,*,/,^ with ! and
// unary minus binding tighter than any binary operator, and ^
// right-associative.
func (p *parser) parseExpr(minPrec int) (*expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp {
			break
		}
		prec, rightAssoc, ok := binOpInfo(tok.text)
		if !ok || prec < minPrec {
			break
		}
		p.next()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = applyBinOp(tok.text, left, right)
	}
	return left, nil
}

func binOpInfo(op string) (prec int, rightAssoc bool, ok bool) {
	switch op {
	case "+", "-":
		return 1, false, true
	case "*", "/":
		return 2, false, true
	case "^":
		return 3, true, true
	default:
		return 0, false, false
	}
}

func applyBinOp(op string, a, b *expr.Expr) *expr.Expr {
	switch op {
	case "+":
		return expr.NewAdd(a, b)
	case "-":
		return expr.NewSub(a, b)
	case "*":
		return expr.NewMul(a, b)
	case "/":
		return expr.NewDiv(a, b)
	case "^":
		return expr.NewPow(a, b)
	}
	panic("unreachable")
}

// parseUnary handles a leading unary minus and trailing factorial marks
// before delegating to parsePrimary.
func (p *parser) parseUnary() (*expr.Expr, error) {
	if tok := p.peek(); tok.kind == tokOp && tok.text == "-" {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.NewMul(expr.Int64(-1), inner), nil
	}
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind == tokOp && tok.text == "!" {
			p.next()
			e = expr.NewFactorial(e)
			continue
		}
		break
	}
	return e, nil
}

func (p *parser) parsePrimary() (*expr.Expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := bigint.FromString(tok.text)
		if err != nil {
			return nil, err
		}
		return expr.NewInteger(v), nil
	case tokLParen:
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, casio.New(casio.InvalidArgument, "Parse: expected ')'")
		}
		p.next()
		return e, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(tok.text)
		}
		return expr.NewSymbol(tok.text), nil
	default:
		return nil, casio.New(casio.InvalidArgument, "Parse: unexpected token %q", tok.text)
	}
}

func (p *parser) parseCall(name string) (*expr.Expr, error) {
	p.next() // consume '('
	var args []*expr.Expr
	if p.peek().kind != tokRParen {
		for {
			a, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().kind == tokComma {
				p.next()
				continue
			}
			break
		}
	}
	if p.peek().kind != tokRParen {
		return nil, casio.New(casio.InvalidArgument, "Parse: expected ')' closing call to %s", name)
	}
	p.next()
	switch name {
	case "sqrt":
		if len(args) != 1 {
			return nil, casio.New(casio.InvalidArgument, "sqrt takes exactly one argument")
		}
		return expr.NewSqrt(args[0]), nil
	case "root":
		if len(args) != 2 {
			return nil, casio.New(casio.InvalidArgument, "root takes exactly two arguments")
		}
		return expr.NewSqrt(args[0], args[1]), nil
	default:
		return expr.NewFunction(name, args...), nil
	}
}
