package reduce

import "github.com/Marcos30004347/math/expr"

// Trigonometric, hyperbolic and logarithmic/exponential constructors
// (spec.md §6 "Trigonometric constructors... each returns a FUNCTION
// expression to be simplified by the reducer").
func Sin(a *expr.Expr) *expr.Expr  { return expr.NewFunction("sin", a) }
func Cos(a *expr.Expr) *expr.Expr  { return expr.NewFunction("cos", a) }
func Tan(a *expr.Expr) *expr.Expr  { return expr.NewFunction("tan", a) }
func Csc(a *expr.Expr) *expr.Expr  { return expr.NewFunction("csc", a) }
func Sec(a *expr.Expr) *expr.Expr  { return expr.NewFunction("sec", a) }
func Cot(a *expr.Expr) *expr.Expr  { return expr.NewFunction("cot", a) }
func Asin(a *expr.Expr) *expr.Expr { return expr.NewFunction("asin", a) }
func Acos(a *expr.Expr) *expr.Expr { return expr.NewFunction("acos", a) }
func Atan(a *expr.Expr) *expr.Expr { return expr.NewFunction("atan", a) }
func Sinh(a *expr.Expr) *expr.Expr { return expr.NewFunction("sinh", a) }
func Cosh(a *expr.Expr) *expr.Expr { return expr.NewFunction("cosh", a) }
func Tanh(a *expr.Expr) *expr.Expr { return expr.NewFunction("tanh", a) }
func Ln(a *expr.Expr) *expr.Expr   { return expr.NewFunction("ln", a) }
func Exp(a *expr.Expr) *expr.Expr  { return expr.NewFunction("exp", a) }

// Log builds log_a(b) as ln(b)/ln(a), reduced.
func Log(a, b *expr.Expr) (*expr.Expr, error) {
	return Reduce(expr.NewDiv(Ln(b), Ln(a)))
}

// oddFunctions negate their result when the argument negates: f(-x) =
// -f(x). evenFunctions are unchanged: f(-x) = f(x). These are the
// function-level analogue of spec.md §4.3's "trig identities".
var oddFunctions = map[string]bool{
	"sin": true, "tan": true, "cot": true, "csc": true,
	"asin": true, "atan": true,
	"sinh": true, "tanh": true,
}

var evenFunctions = map[string]bool{
	"cos": true, "sec": true, "cosh": true,
}

// zeroValues gives f(0) for functions defined there.
var zeroValues = map[string]*expr.Expr{
	"sin": nil, "tan": nil, "asin": nil, "atan": nil, "sinh": nil, "tanh": nil,
}

func init() {
	zero := expr.Int64(0)
	one := expr.Int64(1)
	for name := range zeroValues {
		zeroValues[name] = zero
	}
	zeroValues["cos"] = one
	zeroValues["cosh"] = one
	zeroValues["exp"] = one
}

// simplifyFunction applies the small set of exact identities spec.md §4.3
// expects of the reducer for FUNCTION nodes: zero-argument special
// values, odd/even argument normalization, and exp/ln composition
// cancellation. Anything else is left as an unevaluated FUNCTION node
// (trigonometric pass-throughs beyond this are an external collaborator's
// concern per spec.md §1).
func simplifyFunction(name string, args []*expr.Expr) (*expr.Expr, error) {
	if len(args) == 1 {
		a := args[0]
		if isZeroConst(a) {
			if v, ok := zeroValues[name]; ok {
				return v, nil
			}
		}
		if isMinusOneFactored(a) {
			inner := negate(a)
			if evenFunctions[name] {
				return simplifyFunction(name, []*expr.Expr{inner})
			}
			if oddFunctions[name] {
				r, err := simplifyFunction(name, []*expr.Expr{inner})
				if err != nil {
					return nil, err
				}
				return reduceMulNode(expr.NewMul(expr.Int64(-1), r))
			}
		}
		switch name {
		case "ln":
			if a.Kind == expr.Function && a.Name == "exp" {
				return a.Children[0], nil
			}
			if isOneConst(a) {
				return expr.Int64(0), nil
			}
		case "exp":
			if a.Kind == expr.Function && a.Name == "ln" {
				return a.Children[0], nil
			}
		}
	}
	return expr.NewFunction(name, args...), nil
}

// isMinusOneFactored reports whether e is syntactically -x for some x
// (either a negative numeric constant or a MUL with leading coefficient
// -1), used to detect odd/even argument symmetry.
func isMinusOneFactored(e *expr.Expr) bool {
	if isConstant(e) {
		return expr.Numerator(e).Int.Sign() < 0
	}
	return e.Kind == expr.Mul && len(e.Children) > 0 && isMinusOneConst(e.Children[0])
}

func negate(e *expr.Expr) *expr.Expr {
	if isConstant(e) {
		n := expr.Numerator(e).Int.Neg()
		f, _ := expr.NewFraction(n, expr.Denominator(e).Int)
		return f
	}
	if e.Kind == expr.Mul && len(e.Children) > 0 && isMinusOneConst(e.Children[0]) {
		rest := e.Children[1:]
		if len(rest) == 1 {
			return rest[0]
		}
		return expr.NewMul(rest...)
	}
	return expr.NewMul(expr.Int64(-1), e)
}
