// Package expr implements the tagged expression tree of spec.md §3.2: the
// universal representation for atoms, algebraic combinators and function
// applications that every other layer of the kernel (reduce, polyexpr,
// polyops, gf, factor, roots, calculus) builds on.
//
// Expressions are acyclic value-like trees built from *Expr nodes; callers
// treat a tree handed to them as immutable and Clone it before any
// in-place mutation, the same convention the teacher's value.Value types
// use (operators return new values rather than mutating receivers),
// adapted here to a single tagged struct instead of one Go type per kind.
package expr

import (
	"sort"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/casio"
)

// Expr is the single tagged node type for every kind listed in spec.md
// §3.2. Only the fields relevant to Kind are meaningful; see the
// constructors below for the populated shape of each kind.
type Expr struct {
	Kind     Kind
	Int      bigint.Int // INTEGER payload
	Name     string     // SYMBOL / FUNCTION name
	Children []*Expr
}

// Clone returns a deep copy of e, so the caller may mutate the result
// in-place without affecting shared structure elsewhere in the tree
// (spec.md §3.2 "mutation is local... on private copies").
func Clone(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	n := &Expr{Kind: e.Kind, Int: e.Int, Name: e.Name}
	if e.Children != nil {
		n.Children = make([]*Expr, len(e.Children))
		for i, c := range e.Children {
			n.Children[i] = Clone(c)
		}
	}
	return n
}

// --- atomic constructors ---

// NewInteger wraps a bigint.Int as an INTEGER node.
func NewInteger(v bigint.Int) *Expr { return &Expr{Kind: Integer, Int: v} }

// Int64 is a convenience constructor for small literal integers.
func Int64(v int64) *Expr { return NewInteger(bigint.FromInt64(v)) }

// NewSymbol builds a SYMBOL node.
func NewSymbol(name string) *Expr { return &Expr{Kind: Symbol, Name: name} }

// NewInfinity, NewNegInfinity, NewUndefined and NewFail build the atomic
// sentinel kinds of spec.md §3.2 / §7.
func NewInfinity() *Expr    { return &Expr{Kind: Infinity} }
func NewNegInfinity() *Expr { return &Expr{Kind: NegInfinity} }
func NewUndefined() *Expr   { return &Expr{Kind: Undefined} }
func NewFail() *Expr        { return &Expr{Kind: Fail} }

// NewFraction builds a FRACTION node num/den, reducing to lowest terms,
// normalizing the sign onto the numerator, and collapsing to INTEGER when
// the denominator becomes 1 (spec.md §3.2 invariants).
func NewFraction(num, den bigint.Int) (*Expr, error) {
	if den.IsZero() {
		return nil, casio.New(casio.ArithmeticError, "fraction with zero denominator")
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	g := bigint.Gcd(num, den)
	if !g.IsZero() && g.Cmp(bigint.One) != 0 {
		num, _, _ = num.QuoRem(g)
		den, _, _ = den.QuoRem(g)
	}
	if den.Cmp(bigint.One) == 0 {
		return NewInteger(num), nil
	}
	return &Expr{Kind: Fraction, Children: []*Expr{NewInteger(num), NewInteger(den)}}, nil
}

// Numerator and Denominator extract the INTEGER children of a FRACTION
// node (or treat an INTEGER node as n/1).
func Numerator(e *Expr) *Expr {
	if e.Kind == Fraction {
		return e.Children[0]
	}
	return e
}

func Denominator(e *Expr) *Expr {
	if e.Kind == Fraction {
		return e.Children[1]
	}
	return NewInteger(bigint.One)
}

// --- combinator constructors (unreduced; callers normally pass these
// through reduce.Reduce before use) ---

func NewFunction(name string, args ...*Expr) *Expr {
	return &Expr{Kind: Function, Name: name, Children: append([]*Expr(nil), args...)}
}

func NewAdd(children ...*Expr) *Expr {
	return &Expr{Kind: Add, Children: append([]*Expr(nil), children...)}
}

func NewMul(children ...*Expr) *Expr {
	return &Expr{Kind: Mul, Children: append([]*Expr(nil), children...)}
}

func NewPow(base, exp *Expr) *Expr {
	return &Expr{Kind: Pow, Children: []*Expr{base, exp}}
}

func NewDiv(a, b *Expr) *Expr {
	return &Expr{Kind: Div, Children: []*Expr{a, b}}
}

func NewSub(a, b *Expr) *Expr {
	return &Expr{Kind: Sub, Children: []*Expr{a, b}}
}

// NewSqrt builds a SQRT node; index defaults to 2 when omitted.
func NewSqrt(radicand *Expr, index ...*Expr) *Expr {
	if len(index) == 0 {
		return &Expr{Kind: Sqrt, Children: []*Expr{radicand, Int64(2)}}
	}
	return &Expr{Kind: Sqrt, Children: []*Expr{radicand, index[0]}}
}

func NewFactorial(x *Expr) *Expr {
	return &Expr{Kind: Factorial, Children: []*Expr{x}}
}

// --- operand access / mutation (spec.md §4.2 "child-vector mutation
// interface") ---

// NumOperands returns the number of children e exposes.
func NumOperands(e *Expr) int { return len(e.Children) }

// GetOperand returns e's i'th child.
func GetOperand(e *Expr, i int) *Expr {
	if i < 0 || i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

// SetOperand replaces e's i'th child in place.
func SetOperand(e *Expr, i int, v *Expr) {
	if i < 0 || i >= len(e.Children) {
		return
	}
	e.Children[i] = v
}

// InsertOperand inserts v at position i, shifting later children right.
func InsertOperand(e *Expr, i int, v *Expr) {
	if i < 0 || i > len(e.Children) {
		i = len(e.Children)
	}
	e.Children = append(e.Children, nil)
	copy(e.Children[i+1:], e.Children[i:])
	e.Children[i] = v
}

// RemoveOperand deletes the i'th child.
func RemoveOperand(e *Expr, i int) {
	if i < 0 || i >= len(e.Children) {
		return
	}
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
}

// --- structural equality ---

// Equal reports kind-and-children structural equality. On reduced
// expressions, structural equality coincides with canonical-form equality
// (spec.md §4.2).
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.Int.Cmp(b.Int) == 0
	case Symbol:
		return a.Name == b.Name
	case Function:
		if a.Name != b.Name || len(a.Children) != len(b.Children) {
			return false
		}
	default:
		if len(a.Children) != len(b.Children) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// FreeVariables returns the set of symbols occurring in e, excluding
// function-name heads (spec.md §4.4 "free-variable sweep"), sorted by the
// total order of Less.
func FreeVariables(e *Expr) []*Expr {
	seen := map[string]*Expr{}
	var walk func(*Expr)
	walk = func(n *Expr) {
		if n == nil {
			return
		}
		switch n.Kind {
		case Symbol:
			seen[n.Name] = n
		case Function:
			for _, c := range n.Children {
				walk(c)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(e)
	out := make([]*Expr, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Key returns a canonical string fingerprint of e's structure, suitable
// as a map key for grouping "like terms" during sum/product reduction and
// for memoizing coefficient lookups in polyexpr. Two expressions produce
// the same Key iff Equal reports them equal.
func Key(e *Expr) string {
	var b []byte
	appendKey(&b, e)
	return string(b)
}

func appendKey(b *[]byte, e *Expr) {
	if e == nil {
		*b = append(*b, "nil"...)
		return
	}
	*b = append(*b, byte(e.Kind), '(')
	switch e.Kind {
	case Integer:
		*b = append(*b, e.Int.String()...)
	case Symbol:
		*b = append(*b, e.Name...)
	case Function:
		*b = append(*b, e.Name...)
		*b = append(*b, ':')
	}
	for _, c := range e.Children {
		appendKey(b, c)
		*b = append(*b, ',')
	}
	*b = append(*b, ')')
}

// ContainsSymbol reports whether name occurs free in e.
func ContainsSymbol(e *Expr, name string) bool {
	if e == nil {
		return false
	}
	if e.Kind == Symbol && e.Name == name {
		return true
	}
	for _, c := range e.Children {
		if ContainsSymbol(c, name) {
			return true
		}
	}
	return false
}
