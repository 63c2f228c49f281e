package reduce

import (
	"github.com/Marcos30004347/math/casio"
	"github.com/Marcos30004347/math/expr"
)

// Replace structurally substitutes every occurrence of the symbol x in u
// with v (spec.md §4.3/§6). It does not reduce or expand the result —
// Eval does both, matching spec.md §4.3's "eval additionally expands +
// reduces".
func Replace(u, x, v *expr.Expr) (*expr.Expr, error) {
	if x.Kind != expr.Symbol {
		return nil, casio.New(casio.InvalidArgument, "replace: substitution key must be a symbol, got %v", x.Kind)
	}
	return replaceNode(u, x.Name, v), nil
}

func replaceNode(e *expr.Expr, name string, v *expr.Expr) *expr.Expr {
	if e.Kind == expr.Symbol && e.Name == name {
		return expr.Clone(v)
	}
	if len(e.Children) == 0 {
		return expr.Clone(e)
	}
	children := make([]*expr.Expr, len(e.Children))
	for i, c := range e.Children {
		children[i] = replaceNode(c, name, v)
	}
	return &expr.Expr{Kind: e.Kind, Int: e.Int, Name: e.Name, Children: children}
}

// Eval substitutes x -> v in u and then expands and reduces the result
// (spec.md §4.3).
func Eval(u, x, v *expr.Expr) (*expr.Expr, error) {
	r, err := Replace(u, x, v)
	if err != nil {
		return nil, err
	}
	return Expand(r)
}
