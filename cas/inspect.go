package cas

import "github.com/Marcos30004347/math/expr"

// KindOf returns e's tag (spec.md §6 "kindOf(e)").
func KindOf(e *expr.Expr) expr.Kind { return e.Kind }

// GetOperand and SetOperand expose e's child vector (spec.md §6
// "getOperand(e, i), setOperand(e, i, v)").
func GetOperand(e *expr.Expr, i int) *expr.Expr    { return expr.GetOperand(e, i) }
func SetOperand(e *expr.Expr, i int, v *expr.Expr) { expr.SetOperand(e, i, v) }

// Is reports whether e's kind belongs to kindMask (spec.md §6 "is(e,
// kindMask)"); see expr.ErrorMask/ConstantMask/AtomicMask for the common
// masks spec.md §7's error-propagation policy tests against.
func Is(e *expr.Expr, kindMask expr.Mask) bool { return expr.Is(e, kindMask) }
