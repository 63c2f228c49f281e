package cas

import (
	"math"

	"github.com/Marcos30004347/math/bigint"
	"github.com/Marcos30004347/math/expr"
)

// IntFromString parses a base-10 (or Go-integer-literal-prefixed)
// arbitrary-precision integer into an INTEGER expression (spec.md §6
// "intFromString").
func IntFromString(s string) (*expr.Expr, error) {
	v, err := bigint.FromString(s)
	if err != nil {
		return nil, err
	}
	return expr.NewInteger(v), nil
}

// IntFromLong wraps a machine int64 as an INTEGER expression (spec.md §6
// "intFromLong").
func IntFromLong(v int64) *expr.Expr {
	return expr.Int64(v)
}

// maxDenominator bounds numberFromDouble's denominator at 10^14 (spec.md
// §6 "approximates v by a fraction n/d with d <= 10^14").
const maxDenominator = 100000000000000

// NumberFromDouble approximates v as a fraction n/d with d <= 10^14 via
// continued-fraction expansion (spec.md §6 "numberFromDouble(v)...
// continued-fraction / modf decomposition"). NaN and +/-Inf map to the
// kernel's own Undefined/Infinity/NegInfinity sentinels rather than
// failing.
func NumberFromDouble(v float64) (*expr.Expr, error) {
	if math.IsNaN(v) {
		return expr.NewUndefined(), nil
	}
	if math.IsInf(v, 1) {
		return expr.NewInfinity(), nil
	}
	if math.IsInf(v, -1) {
		return expr.NewNegInfinity(), nil
	}
	if v == 0 {
		return expr.Int64(0), nil
	}

	sign := int64(1)
	if v < 0 {
		sign = -1
		v = -v
	}

	// Standard continued-fraction convergent search: h/k is the current
	// convergent, built up from successive floor(1/frac) terms via modf,
	// stopping once the next denominator would exceed maxDenominator.
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := v
	for i := 0; i < 64; i++ {
		intPart, frac := math.Modf(x)
		a := int64(intPart)
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenominator || k2 <= 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		if math.Abs(float64(h1)/float64(k1)-v) < 1e-12*math.Max(1, v) {
			break
		}
		if frac < 1e-15 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		k1 = 1
	}
	return expr.NewFraction(bigint.FromInt64(sign*h1), bigint.FromInt64(k1))
}

// Symbol builds a SYMBOL expression named name (spec.md §6 "symbol(name)").
func Symbol(name string) *expr.Expr {
	return expr.NewSymbol(name)
}
