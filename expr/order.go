package expr

// Less implements the total order ≺ on reduced expressions of spec.md
// §4.2: used for MUL term ordering, canonical ADD/MUL layout and
// consumer-side simplification.
//
// The source's fallback comparison (spec.md §9 Open Questions) tests
// "!orderRelation(v, u)" without first checking equality, which makes ≺
// reflexive-inconsistent (e ≺ e can come out true). We fix that here by
// testing Equal first and always returning false for e ≺ e.
func Less(a, b *Expr) bool {
	if Equal(a, b) {
		return false
	}

	// Infinities bound the order from both ends.
	if a.Kind == NegInfinity {
		return true
	}
	if b.Kind == NegInfinity {
		return false
	}
	if b.Kind == Infinity {
		return true
	}
	if a.Kind == Infinity {
		return false
	}

	// Error sentinels sort last among non-infinities; they should never
	// actually participate in a canonical-form sort (the reducer halts on
	// them), but Less must remain total.
	if a.Kind == Undefined || a.Kind == Fail {
		return false
	}
	if b.Kind == Undefined || b.Kind == Fail {
		return true
	}

	if isConstant(a) && isConstant(b) {
		return lessConstant(a, b)
	}

	if a.Kind == b.Kind {
		switch a.Kind {
		case Symbol:
			return a.Name < b.Name
		case Add, Mul:
			return lessSeq(a.Children, b.Children)
		case Pow:
			if !Equal(a.Children[0], b.Children[0]) {
				return Less(a.Children[0], b.Children[0])
			}
			return Less(a.Children[1], b.Children[1])
		case Factorial:
			return Less(a.Children[0], b.Children[0])
		case Function:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return lessSeq(a.Children, b.Children)
		}
	}

	ra, rb := rank(a), rank(b)
	if ra <= rankFactorial && rb <= rankFactorial {
		// Both atomic-ladder kinds (constant/symbol/function/factorial)
		// with differing Kind: the ladder position alone decides.
		return ra < rb
	}

	// One side is a composite kind (ADD/POW/MUL); promote the other side
	// to a single-child wrapper of that composite shape and recurse.
	if ra < rb {
		if p := promote(a, b.Kind); p != nil {
			return Less(p, b)
		}
		return ra < rb
	}
	if p := promote(b, a.Kind); p != nil {
		return Less(a, p)
	}
	return ra < rb
}

const (
	rankConstant = iota
	rankSymbol
	rankFunction
	rankFactorial
	rankAdd
	rankPow
	rankMul
)

func rank(e *Expr) int {
	switch e.Kind {
	case Integer, Fraction:
		return rankConstant
	case Symbol:
		return rankSymbol
	case Function:
		return rankFunction
	case Factorial:
		return rankFactorial
	case Add:
		return rankAdd
	case Pow:
		return rankPow
	case Mul:
		return rankMul
	default:
		return rankMul + 1
	}
}

// promote wraps e as a single-child node of kind target, the way
// spec.md §4.2 "promote the lower-kind operand to a canonical wrapper of
// the higher kind" describes (e.g. comparing symbol s against product P
// by treating s as MUL(s)). Returns nil if target isn't one of the
// composite wrapper kinds.
func promote(e *Expr, target Kind) *Expr {
	switch target {
	case Mul:
		if e.Kind == Mul {
			return e
		}
		return NewMul(e)
	case Add:
		if e.Kind == Add {
			return e
		}
		return NewAdd(e)
	case Pow:
		if e.Kind == Pow {
			return e
		}
		return NewPow(e, Int64(1))
	default:
		return nil
	}
}

func isConstant(e *Expr) bool {
	return e.Kind == Integer || e.Kind == Fraction
}

// lessConstant compares two rational constants by cross-multiplication.
func lessConstant(a, b *Expr) bool {
	an, ad := Numerator(a).Int, Denominator(a).Int
	bn, bd := Numerator(b).Int, Denominator(b).Int
	lhs := an.Mul(bd)
	rhs := bn.Mul(ad)
	return lhs.Cmp(rhs) < 0
}

// lessSeq aligns two child sequences from the high (last) end; the first
// differing pair decides, and if a prefix match exhausts one sequence the
// shorter one is smaller.
func lessSeq(as, bs []*Expr) bool {
	i, j := len(as)-1, len(bs)-1
	for i >= 0 && j >= 0 {
		if !Equal(as[i], bs[j]) {
			return Less(as[i], bs[j])
		}
		i--
		j--
	}
	return len(as) < len(bs)
}

// SortByOrder sorts es in place by Less.
func SortByOrder(es []*Expr) {
	sortSlice(es)
}

func sortSlice(es []*Expr) {
	// Insertion sort: expression lists arising from reduction are short
	// and nearly sorted already (one new term merged in), so this avoids
	// pulling in sort.Slice's reflection-based comparator indirection for
	// the hot path. Matches the teacher's preference for small, direct
	// loops over generic container algorithms in value/vector.go.
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && Less(es[j], es[j-1]); j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}
