package mte

import "github.com/erwanM974/hibou-passing/pkg/symtab"

// ErrEmptyResolution panics out of Simplify when an expression resolves
// to the empty message set. spec.md §9 leaves this an explicit open
// question ("whether simplify of a resolved-empty MTE should return an
// explicit empty or be a precondition violation"); this implementation
// picks the precondition-violation reading, consistent with §7
// classifying it as a structural precondition the caller must avoid
// (see DESIGN.md).
type ErrEmptyResolution struct {
	Expr *Expr
}

func (e *ErrEmptyResolution) Error() string {
	return "mte: Simplify called on an expression that resolves to the empty set: " + e.Expr.String()
}

// Simplify returns a canonical form of e: one whose Resolve is
// unchanged, collapsed to Singleton or NamedType where possible, and
// with union/intersection fragments folded and deduplicated (spec.md
// §4.1). Simplify panics with *ErrEmptyResolution if e resolves to the
// empty set — callers must establish non-emptiness first (the analysis
// driver and frontier/execute code in this repository only ever
// simplify expressions derived from a non-empty intersection, per
// their own preconditions).
func (e *Expr) Simplify(ctx *symtab.GeneralContext) *Expr {
	if e.kind == Singleton || e.kind == NamedType {
		return e
	}

	resolved := e.Resolve(ctx)
	if resolved.IsEmpty() {
		panic(&ErrEmptyResolution{Expr: e})
	}
	if resolved.Count() == 1 {
		return NewSingleton(resolved.SingletonValue())
	}
	for typeID := 0; typeID < ctx.MessageTypeCount(); typeID++ {
		typeMessages, err := ctx.MessageTypeMessages(typeID)
		if err != nil {
			panic(err)
		}
		if typeMessages.Equal(resolved) {
			return NewNamedType(typeID)
		}
	}

	switch e.kind {
	case SetMinus:
		return simplifySetMinus(e.a, e.b, ctx)
	case Union:
		frags := unionFragments(e, ctx)
		return foldUnion(frags)
	case Intersection:
		frags := intersectionFragments(e, ctx)
		return foldIntersection(frags)
	default:
		return e
	}
}

func simplifySetMinus(a, b *Expr, ctx *symtab.GeneralContext) *Expr {
	intersect := NewIntersection(a, b)
	if intersect.Resolve(ctx).IsEmpty() {
		return a.Simplify(ctx)
	}

	left := unionFragments(a, ctx)
	right := unionFragments(b, ctx)
	left, right = cancelCommon(left, right)

	if len(left) == 0 {
		// a and b denote the same union of fragments: the difference is
		// empty, which Simplify never returns explicitly (see
		// ErrEmptyResolution above). This cannot happen when reached from
		// Simplify, whose own resolution check already proved a\b
		// non-empty.
		panic(&ErrEmptyResolution{Expr: NewSetMinus(a, b)})
	}
	if len(right) == 0 {
		return foldUnion(left)
	}
	return NewSetMinus(foldUnion(left), foldUnion(right))
}

// cancelCommon removes, from left and right, one occurrence each of
// every fragment that is structurally Equal on both sides — mirroring
// the original's hashset-intersection-then-remove-one-occurrence
// behavior, which only cancels duplicated fragments, not all
// resolution-equivalent ones.
func cancelCommon(left, right []*Expr) ([]*Expr, []*Expr) {
	var remainingLeft []*Expr
	usedRight := make([]bool, len(right))
	for _, l := range left {
		cancelled := false
		for i, r := range right {
			if !usedRight[i] && l.Equal(r) {
				usedRight[i] = true
				cancelled = true
				break
			}
		}
		if !cancelled {
			remainingLeft = append(remainingLeft, l)
		}
	}
	var remainingRight []*Expr
	for i, r := range right {
		if !usedRight[i] {
			remainingRight = append(remainingRight, r)
		}
	}
	return remainingLeft, remainingRight
}

// unionFragments flattens the recursive Union decomposition of e into a
// deduplicated (by Equal), simplified fragment list.
func unionFragments(e *Expr, ctx *symtab.GeneralContext) []*Expr {
	if e.kind == Union {
		var frags []*Expr
		for _, f := range unionFragments(e.a, ctx) {
			frags = appendUnique(frags, f)
		}
		for _, f := range unionFragments(e.b, ctx) {
			frags = appendUnique(frags, f)
		}
		return frags
	}
	return []*Expr{e.Simplify(ctx)}
}

// intersectionFragments flattens the recursive Intersection
// decomposition of e into a deduplicated, simplified fragment list.
func intersectionFragments(e *Expr, ctx *symtab.GeneralContext) []*Expr {
	if e.kind == Intersection {
		var frags []*Expr
		for _, f := range intersectionFragments(e.a, ctx) {
			frags = appendUnique(frags, f)
		}
		for _, f := range intersectionFragments(e.b, ctx) {
			frags = appendUnique(frags, f)
		}
		return frags
	}
	return []*Expr{e.Simplify(ctx)}
}

func appendUnique(frags []*Expr, f *Expr) []*Expr {
	for _, existing := range frags {
		if existing.Equal(f) {
			return frags
		}
	}
	return append(frags, f)
}

func foldUnion(frags []*Expr) *Expr {
	if len(frags) == 0 {
		panic("mte: foldUnion called with no fragments")
	}
	result := frags[len(frags)-1]
	for i := len(frags) - 2; i >= 0; i-- {
		result = NewUnion(frags[i], result)
	}
	return result
}

func foldIntersection(frags []*Expr) *Expr {
	if len(frags) == 0 {
		panic("mte: foldIntersection called with no fragments")
	}
	result := frags[len(frags)-1]
	for i := len(frags) - 2; i >= 0; i-- {
		result = NewIntersection(frags[i], result)
	}
	return result
}
