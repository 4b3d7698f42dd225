// Package mte implements the message-type-expression algebra: set-like
// expressions over interned message ids (spec.md §3, §4.1).
package mte

import (
	"fmt"

	"github.com/erwanM974/hibou-passing/pkg/symtab"
)

// Kind discriminates the MessageTypeExpression variants.
type Kind int

const (
	// Singleton denotes exactly one message id.
	Singleton Kind = iota
	// NamedType denotes the set of message ids a named type resolves to.
	NamedType
	// Union denotes the union of two sub-expressions.
	Union
	// Intersection denotes the intersection of two sub-expressions.
	Intersection
	// SetMinus denotes the set difference of two sub-expressions.
	SetMinus
)

// Expr is a MessageTypeExpression: a recursive set-algebra term over
// message ids. Values are immutable once constructed; every
// transformation (Simplify) returns a new Expr.
type Expr struct {
	kind   Kind
	id     int // ms_id for Singleton, mt_id for NamedType
	a, b   *Expr
}

// NewSingleton builds an expression denoting exactly one message.
func NewSingleton(msgID int) *Expr {
	return &Expr{kind: Singleton, id: msgID}
}

// NewNamedType builds an expression denoting a named type's message set.
func NewNamedType(typeID int) *Expr {
	return &Expr{kind: NamedType, id: typeID}
}

// NewUnion builds the union of a and b.
func NewUnion(a, b *Expr) *Expr {
	return &Expr{kind: Union, a: a, b: b}
}

// NewIntersection builds the intersection of a and b.
func NewIntersection(a, b *Expr) *Expr {
	return &Expr{kind: Intersection, a: a, b: b}
}

// NewSetMinus builds the set difference a \ b.
func NewSetMinus(a, b *Expr) *Expr {
	return &Expr{kind: SetMinus, a: a, b: b}
}

// Kind reports the expression's top-level variant.
func (e *Expr) Kind() Kind { return e.kind }

// SingletonMsgID returns the denoted message id. Only meaningful when
// Kind() == Singleton.
func (e *Expr) SingletonMsgID() int { return e.id }

// NamedTypeID returns the denoted type id. Only meaningful when
// Kind() == NamedType.
func (e *Expr) NamedTypeID() int { return e.id }

// Operands returns the two sub-expressions of a binary node. Only
// meaningful when Kind() is Union, Intersection, or SetMinus.
func (e *Expr) Operands() (*Expr, *Expr) { return e.a, e.b }

// Equal reports structural equality: same shape, same leaves. Two
// expressions can be Equal under Resolve without being structurally
// Equal (e.g. Union(a,b) vs Union(b,a)); Equal is the stricter,
// cheaper check used by the simplifier's fragment deduplication.
func (e *Expr) Equal(other *Expr) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil || e.kind != other.kind {
		return false
	}
	switch e.kind {
	case Singleton, NamedType:
		return e.id == other.id
	default:
		return e.a.Equal(other.a) && e.b.Equal(other.b)
	}
}

// Resolve returns the finite set of message ids this expression denotes.
func (e *Expr) Resolve(ctx *symtab.GeneralContext) symtab.MsgSet {
	switch e.kind {
	case Singleton:
		return symtab.NewMsgSet(e.id)
	case NamedType:
		set, err := ctx.MessageTypeMessages(e.id)
		if err != nil {
			panic(fmt.Sprintf("mte: %v", err))
		}
		return set
	case Union:
		return e.a.Resolve(ctx).Union(e.b.Resolve(ctx))
	case Intersection:
		return e.a.Resolve(ctx).Intersect(e.b.Resolve(ctx))
	case SetMinus:
		return e.a.Resolve(ctx).Difference(e.b.Resolve(ctx))
	default:
		panic("mte: unreachable expression kind")
	}
}

// String renders the expression for debugging/logging.
func (e *Expr) String() string {
	switch e.kind {
	case Singleton:
		return fmt.Sprintf("msg#%d", e.id)
	case NamedType:
		return fmt.Sprintf("type#%d", e.id)
	case Union:
		return fmt.Sprintf("(%s ∪ %s)", e.a, e.b)
	case Intersection:
		return fmt.Sprintf("(%s ∩ %s)", e.a, e.b)
	case SetMinus:
		return fmt.Sprintf("(%s \\ %s)", e.a, e.b)
	default:
		return "<invalid mte>"
	}
}
