package mte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwanM974/hibou-passing/pkg/symtab"
)

func TestSimplifySetMinusCancelsCommonFragments(t *testing.T) {
	ctx, a, b, c := buildCtx()
	left := NewUnion(NewSingleton(a), NewSingleton(b))
	right := NewUnion(NewSingleton(b), NewSingleton(c))

	diff := NewSetMinus(left, right)
	simplified := diff.Simplify(ctx)

	require.Equal(t, Singleton, simplified.Kind())
	assert.Equal(t, a, simplified.SingletonMsgID())
}

func TestSimplifySetMinusCollapsesToLeftWhenDisjoint(t *testing.T) {
	ctx, a, b, _ := buildCtx()
	left := NewSingleton(a)
	right := NewSingleton(b)

	simplified := NewSetMinus(left, right).Simplify(ctx)
	require.Equal(t, Singleton, simplified.Kind())
	assert.Equal(t, a, simplified.SingletonMsgID())
}

func TestSimplifyUnionDeduplicatesFragments(t *testing.T) {
	ctx, a, b, _ := buildCtx()
	expr := NewUnion(NewSingleton(a), NewUnion(NewSingleton(b), NewSingleton(a)))

	simplified := expr.Simplify(ctx)
	resolved := simplified.Resolve(ctx)
	assert.Equal(t, 2, resolved.Count())
	assert.True(t, resolved.Has(a))
	assert.True(t, resolved.Has(b))
}

func TestSimplifyIsStableOnNamedTypes(t *testing.T) {
	ctx := symtab.NewGeneralContext()
	m := ctx.AddMessage("m")
	typeID := ctx.AddMessageType("t", symtab.NewMsgSet(m))

	named := NewNamedType(typeID)
	assert.Same(t, named, named.Simplify(ctx))
}
