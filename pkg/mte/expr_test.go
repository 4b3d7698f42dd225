package mte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwanM974/hibou-passing/pkg/symtab"
)

func buildCtx() (*symtab.GeneralContext, int, int, int) {
	ctx := symtab.NewGeneralContext()
	a := ctx.AddMessage("a")
	b := ctx.AddMessage("b")
	c := ctx.AddMessage("c")
	return ctx, a, b, c
}

func TestExprResolve(t *testing.T) {
	ctx, a, b, _ := buildCtx()

	union := NewUnion(NewSingleton(a), NewSingleton(b))
	resolved := union.Resolve(ctx)
	assert.True(t, resolved.Has(a))
	assert.True(t, resolved.Has(b))
	assert.Equal(t, 2, resolved.Count())

	inter := NewIntersection(NewSingleton(a), NewSingleton(b))
	assert.True(t, inter.Resolve(ctx).IsEmpty())
}

func TestExprEqual(t *testing.T) {
	_, a, b, _ := buildCtx()
	e1 := NewUnion(NewSingleton(a), NewSingleton(b))
	e2 := NewUnion(NewSingleton(a), NewSingleton(b))
	e3 := NewUnion(NewSingleton(b), NewSingleton(a))

	assert.True(t, e1.Equal(e2))
	assert.False(t, e1.Equal(e3), "Equal is structural, not resolution-based")
}

func TestExprSimplifyCollapsesToSingleton(t *testing.T) {
	ctx, a, b, _ := buildCtx()
	expr := NewIntersection(NewUnion(NewSingleton(a), NewSingleton(b)), NewSingleton(a))

	simplified := expr.Simplify(ctx)
	require.Equal(t, Singleton, simplified.Kind())
	assert.Equal(t, a, simplified.SingletonMsgID())
}

func TestExprSimplifyCollapsesToNamedType(t *testing.T) {
	ctx, a, b, _ := buildCtx()
	ctx.AddMessageType("ab", symtab.NewMsgSet(a, b))

	union := NewUnion(NewSingleton(a), NewSingleton(b))
	simplified := union.Simplify(ctx)
	require.Equal(t, NamedType, simplified.Kind())

	name, err := ctx.MessageTypeName(simplified.NamedTypeID())
	require.NoError(t, err)
	assert.Equal(t, "ab", name)
}

func TestExprSimplifyPanicsOnEmptyResolution(t *testing.T) {
	ctx, a, b, _ := buildCtx()
	empty := NewIntersection(NewSingleton(a), NewSingleton(b))

	assert.Panics(t, func() { empty.Simplify(ctx) })
}
