package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
)

func TestExploreVisitsEveryBranchOfAnAlt(t *testing.T) {
	ctx := symtab.NewGeneralContext()
	a := ctx.AddLifeline("a")
	b := ctx.AddLifeline("b")
	c := ctx.AddLifeline("c")
	m := ctx.AddMessage("m")

	toB := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	toC := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{c}))
	term := interaction.NewAlt(toB, toC)

	params := Parameterization{Priority: DefaultStepPriority(), Memoize: true}
	result, err := Explore(context.Background(), term, ctx, params, nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(result.Run.Nodes), 2)

	reachedEmpty := false
	for _, node := range result.Run.Nodes {
		if node.State.Interaction.ExpressEmpty() {
			reachedEmpty = true
		}
	}
	assert.True(t, reachedEmpty, "some exploration branch should fully consume the chosen alternative")
}

func TestExploreSingleActionTermTerminates(t *testing.T) {
	ctx := symtab.NewGeneralContext()
	a := ctx.AddLifeline("a")
	b := ctx.AddLifeline("b")
	m := ctx.AddMessage("m")

	term := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	params := Parameterization{Priority: DefaultStepPriority()}

	result, err := Explore(context.Background(), term, ctx, params, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Run.Nodes)
}
