package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// End-to-end scenarios S1-S6: one colocalization unless stated
// otherwise, lifelines a,b,c and a single message m, as laid out by
// the driver's end-to-end test matrix.

func singleColocSetup(t *testing.T) (*symtab.GeneralContext, int, int, int, int) {
	t.Helper()
	ctx := symtab.NewGeneralContext()
	a := ctx.AddLifeline("a")
	b := ctx.AddLifeline("b")
	c := ctx.AddLifeline("c")
	m := ctx.AddMessage("m")
	return ctx, a, b, c, m
}

func runAnalysis(t *testing.T, ctx *symtab.GeneralContext, term *interaction.Interaction, mt trace.MultiTrace, coloc trace.Colocalization) *Result {
	t.Helper()
	params := Parameterization{Priority: DefaultStepPriority(), Memoize: true}
	result, err := Run(context.Background(), term, ctx, mt, coloc, params, nil)
	require.NoError(t, err)
	return result
}

func leafKindReached(result *Result) map[LocalVerdictKind]bool {
	kinds := make(map[LocalVerdictKind]bool)
	for _, node := range result.Run.Nodes {
		if v, ok := result.LeafVerdict(node); ok {
			kinds[v.Kind] = true
		}
	}
	return kinds
}

func TestScenarioS1SingleActionCov(t *testing.T) {
	ctx, a, b, _, m := singleColocSetup(t)
	term := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	mt := trace.MultiTrace{{
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(b, trace.Reception, mte.NewSingleton(m)),
	}}
	coloc := trace.NewStaticColocalization([][]int{{a, b}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "pass", result.GlobalVerdict().String())
	assert.True(t, leafKindReached(result)[Cov])
}

func TestScenarioS2CoRegTwoReceptionsCov(t *testing.T) {
	ctx, a, b, c, m := singleColocSetup(t)
	first := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	second := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{c}))
	term := interaction.NewCoReg(nil, first, second)

	mt := trace.MultiTrace{{
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(b, trace.Reception, mte.NewSingleton(m)),
		trace.NewAction(c, trace.Reception, mte.NewSingleton(m)),
	}}
	coloc := trace.NewStaticColocalization([][]int{{a, b, c}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "pass", result.GlobalVerdict().String())
	assert.True(t, leafKindReached(result)[Cov])
}

func TestScenarioS3AltSelectsMatchingBranch(t *testing.T) {
	ctx, a, b, c, m := singleColocSetup(t)
	toB := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	toC := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{c}))
	term := interaction.NewAlt(toB, toC)

	mt := trace.MultiTrace{{
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(c, trace.Reception, mte.NewSingleton(m)),
	}}
	coloc := trace.NewStaticColocalization([][]int{{a, b, c}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "pass", result.GlobalVerdict().String())
	assert.True(t, leafKindReached(result)[Cov])
}

func TestScenarioS4LoopTwoIterationsCov(t *testing.T) {
	ctx, a, b, _, m := singleColocSetup(t)
	body := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	term := interaction.NewLoop(nil, body)

	mt := trace.MultiTrace{{
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(b, trace.Reception, mte.NewSingleton(m)),
		trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		trace.NewAction(b, trace.Reception, mte.NewSingleton(m)),
	}}
	coloc := trace.NewStaticColocalization([][]int{{a, b}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "pass", result.GlobalVerdict().String())
	assert.True(t, leafKindReached(result)[Cov])
}

func TestScenarioS5PartialTraceGloPref(t *testing.T) {
	ctx, a, b, _, m := singleColocSetup(t)
	term := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	mt := trace.MultiTrace{{trace.NewAction(a, trace.Emission, mte.NewSingleton(m))}}
	coloc := trace.NewStaticColocalization([][]int{{a, b}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "weak-pass", result.GlobalVerdict().String())
	assert.True(t, leafKindReached(result)[GloPref])
}

func TestScenarioS6MismatchedTraceOut(t *testing.T) {
	ctx, a, b, _, m := singleColocSetup(t)
	term := interaction.NewAction(interaction.NewBroadcastPrimitive(a, mte.NewSingleton(m), []int{b}))
	mt := trace.MultiTrace{{trace.NewAction(b, trace.Reception, mte.NewSingleton(m))}}
	coloc := trace.NewStaticColocalization([][]int{{a, b}})

	result := runAnalysis(t, ctx, term, mt, coloc)
	assert.Equal(t, "fail", result.GlobalVerdict().String())
}
