package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

func TestSliceMultiTraceTruncatesEachChannelAtItsConsumedBoundary(t *testing.T) {
	ctx := symtab.NewGeneralContext()
	a := ctx.AddLifeline("a")
	b := ctx.AddLifeline("b")
	m := ctx.AddMessage("m")

	mt := trace.MultiTrace{
		{
			trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
			trace.NewAction(a, trace.Emission, mte.NewSingleton(m)),
		},
		{
			trace.NewAction(b, trace.Reception, mte.NewSingleton(m)),
		},
	}
	flags := trace.NewInitialMultiTraceAnalysisFlags(2, 0, 0)
	flags.Channels[0].Consumed = 1
	flags.Channels[1].Consumed = 0

	sliced := SliceMultiTrace(mt, flags)
	assert.Len(t, sliced[0], 1)
	assert.Len(t, sliced[1], 0)
	assert.Equal(t, mt[0][0], sliced[0][0])
}

func TestSliceMultiTraceClampsConsumedBeyondTraceLength(t *testing.T) {
	ctx := symtab.NewGeneralContext()
	a := ctx.AddLifeline("a")
	m := ctx.AddMessage("m")

	mt := trace.MultiTrace{{trace.NewAction(a, trace.Emission, mte.NewSingleton(m))}}
	flags := trace.NewInitialMultiTraceAnalysisFlags(1, 0, 0)
	flags.Channels[0].Consumed = 5

	sliced := SliceMultiTrace(mt, flags)
	assert.Len(t, sliced[0], 1)
}
