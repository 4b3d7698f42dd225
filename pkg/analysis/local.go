package analysis

import (
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/semantics"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// localAnalysisProvesOut decides whether chanID's channel can be
// statically shown to never accept its remaining observed actions,
// without expanding the global term any further: project the term onto
// chanID's own lifelines (eliminating every other lifeline) and search
// that local projection for an execution consuming the channel's
// unconsumed trace suffix. If none exists, the whole node is Out
// regardless of what the other channels do.
func localAnalysisProvesOut(state ProcessState, chanID int) bool {
	others := otherLifelines(state.Interaction, state.Coloc, chanID)
	local := state.Interaction.EliminateLifelines(others, state.Ctx)
	remaining := state.MultiTrace[chanID][state.Flags.Channels[chanID].Consumed:]
	return !tryMatchLocal(local, remaining, state.Ctx)
}

func otherLifelines(i *interaction.Interaction, coloc trace.Colocalization, chanID int) map[int]struct{} {
	others := make(map[int]struct{})
	for lf := range i.InvolvedLifelines() {
		if coloc.LifelineColocID(lf) != chanID {
			others[lf] = struct{}{}
		}
	}
	return others
}

// tryMatchLocal reports whether some sequence of firings on i consumes
// exactly the actions in remaining, in order, each narrowed to a
// non-empty intersection of the trace's and the frontier's message
// type. It is a bounded exhaustive search: remaining is a finite local
// trace suffix, so this always terminates.
func tryMatchLocal(i *interaction.Interaction, remaining []trace.Action, ctx *symtab.GeneralContext) bool {
	if len(remaining) == 0 {
		return true
	}
	head := remaining[0]
	for _, e := range semantics.GlobalFrontier(i, ctx, nil) {
		if e.Action.LfID != head.LfID || e.Action.Kind != head.Kind {
			continue
		}
		inter := mte.NewIntersection(e.Action.Message, head.Message)
		if inter.Resolve(ctx).IsEmpty() {
			continue
		}
		narrowed := trace.NewAction(head.LfID, head.Kind, inter.Simplify(ctx))
		residual := semantics.Execute(i, e.Position, narrowed, ctx)
		if tryMatchLocal(residual, remaining[1:], ctx) {
			return true
		}
	}
	return false
}
