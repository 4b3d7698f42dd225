package analysis

import (
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/semantics"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// computeCandidates enumerates every candidateStep reachable from
// state: one non-simulating step per frontier element matching its
// channel's next unconsumed action, plus (when simulation is enabled
// and the mode is ModeAnalyze) simulating steps for elements that do
// not correspond to any channel head but can be legally fabricated
// under the remaining budget (spec.md §4.8, §4.8.1). In ModeExplore
// every frontier element becomes a non-simulating step: there is no
// trace to match against.
func computeCandidates(state ProcessState) []candidateStep {
	raw := semantics.GlobalFrontier(state.Interaction, state.Ctx, nil)

	if state.Params.Mode == ModeExplore {
		out := make([]candidateStep, len(raw))
		for i, e := range raw {
			out[i] = candidateStep{element: e, simKind: trace.NotSimulated, chanID: -1}
		}
		return out
	}

	var out []candidateStep
	for _, e := range raw {
		chanID := state.Coloc.LifelineColocID(e.Action.LfID)
		if chanID < 0 || chanID >= len(state.Flags.Channels) {
			continue
		}
		chanFlags := state.Flags.Channels[chanID]
		chanTrace := state.MultiTrace[chanID]
		hasHead := chanFlags.Consumed < len(chanTrace)

		if hasHead {
			head := chanTrace[chanFlags.Consumed]
			if head.LfID == e.Action.LfID && head.Kind == e.Action.Kind {
				inter := mte.NewIntersection(head.Message, e.Action.Message)
				if !inter.Resolve(state.Ctx).IsEmpty() {
					narrowed := e
					narrowed.Action = trace.NewAction(e.Action.LfID, e.Action.Kind, inter.Simplify(state.Ctx))
					out = append(out, candidateStep{element: narrowed, simKind: trace.NotSimulated, chanID: chanID})
					continue
				}
			}
		}

		if !state.Params.Simulation.Enabled {
			continue
		}
		if e.MaxLoopDepth > state.Flags.RemLoopInSim || state.Flags.RemActInSim == 0 {
			continue
		}
		simKind := trace.AfterEnd
		if chanFlags.Consumed == 0 {
			if chanID < len(state.Params.Simulation.SimBefore) && !state.Params.Simulation.SimBefore[chanID] {
				continue
			}
			simKind = trace.BeforeStart
		}
		out = append(out, candidateStep{element: e, simKind: simKind, chanID: chanID})
	}
	return out
}
