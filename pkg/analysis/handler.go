package analysis

import (
	"github.com/erwanM974/hibou-passing/internal/procmgr"
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/semantics"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// handler adapts the driver onto internal/procmgr.Handler[ProcessState].
// It keeps a side table from state fingerprint to the richer
// LocalVerdict the procmgr.Verdict rank alone cannot carry, so callers
// can recover the full leaf-verdict taxonomy after a run.
type handler struct {
	verdicts map[string]LocalVerdict
}

func newHandler() *handler {
	return &handler{verdicts: make(map[string]LocalVerdict)}
}

// LocalVerdictFor returns the richer verdict recorded for a node whose
// Fingerprint matches fp, if any.
func (h *handler) LocalVerdictFor(fp string) (LocalVerdict, bool) {
	v, ok := h.verdicts[fp]
	return v, ok
}

func (h *handler) CollectNextSteps(state ProcessState) []procmgr.Step {
	candidates := computeCandidates(state)
	steps := make([]procmgr.Step, len(candidates))
	for i, c := range candidates {
		priority := state.Params.Priority.Matching
		if c.simKind != trace.NotSimulated {
			priority = state.Params.Priority.Simulating
		}
		steps[i] = procmgr.Step{
			ID:            i,
			Priority:      priority,
			Label:         c.element.Action.String(),
			LoopDepthCost: int(c.element.MaxLoopDepth),
		}
	}
	return steps
}

func (h *handler) ProcessNewStep(parent ProcessState, step procmgr.Step) (ProcessState, error) {
	candidates := computeCandidates(parent)
	c := candidates[step.ID]

	residual := semantics.Execute(parent.Interaction, c.element.Position, c.element.Action, parent.Ctx)

	newFlags := parent.Flags
	if parent.Params.Mode == ModeAnalyze {
		remLoop, remAct := parent.Flags.RemLoopInSim, parent.Flags.RemActInSim
		if parent.Params.Simulation.ResetCritAfterExec && c.simKind == trace.NotSimulated {
			fresh := freshSimulationBudget(residual, len(parent.MultiTrace))
			remLoop = trace.ResetBudgets(parent.Flags.RemLoopInSim, fresh.loop)
			remAct = trace.ResetBudgets(parent.Flags.RemActInSim, fresh.act)
		}
		newFlags = parent.Flags.UpdateOnExecution(c.chanID, c.simKind, c.element.MaxLoopDepth, parent.Params.Simulation.Enabled, remLoop, remAct)

		if parent.Params.LocalAnalysis {
			affected := semantics.GetAffectedOnExecute(parent.Interaction, c.element.Position, c.element.Action.LfID)
			newFlags = markDirty(newFlags, parent.Coloc, affected)
		}
	}

	return ProcessState{
		Interaction: residual,
		Flags:       newFlags,
		MultiTrace:  parent.MultiTrace,
		Coloc:       parent.Coloc,
		Ctx:         parent.Ctx,
		Params:      parent.Params,
	}, nil
}

func (h *handler) GetLocalVerdictWhenNoChild(state ProcessState) procmgr.Verdict {
	v := leafVerdict(state)
	h.verdicts[state.fingerprint()] = v
	return v.ToGlobal()
}

func (h *handler) GetLocalVerdictFromStaticAnalysis(state ProcessState) (procmgr.Verdict, bool) {
	if state.Params.Mode != ModeAnalyze || !state.Params.LocalAnalysis {
		return 0, false
	}
	for chanID := range state.Flags.Channels {
		if !state.Flags.Channels[chanID].DirtyForLocal {
			continue
		}
		if localAnalysisProvesOut(state, chanID) {
			v := LocalVerdict{Kind: Out, FromLocal: true}
			h.verdicts[state.fingerprint()] = v
			return v.ToGlobal(), true
		}
	}
	return 0, false
}

func (h *handler) PursueProcessAfterStaticVerdict(_ ProcessState, _ procmgr.Verdict) bool {
	return false
}

func (h *handler) Fingerprint(state ProcessState) string {
	return state.fingerprint()
}

func (h *handler) Filter(_ ProcessState, _ int, _ int) *procmgr.FilterHit {
	return nil
}

// leafVerdict computes the verdict of a node with no further steps, per
// spec.md §4.8's leaf-verdict rule.
func leafVerdict(state ProcessState) LocalVerdict {
	if state.Params.Mode == ModeExplore {
		if state.Interaction.ExpressEmpty() {
			return LocalVerdict{Kind: Cov}
		}
		return LocalVerdict{Kind: GloPref}
	}

	if !state.Flags.IsMultiTraceEmpty(state.MultiTrace) {
		return LocalVerdict{Kind: Out}
	}

	switch state.Flags.Simulated() {
	case trace.NoSimulation:
		if state.Interaction.ExpressEmpty() {
			return LocalVerdict{Kind: Cov}
		}
		return LocalVerdict{Kind: GloPref}
	case trace.OnlyAfterEnd:
		return LocalVerdict{Kind: MultiPref}
	default:
		return LocalVerdict{Kind: Slice}
	}
}

func (s ProcessState) fingerprint() string {
	return s.Interaction.String() + "|" + fingerprintFlags(s.Flags)
}

func fingerprintFlags(f trace.MultiTraceAnalysisFlags) string {
	out := make([]byte, 0, len(f.Channels)*8)
	for _, c := range f.Channels {
		out = append(out, []byte(itoaFlags(c.Consumed, c.SimulatedBefore, c.SimulatedAfter))...)
		out = append(out, ';')
	}
	return string(out)
}

func itoaFlags(a, b, c int) string {
	return intToStr(a) + "," + intToStr(b) + "," + intToStr(c)
}

func intToStr(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func markDirty(f trace.MultiTraceAnalysisFlags, coloc trace.Colocalization, affected map[int]struct{}) trace.MultiTraceAnalysisFlags {
	if len(affected) == 0 {
		return f
	}
	dirtyChans := coloc.ColocIDsFromLifelines(affected)
	if len(dirtyChans) == 0 {
		return f
	}
	channels := make([]trace.AnalysisFlags, len(f.Channels))
	copy(channels, f.Channels)
	for chanID := range dirtyChans {
		if chanID < 0 || chanID >= len(channels) {
			continue
		}
		ch := channels[chanID]
		ch.DirtyForLocal = true
		channels[chanID] = ch
	}
	return trace.MultiTraceAnalysisFlags{Channels: channels, RemLoopInSim: f.RemLoopInSim, RemActInSim: f.RemActInSim}
}

type simBudget struct {
	loop uint32
	act  uint32
}

// freshSimulationBudget derives the simulation budget to reset to after
// a real consumption, from the residual interaction's own shape
// (spec.md §4.8.1: "fresh values are derived from the residual
// interaction... optionally multiplied by the number of channels").
func freshSimulationBudget(residual *interaction.Interaction, numChannels int) simBudget {
	loop := residual.MaxNestedLoopDepth()
	act := residual.TotalLoopNum() * uint32(numChannels)
	if act == 0 {
		act = uint32(numChannels)
	}
	return simBudget{loop: loop, act: act}
}
