package trace

// AnalysisFlags is the per-channel bookkeeping the driver threads
// through an analysis run (spec.md §3, §4.8).
type AnalysisFlags struct {
	// Consumed is the number of actions of this channel's trace that
	// have been matched by real (non-simulated) firings so far.
	Consumed int
	// Hidden marks a channel the driver has stopped tracking locally
	// (kept for parity with the source's no_longer_observed flag; no
	// operation in this repository sets it, so it stays false unless a
	// caller sets it directly).
	Hidden bool
	// DirtyForLocal marks a channel whose causal state changed due to
	// a firing elsewhere, so its local-analysis proof must be redone.
	DirtyForLocal bool
	// SimulatedBefore counts simulated firings that preceded any real
	// consumption on this channel.
	SimulatedBefore int
	// SimulatedAfter counts simulated firings that followed the last
	// real consumption on this channel.
	SimulatedAfter int
}

// NewInitialAnalysisFlags returns the flags a fresh channel starts with:
// nothing consumed, dirty so the first local-analysis pass always runs.
func NewInitialAnalysisFlags() AnalysisFlags {
	return AnalysisFlags{DirtyForLocal: true}
}

// MultiTraceAnalysisFlags bundles one AnalysisFlags per channel plus the
// simulation budgets shared across all channels (spec.md §4.8.1).
type MultiTraceAnalysisFlags struct {
	Channels     []AnalysisFlags
	RemLoopInSim uint32
	RemActInSim  uint32
}

// NewInitialMultiTraceAnalysisFlags returns the flags a fresh run starts
// with: channelCount fresh channels and the given simulation budgets.
func NewInitialMultiTraceAnalysisFlags(channelCount int, remLoopInSim, remActInSim uint32) MultiTraceAnalysisFlags {
	channels := make([]AnalysisFlags, channelCount)
	for i := range channels {
		channels[i] = NewInitialAnalysisFlags()
	}
	return MultiTraceAnalysisFlags{Channels: channels, RemLoopInSim: remLoopInSim, RemActInSim: remActInSim}
}

// NumberOfConsumedActions sums Consumed across every channel.
func (f MultiTraceAnalysisFlags) NumberOfConsumedActions() int {
	n := 0
	for _, c := range f.Channels {
		n += c.Consumed
	}
	return n
}

// IsAnyComponentEmpty reports whether any channel's trace is already
// fully consumed.
func (f MultiTraceAnalysisFlags) IsAnyComponentEmpty(mt MultiTrace) bool {
	for i, c := range f.Channels {
		if len(mt[i]) == c.Consumed {
			return true
		}
	}
	return false
}

// IsMultiTraceEmpty reports whether every channel's trace is fully
// consumed.
func (f MultiTraceAnalysisFlags) IsMultiTraceEmpty(mt MultiTrace) bool {
	for i, c := range f.Channels {
		if len(mt[i]) > c.Consumed {
			return false
		}
	}
	return true
}

// IsAnyComponentHidden reports whether any channel has been marked
// Hidden.
func (f MultiTraceAnalysisFlags) IsAnyComponentHidden() bool {
	for _, c := range f.Channels {
		if c.Hidden {
			return true
		}
	}
	return false
}

// SimulationExtent classifies how a fully-consumed multi-trace was
// reached, for the leaf-verdict rule in spec.md §4.8.
type SimulationExtent int

const (
	// NoSimulation means every firing matched a real trace action.
	NoSimulation SimulationExtent = iota
	// OnlyAfterEnd means some firings were simulated, each after at
	// least one real consumption on its channel (AfterEnd), and none
	// before any real consumption.
	OnlyAfterEnd
	// AsSlice means at least one firing was simulated before any real
	// consumption occurred on its channel.
	AsSlice
)

// Simulated classifies the simulation extent across every channel.
func (f MultiTraceAnalysisFlags) Simulated() SimulationExtent {
	gotAfter := false
	for _, c := range f.Channels {
		if c.SimulatedBefore > 0 {
			return AsSlice
		}
		if c.SimulatedAfter > 0 {
			gotAfter = true
		}
	}
	if gotAfter {
		return OnlyAfterEnd
	}
	return NoSimulation
}

// SimulationStepKind classifies a simulated firing relative to a
// channel's real consumption (spec.md §4.8.1).
type SimulationStepKind int

const (
	// NotSimulated marks a real (trace-matching) firing.
	NotSimulated SimulationStepKind = iota
	// BeforeStart marks a simulated firing preceding any real
	// consumption on its channel.
	BeforeStart
	// AfterEnd marks a simulated firing following the channel's last
	// real consumption (including a channel whose trace was already
	// fully consumed).
	AfterEnd
)

// ResetBudgets computes the simulation budgets to carry after a fresh
// reset (spec.md §4.8.1's reset_crit_after_exec): callers derive fresh
// values from the residual interaction and pass them here together with
// the currently remaining budgets, since only the analysis driver (which
// knows the residual interaction's shape) can compute the fresh values.
func ResetBudgets(current, fresh uint32) uint32 {
	if current > fresh {
		return current
	}
	return fresh
}

// UpdateOnExecution returns the flags after one firing on channel
// executedChanID, either a real consumption (simKind == NotSimulated) or
// a simulated one. When simulation is enabled, remLoopAfterReset/
// remActAfterReset become the new budgets after a real consumption, and
// cap the decremented budgets after a simulated step; callers compute
// them via ResetBudgets from the residual interaction when
// resetCritAfterExec is configured, and pass the current budget
// otherwise. loopDepth is the firing frontier element's max loop depth,
// used to decrement budgets on a simulated step.
func (f MultiTraceAnalysisFlags) UpdateOnExecution(
	executedChanID int,
	simKind SimulationStepKind,
	loopDepth uint32,
	simulationEnabled bool,
	remLoopAfterReset, remActAfterReset uint32,
) MultiTraceAnalysisFlags {
	newChannels := make([]AnalysisFlags, len(f.Channels))
	copy(newChannels, f.Channels)

	cur := newChannels[executedChanID]
	switch simKind {
	case NotSimulated:
		cur.Consumed++
	case BeforeStart:
		cur.SimulatedBefore++
	case AfterEnd:
		cur.SimulatedAfter++
	}
	newChannels[executedChanID] = cur

	if !simulationEnabled {
		return MultiTraceAnalysisFlags{Channels: newChannels}
	}

	var remLoop, remAct uint32
	if simKind == NotSimulated {
		remLoop, remAct = remLoopAfterReset, remActAfterReset
	} else {
		removedLoop := f.RemLoopInSim
		if loopDepth <= removedLoop {
			removedLoop -= loopDepth
		} else {
			removedLoop = 0
		}
		removedAct := f.RemActInSim
		if removedAct > 0 {
			removedAct--
		}
		remLoop = minU32(remLoopAfterReset, removedLoop)
		remAct = minU32(remActAfterReset, removedAct)
	}

	return MultiTraceAnalysisFlags{Channels: newChannels, RemLoopInSim: remLoop, RemActInSim: remAct}
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
