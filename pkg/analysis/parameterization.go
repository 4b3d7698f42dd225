package analysis

import "github.com/erwanM974/hibou-passing/internal/procmgr"

// Mode distinguishes the two handler contracts named in spec.md §6: a
// trace-driven analysis and an unconstrained exploration.
type Mode int

const (
	// ModeAnalyze drives the traversal against a multi-trace, per
	// spec.md §4.8.
	ModeAnalyze Mode = iota
	// ModeExplore enumerates every reachable state, bounded only by the
	// process manager's filters (supplemented feature, grounded on
	// original_source/src/process/explo).
	ModeExplore
)

// StepPriority assigns the procmgr.Step.Priority used to order matching
// steps relative to simulating steps under the HeuristicCost strategy.
// spec.md §9 leaves this a tunable, not a semantic fact: lower values
// explore first.
type StepPriority struct {
	Matching   float64
	Simulating float64
}

// DefaultStepPriority biases exploration toward trace-matching steps
// over fabricated ones, mirroring the source's default.
func DefaultStepPriority() StepPriority {
	return StepPriority{Matching: 0, Simulating: 1}
}

// SimulationConfiguration bounds the simulation extension (spec.md
// §4.8.1).
type SimulationConfiguration struct {
	Enabled            bool
	SimBefore          []bool // per channel; allows fabrication before first real consumption
	ResetCritAfterExec bool
	InitialRemLoopInSim uint32
	InitialRemActInSim  uint32
}

// Parameterization bundles everything a driver run needs beyond the
// interaction/multi-trace/context themselves.
type Parameterization struct {
	Mode             Mode
	Simulation       SimulationConfiguration
	LocalAnalysis    bool
	Priority         StepPriority
	Strategy         procmgr.Strategy
	Memoize          bool
	MaxDepth         int
	MaxLoopInstantiation int
	MaxNodeCount     int
}
