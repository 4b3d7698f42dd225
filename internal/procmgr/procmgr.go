// Package procmgr implements a generic graph-search framework: a
// bounded traversal of a tree of process states, driven by a pluggable
// search strategy (BFS, DFS, heuristic-cost), filters that prune
// branches with a recorded reason, optional structured logging,
// OpenTelemetry tracing, and optional memoization keyed by a handler-
// supplied fingerprint.
//
// The framework is domain-agnostic: it knows nothing about interaction
// terms or multi-traces. A domain wires itself in by implementing
// Handler[S] over its own process-state type S.
package procmgr

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Strategy selects the traversal order used by Manager.Run.
type Strategy int

const (
	// DFS explores the deepest pending node first.
	DFS Strategy = iota
	// BFS explores nodes in the order their parent was expanded.
	BFS
	// HeuristicCost explores depth-first like DFS, but visits the
	// children of each expanded node in ascending Step.Priority order
	// (lowest first). Nodes with different parents are not reordered.
	HeuristicCost
)

func (s Strategy) String() string {
	switch s {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case HeuristicCost:
		return "heuristic-cost"
	default:
		return "unknown"
	}
}

// Verdict is the framework's own local/global verdict lattice, ranked
// Pass > WeakPass > Inconclusive > Fail. Domains map their own richer
// verdict taxonomy onto this rank for the purpose of early termination
// and global-verdict computation.
type Verdict int

const (
	// Fail is the bottom of the lattice.
	Fail Verdict = iota
	// Inconclusive sits above Fail.
	Inconclusive
	// WeakPass sits above Inconclusive.
	WeakPass
	// Pass is the top of the lattice.
	Pass
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case WeakPass:
		return "weak-pass"
	case Inconclusive:
		return "inconclusive"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Meet returns the lattice-meet of v and other: whichever ranks lower.
// A global verdict is the meet of every leaf verdict reached so far.
func (v Verdict) Meet(other Verdict) Verdict {
	if v < other {
		return v
	}
	return other
}

// FilterReason names why a node was eliminated without expansion.
type FilterReason string

const (
	// MaxDepth fires when a node's process depth exceeds the
	// configured bound.
	MaxDepth FilterReason = "max-depth"
	// MaxLoopInstantiation fires when a node's accumulated loop
	// instantiation count exceeds the configured bound.
	MaxLoopInstantiation FilterReason = "max-loop-instantiation"
	// MaxNodeCount fires when the run's total visited-node count
	// exceeds the configured bound.
	MaxNodeCount FilterReason = "max-node-count"
)

// FilterHit records one branch elimination.
type FilterHit struct {
	NodeID string
	Reason FilterReason
	Detail string
}

// Step is one candidate transition out of a node, as proposed by
// Handler.CollectNextSteps. ID is opaque to the framework and passed
// back to Handler.ProcessNewStep; Priority orders a node's children
// under the HeuristicCost strategy (lower explores first). The other
// strategies ignore it.
type Step struct {
	ID            int
	Priority      float64
	Label         string
	LoopDepthCost int // added to the node's loop-instantiation accumulator
}

// Handler is the domain contract a concrete analysis implements to
// drive a Manager run over its own state type S.
type Handler[S any] interface {
	// ProcessNewStep returns the child state reached from parent by
	// firing step.
	ProcessNewStep(parent S, step Step) (S, error)
	// CollectNextSteps enumerates the candidate transitions out of
	// state. An empty result means state is a leaf.
	CollectNextSteps(state S) []Step
	// GetLocalVerdictWhenNoChild computes the verdict of a leaf state
	// (CollectNextSteps returned none).
	GetLocalVerdictWhenNoChild(state S) Verdict
	// GetLocalVerdictFromStaticAnalysis attempts to prove a verdict for
	// state without expanding it. ok is false when no proof was found.
	GetLocalVerdictFromStaticAnalysis(state S) (verdict Verdict, ok bool)
	// PursueProcessAfterStaticVerdict decides whether, after a static
	// verdict was proven for state, the traversal should still expand
	// its children (true) or treat it as a leaf (false).
	PursueProcessAfterStaticVerdict(state S, verdict Verdict) bool
	// Fingerprint returns a memoization key for state, or "" to opt
	// this state out of memoization.
	Fingerprint(state S) string
	// Filter reports whether state should be eliminated before
	// expansion, given its process depth and loop instantiation count.
	Filter(state S, depth int, loopInstantiation int) *FilterHit
}

// Logger receives structured traversal events. A nil Logger disables
// logging entirely; every call site nil-checks before use.
type Logger struct {
	*log.Logger
}

// NewLogger wraps an existing *log.Logger.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{Logger: l}
}

func (l *Logger) logVisit(nodeID string, depth int) {
	if l == nil {
		return
	}
	l.Printf("procmgr: visit node=%s depth=%d", nodeID, depth)
}

func (l *Logger) logFilter(hit FilterHit) {
	if l == nil {
		return
	}
	l.Printf("procmgr: filter node=%s reason=%s detail=%s", hit.NodeID, hit.Reason, hit.Detail)
}

func (l *Logger) logLeaf(nodeID string, verdict Verdict) {
	if l == nil {
		return
	}
	l.Printf("procmgr: leaf node=%s verdict=%s", nodeID, verdict)
}

// Config bounds a Manager run.
type Config struct {
	Strategy             Strategy
	MaxDepth             int // 0 means unbounded
	MaxLoopInstantiation int // 0 means unbounded
	MaxNodeCount         int // 0 means unbounded
	Memoize              bool
	HasGoal              bool    // when true, GoalVerdict enables early termination
	GoalVerdict          Verdict // traversal stops early once the global verdict drops to or below this
}

// Node is one visited state in the traversal tree.
type Node[S any] struct {
	ID                string
	ParentID          string
	State             S
	Depth             int
	LoopInstantiation int
	Verdict           Verdict
	StaticProof       bool
}

// RunResult summarizes a completed (or early-terminated) traversal.
type RunResult[S any] struct {
	RunID            string
	Nodes            []Node[S]
	FilterHits       []FilterHit
	GlobalVerdict    Verdict
	MemoizationHits  int
	TerminatedOnGoal bool
}

func newRunResult[S any]() *RunResult[S] {
	return &RunResult[S]{RunID: uuid.NewString(), GlobalVerdict: Pass}
}
