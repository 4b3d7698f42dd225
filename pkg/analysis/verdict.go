// Package analysis implements the multi-trace analysis driver: matching
// a multi-trace against an interaction term's frontier, optionally
// simulating unobserved actions under a budget, proving "out" verdicts
// by local per-channel analysis, and folding leaf verdicts into a
// global answer via internal/procmgr (spec.md §4.8–§4.9).
package analysis

import "github.com/erwanM974/hibou-passing/internal/procmgr"

// LocalVerdictKind tags the six leaf-verdict shapes spec.md §4.9 names.
type LocalVerdictKind int

const (
	// Cov: multi-trace fully consumed, no simulation, residual empty.
	Cov LocalVerdictKind = iota
	// GloPref: multi-trace fully consumed, no simulation, residual
	// non-empty (a global prefix of some longer accepted behavior).
	GloPref
	// MultiPref: multi-trace fully consumed using only after-end
	// simulation.
	MultiPref
	// Slice: multi-trace fully consumed using before-start simulation
	// on at least one channel.
	Slice
	// Inconc: inconclusive, with a reason.
	Inconc
	// Out: the multi-trace cannot be matched against the term.
	Out
)

func (k LocalVerdictKind) String() string {
	switch k {
	case Cov:
		return "Cov"
	case GloPref:
		return "GloPref"
	case MultiPref:
		return "MultiPref"
	case Slice:
		return "Slice"
	case Inconc:
		return "Inconc"
	case Out:
		return "Out"
	default:
		return "?"
	}
}

// InconcReason names why an Inconc verdict was reached. The handler in
// this package never assigns an Inconc verdict: filter-eliminated nodes
// are reported only as procmgr.FilterHit entries, and a simulated step
// the budget cannot afford is simply not generated.
type InconcReason string

const (
	// InconcFilterHit names a node eliminated by a process-manager
	// filter before a definite verdict could be reached.
	InconcFilterHit InconcReason = "filter-hit"
	// InconcSimulationExhausted names a node that needed simulation to
	// continue when the remaining budget could not afford it.
	InconcSimulationExhausted InconcReason = "simulation-budget-exhausted"
)

// LocalVerdict is one leaf's full verdict: its kind, whether an Out
// verdict came from static local analysis rather than full expansion,
// and the reason for an Inconc.
type LocalVerdict struct {
	Kind         LocalVerdictKind
	FromLocal    bool
	InconcReason InconcReason
}

func (v LocalVerdict) String() string {
	switch v.Kind {
	case Out:
		if v.FromLocal {
			return "Out(local)"
		}
		return "Out"
	case Inconc:
		return "Inconc(" + string(v.InconcReason) + ")"
	default:
		return v.Kind.String()
	}
}

// ToGlobal maps a leaf verdict onto the four-level process-manager
// lattice used for the user-facing global answer. GloPref and MultiPref
// both degrade to WeakPass: the global lattice is intentionally coarser
// than the leaf taxonomy (see DESIGN.md).
func (v LocalVerdict) ToGlobal() procmgr.Verdict {
	switch v.Kind {
	case Cov:
		return procmgr.Pass
	case GloPref, MultiPref:
		return procmgr.WeakPass
	case Slice, Inconc:
		return procmgr.Inconclusive
	case Out:
		return procmgr.Fail
	default:
		return procmgr.Fail
	}
}
