package interaction

import "github.com/erwanM974/hibou-passing/pkg/mte"

// BroadcastPrimitive is an emission-with-multiple-receptions atomic
// action, modeled in two phases: an emission phase (Origin set, targets
// still pending) and a pending-reception phase (Origin absent, at least
// one target still pending). spec.md §3.
type BroadcastPrimitive struct {
	// Origin is the emitting lifeline id during the emission phase, or
	// -1 once the emission has fired and only receptions remain.
	Origin int
	// MessageType is the message-type expression carried by the action.
	MessageType *mte.Expr
	// Targets is the ordered, duplicate-free list of receiving
	// lifeline ids. Order is observable: the k-th target is addressed
	// by Position Epsilon(Some(k)).
	Targets []int
}

// NewBroadcastPrimitive constructs a primitive. origin == -1 denotes the
// pending-reception phase (no emission left to fire).
func NewBroadcastPrimitive(origin int, messageType *mte.Expr, targets []int) BroadcastPrimitive {
	return BroadcastPrimitive{Origin: origin, MessageType: messageType, Targets: append([]int(nil), targets...)}
}

// HasOrigin reports whether the primitive is still in its emission phase.
func (bp BroadcastPrimitive) HasOrigin() bool { return bp.Origin >= 0 }

// IsStructurallyEmpty reports whether the primitive carries no further
// behavior: no pending emission and no pending targets. Such a
// BroadcastPrimitive must be normalized to Empty wherever it is
// produced (spec.md §3 invariant).
func (bp BroadcastPrimitive) IsStructurallyEmpty() bool {
	return !bp.HasOrigin() && len(bp.Targets) == 0
}

// InvolvedLifelines returns every lifeline id appearing as origin or
// target of this primitive.
func (bp BroadcastPrimitive) InvolvedLifelines() map[int]struct{} {
	out := make(map[int]struct{}, len(bp.Targets)+1)
	if bp.HasOrigin() {
		out[bp.Origin] = struct{}{}
	}
	for _, t := range bp.Targets {
		out[t] = struct{}{}
	}
	return out
}

// InvolvesAnyOf reports whether any lifeline in lfIDs is the origin or a
// target of this primitive.
func (bp BroadcastPrimitive) InvolvesAnyOf(lfIDs map[int]struct{}) bool {
	if bp.HasOrigin() {
		if _, ok := lfIDs[bp.Origin]; ok {
			return true
		}
	}
	for _, t := range bp.Targets {
		if _, ok := lfIDs[t]; ok {
			return true
		}
	}
	return false
}
