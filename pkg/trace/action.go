// Package trace implements the observation side of the engine: single
// trace actions, colocalized multi-traces, and the per-channel analysis
// flags the driver in pkg/analysis threads through a run (spec.md §3,
// §4.8).
package trace

import (
	"fmt"

	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
)

// ActionKind distinguishes an emission from a reception. Its ordering
// (Emission < Reception) is part of the deterministic total order used
// to key Sync maps (spec.md §9).
type ActionKind int

const (
	// Emission marks an action as a message send.
	Emission ActionKind = iota
	// Reception marks an action as a message receipt.
	Reception
)

func (k ActionKind) String() string {
	if k == Emission {
		return "!"
	}
	return "?"
}

// Action is a single observed trace action: a lifeline, a direction,
// and a message-type expression describing what it carries.
type Action struct {
	LfID    int
	Kind    ActionKind
	Message *mte.Expr
}

// NewAction builds a trace action.
func NewAction(lfID int, kind ActionKind, message *mte.Expr) Action {
	return Action{LfID: lfID, Kind: kind, Message: message}
}

// IsTypeCompatible reports whether self and other describe the same
// lifeline and direction and whether their message-type expressions
// have non-empty intersection (spec.md §3).
func (a Action) IsTypeCompatible(other Action, ctx *symtab.GeneralContext) bool {
	if a.LfID != other.LfID || a.Kind != other.Kind {
		return false
	}
	intersect := mte.NewIntersection(a.Message, other.Message)
	return !intersect.Resolve(ctx).IsEmpty()
}

func (a Action) String() string {
	return fmt.Sprintf("lf%d%s%s", a.LfID, a.Kind, a.Message)
}
