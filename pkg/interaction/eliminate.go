package interaction

import "github.com/erwanM974/hibou-passing/pkg/symtab"

// EliminateLifelines deletes every occurrence of lfIDs from i, rewriting
// broadcast origins and target lists at each leaf, then resimplifying
// upward through the simplifying constructors. Unlike Prune, this never
// discards a branch wholesale for involving a forbidden lifeline: it
// surgically removes that lifeline's participation and keeps the rest
// (spec.md §4.4). Used to build a channel's local view for local
// analysis.
func (i *Interaction) EliminateLifelines(lfIDs map[int]struct{}, ctx *symtab.GeneralContext) *Interaction {
	switch i.kind {
	case Empty:
		return i
	case ActionKind:
		bp := i.primitive
		origin := bp.Origin
		if origin >= 0 {
			if _, ok := lfIDs[origin]; ok {
				origin = -1
			}
		}
		targets := make([]int, 0, len(bp.Targets))
		for _, t := range bp.Targets {
			if _, ok := lfIDs[t]; !ok {
				targets = append(targets, t)
			}
		}
		newBP := NewBroadcastPrimitive(origin, bp.MessageType, targets)
		if newBP.IsStructurallyEmpty() {
			return NewEmpty()
		}
		return NewAction(newBP)
	case CoReg:
		return SimplifyCoReg(i.coreg, i.left.EliminateLifelines(lfIDs, ctx), i.right.EliminateLifelines(lfIDs, ctx))
	case Sync:
		return SimplifySync(i.syncMap, i.left.EliminateLifelines(lfIDs, ctx), i.right.EliminateLifelines(lfIDs, ctx), ctx)
	case Alt:
		return SimplifyAlt(i.left.EliminateLifelines(lfIDs, ctx), i.right.EliminateLifelines(lfIDs, ctx))
	case Loop:
		return SimplifyLoop(i.coreg, i.body.EliminateLifelines(lfIDs, ctx))
	default:
		panic("interaction: EliminateLifelines on unknown kind")
	}
}
