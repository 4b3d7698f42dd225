package interaction

import "github.com/erwanM974/hibou-passing/pkg/symtab"

// Prune removes every behavior branch of i that still involves any
// lifeline in lfIDs, wherever a safe alternative exists (spec.md §4.4).
// Action leaves are returned unchanged: a structurally conflicting
// action is only ever pruned away through an enclosing Alt or Loop.
func (i *Interaction) Prune(lfIDs map[int]struct{}, ctx *symtab.GeneralContext) *Interaction {
	switch i.kind {
	case Empty, ActionKind:
		return i
	case CoReg:
		return SimplifyCoReg(i.coreg, i.left.Prune(lfIDs, ctx), i.right.Prune(lfIDs, ctx))
	case Sync:
		return SimplifySync(i.syncMap, i.left.Prune(lfIDs, ctx), i.right.Prune(lfIDs, ctx), ctx)
	case Alt:
		leftAvoids := i.left.AvoidsAllOf(lfIDs)
		rightAvoids := i.right.AvoidsAllOf(lfIDs)
		switch {
		case leftAvoids && rightAvoids:
			return SimplifyAlt(i.left.Prune(lfIDs, ctx), i.right.Prune(lfIDs, ctx))
		case leftAvoids:
			return i.left.Prune(lfIDs, ctx)
		default:
			return i.right.Prune(lfIDs, ctx)
		}
	case Loop:
		if !i.body.AvoidsAllOf(lfIDs) {
			return NewEmpty()
		}
		prunedBody := i.body.Prune(lfIDs, ctx)
		if prunedBody.kind == Empty {
			return NewEmpty()
		}
		return NewLoop(i.coreg, prunedBody)
	default:
		panic("interaction: Prune on unknown kind")
	}
}
