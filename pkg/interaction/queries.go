package interaction

// ExpressEmpty reports whether i can reduce to the terminated behavior:
// CoReg/Sync are conjunctive (both sides must), Alt is disjunctive
// (either branch may), and Loop is always true via its zero-iteration
// option (spec.md §4.2).
func (i *Interaction) ExpressEmpty() bool {
	switch i.kind {
	case Empty, Loop:
		return true
	case ActionKind:
		return i.primitive.IsStructurallyEmpty()
	case CoReg, Sync:
		return i.left.ExpressEmpty() && i.right.ExpressEmpty()
	case Alt:
		return i.left.ExpressEmpty() || i.right.ExpressEmpty()
	default:
		panic("interaction: ExpressEmpty on unknown kind")
	}
}

// InvolvedLifelines returns every lifeline id that appears anywhere in
// i's term.
func (i *Interaction) InvolvedLifelines() map[int]struct{} {
	out := make(map[int]struct{})
	i.collectLifelines(out)
	return out
}

func (i *Interaction) collectLifelines(out map[int]struct{}) {
	switch i.kind {
	case Empty:
	case ActionKind:
		for lf := range i.primitive.InvolvedLifelines() {
			out[lf] = struct{}{}
		}
	case CoReg, Sync, Alt:
		i.left.collectLifelines(out)
		i.right.collectLifelines(out)
	case Loop:
		i.body.collectLifelines(out)
	}
}

// InvolvesAnyOf reports whether any lifeline in lfIDs occurs in i.
func (i *Interaction) InvolvesAnyOf(lfIDs map[int]struct{}) bool {
	switch i.kind {
	case Empty:
		return false
	case ActionKind:
		return i.primitive.InvolvesAnyOf(lfIDs)
	case CoReg, Sync, Alt:
		return i.left.InvolvesAnyOf(lfIDs) || i.right.InvolvesAnyOf(lfIDs)
	case Loop:
		return i.body.InvolvesAnyOf(lfIDs)
	default:
		panic("interaction: InvolvesAnyOf on unknown kind")
	}
}

// AvoidsAllOf reports whether i admits an interpretation touching none
// of lfIDs. This is not plain negation of InvolvesAnyOf: CoReg/Sync are
// conjunctive (both sides must avoid), Alt is disjunctive (choosing the
// avoiding branch suffices), and Loop is always true via its
// zero-iteration option (spec.md §4.2).
func (i *Interaction) AvoidsAllOf(lfIDs map[int]struct{}) bool {
	switch i.kind {
	case Empty, Loop:
		return true
	case ActionKind:
		return !i.primitive.InvolvesAnyOf(lfIDs)
	case CoReg, Sync:
		return i.left.AvoidsAllOf(lfIDs) && i.right.AvoidsAllOf(lfIDs)
	case Alt:
		return i.left.AvoidsAllOf(lfIDs) || i.right.AvoidsAllOf(lfIDs)
	default:
		panic("interaction: AvoidsAllOf on unknown kind")
	}
}

// Avoids reports whether lfID does not occur in i.
func (i *Interaction) Avoids(lfID int) bool {
	return !i.InvolvesAnyOf(map[int]struct{}{lfID: {}})
}

// MaxNestedLoopDepth returns the deepest Loop nesting occurring in i (0
// if i contains no Loop). Used to bound the simulated-loop-unrolling
// budget (spec.md §4.8.1).
func (i *Interaction) MaxNestedLoopDepth() uint32 {
	switch i.kind {
	case Empty, ActionKind:
		return 0
	case CoReg, Sync, Alt:
		l, r := i.left.MaxNestedLoopDepth(), i.right.MaxNestedLoopDepth()
		if l > r {
			return l
		}
		return r
	case Loop:
		return 1 + i.body.MaxNestedLoopDepth()
	default:
		panic("interaction: MaxNestedLoopDepth on unknown kind")
	}
}

// TotalLoopNum returns the total number of Loop nodes occurring in i.
func (i *Interaction) TotalLoopNum() uint32 {
	switch i.kind {
	case Empty, ActionKind:
		return 0
	case CoReg, Sync, Alt:
		return i.left.TotalLoopNum() + i.right.TotalLoopNum()
	case Loop:
		return 1 + i.body.TotalLoopNum()
	default:
		panic("interaction: TotalLoopNum on unknown kind")
	}
}
