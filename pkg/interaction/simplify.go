package interaction

import (
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// Equal reports whether i and other are structurally identical terms
// (not merely semantically equivalent — no resolution or reordering is
// performed).
func (i *Interaction) Equal(other *Interaction) bool {
	if i.kind != other.kind {
		return false
	}
	switch i.kind {
	case Empty:
		return true
	case ActionKind:
		p, q := i.primitive, other.primitive
		if p.Origin != q.Origin || !p.MessageType.Equal(q.MessageType) || len(p.Targets) != len(q.Targets) {
			return false
		}
		for k := range p.Targets {
			if p.Targets[k] != q.Targets[k] {
				return false
			}
		}
		return true
	case CoReg:
		return sameIntSet(i.coreg, other.coreg) && i.left.Equal(other.left) && i.right.Equal(other.right)
	case Sync:
		return syncMapEqual(i.syncMap, other.syncMap) && i.left.Equal(other.left) && i.right.Equal(other.right)
	case Alt:
		return i.left.Equal(other.left) && i.right.Equal(other.right)
	case Loop:
		return sameIntSet(i.coreg, other.coreg) && i.body.Equal(other.body)
	default:
		panic("interaction: Equal on unknown kind")
	}
}

func sameIntSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int)
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

func syncMapEqual(a, b SyncMap) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// SimplifyAlt builds a choice between left and right, collapsing the
// degenerate cases spec.md §4.3 names: two terminated branches
// collapse to Empty, and a choice between the terminated behavior and a
// Loop collapses to that Loop (the loop's own zero-iteration option
// already covers the Empty alternative).
func SimplifyAlt(left, right *Interaction) *Interaction {
	leftEmptyKind := left.kind == Empty
	rightEmptyKind := right.kind == Empty
	if leftEmptyKind && rightEmptyKind {
		return NewEmpty()
	}
	if leftEmptyKind && right.kind == Loop {
		return right
	}
	if rightEmptyKind && left.kind == Loop {
		return left
	}
	return NewAlt(left, right)
}

// SimplifyCoReg builds a weakly-sequenced composition, dropping a
// terminated operand: sequencing after/before nothing is the other
// operand (spec.md §4.3).
func SimplifyCoReg(coreg []int, left, right *Interaction) *Interaction {
	if left.kind == Empty {
		return right
	}
	if right.kind == Empty {
		return left
	}
	return NewCoReg(coreg, left, right)
}

// SimplifySync builds a rendezvous composition. It first determines
// whether any action leaf reachable from left or right could ever
// satisfy one of syncMap's (lf_id,kind) slots (non-empty MTE
// intersection); if so the Sync constraint is live and kept (after
// dropping an Empty side). Otherwise the constraint is inert: it can
// never fire, so the composition degenerates to full interleaving — a
// CoReg relaxed over every lifeline involved in either side (spec.md
// §4.3).
func SimplifySync(syncMap SyncMap, left, right *Interaction, ctx *symtab.GeneralContext) *Interaction {
	if syncMapIsLive(left, syncMap, ctx) || syncMapIsLive(right, syncMap, ctx) {
		if left.kind == Empty {
			return right
		}
		if right.kind == Empty {
			return left
		}
		return NewSync(syncMap, left, right)
	}
	if left.kind == Empty {
		return right
	}
	if right.kind == Empty {
		return left
	}
	allLf := left.InvolvedLifelines()
	for lf := range right.InvolvedLifelines() {
		allLf[lf] = struct{}{}
	}
	coreg := make([]int, 0, len(allLf))
	for lf := range allLf {
		coreg = append(coreg, lf)
	}
	return NewCoReg(coreg, left, right)
}

// syncMapIsLive reports whether any Action leaf reachable from i carries
// a message type whose intersection with syncMap's expected type for
// that leaf's (lf_id,kind) slots is non-empty.
func syncMapIsLive(i *Interaction, syncMap SyncMap, ctx *symtab.GeneralContext) bool {
	switch i.kind {
	case Empty:
		return false
	case ActionKind:
		bp := i.primitive
		if bp.HasOrigin() {
			if expected, ok := syncMap[SyncKey{LfID: bp.Origin, Kind: trace.Emission}]; ok {
				if mteIntersects(bp.MessageType, expected, ctx) {
					return true
				}
			}
		}
		for _, t := range bp.Targets {
			if expected, ok := syncMap[SyncKey{LfID: t, Kind: trace.Reception}]; ok {
				if mteIntersects(bp.MessageType, expected, ctx) {
					return true
				}
			}
		}
		return false
	case CoReg, Sync, Alt:
		return syncMapIsLive(i.left, syncMap, ctx) || syncMapIsLive(i.right, syncMap, ctx)
	case Loop:
		return syncMapIsLive(i.body, syncMap, ctx)
	default:
		panic("interaction: syncMapIsLive on unknown kind")
	}
}

func mteIntersects(a, b *mte.Expr, ctx *symtab.GeneralContext) bool {
	return !mte.NewIntersection(a, b).Resolve(ctx).IsEmpty()
}

// SimplifyLoop builds a Kleene-star repetition: a repetition of nothing
// collapses to Empty, and a Loop directly nesting another Loop collapses
// to a single Loop using whichever coreg set is included in the other,
// whenever one is (outer-loop redundancy, spec.md §4.3).
func SimplifyLoop(coreg []int, body *Interaction) *Interaction {
	if body.kind == Empty {
		return NewEmpty()
	}
	if body.kind == Loop {
		innerCoreg := body.coreg
		if isSubset(innerCoreg, coreg) {
			return NewLoop(innerCoreg, body.body)
		}
		if isSubset(coreg, innerCoreg) {
			return NewLoop(coreg, body.body)
		}
	}
	return NewLoop(coreg, body)
}

func isSubset(a, b []int) bool {
	set := make(map[int]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
