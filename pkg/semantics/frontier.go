package semantics

import (
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// FrontierElement is one immediately executable action: where it sits
// in the term, what trace action it produces, and how many loop
// boundaries were crossed to reach it (spec.md §3).
type FrontierElement struct {
	Position     Position
	Action       trace.Action
	MaxLoopDepth uint32
}

// MatchSet restricts a frontier computation to the actions a
// multi-trace analysis is currently looking for: one expected
// message-type expression per (lifeline, direction) pair.
type MatchSet map[interaction.SyncKey]*mte.Expr

// GlobalFrontier enumerates every immediately executable trace action
// reachable from i (spec.md §4.5). When matchSet is non-nil, only
// elements whose (lf_id,kind) appear in it and whose message intersects
// the matching expression survive, narrowed to that intersection.
func GlobalFrontier(i *interaction.Interaction, ctx *symtab.GeneralContext, matchSet MatchSet) []FrontierElement {
	raw := frontierRec(i, ctx, 0)
	if matchSet == nil {
		return raw
	}
	return filterByMatchSet(raw, matchSet, ctx)
}

func frontierRec(i *interaction.Interaction, ctx *symtab.GeneralContext, depth uint32) []FrontierElement {
	switch i.Kind() {
	case interaction.Empty:
		return nil
	case interaction.ActionKind:
		bp := i.Primitive()
		if bp.HasOrigin() {
			act := trace.NewAction(bp.Origin, trace.Emission, bp.MessageType)
			return []FrontierElement{{Position: EpsilonEmission(), Action: act, MaxLoopDepth: depth}}
		}
		elems := make([]FrontierElement, 0, len(bp.Targets))
		for k, t := range bp.Targets {
			act := trace.NewAction(t, trace.Reception, bp.MessageType)
			elems = append(elems, FrontierElement{Position: EpsilonReception(k), Action: act, MaxLoopDepth: depth})
		}
		return elems
	case interaction.Loop:
		return wrapAllLeft(frontierRec(i.Body(), ctx, depth+1))
	case interaction.CoReg:
		return frontierCoReg(i, ctx, depth)
	case interaction.Alt:
		return frontierAlt(i, ctx, depth)
	case interaction.Sync:
		return frontierSync(i, ctx, depth)
	default:
		panic("semantics: frontier on unknown kind")
	}
}

func frontierCoReg(i *interaction.Interaction, ctx *symtab.GeneralContext, depth uint32) []FrontierElement {
	left := frontierRec(i.Left(), ctx, depth)
	right := frontierRec(i.Right(), ctx, depth)
	cr := toIntSet(i.Coreg())

	out := make([]FrontierElement, 0, len(left)+len(right))
	for _, e := range left {
		out = append(out, wrapOneLeft(e))
	}
	for _, e := range right {
		lf := e.Action.LfID
		if _, inCr := cr[lf]; inCr || i.Left().Avoids(lf) {
			out = append(out, wrapOneRight(e))
		}
	}
	return out
}

func frontierAlt(i *interaction.Interaction, ctx *symtab.GeneralContext, depth uint32) []FrontierElement {
	left := frontierRec(i.Left(), ctx, depth)
	right := frontierRec(i.Right(), ctx, depth)
	usedRight := make([]bool, len(right))

	out := make([]FrontierElement, 0, len(left)+len(right))
	for _, e1 := range left {
		matched := false
		for j, e2 := range right {
			if usedRight[j] || !actionsIdentical(e1.Action, e2.Action) {
				continue
			}
			usedRight[j] = true
			matched = true
			out = append(out, FrontierElement{
				Position:     NewBoth(e1.Position, e2.Position),
				Action:       e1.Action,
				MaxLoopDepth: maxU32(e1.MaxLoopDepth, e2.MaxLoopDepth),
			})
			break
		}
		if !matched {
			out = append(out, wrapOneLeft(e1))
		}
	}
	for j, e2 := range right {
		if !usedRight[j] {
			out = append(out, wrapOneRight(e2))
		}
	}
	return out
}

type syncCandidate struct {
	key      interaction.SyncKey
	message  *mte.Expr
	position Position
	depth    uint32
}

func frontierSync(i *interaction.Interaction, ctx *symtab.GeneralContext, depth uint32) []FrontierElement {
	left := frontierRec(i.Left(), ctx, depth)
	right := frontierRec(i.Right(), ctx, depth)
	m := i.SyncMap()

	leftPass, leftCand := splitSyncSide(left, m, ctx)
	rightPass, rightCand := splitSyncSide(right, m, ctx)

	out := make([]FrontierElement, 0, len(leftPass)+len(rightPass)+len(leftCand))
	for _, e := range leftPass {
		out = append(out, wrapOneLeft(e))
	}
	for _, e := range rightPass {
		out = append(out, wrapOneRight(e))
	}

	usedRight := make([]bool, len(rightCand))
	for _, lc := range leftCand {
		for j, rc := range rightCand {
			if usedRight[j] || lc.key != rc.key {
				continue
			}
			inter := mte.NewIntersection(lc.message, rc.message)
			if inter.Resolve(ctx).IsEmpty() {
				continue
			}
			usedRight[j] = true
			act := trace.NewAction(lc.key.LfID, lc.key.Kind, inter.Simplify(ctx))
			out = append(out, FrontierElement{
				Position:     NewBoth(lc.position, rc.position),
				Action:       act,
				MaxLoopDepth: maxU32(lc.depth, rc.depth),
			})
			break
		}
	}
	return out
}

// splitSyncSide separates a side's raw frontier into the pass-through
// elements (untouched by the sync map, or the set-difference remainder
// of one that was) and the rendezvous candidates still awaiting a
// partner on the other side.
func splitSyncSide(elems []FrontierElement, m interaction.SyncMap, ctx *symtab.GeneralContext) ([]FrontierElement, []syncCandidate) {
	var pass []FrontierElement
	var cand []syncCandidate
	for _, e := range elems {
		key := interaction.SyncKey{LfID: e.Action.LfID, Kind: e.Action.Kind}
		expected, ok := m[key]
		if !ok {
			pass = append(pass, e)
			continue
		}
		inter := mte.NewIntersection(e.Action.Message, expected)
		if !inter.Resolve(ctx).IsEmpty() {
			cand = append(cand, syncCandidate{key: key, message: inter.Simplify(ctx), position: e.Position, depth: e.MaxLoopDepth})
		}
		diff := mte.NewSetMinus(e.Action.Message, expected)
		if !diff.Resolve(ctx).IsEmpty() {
			narrowed := e
			narrowed.Action = trace.NewAction(e.Action.LfID, e.Action.Kind, diff.Simplify(ctx))
			pass = append(pass, narrowed)
		}
	}
	return pass, cand
}

func filterByMatchSet(raw []FrontierElement, matchSet MatchSet, ctx *symtab.GeneralContext) []FrontierElement {
	var out []FrontierElement
	for _, e := range raw {
		key := interaction.SyncKey{LfID: e.Action.LfID, Kind: e.Action.Kind}
		expected, ok := matchSet[key]
		if !ok {
			continue
		}
		inter := mte.NewIntersection(e.Action.Message, expected)
		if inter.Resolve(ctx).IsEmpty() {
			continue
		}
		narrowed := e
		narrowed.Action = trace.NewAction(e.Action.LfID, e.Action.Kind, inter.Simplify(ctx))
		out = append(out, narrowed)
	}
	return out
}

func actionsIdentical(a, b trace.Action) bool {
	return a.LfID == b.LfID && a.Kind == b.Kind && a.Message.Equal(b.Message)
}

func wrapOneLeft(e FrontierElement) FrontierElement {
	e.Position = NewLeft(e.Position)
	return e
}

func wrapOneRight(e FrontierElement) FrontierElement {
	e.Position = NewRight(e.Position)
	return e
}

func wrapAllLeft(elems []FrontierElement) []FrontierElement {
	out := make([]FrontierElement, len(elems))
	for i, e := range elems {
		out[i] = wrapOneLeft(e)
	}
	return out
}

func toIntSet(ids []int) map[int]struct{} {
	out := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
