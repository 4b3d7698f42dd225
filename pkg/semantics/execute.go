package semantics

import (
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// Execute returns the residual term after firing targetAction at pos
// (spec.md §4.6). Preconditions: pos identifies a reachable Action leaf
// per GlobalFrontier, and targetAction is type-compatible with it.
func Execute(i *interaction.Interaction, pos Position, targetAction trace.Action, ctx *symtab.GeneralContext) *interaction.Interaction {
	switch pos.Shape() {
	case ShapeEpsilon:
		return executeEpsilon(i, pos, targetAction)
	case ShapeLeft:
		return executeLeft(i, pos.Sub(), targetAction, ctx)
	case ShapeRight:
		return executeRight(i, pos.Sub(), targetAction, ctx)
	case ShapeBoth:
		return executeBoth(i, pos.Sub1(), pos.Sub2(), targetAction, ctx)
	default:
		panic("semantics: Execute on unknown position shape")
	}
}

func executeEpsilon(i *interaction.Interaction, pos Position, targetAction trace.Action) *interaction.Interaction {
	bp := i.Primitive()
	if pos.IsEmissionPhase() {
		if len(bp.Targets) == 0 {
			return interaction.NewEmpty()
		}
		newBP := interaction.NewBroadcastPrimitive(-1, targetAction.Message, bp.Targets)
		return interaction.NewAction(newBP)
	}

	k := pos.TargetIndex()
	newTargets := make([]int, 0, len(bp.Targets)-1)
	newTargets = append(newTargets, bp.Targets[:k]...)
	newTargets = append(newTargets, bp.Targets[k+1:]...)
	if len(newTargets) == 0 {
		return interaction.NewEmpty()
	}
	newBP := interaction.NewBroadcastPrimitive(-1, bp.MessageType, newTargets)
	return interaction.NewAction(newBP)
}

func executeLeft(i *interaction.Interaction, sub Position, targetAction trace.Action, ctx *symtab.GeneralContext) *interaction.Interaction {
	switch i.Kind() {
	case interaction.Alt:
		return Execute(i.Left(), sub, targetAction, ctx)
	case interaction.Loop:
		return executeLoopLeft(i, sub, targetAction, ctx)
	case interaction.CoReg:
		newLeft := Execute(i.Left(), sub, targetAction, ctx)
		return interaction.SimplifyCoReg(i.Coreg(), newLeft, i.Right())
	case interaction.Sync:
		newLeft := Execute(i.Left(), sub, targetAction, ctx)
		return interaction.SimplifySync(i.SyncMap(), newLeft, i.Right(), ctx)
	default:
		panic("semantics: executeLeft on unsupported kind")
	}
}

func executeRight(i *interaction.Interaction, sub Position, targetAction trace.Action, ctx *symtab.GeneralContext) *interaction.Interaction {
	switch i.Kind() {
	case interaction.Alt:
		return Execute(i.Right(), sub, targetAction, ctx)
	case interaction.CoReg:
		newRight := Execute(i.Right(), sub, targetAction, ctx)
		cr := toIntSet(i.Coreg())
		var newLeft *interaction.Interaction
		if _, inCr := cr[targetAction.LfID]; inCr {
			newLeft = i.Left()
		} else {
			newLeft = i.Left().Prune(map[int]struct{}{targetAction.LfID: {}}, ctx)
		}
		return interaction.SimplifyCoReg(i.Coreg(), newLeft, newRight)
	case interaction.Sync:
		newRight := Execute(i.Right(), sub, targetAction, ctx)
		return interaction.SimplifySync(i.SyncMap(), i.Left(), newRight, ctx)
	default:
		panic("semantics: executeRight on unsupported kind")
	}
}

func executeBoth(i *interaction.Interaction, p1, p2 Position, targetAction trace.Action, ctx *symtab.GeneralContext) *interaction.Interaction {
	switch i.Kind() {
	case interaction.Alt:
		newLeft := Execute(i.Left(), p1, targetAction, ctx)
		newRight := Execute(i.Right(), p2, targetAction, ctx)
		return interaction.SimplifyAlt(newLeft, newRight)
	case interaction.Sync:
		newLeft := Execute(i.Left(), p1, targetAction, ctx)
		newRight := Execute(i.Right(), p2, targetAction, ctx)
		return interaction.SimplifySync(i.SyncMap(), newLeft, newRight, ctx)
	default:
		panic("semantics: executeBoth on unsupported kind")
	}
}

// executeLoopLeft implements the loop residuation case (spec.md
// §4.6.1): the fired iteration's remainder and further iterations go to
// the right of a fresh CoReg, while a pruned copy of the loop — covering
// lifelines that could still interleave around this firing — may sit
// concurrently on the left.
func executeLoopLeft(i *interaction.Interaction, sub Position, targetAction trace.Action, ctx *symtab.GeneralContext) *interaction.Interaction {
	cr := i.Coreg()
	bodyResidual := Execute(i.Body(), sub, targetAction, ctx)
	if bodyResidual.Kind() == interaction.Empty {
		return i
	}

	newRight := interaction.SimplifyCoReg(cr, bodyResidual, i)

	prunedSet := toIntSet(cr)
	prunedSet[targetAction.LfID] = struct{}{}
	prunedLoop := i.Prune(prunedSet, ctx)
	if prunedLoop.Kind() != interaction.Empty {
		return interaction.SimplifyCoReg(cr, prunedLoop, newRight)
	}
	return newRight
}
