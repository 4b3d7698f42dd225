package semantics

import "github.com/erwanM974/hibou-passing/pkg/interaction"

// GetAffectedOnExecute returns the lifelines whose causal state may
// change because of a firing at pos, beyond the firing lifeline itself.
// The analysis driver uses this to mark channels dirty for
// re-evaluation of local analysis (spec.md §4.7).
func GetAffectedOnExecute(i *interaction.Interaction, pos Position, firingLf int) map[int]struct{} {
	switch pos.Shape() {
	case ShapeEpsilon:
		return map[int]struct{}{}
	case ShapeLeft:
		return affectedLeft(i, pos.Sub(), firingLf)
	case ShapeRight:
		return affectedRight(i, pos.Sub(), firingLf)
	case ShapeBoth:
		return affectedBoth(i, pos.Sub1(), pos.Sub2(), firingLf)
	default:
		panic("semantics: GetAffectedOnExecute on unknown shape")
	}
}

func affectedLeft(i *interaction.Interaction, sub Position, firingLf int) map[int]struct{} {
	switch i.Kind() {
	case interaction.Loop:
		return i.Body().InvolvedLifelines()
	case interaction.CoReg, interaction.Sync:
		return GetAffectedOnExecute(i.Left(), sub, firingLf)
	case interaction.Alt:
		return unionLifelines(i.Left(), i.Right())
	default:
		panic("semantics: affectedLeft on unsupported kind")
	}
}

func affectedRight(i *interaction.Interaction, sub Position, firingLf int) map[int]struct{} {
	switch i.Kind() {
	case interaction.CoReg:
		out := map[int]struct{}{}
		cr := toIntSet(i.Coreg())
		if _, ok := cr[firingLf]; ok {
			out = AffectedOnPrune(i.Left(), firingLf)
		}
		for lf := range GetAffectedOnExecute(i.Right(), sub, firingLf) {
			out[lf] = struct{}{}
		}
		return out
	case interaction.Sync:
		return GetAffectedOnExecute(i.Right(), sub, firingLf)
	case interaction.Alt:
		return unionLifelines(i.Left(), i.Right())
	default:
		panic("semantics: affectedRight on unsupported kind")
	}
}

func affectedBoth(i *interaction.Interaction, p1, p2 Position, firingLf int) map[int]struct{} {
	switch i.Kind() {
	case interaction.Sync, interaction.Alt:
		out := GetAffectedOnExecute(i.Left(), p1, firingLf)
		for lf := range GetAffectedOnExecute(i.Right(), p2, firingLf) {
			out[lf] = struct{}{}
		}
		return out
	default:
		panic("semantics: affectedBoth on unsupported kind")
	}
}

// AffectedOnPrune returns the lifelines whose presence would be pruned
// away from i if lf were removed, by structural recursion (spec.md
// §4.7).
func AffectedOnPrune(i *interaction.Interaction, lf int) map[int]struct{} {
	switch i.Kind() {
	case interaction.Empty, interaction.ActionKind:
		return map[int]struct{}{}
	case interaction.CoReg, interaction.Sync:
		out := AffectedOnPrune(i.Left(), lf)
		for l := range AffectedOnPrune(i.Right(), lf) {
			out[l] = struct{}{}
		}
		return out
	case interaction.Alt:
		if i.Left().Avoids(lf) && i.Right().Avoids(lf) {
			out := AffectedOnPrune(i.Left(), lf)
			for l := range AffectedOnPrune(i.Right(), lf) {
				out[l] = struct{}{}
			}
			return out
		}
		return unionLifelines(i.Left(), i.Right())
	case interaction.Loop:
		if i.Body().Avoids(lf) {
			return AffectedOnPrune(i.Body(), lf)
		}
		return i.Body().InvolvedLifelines()
	default:
		panic("semantics: AffectedOnPrune on unknown kind")
	}
}

func unionLifelines(a, b *interaction.Interaction) map[int]struct{} {
	out := a.InvolvedLifelines()
	for lf := range b.InvolvedLifelines() {
		out[lf] = struct{}{}
	}
	return out
}
