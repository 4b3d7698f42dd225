// Package interaction implements the interaction-term algebra: the
// syntax of broadcast actions composed under weak sequencing,
// synchronization, non-deterministic choice and loops (spec.md §3).
package interaction

import (
	"sort"

	"github.com/erwanM974/hibou-passing/pkg/mte"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// Kind tags the variant of an Interaction term.
type Kind int

const (
	// Empty denotes the terminated interaction.
	Empty Kind = iota
	// ActionKind denotes a single broadcast primitive.
	ActionKind
	// CoReg denotes weak sequencing, partially relaxed on the lifelines
	// listed in Coreg.
	CoReg
	// Sync denotes rendezvous composition keyed by a SyncMap.
	Sync
	// Alt denotes non-deterministic choice.
	Alt
	// Loop denotes a Kleene-star repetition of Body, partially relaxed
	// on the lifelines listed in Coreg.
	Loop
)

// SyncKey identifies one slot of a Sync map: a lifeline together with
// the direction it must act in to satisfy that slot.
type SyncKey struct {
	LfID int
	Kind trace.ActionKind
}

// Less implements the deterministic total order spec.md §9 requires for
// Sync map iteration: Emission before Reception, then ascending LfID.
func (k SyncKey) Less(other SyncKey) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.LfID < other.LfID
}

// SyncMap pairs each synchronizing lifeline+direction with the
// message-type expression it must satisfy. Use SyncMap.Keys for
// deterministic iteration order.
type SyncMap map[SyncKey]*mte.Expr

// Keys returns m's keys in the deterministic order spec.md §9 mandates.
func (m SyncMap) Keys() []SyncKey {
	keys := make([]SyncKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Interaction is the interaction-term sum type. Go has no native
// algebraic data types, so the variant is tagged by Kind and only the
// fields relevant to that Kind are populated; every other field is the
// zero value. Construct values via the New* functions rather than
// struct literals, to keep this invariant.
type Interaction struct {
	kind Kind

	primitive BroadcastPrimitive

	coreg []int
	left  *Interaction
	right *Interaction

	syncMap SyncMap

	body *Interaction
}

// NewEmpty returns the terminated interaction.
func NewEmpty() *Interaction {
	return &Interaction{kind: Empty}
}

// NewAction wraps a single broadcast primitive. Per spec.md §3's
// invariant, a structurally-empty primitive must not be wrapped this
// way; callers should return NewEmpty() instead.
func NewAction(primitive BroadcastPrimitive) *Interaction {
	return &Interaction{kind: ActionKind, primitive: primitive}
}

// NewCoReg composes left and right under weak sequencing relaxed on the
// lifelines in coreg.
func NewCoReg(coreg []int, left, right *Interaction) *Interaction {
	return &Interaction{kind: CoReg, coreg: append([]int(nil), coreg...), left: left, right: right}
}

// NewSync composes left and right under rendezvous, keyed by syncMap.
func NewSync(syncMap SyncMap, left, right *Interaction) *Interaction {
	m := make(SyncMap, len(syncMap))
	for k, v := range syncMap {
		m[k] = v
	}
	return &Interaction{kind: Sync, syncMap: m, left: left, right: right}
}

// NewAlt composes left and right under non-deterministic choice.
func NewAlt(left, right *Interaction) *Interaction {
	return &Interaction{kind: Alt, left: left, right: right}
}

// NewLoop wraps body in a Kleene-star repetition, relaxed on the
// lifelines in coreg.
func NewLoop(coreg []int, body *Interaction) *Interaction {
	return &Interaction{kind: Loop, coreg: append([]int(nil), coreg...), body: body}
}

// Kind returns i's variant tag.
func (i *Interaction) Kind() Kind { return i.kind }

// Primitive returns the wrapped broadcast primitive. Valid only when
// Kind() == ActionKind.
func (i *Interaction) Primitive() BroadcastPrimitive { return i.primitive }

// Coreg returns the relaxed-lifeline set. Valid only when
// Kind() == CoReg or Kind() == Loop.
func (i *Interaction) Coreg() []int { return i.coreg }

// Left returns the left operand. Valid only when Kind() is CoReg, Sync
// or Alt.
func (i *Interaction) Left() *Interaction { return i.left }

// Right returns the right operand. Valid only when Kind() is CoReg,
// Sync or Alt.
func (i *Interaction) Right() *Interaction { return i.right }

// SyncMap returns the synchronization map. Valid only when
// Kind() == Sync.
func (i *Interaction) SyncMap() SyncMap { return i.syncMap }

// Body returns the looped sub-interaction. Valid only when
// Kind() == Loop.
func (i *Interaction) Body() *Interaction { return i.body }
