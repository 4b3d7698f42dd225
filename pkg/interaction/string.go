package interaction

import (
	"fmt"
	"strings"
)

// String renders i as a compact, deterministic textual form, suitable
// both for debug output and as the basis of a memoization fingerprint.
func (i *Interaction) String() string {
	switch i.kind {
	case Empty:
		return "0"
	case ActionKind:
		bp := i.primitive
		if bp.HasOrigin() {
			return fmt.Sprintf("%d!%s->%v", bp.Origin, bp.MessageType, bp.Targets)
		}
		return fmt.Sprintf("?%s->%v", bp.MessageType, bp.Targets)
	case CoReg:
		return fmt.Sprintf("coreg%v(%s,%s)", i.coreg, i.left, i.right)
	case Sync:
		keys := i.syncMap.Keys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%d%s:%s", k.LfID, k.Kind, i.syncMap[k]))
		}
		return fmt.Sprintf("sync{%s}(%s,%s)", strings.Join(parts, ","), i.left, i.right)
	case Alt:
		return fmt.Sprintf("alt(%s,%s)", i.left, i.right)
	case Loop:
		return fmt.Sprintf("loop%v(%s)", i.coreg, i.body)
	default:
		return "?"
	}
}
