// Package semantics implements the operational semantics of the
// interaction-term algebra: the frontier of immediately executable
// actions, execution of one chosen action, and the affected-lifelines
// analysis that follows it (spec.md §4.5–§4.7).
package semantics

import "fmt"

// PositionShape tags the variant of a Position.
type PositionShape int

const (
	// ShapeEpsilon addresses an Action leaf directly.
	ShapeEpsilon PositionShape = iota
	// ShapeLeft descends into the left operand of a binary node.
	ShapeLeft
	// ShapeRight descends into the right operand of a binary node.
	ShapeRight
	// ShapeBoth addresses a synchronized or Alt-matched pair.
	ShapeBoth
)

// Position is a path into an interaction term, pointing at the Action
// leaf(s) a FrontierElement fires (spec.md §3).
type Position struct {
	shape PositionShape

	// Sub is the target index at an Epsilon position: -1 means the
	// emission phase, k >= 0 means the k-th target's reception.
	sub int

	sub1 *Position
	sub2 *Position
}

// EpsilonEmission is the position of a broadcast primitive's pending
// emission.
func EpsilonEmission() Position {
	return Position{shape: ShapeEpsilon, sub: -1}
}

// EpsilonReception is the position of the k-th pending target's
// reception.
func EpsilonReception(k int) Position {
	return Position{shape: ShapeEpsilon, sub: k}
}

// NewLeft wraps p as a descent into a binary node's left operand.
func NewLeft(p Position) Position {
	return Position{shape: ShapeLeft, sub1: &p}
}

// NewRight wraps p as a descent into a binary node's right operand.
func NewRight(p Position) Position {
	return Position{shape: ShapeRight, sub1: &p}
}

// NewBoth pairs p1 and p2 as a synchronized or Alt-matched position.
func NewBoth(p1, p2 Position) Position {
	return Position{shape: ShapeBoth, sub1: &p1, sub2: &p2}
}

// Shape returns p's variant tag.
func (p Position) Shape() PositionShape { return p.shape }

// IsEmissionPhase reports whether p is an Epsilon position addressing
// the emission phase. Valid only when Shape() == ShapeEpsilon.
func (p Position) IsEmissionPhase() bool { return p.sub < 0 }

// TargetIndex returns the addressed target's index. Valid only when
// Shape() == ShapeEpsilon and !IsEmissionPhase().
func (p Position) TargetIndex() int { return p.sub }

// Sub returns the wrapped position. Valid only when Shape() is
// ShapeLeft or ShapeRight.
func (p Position) Sub() Position { return *p.sub1 }

// Sub1 returns the first paired position. Valid only when
// Shape() == ShapeBoth.
func (p Position) Sub1() Position { return *p.sub1 }

// Sub2 returns the second paired position. Valid only when
// Shape() == ShapeBoth.
func (p Position) Sub2() Position { return *p.sub2 }

func (p Position) String() string {
	switch p.shape {
	case ShapeEpsilon:
		if p.sub < 0 {
			return "eps(!)"
		}
		return fmt.Sprintf("eps(?%d)", p.sub)
	case ShapeLeft:
		return fmt.Sprintf("left(%s)", p.Sub())
	case ShapeRight:
		return fmt.Sprintf("right(%s)", p.Sub())
	case ShapeBoth:
		return fmt.Sprintf("both(%s,%s)", p.Sub1(), p.Sub2())
	default:
		return "?"
	}
}
