package grid

import (
	"fmt"

	"github.com/sarchlab/tachygrid/geom"
)

// Shape names how a wire fragment connects within its cell through one
// of the cell's four sides (SPEC_FULL.md §4 / spec.md's glossary).
type Shape int

const (
	// Stub enters a cell from one side and stops.
	Stub Shape = iota
	// Straight passes through to the opposite side.
	Straight
	// TurnLeft connects to the side clockwise of this one; its partner
	// exit (always present for a valid turn) carries TurnRight.
	TurnLeft
	// TurnRight connects to the side counter-clockwise of this one;
	// mirrors TurnLeft from the other exit of the same corner.
	TurnRight
	// SplitLeft is a T-junction exit that goes straight through plus
	// clockwise; the exit directly across carries SplitRight and the
	// clockwise exit carries SplitTee.
	SplitLeft
	// SplitRight is a T-junction exit that goes straight through plus
	// counter-clockwise.
	SplitRight
	// SplitTee is the stem exit of a T-junction: it connects to both
	// perpendicular sides, neither of which is straight-through.
	SplitTee
	// Cross passes straight through on its own axis; the perpendicular
	// axis, if also occupied, forms a wholly separate wire.
	Cross
)

func (s Shape) String() string {
	switch s {
	case Stub:
		return "Stub"
	case Straight:
		return "Straight"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	case SplitLeft:
		return "SplitLeft"
	case SplitRight:
		return "SplitRight"
	case SplitTee:
		return "SplitTee"
	case Cross:
		return "Cross"
	default:
		return "Shape(?)"
	}
}

// Connections returns the other sides of the cell that a fragment of
// this shape, entering at dir, connects to internally. The set is
// always mutually consistent: if shape S at dir lists rd, then
// whatever shape occupies rd must list dir back (invariant I3).
func (s Shape) Connections(dir geom.Direction) []geom.Direction {
	switch s {
	case Stub:
		return nil
	case Straight, Cross:
		return []geom.Direction{dir.Opposite()}
	case TurnLeft:
		return []geom.Direction{dir.RotateCW()}
	case TurnRight:
		return []geom.Direction{dir.RotateCCW()}
	case SplitLeft:
		return []geom.Direction{dir.Opposite(), dir.RotateCW()}
	case SplitRight:
		return []geom.Direction{dir.Opposite(), dir.RotateCCW()}
	case SplitTee:
		return []geom.Direction{dir.RotateCW(), dir.RotateCCW()}
	default:
		return nil
	}
}

// ParseShape is the inverse of Shape.String, for circio deserialization.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "Stub":
		return Stub, nil
	case "Straight":
		return Straight, nil
	case "TurnLeft":
		return TurnLeft, nil
	case "TurnRight":
		return TurnRight, nil
	case "SplitLeft":
		return SplitLeft, nil
	case "SplitRight":
		return SplitRight, nil
	case "SplitTee":
		return SplitTee, nil
	case "Cross":
		return Cross, nil
	default:
		return Stub, fmt.Errorf("grid: unknown shape name %q", s)
	}
}

func contains(ds []geom.Direction, target geom.Direction) bool {
	for _, d := range ds {
		if d == target {
			return true
		}
	}
	return false
}
