// Package chip implements the chip catalog: the static per-chip-type
// port layout, size constraints and dependency list (ChipData), the
// tagged evaluator objects chips turn into once wires are resolved
// (ChipEval), and the name-indexed registry of both (Catalog).
//
// Catalog registration follows the teacher's instr.ISA pattern (a
// name-to-behavior map populated once by a defaultISAinit-style
// function): see catalog.go.
package chip

import (
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// Flow says whether a port produces or consumes a wire's value.
type Flow int

const (
	// Sink ports consume a wire's value.
	Sink Flow = iota
	// Source ports produce a wire's value.
	Source
)

func (f Flow) String() string {
	if f == Source {
		return "Source"
	}
	return "Sink"
}

// Color names the kind of signal a port (and, once derived, a wire)
// carries.
type Color int

const (
	// Behavior ports/wires carry a continuously valid value read every
	// cycle.
	Behavior Color = iota
	// Event ports/wires carry a value only on the cycle it fires.
	Event
	// Analog ports/wires carry a geom.Fixed value in [-1, 1].
	Analog
)

func (c Color) String() string {
	switch c {
	case Behavior:
		return "Behavior"
	case Event:
		return "Event"
	case Analog:
		return "Analog"
	default:
		return "Color(?)"
	}
}

// PortSpec describes one port of a chip type in its unrotated
// footprint: where it sits (Delta, relative to the chip's anchor
// cell), which way it points (Dir, before orientation is applied),
// whether it produces or consumes its wire, what color it is, and
// (for chip ports only) the maximum size the port accepts.
type PortSpec struct {
	Delta   geom.Cell
	Dir     geom.Direction
	Flow    Flow
	Color   Color
	MaxSize wiresize.Size // wiresize.ThirtyTwo if the port has no extra cap
}
