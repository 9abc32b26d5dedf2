// Package puzzle defines the pluggable scenario harness a running
// circuit is evaluated against: the fixed I/O boundary a grid must
// expose, and the PuzzleEval interface the evaluator drives once per
// cycle and once per time step.
//
// The interface shape follows the teacher's api.Driver: a small set of
// verbs (FeedIn/Collect/MapProgram/Run there; BeginTimeStep/EndCycle/
// EndTimeStep here) that an external harness implements and the core
// only ever calls through, never depends on concretely.
package puzzle

import (
	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// Port describes one named port of an Interface.
type Port struct {
	Name  string
	Flow  chip.Flow
	Color chip.Color
	Size  wiresize.Size
}

// Interface is one boundary port bank the puzzle exposes at a fixed
// side and anchor of the playfield; the grid must place matching
// ports at the cells this implies.
type Interface struct {
	Side   geom.Direction
	Anchor geom.Cell
	Ports  []Port
}

// Error records one puzzle-reported problem, per SPEC_FULL.md/spec.md
// §4.5/§7: a time step, an optional offending port, a message and
// whether it aborts the run.
type Error struct {
	TimeStep uint32
	Port     string // empty if not port-specific
	Message  string
	Fatal    bool
}

func (e Error) Error() string {
	if e.Port != "" {
		return e.Message + " (port " + e.Port + ")"
	}
	return e.Message
}

// State is the view of the running circuit a PuzzleEval is given: a
// way to read/write the boundary wires named by Interfaces, without
// exposing the evaluator's internal scheduling.
type State interface {
	// ReadPort reads the current behavior value of a named boundary
	// port (the grid maps port names to wire slots from Interfaces()).
	ReadPort(name string) uint32
	// WritePort drives a named boundary Sink port's wire for this
	// cycle (puzzles only ever drive Sink-flow interface ports).
	WritePort(name string, value uint32)
	// FireEvent raises an event on a named boundary event port.
	FireEvent(name string, value uint32)
	// EventFired reports whether a named boundary event port fired
	// this cycle.
	EventFired(name string) (value uint32, ok bool)
}

// PuzzleEval is the environment around a running circuit (SPEC_FULL.md
// §5 / spec.md §4.5). Implementations are supplied by the host
// application; the core only calls through this interface.
type PuzzleEval interface {
	// Interfaces lists the puzzle's fixed I/O boundary ports, in the
	// order the grid must expose matching ports.
	Interfaces() []Interface

	// TaskIsCompleted reports whether the puzzle's win condition has
	// been met.
	TaskIsCompleted(s State) bool

	// BeginTimeStep may drive new inputs onto source ports before any
	// cycle of the time step runs.
	BeginTimeStep(s State)
	// BeginAdditionalCycle runs at the start of every cycle after the
	// first within one time step.
	BeginAdditionalCycle(s State)
	// EndCycle runs after each cycle settles and may report errors.
	EndCycle(s State) []Error
	// NeedsAnotherCycle forces another cycle within the current time
	// step even if no chip requested one.
	NeedsAnotherCycle(s State) bool
	// EndTimeStep finalizes the time step, updating the external world
	// model, and may report errors.
	EndTimeStep(s State) []Error
}
