package chip

import (
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// Slot is a resolved connection point: which wire a chip port landed
// on, and at what size the wire resolved to.
type Slot struct {
	Wire wiresize.WireID
	Size wiresize.Size
}

// Bank is the evaluator's wire-slot storage, as seen by a chip during
// evaluation. Behavior reads/writes settle every cycle; events are
// visible only during the cycle they were fired on.
type Bank interface {
	ReadBehavior(w wiresize.WireID) uint32
	WriteBehavior(w wiresize.WireID, v uint32)
	// BehaviorChanged reports whether the wire's behavior value was
	// written to a different value earlier this cycle (used by chips
	// like Pack that only recompute "when either input changes").
	BehaviorChanged(w wiresize.WireID) bool

	// EventFired reports whether an event was raised on the wire
	// earlier this cycle, and its value.
	EventFired(w wiresize.WireID) (value uint32, ok bool)
	FireEvent(w wiresize.WireID, value uint32)
}

// Context is everything a ChipEval needs beyond the wire bank: where
// it sits, what subcycle-of-the-time-step it is, and callbacks back
// into the evaluator for the few chips that affect scheduling
// directly (Button/Delay's extra-cycle requests, Break's breakpoints).
type Context struct {
	Bank Bank
	Cell geom.Cell

	TimeStep    uint32
	CycleInStep uint32
	FirstCycle  bool

	// Presses is the number of queued UI button presses available to a
	// Button/Toggle chip at this cell in the current cycle; the
	// evaluator decrements its own bookkeeping as a chip consumes one
	// via ConsumePress.
	Presses      func() int
	ConsumePress func()
	RequestCycle func()
	RaiseBreak   func(cell geom.Cell)
}

// Eval is the tagged-variant evaluator object for one chip instance's
// worth of work. A chip type that needs more than one independently
// scheduled output (Unpack's two outputs share one instance; Ram
// needs two instances sharing storage) is represented by more than one
// Eval value, each declaring the subset of output wires it writes via
// Writes.
type Eval interface {
	// Writes lists the wires this Eval instance produces, so the
	// scheduler can order dependents against it.
	Writes() []wiresize.WireID
	// Step runs the chip once for the current subcycle.
	Step(ctx *Context)
}

// ResetState re-initializes a Eval's internal state (register
// contents, shared RAM storage, latched values) for Evaluator.Reset.
// Evals with no internal state may leave this unimplemented by
// embedding NoReset.
type ResetState interface {
	Reset()
}

// NoReset is embedded by chips with no internal state to satisfy
// ResetState trivially.
type NoReset struct{}

// Reset is a no-op.
func (NoReset) Reset() {}
