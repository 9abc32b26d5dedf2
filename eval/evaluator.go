// Package eval implements the deterministic, cycle-based circuit
// evaluator (SPEC_FULL.md §6 / spec.md §4.6): given a frozen Program
// produced by the grid, it schedules chip evaluation in dependency
// order across subcycles, cycles and time steps, drives a puzzle.
// PuzzleEval harness at the right points in that loop, and exposes the
// step controls a host UI or CLI uses to single-step or run to
// completion.
//
// The evaluator is deliberately synchronous and single-threaded: it
// does not use akita's discrete-event, virtual-time TickingComponent
// machinery (that engine's whole premise is components advancing
// independently until the scheduler catches up, which is incompatible
// with "bit-identical across runs" determinism). It keeps only the
// dependency-free observability surface — sim.HookableBase/HookPos —
// the way core.defaultPort does for its send/recv/retrieve events.
package eval

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/interact"
	"github.com/sarchlab/tachygrid/puzzle"
	"github.com/sarchlab/tachygrid/wiresize"
)

// HookPosBreakpoint marks when a Break chip pauses the evaluator.
var HookPosBreakpoint = &sim.HookPos{Name: "Evaluator Breakpoint"}

// HookPosTimeStepDone marks the completion of one time step.
var HookPosTimeStepDone = &sim.HookPos{Name: "Evaluator Time Step Done"}

// HookPosCycleDone marks the completion of one cycle.
var HookPosCycleDone = &sim.HookPos{Name: "Evaluator Cycle Done"}

// Status reports the evaluator's run state after a step call.
type Status int

const (
	// Running means the evaluator stopped only because the requested
	// unit of work (one subcycle/cycle/time step) completed.
	Running Status = iota
	// PausedAtBreakpoint means a Break chip fired and the evaluator
	// halted after the subcycle that raised it.
	PausedAtBreakpoint
	// Completed means the puzzle reported TaskIsCompleted.
	Completed
	// Failed means a fatal puzzle.Error was reported, or the Program
	// contained a dependency loop.
	Failed
)

// Evaluator runs one Program against one puzzle.PuzzleEval.
type Evaluator struct {
	sim.HookableBase

	prog   Program
	bank   *bank
	layers [][]int

	harness puzzle.PuzzleEval
	state   *evalState
	presses *interact.Queue

	timeStep    uint32
	cycleInStep uint32
	status      Status
	pausedAt    geom.Cell
	errs        []puzzle.Error

	requestedExtraCycle bool
	subcycleInLayer     int
	timeStepStarted     bool
	pendingPresses      []interact.ButtonPress
	pendingHotkeys      []int
}

// New builds an Evaluator for prog, driven by harness, reading UI
// button/hotkey state from presses. portWire maps each of harness's
// Interfaces() port names to the wire the grid placed it on.
func New(prog Program, harness puzzle.PuzzleEval, presses *interact.Queue, portWire map[string]wiresize.WireID) (*Evaluator, error) {
	e := &Evaluator{
		prog:    prog,
		bank:    newBank(prog.WireCount),
		harness: harness,
		presses: presses,
	}
	e.state = &evalState{bank: e.bank, portWire: portWire}

	layers, err := schedule(prog)
	e.layers = layers
	if err != nil {
		e.status = Failed
		return e, err
	}
	return e, nil
}

// Status reports the evaluator's current run state.
func (e *Evaluator) Status() Status { return e.status }

// TimeStep returns the number of completed time steps.
func (e *Evaluator) TimeStep() uint32 { return e.timeStep }

// Errors returns every puzzle.Error accumulated so far.
func (e *Evaluator) Errors() []puzzle.Error { return e.errs }

// Reset rewinds the evaluator to time step 0 with all wire state and
// chip-internal state cleared, per spec.md's step-control surface.
func (e *Evaluator) Reset() {
	e.bank = newBank(e.prog.WireCount)
	e.state.bank = e.bank
	e.timeStep = 0
	e.cycleInStep = 0
	e.status = Running
	e.errs = nil
	e.subcycleInLayer = 0
	e.timeStepStarted = false
	for _, inst := range e.prog.Instances {
		if r, ok := inst.Eval.(chip.ResetState); ok {
			r.Reset()
		}
	}
}

func (e *Evaluator) addErrors(errs []puzzle.Error) {
	for _, err := range errs {
		e.errs = append(e.errs, err)
		if err.Fatal {
			e.status = Failed
		}
	}
}

// pressesAt counts queued button presses landing on cell, since the
// interact.Queue is keyed by (x,y,sublocation) without a notion of
// "this chip's cell"; the evaluator itself keeps the presses it drains
// from the queue at the start of every cycle and counts them per cell.
func (e *Evaluator) pressesAt(cell geom.Cell) func() int {
	return func() int {
		n := 0
		for _, p := range e.pendingPresses {
			if p.Cell.X == cell.X && p.Cell.Y == cell.Y {
				n++
			}
		}
		return n
	}
}

func (e *Evaluator) consumePressAt(cell geom.Cell) func() {
	return func() {
		for i, p := range e.pendingPresses {
			if p.Cell.X == cell.X && p.Cell.Y == cell.Y {
				e.pendingPresses = append(e.pendingPresses[:i], e.pendingPresses[i+1:]...)
				return
			}
		}
	}
}
