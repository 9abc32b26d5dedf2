package eval

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
)

func (e *Evaluator) beginTimeStepIfNeeded() {
	if e.timeStepStarted {
		return
	}
	e.pendingPresses, e.pendingHotkeys = e.presses.Drain()
	e.bank.startCycle(false)
	e.harness.BeginTimeStep(e.state)
	e.timeStepStarted = true
	e.cycleInStep = 0
	e.subcycleInLayer = 0
}

func (e *Evaluator) beginCycleIfNeeded() {
	if e.subcycleInLayer != 0 {
		return
	}
	if e.cycleInStep > 0 {
		e.bank.startCycle(false)
		presses, hotkeys := e.presses.Drain()
		e.pendingPresses = append(e.pendingPresses, presses...)
		e.pendingHotkeys = append(e.pendingHotkeys, hotkeys...)
		e.harness.BeginAdditionalCycle(e.state)
	}
	e.requestedExtraCycle = false
}

func (e *Evaluator) contextFor(cell geom.Cell) *chip.Context {
	return &chip.Context{
		Bank:         e.bank,
		Cell:         cell,
		TimeStep:     e.timeStep,
		CycleInStep:  e.cycleInStep,
		FirstCycle:   e.cycleInStep == 0,
		Presses:      e.pressesAt(cell),
		ConsumePress: e.consumePressAt(cell),
		RequestCycle: func() { e.requestedExtraCycle = true },
		RaiseBreak: func(at geom.Cell) {
			e.status = PausedAtBreakpoint
			e.pausedAt = at
			e.InvokeHook(sim.HookCtx{Domain: e, Pos: HookPosBreakpoint, Item: at})
		},
	}
}

// StepSubcycle runs exactly one scheduling layer: every chip in it
// runs once, reading and writing wire slots (spec.md §4.6). It begins
// a new time step or cycle first if one is not already underway.
func (e *Evaluator) StepSubcycle() Status {
	if e.status == Failed || e.status == Completed {
		return e.status
	}
	e.beginTimeStepIfNeeded()
	e.beginCycleIfNeeded()

	e.status = Running

	if e.subcycleInLayer < len(e.layers) {
		layer := e.layers[e.subcycleInLayer]
		for _, idx := range layer {
			inst := e.prog.Instances[idx]
			inst.Eval.Step(e.contextFor(inst.Cell))
		}
		e.subcycleInLayer++
	}

	if e.status == PausedAtBreakpoint {
		return e.status
	}

	if e.subcycleInLayer >= len(e.layers) {
		e.finishCycle()
	}
	return e.status
}

func (e *Evaluator) finishCycle() {
	errs := e.harness.EndCycle(e.state)
	e.addErrors(errs)
	e.InvokeHook(sim.HookCtx{Domain: e, Pos: HookPosCycleDone, Item: e.cycleInStep})
	if e.status == Failed {
		return
	}

	needAnother := e.requestedExtraCycle || e.harness.NeedsAnotherCycle(e.state)
	e.cycleInStep++
	e.subcycleInLayer = 0

	if needAnother {
		return
	}

	errs = e.harness.EndTimeStep(e.state)
	e.addErrors(errs)
	e.InvokeHook(sim.HookCtx{Domain: e, Pos: HookPosTimeStepDone, Item: e.timeStep})
	if e.status == Failed {
		return
	}
	e.timeStep++
	e.timeStepStarted = false
	e.cycleInStep = 0

	if e.harness.TaskIsCompleted(e.state) {
		e.status = Completed
	}
}

// StepCycle runs subcycles until the current cycle (and, if it was
// the last cycle of the time step, the time step) completes, or a
// breakpoint/failure/completion stops it early.
func (e *Evaluator) StepCycle() Status {
	startedAtStep, startedAtCycle := e.timeStep, e.cycleInStep
	for {
		status := e.StepSubcycle()
		if status != Running {
			return status
		}
		if e.timeStep != startedAtStep || e.cycleInStep != startedAtCycle {
			return status
		}
	}
}

// StepTimeStep runs cycles until the time step completes (spec.md
// §4.6's definition: "runs cycles until no chip reports
// needs_another_cycle and the puzzle reports the same"), or a
// breakpoint/failure/completion stops it early.
func (e *Evaluator) StepTimeStep() Status {
	startedAtStep := e.timeStep
	for {
		status := e.StepSubcycle()
		if status != Running {
			return status
		}
		if e.timeStep != startedAtStep {
			return status
		}
	}
}

// RunUntilPause runs time steps until a breakpoint is hit, the puzzle
// completes, or a fatal error occurs.
func (e *Evaluator) RunUntilPause() Status {
	for {
		status := e.StepTimeStep()
		if status != Running {
			return status
		}
	}
}

// ContinueFromBreakpoint resumes after PausedAtBreakpoint, clearing
// the paused marker so stepping can proceed from where it halted.
func (e *Evaluator) ContinueFromBreakpoint() {
	if e.status == PausedAtBreakpoint {
		e.status = Running
	}
}

// PausedAt returns the cell of the Break chip that paused the
// evaluator; only meaningful when Status() == PausedAtBreakpoint.
func (e *Evaluator) PausedAt() geom.Cell { return e.pausedAt }
