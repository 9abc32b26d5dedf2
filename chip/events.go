package chip

import (
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// clockEval schedules a single output event for the next time step
// whenever its input fires at any point during the current time step.
// With nothing wired to its input it never fires; feeding its own
// delayed output back into its input gives circuits a free-running
// heartbeat.
type clockEval struct {
	in, out wiresize.WireID
	seen    bool
}

func (e *clockEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *clockEval) Reset() { e.seen = false }

func (e *clockEval) Step(ctx *Context) {
	if ctx.FirstCycle {
		if e.seen {
			ctx.Bank.FireEvent(e.out, 0)
		}
		e.seen = false
	}
	if _, ok := ctx.Bank.EventFired(e.in); ok {
		e.seen = true
	}
}

// delayEval re-fires an incoming event, unchanged, one cycle later
// (requesting that extra cycle within the same time step) so that
// feedback loops through it are guaranteed to terminate.
type delayEval struct {
	in, out  wiresize.WireID
	pending  uint32
	hasValue bool
}

func (e *delayEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *delayEval) Reset() { e.hasValue = false }

func (e *delayEval) Step(ctx *Context) {
	if e.hasValue {
		ctx.Bank.FireEvent(e.out, e.pending)
		e.hasValue = false
	}
	if v, ok := ctx.Bank.EventFired(e.in); ok {
		e.pending = v
		e.hasValue = true
		ctx.RequestCycle()
	}
}

// discardEval consumes an event and produces nothing; it exists so an
// event output can be wired somewhere without being used.
type discardEval struct {
	NoReset
	in wiresize.WireID
}

func (e *discardEval) Writes() []wiresize.WireID { return nil }

func (e *discardEval) Step(ctx *Context) {
	ctx.Bank.EventFired(e.in)
}

// joinEval forwards whichever of two event inputs fired this cycle,
// preferring in2 if both fired simultaneously.
type joinEval struct {
	NoReset
	in1, in2, out wiresize.WireID
}

func (e *joinEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *joinEval) Step(ctx *Context) {
	v2, ok2 := ctx.Bank.EventFired(e.in2)
	if ok2 {
		ctx.Bank.FireEvent(e.out, v2)
		return
	}
	if v1, ok1 := ctx.Bank.EventFired(e.in1); ok1 {
		ctx.Bank.FireEvent(e.out, v1)
	}
}

// latestEval holds the value of the most recent event as a continuous
// behavior output.
type latestEval struct {
	in, out wiresize.WireID
	last    uint32
}

func (e *latestEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *latestEval) Reset() { e.last = 0 }

func (e *latestEval) Step(ctx *Context) {
	if v, ok := ctx.Bank.EventFired(e.in); ok {
		e.last = v
	}
	ctx.Bank.WriteBehavior(e.out, e.last)
}

// sampleEval emits the current value of a behavior input as an event
// whenever its trigger input fires.
type sampleEval struct {
	NoReset
	trigger, value, out wiresize.WireID
}

func (e *sampleEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *sampleEval) Step(ctx *Context) {
	if _, ok := ctx.Bank.EventFired(e.trigger); ok {
		ctx.Bank.FireEvent(e.out, ctx.Bank.ReadBehavior(e.value))
	}
}

// breakEval passes events through unchanged and raises a breakpoint at
// its cell whenever one passes through; it has no setting that turns
// the breakpoint off.
type breakEval struct {
	NoReset
	in, out wiresize.WireID
	cell    geom.Cell
}

func (e *breakEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *breakEval) Step(ctx *Context) {
	if v, ok := ctx.Bank.EventFired(e.in); ok {
		ctx.Bank.FireEvent(e.out, v)
		ctx.RaiseBreak(e.cell)
	}
}

// buttonEval fires an event carrying 0 once per cycle for as long as
// presses remain queued, requesting additional cycles within the same
// time step so that every queued press is consumed before it ends.
type buttonEval struct {
	NoReset
	out wiresize.WireID
}

func (e *buttonEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *buttonEval) Step(ctx *Context) {
	if ctx.Presses() <= 0 {
		return
	}
	ctx.Bank.FireEvent(e.out, 0)
	ctx.ConsumePress()
	if ctx.Presses() > 0 {
		ctx.RequestCycle()
	}
}
