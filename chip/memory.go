package chip

import "github.com/sarchlab/tachygrid/wiresize"

// ramStorage is the backing array shared by a Ram chip's two
// independently-addressable port groups. Two ramPortEval instances
// hold a pointer to the same ramStorage, mirroring the teacher's
// ReservationState pattern of state shared across otherwise
// independent evaluation units rather than funneled through a single
// struct's methods.
type ramStorage struct {
	cells []uint32
}

// newRAMStorage sizes storage to 1<<addrBits words, the full address
// space of the resolved address wire.
func newRAMStorage(addrBits uint) *ramStorage {
	return &ramStorage{cells: make([]uint32, 1<<addrBits)}
}

func (s *ramStorage) Reset() {
	for i := range s.cells {
		s.cells[i] = 0
	}
}

// ramPortEval is one of Ram's two port groups: an address input, a
// write-event input (whose value is the data to write), and a data
// output, all sharing storage with the other group. A write committed
// this Step is visible to the data output sampled later in the same
// Step, so a write and a same-cycle read-back at the same address
// observe the new value.
type ramPortEval struct {
	store         *ramStorage
	addr, we, out wiresize.WireID
}

func (e *ramPortEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *ramPortEval) Reset() { e.store.Reset() }

func (e *ramPortEval) Step(ctx *Context) {
	addr := int(ctx.Bank.ReadBehavior(e.addr)) % len(e.store.cells)
	if v, ok := ctx.Bank.EventFired(e.we); ok {
		e.store.cells[addr] = v
	}
	ctx.Bank.WriteBehavior(e.out, e.store.cells[addr])
}

// displayEval has no output; it exists purely so the evaluator
// schedules a read of its input each cycle for the UI to observe via
// the wire Bank. Modeled as a Sink-only chip, matching the teacher's
// pattern of trace-only ports carrying no dependency.
type displayEval struct {
	NoReset
	in wiresize.WireID
}

func (e *displayEval) Writes() []wiresize.WireID { return nil }

func (e *displayEval) Step(ctx *Context) {
	ctx.Bank.ReadBehavior(e.in)
}

// toggleEval is a persistent on/off behavior source, flipped by a
// queued UI press once per time step.
type toggleEval struct {
	out wiresize.WireID
	on  bool
}

func (e *toggleEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *toggleEval) Reset() { e.on = false }

func (e *toggleEval) Step(ctx *Context) {
	if ctx.FirstCycle && ctx.Presses() > 0 {
		e.on = !e.on
		ctx.ConsumePress()
	}
	if e.on {
		ctx.Bank.WriteBehavior(e.out, 1)
	} else {
		ctx.Bank.WriteBehavior(e.out, 0)
	}
}
