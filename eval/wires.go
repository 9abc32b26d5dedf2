package eval

import "github.com/sarchlab/tachygrid/wiresize"

// slot is one wire's state for the cycle currently in progress.
type slot struct {
	behavior   uint32
	changed    bool
	eventValue uint32
	eventFired bool
}

// bank is the evaluator's flat wire-slot array, implementing
// chip.Bank. Indexing is by wiresize.WireID, assigned densely by the
// grid when it derives wires (SPEC_FULL.md §4/§6).
type bank struct {
	slots []slot
}

func newBank(n int) *bank {
	return &bank{slots: make([]slot, n)}
}

func (b *bank) ReadBehavior(w wiresize.WireID) uint32 {
	return b.slots[w].behavior
}

func (b *bank) WriteBehavior(w wiresize.WireID, v uint32) {
	s := &b.slots[w]
	if s.behavior != v {
		s.changed = true
	}
	s.behavior = v
}

func (b *bank) BehaviorChanged(w wiresize.WireID) bool {
	return b.slots[w].changed
}

func (b *bank) EventFired(w wiresize.WireID) (uint32, bool) {
	s := &b.slots[w]
	return s.eventValue, s.eventFired
}

func (b *bank) FireEvent(w wiresize.WireID, v uint32) {
	s := &b.slots[w]
	s.eventValue = v
	s.eventFired = true
}

// startCycle clears per-cycle transient flags ahead of a new cycle,
// per spec.md §4.6: "Event flags are cleared at the start of each
// cycle after the first". Changed flags are always cleared; fired
// events are cleared only when first is false. The evaluator calls it
// before BeginTimeStep and before BeginAdditionalCycle, so events the
// puzzle fires from those callbacks survive into the cycle that
// follows.
func (b *bank) startCycle(first bool) {
	for i := range b.slots {
		b.slots[i].changed = false
		if !first {
			b.slots[i].eventFired = false
			b.slots[i].eventValue = 0
		}
	}
}
