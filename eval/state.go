package eval

import "github.com/sarchlab/tachygrid/wiresize"

// evalState adapts the evaluator's wire bank into the puzzle.State
// interface a PuzzleEval callback receives, translating boundary port
// names to wire IDs via the map the grid supplied when it built the
// Program.
type evalState struct {
	bank     *bank
	portWire map[string]wiresize.WireID
}

func (s *evalState) wire(name string) wiresize.WireID {
	w, ok := s.portWire[name]
	if !ok {
		panic("eval: unknown boundary port " + name)
	}
	return w
}

func (s *evalState) ReadPort(name string) uint32 {
	return s.bank.ReadBehavior(s.wire(name))
}

func (s *evalState) WritePort(name string, value uint32) {
	s.bank.WriteBehavior(s.wire(name), value)
}

func (s *evalState) FireEvent(name string, value uint32) {
	s.bank.FireEvent(s.wire(name), value)
}

func (s *evalState) EventFired(name string) (uint32, bool) {
	return s.bank.EventFired(s.wire(name))
}
