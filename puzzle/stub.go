package puzzle

// Stub is a minimal PuzzleEval with no boundary ports whose completion
// check reports the Completed field (false unless set), useful for
// exercising the evaluator in isolation (unit tests, cmd/tachyrun).
type Stub struct {
	Completed bool
}

func (s *Stub) Interfaces() []Interface { return nil }

func (s *Stub) TaskIsCompleted(State) bool { return s.Completed }

func (s *Stub) BeginTimeStep(State) {}

func (s *Stub) BeginAdditionalCycle(State) {}

func (s *Stub) EndCycle(State) []Error { return nil }

func (s *Stub) NeedsAnotherCycle(State) bool { return false }

func (s *Stub) EndTimeStep(State) []Error { return nil }
