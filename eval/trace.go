package eval

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// EnableTrace gates per-cycle waveform logging; set to false to skip
// all trace bookkeeping for performance, mirroring the teacher's
// EnableWaveformLog toggle.
var EnableTrace = false

// WireSample is one wire's value at the moment a CycleTrace was taken.
type WireSample struct {
	Wire       uint32 `json:"wire"`
	Behavior   uint32 `json:"behavior"`
	EventFired bool   `json:"event_fired"`
	EventValue uint32 `json:"event_value,omitempty"`
}

// CycleTrace is the canonical per-cycle waveform summary for one
// evaluator, analogous to the teacher's PEStateLog.
type CycleTrace struct {
	TimeStep    uint32       `json:"time_step"`
	CycleInStep uint32       `json:"cycle_in_step"`
	Wires       []WireSample `json:"wires"`
}

// Snapshot captures the current wire bank as a CycleTrace. It is cheap
// enough to call unconditionally, but callers should still guard with
// EnableTrace to skip allocation entirely when tracing is off.
func (e *Evaluator) Snapshot() CycleTrace {
	t := CycleTrace{TimeStep: e.timeStep, CycleInStep: e.cycleInStep}
	for i, s := range e.bank.slots {
		t.Wires = append(t.Wires, WireSample{
			Wire:       uint32(i),
			Behavior:   s.behavior,
			EventFired: s.eventFired,
			EventValue: s.eventValue,
		})
	}
	return t
}

// PrintTrace renders a CycleTrace as a table to stdout, in the
// teacher's go-pretty style (core/util.go's regTable/bufTable).
func PrintTrace(t CycleTrace) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Wire", "Behavior", "Event"})
	for _, w := range t.Wires {
		event := ""
		if w.EventFired {
			event = "fired"
		}
		tw.AppendRow(table.Row{w.Wire, w.Behavior, event})
	}
	tw.Render()
}
