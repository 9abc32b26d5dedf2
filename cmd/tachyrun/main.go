// Command tachyrun loads a circuit document, builds it into a grid and
// evaluator, and drives the evaluator for a fixed number of time
// steps against puzzle.Stub (SPEC_FULL.md §10).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/circio"
	"github.com/sarchlab/tachygrid/eval"
	"github.com/sarchlab/tachygrid/interact"
	"github.com/sarchlab/tachygrid/puzzle"
)

func main() {
	circuitPath := flag.String("circuit", "", "path to a circuit document (YAML)")
	steps := flag.Int("steps", 10, "number of time steps to run")
	trace := flag.Bool("trace", false, "print a per-time-step wire trace")
	flag.Parse()

	if *circuitPath == "" {
		log.Fatalf("tachyrun: -circuit is required")
	}

	catalog := chip.DefaultCatalog()
	harness := &puzzle.Stub{}

	g, err := circio.Load(*circuitPath, catalog, harness.Interfaces())
	if err != nil {
		log.Fatalf("tachyrun: load %s: %v", *circuitPath, err)
	}

	prog, portWire, err := g.Program()
	if err != nil {
		log.Fatalf("tachyrun: build program: %v", err)
	}

	eval.EnableTrace = *trace

	evaluator, err := eval.New(prog, harness, interact.New(), portWire)
	if err != nil {
		log.Fatalf("tachyrun: build evaluator: %v", err)
	}
	atexit.Register(func() {
		if n := len(evaluator.Errors()); n > 0 {
			log.Printf("tachyrun: %d puzzle error(s) reported during the run", n)
		}
	})

	fmt.Printf("tachyrun: loaded %s (puzzle %q, %d instances, %d wires)\n",
		*circuitPath, g.PuzzleID(), len(prog.Instances), prog.WireCount)

	runUntilDone(evaluator, *steps)
	printSummary(evaluator)

	if evaluator.Status() == eval.Failed {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func runUntilDone(e *eval.Evaluator, maxSteps int) {
	for i := 0; i < maxSteps; i++ {
		status := e.StepTimeStep()
		if eval.EnableTrace {
			eval.PrintTrace(e.Snapshot())
		}
		switch status {
		case eval.Completed:
			fmt.Printf("tachyrun: puzzle completed after %d time step(s)\n", e.TimeStep())
			return
		case eval.Failed:
			fmt.Printf("tachyrun: run failed at time step %d\n", e.TimeStep())
			return
		case eval.PausedAtBreakpoint:
			fmt.Printf("tachyrun: paused at breakpoint, cell %v\n", e.PausedAt())
			e.ContinueFromBreakpoint()
		}
	}
	fmt.Printf("tachyrun: reached the %d time step budget without completing\n", maxSteps)
}

func printSummary(e *eval.Evaluator) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Time Step", "Status", "Errors"})
	tw.AppendRow(table.Row{e.TimeStep(), statusName(e.Status()), len(e.Errors())})
	tw.Render()

	for _, perr := range e.Errors() {
		fmt.Printf("  - t=%d %s\n", perr.TimeStep, perr.Error())
	}
}

func statusName(s eval.Status) string {
	switch s {
	case eval.Running:
		return "Running"
	case eval.PausedAtBreakpoint:
		return "PausedAtBreakpoint"
	case eval.Completed:
		return "Completed"
	case eval.Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
