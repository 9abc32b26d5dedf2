package grid

import (
	"fmt"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/eval"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// Program derives the grid's wires (if dirty), builds every placed
// chip's Eval instances through its catalog entry's Factory, and
// assembles an eval.Program ready to hand to eval.New.
//
// A chip type's Dependencies are declared in port-index terms (e.g.
// "sink port 0 must be read before source port 2 is produced"); this
// translates each Dependency into an instance-level edge by resolving
// both ports to wire ids and looking up, across every produced Eval in
// the whole program, which one writes the sink wire (the producer) and
// which one writes the source wire (the consumer this dependency
// orders against). Transitive ordering among chips that merely share a
// wire falls out of this per-dependency rule without extra work: a
// chip B that also consumes A's output wire carries its own
// Dependency entry naming that same wire as a sink, which resolves to
// the same producer.
func (g *Grid) Program() (eval.Program, map[string]wiresize.WireID, error) {
	wires, errs := g.Wires()
	if len(errs) > 0 {
		return eval.Program{}, nil, fmt.Errorf("grid: cannot build program: %v", errs[0])
	}

	wireOf := make(map[portTouch]wiresize.WireID)
	sizeOf := make(map[wiresize.WireID]wiresize.Size, len(wires))
	for _, w := range wires {
		sizeOf[w.ID] = w.Size
		for _, t := range w.Touches {
			wireOf[t] = w.ID
		}
	}

	var prog eval.Program
	prog.WireCount = len(wires)

	// builds records each chip's resolved slots so Dependencies can be
	// translated to wire ids after every chip in the grid is built.
	type chipBuild struct {
		anchor geom.Cell
		data   chip.Data
		slots  []chip.Slot
	}
	var builds []chipBuild

	for _, anchor := range sortedChipCells(g.chips) {
		inst := g.chips[anchor]

		slots := make([]chip.Slot, len(inst.data.Ports))
		for idx := range inst.data.Ports {
			wireID, ok := wireOf[portTouch{chipCell: anchor, portIdx: idx}]
			if !ok {
				return eval.Program{}, nil, fmt.Errorf("grid: chip at %v port %d has no resolved wire", anchor, idx)
			}
			slots[idx] = chip.Slot{Wire: wireID, Size: sizeOf[wireID]}
		}

		evals, err := g.catalog.Build(inst.Type, slots, anchor)
		if err != nil {
			return eval.Program{}, nil, fmt.Errorf("grid: chip at %v: %w", anchor, err)
		}

		for _, e := range evals {
			prog.Instances = append(prog.Instances, eval.Instance{Eval: e, Cell: anchor})
		}
		builds = append(builds, chipBuild{anchor: anchor, data: inst.data, slots: slots})
	}

	writerOf := make(map[wiresize.WireID]int, len(prog.Instances))
	for i, inst := range prog.Instances {
		for _, w := range inst.Eval.Writes() {
			writerOf[w] = i
		}
	}

	prog.Edges = make([][]int, len(prog.Instances))
	for _, b := range builds {
		for _, dep := range b.data.Dependencies {
			sinkWire := b.slots[dep.SinkPort].Wire
			sourceWire := b.slots[dep.SourcePort].Wire

			consumer, ok := writerOf[sourceWire]
			if !ok {
				continue
			}
			producer, ok := writerOf[sinkWire]
			if !ok || producer == consumer {
				continue
			}
			prog.Edges[producer] = append(prog.Edges[producer], consumer)
		}
	}

	portWire := make(map[string]wiresize.WireID)
	for _, w := range wires {
		for _, t := range w.Touches {
			if !t.isIface {
				continue
			}
			name := g.interfaces[t.ifaceIdx].Ports[t.portIdx].Name
			portWire[name] = w.ID
		}
	}

	return prog, portWire, nil
}
