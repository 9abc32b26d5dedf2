package eval

import (
	"fmt"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/topo"
)

// Instance is one placed, wired-up chip ready to evaluate.
type Instance struct {
	Eval chip.Eval
	Cell geom.Cell
}

// Program is the frozen, schedulable form of a validated grid: the
// placed chip instances and the chip-to-chip dependency edges derived
// from each chip type's Dependencies entries mapped through the
// grid's port-to-wire map (spec.md §4.6's "scheduling rules"). Building
// a Program is the grid package's job; eval only consumes it.
type Program struct {
	Instances []Instance
	// Edges[i] lists the instance indices that must run strictly
	// after Instances[i] within a cycle (in a later subcycle).
	Edges     [][]int
	WireCount int
}

// LoopError reports that a subgraph of chips could not be ordered
// because it contains a dependency cycle (spec.md §4.6/§4.7).
type LoopError struct {
	Cells []geom.Cell
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("eval: dependency loop among %d chips", len(e.Cells))
}

// schedule topologically sorts a Program's chip instances into
// subcycle layers via Kahn's algorithm (topo.Layers). Any chip left
// unscheduled by a cycle in the dependency graph is reported via
// LoopError, naming the offending cells.
func schedule(p Program) ([][]int, error) {
	successors := func(i int) []int {
		if i < len(p.Edges) {
			return p.Edges[i]
		}
		return nil
	}

	layers, remaining, ok := topo.Layers(len(p.Instances), successors)
	if !ok {
		cells := make([]geom.Cell, len(remaining))
		for i, idx := range remaining {
			cells[i] = p.Instances[idx].Cell
		}
		return layers, &LoopError{Cells: cells}
	}
	return layers, nil
}
