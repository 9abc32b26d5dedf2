// Package grid implements the edit grid: the validated data model of
// chips and wire fragments on a 2-D playfield (SPEC_FULL.md §4 /
// spec.md §4.4). Mutations are atomic and invariant-checked; accepted
// mutations mark wire derivation dirty, and wires are (re)derived
// lazily the next time they are queried or an evaluation is started.
package grid

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/puzzle"
)

// HookPosMutated marks a successfully applied TryMutate batch.
var HookPosMutated = &sim.HookPos{Name: "Grid Mutated"}

// HookPosMutationRejected marks a TryMutate batch rolled back for
// violating an invariant.
var HookPosMutationRejected = &sim.HookPos{Name: "Grid Mutation Rejected"}

// FragmentKey identifies one wire fragment: a cell and the side of it
// the fragment occupies.
type FragmentKey struct {
	Cell geom.Cell
	Dir  geom.Direction
}

// Instance is a placed chip: its anchor cell, type and orientation,
// plus its static ChipData cached at placement time.
type Instance struct {
	Cell   geom.Cell
	Type   chip.Type
	Orient geom.Orientation

	data chip.Data
}

// Grid holds the puzzle identity, the bounds rectangle, the chip map,
// the fragment map and the lazily derived wire list (spec.md §4.4).
type Grid struct {
	sim.HookableBase

	puzzleID   string
	interfaces []puzzle.Interface
	catalog    *chip.Catalog

	bounds    geom.Rect
	chips     map[geom.Cell]Instance
	fragments map[FragmentKey]Shape

	wiresDirty bool
	wires      []*Wire
}

// New constructs a grid from a puzzle identity, its fixed interfaces,
// a catalog of chip types, an initial bounds rectangle, and initial
// chip/fragment lists. Construction performs repair: fragments
// violating (I1)-(I5) are dropped and missing opposite fragments are
// reconciled with inserted Stubs, per spec.md §4.4's "Repair at load".
func New(
	puzzleID string,
	interfaces []puzzle.Interface,
	catalog *chip.Catalog,
	bounds geom.Rect,
	chips []Instance,
	fragments map[FragmentKey]Shape,
) (*Grid, error) {
	g := &Grid{
		puzzleID:   puzzleID,
		interfaces: interfaces,
		catalog:    catalog,
		bounds:     bounds,
		chips:      make(map[geom.Cell]Instance),
		fragments:  make(map[FragmentKey]Shape),
		wiresDirty: true,
	}

	for _, inst := range chips {
		data, err := catalog.Data(inst.Type)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		inst.data = data
		g.chips[inst.Cell] = inst
	}

	for k, v := range fragments {
		g.fragments[k] = v
	}

	g.repair()

	if err := g.checkInvariants(); err != nil {
		return nil, fmt.Errorf("grid: repaired state still invalid: %w", err)
	}

	return g, nil
}

// Bounds returns the playfield's current bounds rectangle.
func (g *Grid) Bounds() geom.Rect { return g.bounds }

// PuzzleID returns the identifier of the puzzle this grid was built
// for.
func (g *Grid) PuzzleID() string { return g.puzzleID }

// ChipAt resolves cell to whichever chip instance occupies it: the
// chip anchored there, or else the first chip whose rotated footprint
// covers the cell, found by scanning every placed chip. Cells keep no
// back-reference to their chip's anchor.
func (g *Grid) ChipAt(cell geom.Cell) (Instance, bool) {
	if inst, ok := g.chips[cell]; ok {
		return inst, true
	}
	for _, inst := range g.chips {
		for _, fc := range g.footprintCells(inst) {
			if fc == cell {
				return inst, true
			}
		}
	}
	return Instance{}, false
}

// footprintCells returns every cell inst's rotated footprint occupies.
func (g *Grid) footprintCells(inst Instance) []geom.Cell {
	w, h := inst.data.Footprint()
	cells := make([]geom.Cell, 0, w*h)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			offset := inst.Orient.TransformInSize(geom.Cell{X: x, Y: y}, w, h)
			cells = append(cells, inst.Cell.Add(offset))
		}
	}
	return cells
}

// Fragments returns a copy of the current fragment map, for
// serialization (circio) and rendering.
func (g *Grid) Fragments() map[FragmentKey]Shape {
	out := make(map[FragmentKey]Shape, len(g.fragments))
	for k, v := range g.fragments {
		out[k] = v
	}
	return out
}

// Chips returns a copy of the current chip map, keyed by anchor cell.
func (g *Grid) Chips() map[geom.Cell]Instance {
	out := make(map[geom.Cell]Instance, len(g.chips))
	for k, v := range g.chips {
		out[k] = v
	}
	return out
}

// Interfaces returns the puzzle's fixed I/O boundary ports.
func (g *Grid) Interfaces() []puzzle.Interface { return g.interfaces }
