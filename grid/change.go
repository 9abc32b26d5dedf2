package grid

import (
	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
)

// Change is one atomic edit grid operation, applied as part of a
// TryMutate batch (SPEC_FULL.md §4 / spec.md §4.4).
type Change interface {
	apply(g *Grid) error
}

// SetBounds resizes the playfield.
type SetBounds struct {
	New geom.Rect
}

func (c SetBounds) apply(g *Grid) error {
	g.bounds = c.New
	return nil
}

// AddChip places a chip instance anchored at Cell.
type AddChip struct {
	Cell   geom.Cell
	Type   chip.Type
	Orient geom.Orientation
}

func (c AddChip) apply(g *Grid) error {
	data, err := g.catalog.Data(c.Type)
	if err != nil {
		return err
	}
	g.chips[c.Cell] = Instance{Cell: c.Cell, Type: c.Type, Orient: c.Orient, data: data}
	return nil
}

// RemoveChip deletes whatever chip is anchored at Cell.
type RemoveChip struct {
	Cell geom.Cell
}

func (c RemoveChip) apply(g *Grid) error {
	delete(g.chips, c.Cell)
	return nil
}

// SetFragment places (or replaces) a wire fragment.
type SetFragment struct {
	Cell  geom.Cell
	Dir   geom.Direction
	Shape Shape
}

func (c SetFragment) apply(g *Grid) error {
	g.fragments[FragmentKey{Cell: c.Cell, Dir: c.Dir}] = c.Shape
	return nil
}

// RemoveFragment deletes a wire fragment.
type RemoveFragment struct {
	Cell geom.Cell
	Dir  geom.Direction
}

func (c RemoveFragment) apply(g *Grid) error {
	delete(g.fragments, FragmentKey{Cell: c.Cell, Dir: c.Dir})
	return nil
}
