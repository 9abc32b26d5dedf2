package grid

import (
	"fmt"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/puzzle"
)

// Builder accumulates a grid's initial chips and fragments before
// construction, chaining value-receiver With* calls the way
// config.DeviceBuilder assembles a CGRA device.
type Builder struct {
	puzzleID   string
	interfaces []puzzle.Interface
	catalog    *chip.Catalog
	bounds     geom.Rect
	chips      []Instance
	fragments  map[FragmentKey]Shape
}

// NewBuilder starts a Builder for the named puzzle against catalog.
func NewBuilder(puzzleID string, catalog *chip.Catalog) Builder {
	return Builder{
		puzzleID:  puzzleID,
		catalog:   catalog,
		fragments: make(map[FragmentKey]Shape),
	}
}

// WithBounds sets the playfield's bounds rectangle.
func (b Builder) WithBounds(bounds geom.Rect) Builder {
	b.bounds = bounds
	return b
}

// WithInterfaces sets the puzzle's fixed I/O boundary ports.
func (b Builder) WithInterfaces(interfaces []puzzle.Interface) Builder {
	b.interfaces = interfaces
	return b
}

// WithChip places one chip instance, anchored at cell with the given
// orientation.
func (b Builder) WithChip(cell geom.Cell, t chip.Type, orient geom.Orientation) Builder {
	b.chips = append(b.chips, Instance{Cell: cell, Type: t, Orient: orient})
	return b
}

// WithFragment places (or replaces) one wire fragment.
func (b Builder) WithFragment(cell geom.Cell, dir geom.Direction, shape Shape) Builder {
	fragments := make(map[FragmentKey]Shape, len(b.fragments)+1)
	for k, v := range b.fragments {
		fragments[k] = v
	}
	fragments[FragmentKey{Cell: cell, Dir: dir}] = shape
	b.fragments = fragments
	return b
}

// Build constructs the Grid, repairing and validating it the same way
// New does.
func (b Builder) Build() (*Grid, error) {
	if b.catalog == nil {
		return nil, fmt.Errorf("grid: builder has no catalog")
	}
	return New(b.puzzleID, b.interfaces, b.catalog, b.bounds, b.chips, b.fragments)
}
