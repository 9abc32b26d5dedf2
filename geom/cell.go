package geom

import "fmt"

// Cell is a single grid square, addressed by signed coordinates so that
// deltas (chip footprint offsets, direction steps) can be added freely
// without wrapping.
type Cell struct {
	X, Y int32
}

// Add returns the cell offset by delta.
func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Sub returns the delta from other to c.
func (c Cell) Sub(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// Neg returns the negated cell, useful for turning a delta into a
// back-reference.
func (c Cell) Neg() Cell {
	return Cell{X: -c.X, Y: -c.Y}
}

// Step returns the cell reached by moving one unit in dir.
func (c Cell) Step(dir Direction) Cell {
	return c.Add(dir.Delta())
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Rect is an axis-aligned rectangle of cells, (X, Y) being its
// top-left corner and (W, H) its width and height in cells.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether c lies within the rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.X+r.W &&
		c.Y >= r.Y && c.Y < r.Y+r.H
}

// ContainsRect reports whether other is fully contained within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.W <= r.X+r.W &&
		other.Y+other.H <= r.Y+r.H
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int64 {
	return int64(r.W) * int64(r.H)
}
