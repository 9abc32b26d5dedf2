package geom

// Orientation is an element of the dihedral group D4: a rotation in
// units of 90 degrees plus an optional mirror, applied mirror-then-rotate.
// Composing two orientations (via Then) models stacking one chip
// rotation on top of another.
type Orientation struct {
	Rotation int // 0..3, counted clockwise
	Mirror   bool
}

// Identity is the orientation that changes nothing.
var Identity = Orientation{Rotation: 0, Mirror: false}

func normRot(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

// MakeOrientation builds an orientation, normalizing the rotation into
// 0..3.
func MakeOrientation(rotation int, mirror bool) Orientation {
	return Orientation{Rotation: normRot(rotation), Mirror: mirror}
}

// Then composes o followed by next: the result first applies o, then
// next, to a direction.
func (o Orientation) Then(next Orientation) Orientation {
	rot := o.Rotation
	if next.Mirror {
		rot = normRot(-rot)
	}
	return Orientation{
		Rotation: normRot(rot + next.Rotation),
		Mirror:   o.Mirror != next.Mirror,
	}
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	if o.Mirror {
		return o
	}
	return Orientation{Rotation: normRot(-o.Rotation), Mirror: false}
}

// Apply rotates (and, if mirrored, flips) a direction by the
// orientation. Mirroring reflects across the north-south axis before
// rotating, matching the convention used by TransformInSize below.
func (o Orientation) Apply(d Direction) Direction {
	if o.Mirror {
		d = mirrorDirection(d)
	}
	return Direction(normRot(int(d) + o.Rotation))
}

func mirrorDirection(d Direction) Direction {
	switch d {
	case North:
		return North
	case South:
		return South
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ApplySize swaps width and height for a 90 or 270 degree rotation,
// leaving them unchanged for 0 or 180.
func (o Orientation) ApplySize(w, h int32) (int32, int32) {
	if o.Rotation%2 == 1 {
		return h, w
	}
	return w, h
}

// TransformInSize maps a chip-local delta to its rotated location
// within a bounding box of the chip's unrotated (w, h) footprint. It is
// used to place each port/footprint cell of a chip once its
// orientation is known.
func (o Orientation) TransformInSize(delta Cell, w, h int32) Cell {
	x, y := delta.X, delta.Y
	if o.Mirror {
		x = w - 1 - x
	}
	for i := 0; i < o.Rotation; i++ {
		nx, ny := h-1-y, x
		x, y = nx, ny
		w, h = h, w
	}
	return Cell{X: x, Y: y}
}
