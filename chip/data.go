package chip

import "github.com/sarchlab/tachygrid/wiresize"

// ConstraintKind mirrors wiresize.ConstraintKind, but Constraint here
// refers to ports by index into ChipData.Ports rather than by
// wiresize.WireID: the grid resolves each port to the wire touching it
// before handing the translated constraint set to wiresize.Resolve.
type ConstraintKind = wiresize.ConstraintKind

// Constraint narrows the size of the wire attached to Port (and,
// for Equal/Double, Other) by Size.
type Constraint struct {
	Kind  ConstraintKind
	Port  int
	Other int
	Size  wiresize.Size
}

// Exact constrains the port's wire to exactly size.
func Exact(port int, size wiresize.Size) Constraint {
	return Constraint{Kind: wiresize.KindExact, Port: port, Size: size}
}

// AtLeast constrains the port's wire to at least size.
func AtLeast(port int, size wiresize.Size) Constraint {
	return Constraint{Kind: wiresize.KindAtLeast, Port: port, Size: size}
}

// AtMost constrains the port's wire to at most size.
func AtMost(port int, size wiresize.Size) Constraint {
	return Constraint{Kind: wiresize.KindAtMost, Port: port, Size: size}
}

// Equal constrains two ports' wires to unify to the same size.
func Equal(a, b int) Constraint {
	return Constraint{Kind: wiresize.KindEqual, Port: a, Other: b}
}

// DoubleOf constrains big's wire to be exactly double the size of
// small's wire.
func DoubleOf(big, small int) Constraint {
	return Constraint{Kind: wiresize.KindDouble, Port: big, Other: small}
}

// Dependency records that, within one subcycle, Sink must be read
// before Source is produced — used by the evaluator's scheduler to
// order chips relative to one another (SPEC_FULL.md §3/§6).
type Dependency struct {
	SinkPort   int
	SourcePort int
}

// Data is the static description of a chip type: its ports (in a
// fixed order used to index Constraints and Dependencies), its size
// constraints, and its internal port dependencies.
//
// ConstraintsFor, when set, yields additional constraints that depend
// on a particular placed instance's Type rather than on the chip type
// alone (e.g. Const's minimum size depends on the constant it
// encodes). The grid consults it per instance, in addition to the
// static Constraints shared by every instance of the type.
type Data struct {
	Ports          []PortSpec
	Constraints    []Constraint
	Dependencies   []Dependency
	ConstraintsFor func(t Type) []Constraint
}

// Footprint returns the (width, height) of the chip's unrotated
// bounding box, derived from its ports' deltas. Chips with no ports
// outside (0,0) occupy a single cell.
func (d Data) Footprint() (w, h int32) {
	w, h = 1, 1
	for _, p := range d.Ports {
		if p.Delta.X+1 > w {
			w = p.Delta.X + 1
		}
		if p.Delta.Y+1 > h {
			h = p.Delta.Y + 1
		}
	}
	return w, h
}
