package grid

import (
	"fmt"
	"sort"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/puzzle"
	"github.com/sarchlab/tachygrid/wiresize"
)

// portTouch is one chip or interface port landing on a wire, recorded
// during derivation so a wire can carry its resolved id back to the
// instances and interfaces that read/write it.
type portTouch struct {
	chipCell geom.Cell // zero Instance.Cell for an interface touch
	portIdx  int
	isIface  bool
	ifaceIdx int
}

// Wire is one derived net: a connected set of fragments (or a single
// dangling stub) together with whatever chip and interface ports touch
// it, its resolved Color and its resolved Size (SPEC_FULL.md §4 /
// spec.md §4.4's wire grouping).
type Wire struct {
	ID      wiresize.WireID
	Cells   []FragmentKey
	Touches []portTouch

	Color         chip.Color
	ColorKnown    bool // false if no port touches this wire
	ColorConflict bool // true if touching ports disagree on color

	Size wiresize.Size
}

// Ambiguous reports whether the wire's color is unresolved: either no
// port touches it, or touching ports disagree.
func (w *Wire) Ambiguous() bool {
	return !w.ColorKnown || w.ColorConflict
}

// fragKeyID is the union-find node identity: either a fragment side or
// a synthetic port-attachment node that is not backed by any actual
// fragment (a chip port with no adjoining fragment still needs a node
// to carry its own single-port wire).
type fragKeyID struct {
	FragmentKey
	synthetic int // disambiguates synthetic nodes sharing a cell/dir
}

// disjointSet is a minimal union-find.
type disjointSet struct {
	parent map[fragKeyID]fragKeyID
}

func newDisjointSet() *disjointSet {
	return &disjointSet{parent: make(map[fragKeyID]fragKeyID)}
}

func (ds *disjointSet) find(x fragKeyID) fragKeyID {
	if _, ok := ds.parent[x]; !ok {
		ds.parent[x] = x
		return x
	}
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

func (ds *disjointSet) union(a, b fragKeyID) {
	ra, rb := ds.find(a), ds.find(b)
	if ra != rb {
		ds.parent[ra] = rb
	}
}

// deriveWires rebuilds the wire list from the current chip and
// fragment maps: it groups fragments into connected components
// (Cross's two axes stay separate because Shape.Connections only ever
// links a direction to the sides it actually joins), attaches chip and
// interface ports that land on a component or, lacking one, get a
// single-port wire of their own, then resolves each wire's Color and
// Size.
func (g *Grid) deriveWires() ([]*Wire, []error) {
	ds := newDisjointSet()

	for key, shape := range g.fragments {
		self := fragKeyID{FragmentKey: key}
		ds.find(self)
		for _, rd := range shape.Connections(key.Dir) {
			ds.union(self, fragKeyID{FragmentKey: FragmentKey{Cell: key.Cell, Dir: rd}})
		}
		neighbor := key.Cell.Step(key.Dir)
		if g.bounds.Contains(neighbor) {
			oppKey := FragmentKey{Cell: neighbor, Dir: key.Dir.Opposite()}
			if _, ok := g.fragments[oppKey]; ok {
				ds.union(self, fragKeyID{FragmentKey: oppKey})
			}
		}
	}

	// touchNode maps each port touch to the union-find node it lands
	// on: either the fragment at its attachment point, or (absent one)
	// a synthetic node private to that single touch.
	type touchEntry struct {
		node  fragKeyID
		touch portTouch
	}
	var touches []touchEntry
	synthCounter := 0

	attach := func(cell geom.Cell, dir geom.Direction, t portTouch) {
		key := FragmentKey{Cell: cell, Dir: dir}
		if _, ok := g.fragments[key]; ok {
			touches = append(touches, touchEntry{node: fragKeyID{FragmentKey: key}, touch: t})
			return
		}
		synthCounter++
		node := fragKeyID{FragmentKey: key, synthetic: synthCounter}
		ds.find(node)
		touches = append(touches, touchEntry{node: node, touch: t})
	}

	anchors := make([]geom.Cell, 0, len(g.chips))
	for cell := range g.chips {
		anchors = append(anchors, cell)
	}
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].Y < anchors[j].Y || (anchors[i].Y == anchors[j].Y && anchors[i].X < anchors[j].X)
	})

	for _, anchor := range anchors {
		inst := g.chips[anchor]
		w, h := inst.data.Footprint()
		for idx, p := range inst.data.Ports {
			cell := anchor.Add(inst.Orient.TransformInSize(p.Delta, w, h))
			dir := inst.Orient.Apply(p.Dir)
			outward := cell.Step(dir)
			attach(outward, dir.Opposite(), portTouch{chipCell: anchor, portIdx: idx})
		}
	}

	for ifaceIdx, iface := range g.interfaces {
		for portIdx := range iface.Ports {
			cell := g.interfacePortCell(iface, portIdx)
			outward := cell.Step(iface.Side)
			attach(outward, iface.Side.Opposite(), portTouch{isIface: true, ifaceIdx: ifaceIdx, portIdx: portIdx})
		}
	}

	components := make(map[fragKeyID][]FragmentKey)
	for key := range g.fragments {
		root := ds.find(fragKeyID{FragmentKey: key})
		components[root] = append(components[root], key)
	}
	componentTouches := make(map[fragKeyID][]portTouch)
	for _, te := range touches {
		root := ds.find(te.node)
		if _, ok := components[root]; !ok {
			components[root] = nil // a synthetic-only, fragment-less wire
		}
		componentTouches[root] = append(componentTouches[root], te.touch)
	}

	roots := make([]fragKeyID, 0, len(components))
	for root := range components {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		if a.Cell.Y != b.Cell.Y {
			return a.Cell.Y < b.Cell.Y
		}
		if a.Cell.X != b.Cell.X {
			return a.Cell.X < b.Cell.X
		}
		if a.Dir != b.Dir {
			return a.Dir < b.Dir
		}
		return a.synthetic < b.synthetic
	})

	wires := make([]*Wire, 0, len(roots))
	for i, root := range roots {
		cells := components[root]
		sort.Slice(cells, func(a, b int) bool {
			if cells[a].Cell.Y != cells[b].Cell.Y {
				return cells[a].Cell.Y < cells[b].Cell.Y
			}
			if cells[a].Cell.X != cells[b].Cell.X {
				return cells[a].Cell.X < cells[b].Cell.X
			}
			return cells[a].Dir < cells[b].Dir
		})
		wires = append(wires, &Wire{
			ID:      wiresize.WireID(i),
			Cells:   cells,
			Touches: componentTouches[root],
		})
	}

	if errs := g.resolveWireAttributes(wires); len(errs) > 0 {
		return wires, errs
	}
	return wires, nil
}

// interfacePortCell places each interface port at a distinct cell
// along its declared side, fanning out from Anchor perpendicular to
// Side; the exact per-puzzle pin layout is host-supplied data the core
// does not otherwise constrain (see checkInterfaceEnvelope).
func (g *Grid) interfacePortCell(iface puzzle.Interface, idx int) geom.Cell {
	along := iface.Side.RotateCW().Delta()
	return geom.Cell{
		X: iface.Anchor.X + along.X*int32(idx),
		Y: iface.Anchor.Y + along.Y*int32(idx),
	}
}

// resolveWireAttributes assigns each wire's Color (the common color of
// every touching port, or Ambiguous if touches disagree) and resolves
// every wire's Size via wiresize.Resolve, seeded by each touching
// port's MaxSize and the chip's own declared Constraints translated
// from port index to wire id.
func (g *Grid) resolveWireAttributes(wires []*Wire) []error {
	wireOf := make(map[portTouch]wiresize.WireID)
	byID := make(map[wiresize.WireID]*Wire, len(wires))
	for _, w := range wires {
		byID[w.ID] = w
		for _, t := range w.Touches {
			wireOf[t] = w.ID
		}
	}

	var errs []error
	ids := make([]wiresize.WireID, 0, len(wires))
	var constraints []wiresize.Constraint
	initial := make(map[wiresize.WireID]wiresize.Interval)

	for _, w := range wires {
		ids = append(ids, w.ID)

		colorSeen := false
		color := chip.Behavior
		conflict := false
		iv := wiresize.Full
		for _, t := range w.Touches {
			var portColor chip.Color
			var maxSize wiresize.Size
			if t.isIface {
				p := g.interfaces[t.ifaceIdx].Ports[t.portIdx]
				portColor, maxSize = p.Color, p.Size
			} else {
				inst := g.chips[t.chipCell]
				p := inst.data.Ports[t.portIdx]
				portColor, maxSize = p.Color, p.MaxSize
			}
			if !colorSeen {
				color, colorSeen = portColor, true
			} else if color != portColor {
				conflict = true
			}
			iv = iv.MakeAtMost(maxSize)
		}
		initial[w.ID] = iv
		w.ColorKnown = colorSeen
		w.ColorConflict = conflict
		if conflict {
			errs = append(errs, fmt.Errorf("wire %d: touching ports disagree on color", w.ID))
		}
		if colorSeen {
			w.Color = color
		}
	}

	for _, anchor := range sortedChipCells(g.chips) {
		inst := g.chips[anchor]
		translate := func(c chip.Constraint) (wiresize.Constraint, bool) {
			wireID, ok := wireOf[portTouch{chipCell: anchor, portIdx: c.Port}]
			if !ok {
				return wiresize.Constraint{}, false
			}
			switch c.Kind {
			case wiresize.KindEqual, wiresize.KindDouble:
				otherID, ok := wireOf[portTouch{chipCell: anchor, portIdx: c.Other}]
				if !ok {
					return wiresize.Constraint{}, false
				}
				return wiresize.Constraint{Kind: c.Kind, Wire: wireID, Other: otherID}, true
			default:
				return wiresize.Constraint{Kind: c.Kind, Wire: wireID, Size: c.Size}, true
			}
		}
		for _, c := range inst.data.Constraints {
			if wc, ok := translate(c); ok {
				constraints = append(constraints, wc)
			}
		}
		if inst.data.ConstraintsFor != nil {
			for _, c := range inst.data.ConstraintsFor(inst.Type) {
				if wc, ok := translate(c); ok {
					constraints = append(constraints, wc)
				}
			}
		}
	}

	resolved, resolveErrs := wiresize.Resolve(ids, constraints, initial)
	for _, e := range resolveErrs {
		errs = append(errs, e)
	}
	for id, iv := range resolved {
		byID[id].Size = iv.Resolved()
	}

	return errs
}

func sortedChipCells(chips map[geom.Cell]Instance) []geom.Cell {
	cells := make([]geom.Cell, 0, len(chips))
	for c := range chips {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Y < cells[j].Y || (cells[i].Y == cells[j].Y && cells[i].X < cells[j].X)
	})
	return cells
}

// Wires returns the current wire list, (re)deriving it first if the
// grid has been mutated since the last call.
func (g *Grid) Wires() ([]*Wire, []error) {
	if !g.wiresDirty {
		return g.wires, nil
	}
	wires, errs := g.deriveWires()
	g.wires = wires
	g.wiresDirty = false
	return wires, errs
}
