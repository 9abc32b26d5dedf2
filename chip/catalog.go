package chip

import (
	"fmt"
	"sync"

	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/wiresize"
)

// Factory builds the Eval instance(s) for one placed chip, given its
// ports' resolved wire slots (in Data.Ports order) and its anchor
// cell. Most chip types return exactly one Eval; Unpack returns one
// (both outputs on a single instance); Ram returns two, one per port
// group, sharing one backing store.
type Factory func(t Type, slots []Slot, cell geom.Cell) []Eval

// entry pairs a chip type's static layout with the factory that turns
// resolved slots into evaluator objects, mirroring the teacher's
// instr.ISA rows (one opcode -> one decode/exec pair).
type entry struct {
	data    Data
	factory Factory
}

// Catalog is the name-indexed registry of chip types, populated once
// at startup the way instr.ISA is populated by registerNewInst calls.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

// Register adds one chip type. Registering a name twice panics: the
// catalog is built once at program startup, and a duplicate
// registration is a programming error, not a runtime condition.
func (c *Catalog) Register(name string, data Data, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[name]; exists {
		panic(fmt.Sprintf("chip: %q already registered", name))
	}
	c.entries[name] = entry{data: data, factory: factory}
}

// Data returns the static layout for t. Some chip types (Const) carry
// a per-instance ConstraintsFor hook that narrows a port's size based
// on t itself rather than the chip type alone; callers that resolve
// wire sizes must consult it in addition to the returned Constraints.
func (c *Catalog) Data(t Type) (Data, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[t.Name]
	if !ok {
		return Data{}, fmt.Errorf("chip: unregistered chip type %q", t.Name)
	}
	return e.data, nil
}

// Build resolves t's ports against slots (which must be in Data.Ports
// order and the same length) at cell, and returns its Eval
// instance(s).
func (c *Catalog) Build(t Type, slots []Slot, cell geom.Cell) ([]Eval, error) {
	c.mu.RLock()
	e, ok := c.entries[t.Name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("chip: unregistered chip type %q", t.Name)
	}
	if len(slots) != len(e.data.Ports) {
		return nil, fmt.Errorf("chip: %q expects %d ports, got %d slots", t.Name, len(e.data.Ports), len(slots))
	}
	return e.factory(t, slots, cell), nil
}

// Names returns every registered chip type name.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	return names
}

func in(delta geom.Cell, dir geom.Direction) PortSpec {
	return PortSpec{Delta: delta, Dir: dir, Flow: Sink, Color: Behavior, MaxSize: wiresize.ThirtyTwo}
}

func out(delta geom.Cell, dir geom.Direction) PortSpec {
	return PortSpec{Delta: delta, Dir: dir, Flow: Source, Color: Behavior, MaxSize: wiresize.ThirtyTwo}
}

func evIn(delta geom.Cell, dir geom.Direction) PortSpec {
	return PortSpec{Delta: delta, Dir: dir, Flow: Sink, Color: Event, MaxSize: wiresize.ThirtyTwo}
}

func evOut(delta geom.Cell, dir geom.Direction) PortSpec {
	return PortSpec{Delta: delta, Dir: dir, Flow: Source, Color: Event, MaxSize: wiresize.ThirtyTwo}
}

// DefaultCatalog returns a freshly populated catalog holding every
// chip type named in SPEC_FULL.md §3, following the teacher's
// defaultISAinit one-shot-registration pattern.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	registerBuiltins(c)
	return c
}

func registerBuiltins(c *Catalog) {
	zero := geom.Cell{}

	c.Register("Const", Data{
		Ports: []PortSpec{out(zero, geom.East)},
		ConstraintsFor: func(t Type) []Constraint {
			return []Constraint{AtLeast(0, wiresize.MinForValue(uint64(t.Const)))}
		},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&constEval{out: slots[0].Wire, value: uint32(t.Const)}}
	})

	c.Register("Not", Data{
		Ports:        []PortSpec{in(zero, geom.West), out(zero, geom.East)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 1}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		mask := slots[1].Size.Mask()
		return []Eval{&notEval{in: slots[0].Wire, out: slots[1].Wire, mask: mask}}
	})

	registerBinary := func(name string, op func(a, b uint32) uint32, maskFromOutput bool) {
		c.Register(name, Data{
			Ports: []PortSpec{
				in(geom.Cell{Y: 1}, geom.West),
				in(zero, geom.West),
				out(zero, geom.East),
			},
			Constraints:  []Constraint{Equal(0, 1), Equal(0, 2)},
			Dependencies: []Dependency{{SinkPort: 0, SourcePort: 2}, {SinkPort: 1, SourcePort: 2}},
		}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
			mask := uint32(0xFFFFFFFF)
			if maskFromOutput {
				mask = slots[2].Size.Mask()
			}
			return []Eval{&binaryOpEval{a: slots[0].Wire, b: slots[1].Wire, out: slots[2].Wire, mask: mask, op: op}}
		})
	}
	registerBinary("Add", opAdd, true)
	registerBinary("Sub", opSub, true)
	registerBinary("Mul", opMul, true)
	registerBinary("And", opAnd, true)
	registerBinary("Or", opOr, true)
	registerBinary("Xor", opXor, true)

	registerCompare := func(name string, op func(a, b uint32) uint32) {
		c.Register(name, Data{
			Ports: []PortSpec{
				in(geom.Cell{Y: 1}, geom.West),
				in(zero, geom.West),
				{Delta: zero, Dir: geom.East, Flow: Source, Color: Behavior, MaxSize: wiresize.One},
			},
			Constraints:  []Constraint{Equal(0, 1), Exact(2, wiresize.One)},
			Dependencies: []Dependency{{SinkPort: 0, SourcePort: 2}, {SinkPort: 1, SourcePort: 2}},
		}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
			return []Eval{&binaryOpEval{a: slots[0].Wire, b: slots[1].Wire, out: slots[2].Wire, mask: 1, op: op}}
		})
	}
	registerCompare("Cmp", opLess)
	registerCompare("CmpEq", opLessEq)
	registerCompare("Eq", opEqual)

	c.Register("Mux", Data{
		Ports: []PortSpec{
			in(geom.Cell{Y: 2}, geom.West),
			in(geom.Cell{Y: 1}, geom.West),
			{Delta: zero, Dir: geom.South, Flow: Sink, Color: Behavior, MaxSize: wiresize.ThirtyTwo},
			out(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(0, 1), Equal(0, 3)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 3}, {SinkPort: 1, SourcePort: 3}, {SinkPort: 2, SourcePort: 3}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&muxEval{in1: slots[0].Wire, in2: slots[1].Wire, control: slots[2].Wire, out: slots[3].Wire}}
	})

	c.Register("Pack", Data{
		Ports: []PortSpec{
			in(geom.Cell{Y: 1}, geom.West),
			in(zero, geom.West),
			out(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(0, 1), DoubleOf(2, 0)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 2}, {SinkPort: 1, SourcePort: 2}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		n := uint(slots[0].Size.Bits())
		return []Eval{&packEval{in1: slots[0].Wire, in2: slots[1].Wire, out: slots[2].Wire, n: n}}
	})

	c.Register("Unpack", Data{
		Ports: []PortSpec{
			in(zero, geom.West),
			out(geom.Cell{Y: 1}, geom.East),
			out(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(1, 2), DoubleOf(0, 1)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 1}, {SinkPort: 0, SourcePort: 2}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		n := uint(slots[1].Size.Bits())
		mask := slots[1].Size.Mask()
		return []Eval{&unpackEval{in: slots[0].Wire, out1: slots[1].Wire, out2: slots[2].Wire, n: n, mask: mask}}
	})

	c.Register("Clock", Data{
		Ports: []PortSpec{
			evIn(zero, geom.West),
			evOut(zero, geom.East),
		},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&clockEval{in: slots[0].Wire, out: slots[1].Wire}}
	})

	c.Register("Delay", Data{
		Ports: []PortSpec{evIn(zero, geom.West), evOut(zero, geom.East)},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&delayEval{in: slots[0].Wire, out: slots[1].Wire}}
	})

	c.Register("Discard", Data{
		Ports: []PortSpec{evIn(zero, geom.West)},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&discardEval{in: slots[0].Wire}}
	})

	c.Register("Join", Data{
		Ports: []PortSpec{
			evIn(geom.Cell{Y: 1}, geom.West),
			evIn(zero, geom.West),
			evOut(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(0, 1), Equal(0, 2)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 2}, {SinkPort: 1, SourcePort: 2}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&joinEval{in1: slots[0].Wire, in2: slots[1].Wire, out: slots[2].Wire}}
	})

	c.Register("Latest", Data{
		Ports:        []PortSpec{evIn(zero, geom.West), out(zero, geom.East)},
		Constraints:  []Constraint{Equal(0, 1)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 1}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&latestEval{in: slots[0].Wire, out: slots[1].Wire}}
	})

	c.Register("Sample", Data{
		Ports: []PortSpec{
			evIn(geom.Cell{Y: 1}, geom.West),
			in(zero, geom.West),
			evOut(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(1, 2)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 2}, {SinkPort: 1, SourcePort: 2}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&sampleEval{trigger: slots[0].Wire, value: slots[1].Wire, out: slots[2].Wire}}
	})

	c.Register("Break", Data{
		Ports: []PortSpec{
			evIn(zero, geom.West),
			evOut(zero, geom.East),
		},
		Constraints:  []Constraint{Equal(0, 1)},
		Dependencies: []Dependency{{SinkPort: 0, SourcePort: 1}},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&breakEval{in: slots[0].Wire, out: slots[1].Wire, cell: cell}}
	})

	c.Register("Button", Data{
		Ports: []PortSpec{evOut(zero, geom.East)},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&buttonEval{out: slots[0].Wire}}
	})

	c.Register("Toggle", Data{
		Ports: []PortSpec{out(zero, geom.East)},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&toggleEval{out: slots[0].Wire}}
	})

	c.Register("Display", Data{
		Ports: []PortSpec{in(zero, geom.West)},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		return []Eval{&displayEval{in: slots[0].Wire}}
	})

	// Ram has two independently-addressable port groups (address,
	// write-event carrying the value to store, data-out) sharing one
	// backing store, the way original_source/.../chip/special.rs's
	// RAM_CHIP_DATA/RamChipEval pairs two ports against one Rc<RefCell>.
	c.Register("Ram", Data{
		Ports: []PortSpec{
			in(geom.Cell{}, geom.West),              // group A address
			evIn(geom.Cell{}, geom.North),            // group A write event
			out(geom.Cell{Y: 1}, geom.West),          // group A data out
			in(geom.Cell{X: 1, Y: 1}, geom.East),     // group B address
			evIn(geom.Cell{X: 1, Y: 1}, geom.South),  // group B write event
			out(geom.Cell{X: 1}, geom.East),          // group B data out
		},
		Constraints: []Constraint{
			AtMost(0, wiresize.Eight),
			AtMost(3, wiresize.Eight),
			AtLeast(1, wiresize.One),
			AtLeast(4, wiresize.One),
			Equal(0, 3),
			Equal(1, 4),
			Equal(2, 5),
			Equal(1, 2),
			Equal(4, 5),
		},
		Dependencies: []Dependency{
			{SinkPort: 0, SourcePort: 2},
			{SinkPort: 1, SourcePort: 2},
			{SinkPort: 3, SourcePort: 5},
			{SinkPort: 4, SourcePort: 5},
			{SinkPort: 1, SourcePort: 5},
			{SinkPort: 4, SourcePort: 2},
		},
	}, func(t Type, slots []Slot, cell geom.Cell) []Eval {
		store := newRAMStorage(uint(slots[0].Size.Bits()))
		return []Eval{
			&ramPortEval{store: store, addr: slots[0].Wire, we: slots[1].Wire, out: slots[2].Wire},
			&ramPortEval{store: store, addr: slots[3].Wire, we: slots[4].Wire, out: slots[5].Wire},
		}
	})
}
