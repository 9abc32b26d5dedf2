package grid

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tachygrid/geom"
)

// clone makes a deep-enough copy of the mutable grid state for
// speculative application: the chip and fragment maps are copied, so
// a rolled-back batch never mutates the live grid.
func (g *Grid) clone() *Grid {
	clone := &Grid{
		puzzleID:   g.puzzleID,
		interfaces: g.interfaces,
		catalog:    g.catalog,
		bounds:     g.bounds,
		chips:      make(map[geom.Cell]Instance, len(g.chips)),
		fragments:  make(map[FragmentKey]Shape, len(g.fragments)),
	}
	for k, v := range g.chips {
		clone.chips[k] = v
	}
	for k, v := range g.fragments {
		clone.fragments[k] = v
	}
	return clone
}

// TryMutate applies changes in order to a speculative copy of the
// grid, re-checks every invariant, and either commits the result
// (returning true) or rolls back the entire batch (returning false)
// with the grid left exactly as it was, per spec.md §4.4.
func (g *Grid) TryMutate(changes []Change) bool {
	staged := g.clone()

	for _, c := range changes {
		if err := c.apply(staged); err != nil {
			g.InvokeHook(sim.HookCtx{Domain: g, Pos: HookPosMutationRejected, Item: err})
			return false
		}
	}

	if err := staged.checkInvariants(); err != nil {
		g.InvokeHook(sim.HookCtx{Domain: g, Pos: HookPosMutationRejected, Item: err})
		return false
	}

	g.chips = staged.chips
	g.fragments = staged.fragments
	g.bounds = staged.bounds
	g.wiresDirty = true

	g.InvokeHook(sim.HookCtx{Domain: g, Pos: HookPosMutated, Item: changes})
	return true
}
