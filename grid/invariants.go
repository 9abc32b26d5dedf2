package grid

import (
	"fmt"

	"github.com/sarchlab/tachygrid/geom"
)

// violation is one broken invariant, identified by its spec label
// (I1..I6) for diagnostics.
type violation struct {
	rule string
	msg  string
}

func (v violation) Error() string { return fmt.Sprintf("%s: %s", v.rule, v.msg) }

// checkInvariants verifies I1-I6 against the grid's current state.
// It returns the first violation found; callers that need repair
// instead of rejection use the individual check helpers directly.
func (g *Grid) checkInvariants() error {
	occupied := make(map[geom.Cell]geom.Cell) // footprint cell -> anchor

	for anchor, inst := range g.chips {
		for _, fc := range g.footprintCells(inst) {
			if !g.bounds.Contains(fc) {
				return violation{"I1", fmt.Sprintf("chip at %v has footprint cell %v outside bounds", anchor, fc)}
			}
			if other, exists := occupied[fc]; exists && other != anchor {
				return violation{"I5", fmt.Sprintf("chip footprints at %v and %v overlap at %v", other, anchor, fc)}
			}
			occupied[fc] = anchor
		}
	}

	for key := range g.fragments {
		if !g.bounds.Contains(key.Cell) {
			return violation{"I1", fmt.Sprintf("fragment at %v outside bounds", key.Cell)}
		}
		if _, isChip := occupied[key.Cell]; isChip {
			return violation{"I4", fmt.Sprintf("fragment at %v lies under a chip", key.Cell)}
		}
	}

	if err := g.checkFragmentConsistency(occupied); err != nil {
		return err
	}

	if err := g.checkInterfaceEnvelope(); err != nil {
		return err
	}

	return nil
}

// checkFragmentConsistency implements I3: within-cell shape agreement
// and cross-cell opposite-fragment reconciliation. occupied is the set
// of cells a chip footprint covers: a fragment facing into one is
// presumed to terminate at that chip's port, not at another fragment
// (wire derivation separately verifies the port actually lands there).
func (g *Grid) checkFragmentConsistency(occupied map[geom.Cell]geom.Cell) error {
	for key, shape := range g.fragments {
		for _, rd := range shape.Connections(key.Dir) {
			other, ok := g.fragments[FragmentKey{Cell: key.Cell, Dir: rd}]
			if !ok {
				return violation{"I3", fmt.Sprintf("cell %v: %v fragment at %v needs a fragment at %v", key.Cell, shape, key.Dir, rd)}
			}
			if !contains(other.Connections(rd), key.Dir) {
				return violation{"I3", fmt.Sprintf("cell %v: fragments at %v and %v are not mutually consistent", key.Cell, key.Dir, rd)}
			}
		}

		neighbor := key.Cell.Step(key.Dir)
		if !g.bounds.Contains(neighbor) {
			// A fragment facing off the edge of the board is a
			// boundary attachment point (an interface pin, or simply
			// a dangling stub) rather than a broken interior joint:
			// it has no opposite to reconcile against.
			continue
		}
		if _, isChip := occupied[neighbor]; isChip {
			// Terminates at a chip's port instead of another fragment.
			continue
		}
		oppKey := FragmentKey{Cell: neighbor, Dir: key.Dir.Opposite()}
		oppShape, hasOpp := g.fragments[oppKey]
		if !hasOpp {
			return violation{"I3", fmt.Sprintf("fragment at (%v,%v) has no opposite at (%v,%v)", key.Cell, key.Dir, neighbor, key.Dir.Opposite())}
		}
		if (shape == Stub) != (oppShape == Stub) {
			return violation{"I3", fmt.Sprintf("fragment at (%v,%v) and its opposite disagree on stub-ness", key.Cell, key.Dir)}
		}
	}
	return nil
}

// checkInterfaceEnvelope implements I6: the bounds rectangle must be
// at least as large as the puzzle's minimum interface envelope. The
// core treats "minimum envelope" as one cell per declared Interface,
// since the exact per-puzzle layout (side, anchor, port count) is
// host-supplied data rather than a core contract (spec.md's Non-goal
// on "the exact catalog of puzzles").
func (g *Grid) checkInterfaceEnvelope() error {
	minCells := int64(len(g.interfaces))
	if minCells == 0 {
		return nil
	}
	if g.bounds.Area() < minCells {
		return violation{"I6", fmt.Sprintf("bounds %v too small for %d puzzle interfaces", g.bounds, minCells)}
	}
	for _, iface := range g.interfaces {
		if !g.bounds.Contains(iface.Anchor) {
			return violation{"I6", fmt.Sprintf("interface anchor %v outside bounds %v", iface.Anchor, g.bounds)}
		}
	}
	return nil
}

// repair drops fragments violating (I1)-(I5) and inserts Stub
// fragments to reconcile missing opposites, per spec.md §4.4's
// "Repair at load". It never touches the chip map: a chip placed
// outside bounds or overlapping another is a caller error, not
// something repair silently fixes.
func (g *Grid) repair() {
	occupied := make(map[geom.Cell]bool)
	for _, inst := range g.chips {
		for _, fc := range g.footprintCells(inst) {
			occupied[fc] = true
		}
	}

	for key, shape := range g.fragments {
		if !g.bounds.Contains(key.Cell) || occupied[key.Cell] {
			delete(g.fragments, key)
			continue
		}
		g.downgradeIfUnreconcilable(key, shape)
	}

	for key := range g.fragments {
		neighbor := key.Cell.Step(key.Dir)
		oppKey := FragmentKey{Cell: neighbor, Dir: key.Dir.Opposite()}
		if _, ok := g.fragments[oppKey]; ok {
			continue
		}
		if !g.bounds.Contains(neighbor) || occupied[neighbor] {
			// No room for a reconciling stub either: downgrade this
			// fragment itself so it no longer demands an opposite.
			g.fragments[key] = Stub
			continue
		}
		g.fragments[oppKey] = Stub
	}
}

// downgradeIfUnreconcilable replaces shape at key with Stub if its
// required internal connections cannot be satisfied by what is
// actually present at the cell (e.g. a TurnLeft whose required
// adjacent side is absent), per spec.md §4.4.
func (g *Grid) downgradeIfUnreconcilable(key FragmentKey, shape Shape) {
	for _, rd := range shape.Connections(key.Dir) {
		other, ok := g.fragments[FragmentKey{Cell: key.Cell, Dir: rd}]
		if !ok || !contains(other.Connections(rd), key.Dir) {
			g.fragments[key] = Stub
			return
		}
	}
}
