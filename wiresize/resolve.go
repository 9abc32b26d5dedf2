package wiresize

import "fmt"

// WireID identifies a wire within a single resolution run. The grid
// package assigns these; wiresize itself is agnostic to what a wire
// actually is.
type WireID int

// ConstraintKind tags which shape a Constraint takes.
type ConstraintKind int

const (
	// KindExact pins Wire to exactly Size.
	KindExact ConstraintKind = iota
	// KindAtLeast requires Wire >= Size.
	KindAtLeast
	// KindAtMost requires Wire <= Size.
	KindAtMost
	// KindEqual requires Wire and Other to carry the same size.
	KindEqual
	// KindDouble requires Wire (the "big" wire) to be exactly double
	// the size of Other (the "small" wire).
	KindDouble
)

// Constraint is one narrowing rule contributed by a chip or interface
// port. See SPEC_FULL.md §2 for the full semantics of each kind.
type Constraint struct {
	Kind  ConstraintKind
	Wire  WireID
	Other WireID // used by KindEqual and KindDouble
	Size  Size   // used by KindExact, KindAtLeast, KindAtMost
}

// Exact builds a Constraint pinning wire to size.
func Exact(wire WireID, size Size) Constraint {
	return Constraint{Kind: KindExact, Wire: wire, Size: size}
}

// AtLeast builds a Constraint requiring wire >= size.
func AtLeast(wire WireID, size Size) Constraint {
	return Constraint{Kind: KindAtLeast, Wire: wire, Size: size}
}

// AtMost builds a Constraint requiring wire <= size.
func AtMost(wire WireID, size Size) Constraint {
	return Constraint{Kind: KindAtMost, Wire: wire, Size: size}
}

// Equal builds a Constraint requiring a and b to unify to the same
// size.
func Equal(a, b WireID) Constraint {
	return Constraint{Kind: KindEqual, Wire: a, Other: b}
}

// DoubleOf builds a Constraint requiring big to be exactly double the
// size of small.
func DoubleOf(big, small WireID) Constraint {
	return Constraint{Kind: KindDouble, Wire: big, Other: small}
}

// ConflictError reports that a wire's resolved interval became empty.
type ConflictError struct {
	Wire WireID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("wire %d: size constraints are unsatisfiable", e.Wire)
}

// Resolve narrows the interval of every wire named in constraints to a
// fixed point, starting every wire at Full unless seeded otherwise in
// initial. It mutates and returns a map from WireID to its resolved
// Interval. Wires whose final interval is empty are reported, in wire
// id order, as ConflictErrors; resolution still completes for every
// other wire.
//
// Applying the constraint set in any order converges to the same
// final assignment: each step only narrows an interval (intersects,
// halves or doubles it against another already-narrowed interval), so
// the fixed point is the greatest lower bound of all orderings and is
// independent of application order.
func Resolve(wireIDs []WireID, constraints []Constraint, initial map[WireID]Interval) (map[WireID]Interval, []error) {
	ivs := make(map[WireID]Interval, len(wireIDs))
	for _, id := range wireIDs {
		ivs[id] = Full
	}
	for id, iv := range initial {
		ivs[id] = iv
	}

	for {
		changed := false
		for _, c := range constraints {
			switch c.Kind {
			case KindExact:
				before := ivs[c.Wire]
				narrowed := before.MakeAtLeast(c.Size).MakeAtMost(c.Size)
				if !narrowed.Equal(before) {
					ivs[c.Wire] = narrowed
					changed = true
				}
			case KindAtLeast:
				before := ivs[c.Wire]
				narrowed := before.MakeAtLeast(c.Size)
				if !narrowed.Equal(before) {
					ivs[c.Wire] = narrowed
					changed = true
				}
			case KindAtMost:
				before := ivs[c.Wire]
				narrowed := before.MakeAtMost(c.Size)
				if !narrowed.Equal(before) {
					ivs[c.Wire] = narrowed
					changed = true
				}
			case KindEqual:
				a, b := ivs[c.Wire], ivs[c.Other]
				merged := a.Intersect(b)
				if !merged.Equal(a) {
					ivs[c.Wire] = merged
					changed = true
				}
				if !merged.Equal(b) {
					ivs[c.Other] = merged
					changed = true
				}
			case KindDouble:
				big, small := ivs[c.Wire], ivs[c.Other]
				doubledSmall := small.Double()
				narrowedBig := big.Intersect(doubledSmall)
				if !narrowedBig.Equal(big) {
					ivs[c.Wire] = narrowedBig
					changed = true
				}
				halvedBig := big.Half()
				narrowedSmall := small.Intersect(halvedBig)
				if !narrowedSmall.Equal(small) {
					ivs[c.Other] = narrowedSmall
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	var errs []error
	for _, id := range wireIDs {
		if ivs[id].Empty() {
			errs = append(errs, &ConflictError{Wire: id})
		}
	}
	return ivs, errs
}
