package wiresize

// Interval is an inclusive range [Lo, Hi] over the size lattice. An
// interval with Lo > Hi is Empty and represents an unsatisfiable size
// constraint.
type Interval struct {
	Lo, Hi Size
}

// Full is the unconstrained interval, the starting point for every
// wire before any constraint narrows it.
var Full = Interval{Lo: Zero, Hi: ThirtyTwo}

// Empty reports whether the interval is unsatisfiable.
func (iv Interval) Empty() bool {
	return iv.Lo > iv.Hi
}

// Ambiguous reports whether the interval has not yet narrowed to a
// single size.
func (iv Interval) Ambiguous() bool {
	return !iv.Empty() && iv.Lo < iv.Hi
}

// Resolved returns the size an ambiguous interval defaults to: its
// lower bound.
func (iv Interval) Resolved() Size {
	return iv.Lo
}

// MakeAtLeast narrows iv so its lower bound is at least min.
func (iv Interval) MakeAtLeast(min Size) Interval {
	if min > iv.Lo {
		iv.Lo = min
	}
	return iv
}

// MakeAtMost narrows iv so its upper bound is at most max.
func (iv Interval) MakeAtMost(max Size) Interval {
	if max < iv.Hi {
		iv.Hi = max
	}
	return iv
}

// Intersect narrows iv to the overlap with other.
func (iv Interval) Intersect(other Interval) Interval {
	lo := iv.Lo
	if other.Lo > lo {
		lo = other.Lo
	}
	hi := iv.Hi
	if other.Hi < hi {
		hi = other.Hi
	}
	return Interval{Lo: lo, Hi: hi}
}

// Half halves both bounds of the interval (floored at Zero).
func (iv Interval) Half() Interval {
	return Interval{Lo: iv.Lo.Half(), Hi: iv.Hi.Half()}
}

// Double doubles both bounds of the interval. If the lower bound cannot
// be doubled without exceeding ThirtyTwo, the result is Empty; an upper
// bound that cannot be doubled is capped at ThirtyTwo.
func (iv Interval) Double() Interval {
	lo, ok := iv.Lo.Double()
	if !ok {
		return Interval{Lo: One, Hi: Zero}
	}
	hi, ok := iv.Hi.Double()
	if !ok {
		hi = ThirtyTwo
	}
	return Interval{Lo: lo, Hi: hi}
}

// Equal reports whether two intervals have the same bounds.
func (iv Interval) Equal(other Interval) bool {
	return iv.Lo == other.Lo && iv.Hi == other.Hi
}
