package wiresize

import "testing"

func TestResolvePackUnpackSizes(t *testing.T) {
	// Pack: two inputs of size n, one output of size 2n.
	const (
		in1 WireID = iota
		in2
		out
	)
	ids := []WireID{in1, in2, out}

	// (One, One, Two) should resolve.
	cs := []Constraint{
		Exact(in1, One),
		Exact(in2, One),
		DoubleOf(out, in1),
		Equal(in1, in2),
	}
	ivs, errs := Resolve(ids, cs, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if ivs[out].Resolved() != Two {
		t.Errorf("out resolved to %v, want Two", ivs[out].Resolved())
	}

	// (One, Two, Two) should fail: Equal(in1, in2) forces conflict.
	cs2 := []Constraint{
		Exact(in1, One),
		Exact(in2, Two),
		DoubleOf(out, in1),
		Equal(in1, in2),
	}
	_, errs2 := Resolve(ids, cs2, nil)
	if len(errs2) == 0 {
		t.Error("expected a size conflict for (One, Two, Two)")
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	const (
		a WireID = iota
		b
		c
	)
	ids := []WireID{a, b, c}
	forward := []Constraint{AtLeast(a, Two), Equal(a, b), AtMost(b, Four), Equal(b, c)}
	backward := []Constraint{Equal(b, c), AtMost(b, Four), Equal(a, b), AtLeast(a, Two)}

	r1, _ := Resolve(ids, forward, nil)
	r2, _ := Resolve(ids, backward, nil)

	for _, id := range ids {
		if !r1[id].Equal(r2[id]) {
			t.Errorf("wire %d: forward=%v backward=%v, resolution should be order independent", id, r1[id], r2[id])
		}
	}
}

func TestIntervalEmptyAndAmbiguous(t *testing.T) {
	if (Interval{Lo: Four, Hi: Two}).Empty() != true {
		t.Error("Lo>Hi should be Empty")
	}
	if (Interval{Lo: One, Hi: Four}).Ambiguous() != true {
		t.Error("Lo<Hi should be Ambiguous")
	}
	if (Interval{Lo: Four, Hi: Four}).Ambiguous() {
		t.Error("Lo==Hi should not be Ambiguous")
	}
}

func TestMinForValue(t *testing.T) {
	if got := MinForValue(0); got != Zero {
		t.Errorf("MinForValue(0) = %v, want Zero", got)
	}
	if got := MinForValue(1); got != One {
		t.Errorf("MinForValue(1) = %v, want One", got)
	}
	if got := MinForValue(0xFF); got != Eight {
		t.Errorf("MinForValue(0xFF) = %v, want Eight", got)
	}
	if got := MinForValue(0x100); got != Sixteen {
		t.Errorf("MinForValue(0x100) = %v, want Sixteen", got)
	}
}
