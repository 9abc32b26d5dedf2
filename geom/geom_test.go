package geom

import "testing"

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		East: West, West: East, North: South, South: North,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	if d := East.Delta(); d != (Cell{X: 1, Y: 0}) {
		t.Errorf("East.Delta() = %v", d)
	}
	if d := North.Delta(); d != (Cell{X: 0, Y: -1}) {
		t.Errorf("North.Delta() = %v", d)
	}
}

func TestOrientationApplyRotation(t *testing.T) {
	o := MakeOrientation(1, false)
	if got := o.Apply(East); got != South {
		t.Errorf("rotate East by 1 = %v, want South", got)
	}
}

func TestOrientationApplySize(t *testing.T) {
	o := MakeOrientation(1, false)
	w, h := o.ApplySize(3, 5)
	if w != 5 || h != 3 {
		t.Errorf("ApplySize(3,5) with 90deg rotation = (%d,%d), want (5,3)", w, h)
	}
}

func TestOrientationComposeInverse(t *testing.T) {
	o := MakeOrientation(3, true)
	id := o.Then(o.Inverse())
	if id != Identity {
		t.Errorf("o.Then(o.Inverse()) = %v, want Identity", id)
	}
}

func TestFixedRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.5, -0.25, 0.999999} {
		f := FixedFromFloat64(v)
		if got := FixedFromEncoded(f.Encoded()); got != f {
			t.Errorf("FixedFromEncoded(Encoded(%v)) = %v, want %v", v, got, f)
		}
	}
}

func TestFixedSaturates(t *testing.T) {
	if got := FixedOne.Add(FixedOne); got != FixedOne {
		t.Errorf("FixedOne + FixedOne = %v, want saturated at FixedOne", got)
	}
	if got := FixedNegOne.Sub(FixedOne); got != FixedNegOne {
		t.Errorf("FixedNegOne - FixedOne = %v, want saturated at FixedNegOne", got)
	}
}

func TestFixedMulTruncatesTowardZero(t *testing.T) {
	half := FixedFromFloat64(0.5)
	quarter := half.Mul(half)
	if got := quarter.ToFloat64(); got < 0.24 || got > 0.26 {
		t.Errorf("0.5*0.5 = %v, want ~0.25", got)
	}
	// -2^-30 * 0.5 is -2^-31, which truncates toward zero to 0 rather
	// than rounding down to -2^-30.
	if got := Fixed(-1).Mul(half); got != 0 {
		t.Errorf("Fixed(-1)*0.5 = %d, want 0 (truncated toward zero)", got)
	}
}

func TestCellArithmetic(t *testing.T) {
	c := Cell{X: 2, Y: 3}
	d := Cell{X: 1, Y: -1}
	if got := c.Add(d); got != (Cell{X: 3, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Add(d).Sub(d); got != c {
		t.Errorf("Add then Sub did not round-trip: %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 4}
	if !r.Contains(Cell{X: 3, Y: 3}) {
		t.Error("expected (3,3) inside 4x4 rect")
	}
	if r.Contains(Cell{X: 4, Y: 0}) {
		t.Error("expected (4,0) outside 4x4 rect")
	}
}
