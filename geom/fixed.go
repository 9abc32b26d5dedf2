package geom

// Fixed is a signed fixed-point value in [-1, 1], represented by a
// 32-bit integer with FixedOne (2^30) standing for 1.0. It backs
// analog wire ports.
type Fixed int32

// FixedScale is 2^30, the encoded value of 1.0.
const FixedScale = 1 << 30

// FixedOne and FixedNegOne are the encoded bounds of the representable
// range.
const (
	FixedOne    Fixed = FixedScale
	FixedNegOne Fixed = -FixedScale
	FixedZero   Fixed = 0
)

// FixedFromFloat64 clamps x into [-1, 1] and encodes it.
func FixedFromFloat64(x float64) Fixed {
	if x > 1 {
		x = 1
	}
	if x < -1 {
		x = -1
	}
	return Fixed(x * FixedScale)
}

// ToFloat64 decodes the fixed-point value back to a float64.
func (f Fixed) ToFloat64() float64 {
	return float64(f) / FixedScale
}

// Encoded returns the raw encoded integer.
func (f Fixed) Encoded() int32 {
	return int32(f)
}

// FixedFromEncoded reconstructs a Fixed from a previously-encoded
// integer, clamping it into range the way the original constructor
// does, so round-tripping through Encoded/FixedFromEncoded is exact.
func FixedFromEncoded(v int32) Fixed {
	if v > int32(FixedOne) {
		v = int32(FixedOne)
	}
	if v < int32(FixedNegOne) {
		v = int32(FixedNegOne)
	}
	return Fixed(v)
}

// Add saturates at the representable bounds instead of overflowing.
func (f Fixed) Add(other Fixed) Fixed {
	sum := int64(f) + int64(other)
	return saturate(sum)
}

// Sub saturates at the representable bounds instead of overflowing.
func (f Fixed) Sub(other Fixed) Fixed {
	diff := int64(f) - int64(other)
	return saturate(diff)
}

// Mul multiplies via a 64-bit intermediate, dividing by 2^30
// (truncating toward zero) to rescale the product back into Fixed's
// fixed point.
func (f Fixed) Mul(other Fixed) Fixed {
	product := int64(f) * int64(other)
	return saturate(product / FixedScale)
}

// FixedShift is the number of fractional bits in the representation.
const FixedShift = 30

func saturate(v int64) Fixed {
	if v > int64(FixedOne) {
		return FixedOne
	}
	if v < int64(FixedNegOne) {
		return FixedNegOne
	}
	return Fixed(v)
}
