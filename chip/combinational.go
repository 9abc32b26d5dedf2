package chip

import "github.com/sarchlab/tachygrid/wiresize"

// constEval outputs a fixed value every cycle.
type constEval struct {
	NoReset
	out   wiresize.WireID
	value uint32
}

func (e *constEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *constEval) Step(ctx *Context) {
	ctx.Bank.WriteBehavior(e.out, e.value)
}

// packEval combines two same-size inputs into one double-size output
// whenever either input changes.
type packEval struct {
	NoReset
	in1, in2, out wiresize.WireID
	n             uint
}

func (e *packEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *packEval) Step(ctx *Context) {
	if !ctx.Bank.BehaviorChanged(e.in1) && !ctx.Bank.BehaviorChanged(e.in2) && !ctx.FirstCycle {
		return
	}
	low := ctx.Bank.ReadBehavior(e.in1)
	high := ctx.Bank.ReadBehavior(e.in2)
	ctx.Bank.WriteBehavior(e.out, low|(high<<e.n))
}

// unpackEval splits a double-size input into two same-size outputs.
type unpackEval struct {
	NoReset
	in          wiresize.WireID
	out1, out2  wiresize.WireID
	n           uint
	mask        uint32
}

func (e *unpackEval) Writes() []wiresize.WireID {
	return []wiresize.WireID{e.out1, e.out2}
}

func (e *unpackEval) Step(ctx *Context) {
	v := ctx.Bank.ReadBehavior(e.in)
	ctx.Bank.WriteBehavior(e.out1, v&e.mask)
	ctx.Bank.WriteBehavior(e.out2, v>>e.n)
}

// binaryOpEval implements any chip of the shape "two same-size Sinks,
// one same-size Source", parameterized by the operation and an
// optional output mask (arithmetic/bitwise chips wrap modulo the
// wire's mask; comparisons produce a size-One 0/1 result).
type binaryOpEval struct {
	NoReset
	a, b, out wiresize.WireID
	mask      uint32
	op        func(a, b uint32) uint32
}

func (e *binaryOpEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *binaryOpEval) Step(ctx *Context) {
	a := ctx.Bank.ReadBehavior(e.a)
	b := ctx.Bank.ReadBehavior(e.b)
	ctx.Bank.WriteBehavior(e.out, e.op(a, b)&e.mask)
}

func opAdd(a, b uint32) uint32 { return a + b }
func opSub(a, b uint32) uint32 { return a - b }
func opMul(a, b uint32) uint32 { return a * b }
func opAnd(a, b uint32) uint32 { return a & b }
func opOr(a, b uint32) uint32  { return a | b }
func opXor(a, b uint32) uint32 { return a ^ b }

func boolToU32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

func opLess(a, b uint32) uint32    { return boolToU32(a < b) }
func opLessEq(a, b uint32) uint32  { return boolToU32(a <= b) }
func opEqual(a, b uint32) uint32   { return boolToU32(a == b) }

// notEval implements the unary bitwise complement.
type notEval struct {
	NoReset
	in, out wiresize.WireID
	mask    uint32
}

func (e *notEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *notEval) Step(ctx *Context) {
	ctx.Bank.WriteBehavior(e.out, (^ctx.Bank.ReadBehavior(e.in))&e.mask)
}

// muxEval picks in1 when control is 0, else in2.
type muxEval struct {
	NoReset
	in1, in2, control, out wiresize.WireID
}

func (e *muxEval) Writes() []wiresize.WireID { return []wiresize.WireID{e.out} }

func (e *muxEval) Step(ctx *Context) {
	if ctx.Bank.ReadBehavior(e.control) == 0 {
		ctx.Bank.WriteBehavior(e.out, ctx.Bank.ReadBehavior(e.in1))
	} else {
		ctx.Bank.WriteBehavior(e.out, ctx.Bank.ReadBehavior(e.in2))
	}
}
