package chip

import (
	"fmt"
	"regexp"
	"strconv"
)

// Type identifies a chip type by its textual name (SPEC_FULL.md §3 /
// spec.md §6) plus, for Const, its constant parameter.
type Type struct {
	Name  string
	Const uint16 // only meaningful when Name == "Const"
}

var constPattern = regexp.MustCompile(`^Const\((\d+)\)$`)

var knownNames = map[string]bool{
	"Add": true, "And": true, "Break": true, "Button": true, "Clock": true,
	"Cmp": true, "CmpEq": true, "Delay": true, "Discard": true,
	"Display": true, "Eq": true, "Join": true, "Latest": true, "Mul": true,
	"Mux": true, "Not": true, "Or": true, "Pack": true, "Ram": true,
	"Sample": true, "Sub": true, "Toggle": true, "Unpack": true, "Xor": true,
}

// ParseType parses a chip-type identifier exactly, including the
// parenthesized Const(<u16>) form.
func ParseType(s string) (Type, error) {
	if m := constPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseUint(m[1], 10, 16)
		if err != nil {
			return Type{}, fmt.Errorf("chip: invalid Const parameter in %q: %w", s, err)
		}
		return Type{Name: "Const", Const: uint16(v)}, nil
	}
	if knownNames[s] {
		return Type{Name: s}, nil
	}
	return Type{}, fmt.Errorf("chip: unknown chip type identifier %q", s)
}

// String renders the chip type back to its identifier form; parsing
// then formatting any valid identifier reproduces it exactly.
func (t Type) String() string {
	if t.Name == "Const" {
		return fmt.Sprintf("Const(%d)", t.Const)
	}
	return t.Name
}
