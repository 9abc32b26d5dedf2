// Package circio reads and writes the on-disk circuit document format:
// a YAML document naming a puzzle, a board size, placed chips and wire
// fragments, convertible to and from a *grid.Grid (SPEC_FULL.md §9 /
// spec.md §6).
package circio

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sarchlab/tachygrid/geom"
)

var deltaPattern = regexp.MustCompile(`^([pm])X(\d+)([pm])Y(\d+)$`)

// formatDelta renders a cell offset as a delta key: a sign letter
// ('p' for non-negative, 'm' for negative) and magnitude for each
// axis, e.g. Cell{X: 1, Y: -2} is "pX1mY2".
func formatDelta(c geom.Cell) string {
	return fmt.Sprintf("%sX%d%sY%d", signLetter(c.X), abs32(c.X), signLetter(c.Y), abs32(c.Y))
}

// parseDelta is the inverse of formatDelta.
func parseDelta(s string) (geom.Cell, error) {
	m := deltaPattern.FindStringSubmatch(s)
	if m == nil {
		return geom.Cell{}, fmt.Errorf("circio: invalid delta key %q", s)
	}
	x, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return geom.Cell{}, fmt.Errorf("circio: invalid delta key %q: %w", s, err)
	}
	y, err := strconv.ParseInt(m[4], 10, 32)
	if err != nil {
		return geom.Cell{}, fmt.Errorf("circio: invalid delta key %q: %w", s, err)
	}
	if m[1] == "m" {
		x = -x
	}
	if m[3] == "m" {
		y = -y
	}
	return geom.Cell{X: int32(x), Y: int32(y)}, nil
}

func signLetter(v int32) string {
	if v < 0 {
		return "m"
	}
	return "p"
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

var dirLetters = map[geom.Direction]byte{
	geom.East: 'E', geom.South: 'S', geom.West: 'W', geom.North: 'N',
}

var lettersToDir = map[byte]geom.Direction{
	'E': geom.East, 'S': geom.South, 'W': geom.West, 'N': geom.North,
}

// formatWireKey names a fragment slot: its cell's delta key followed
// by a single letter for the side it occupies.
func formatWireKey(cell geom.Cell, dir geom.Direction) string {
	return fmt.Sprintf("%s%c", formatDelta(cell), dirLetters[dir])
}

// parseWireKey is the inverse of formatWireKey.
func parseWireKey(s string) (geom.Cell, geom.Direction, error) {
	if len(s) < 2 {
		return geom.Cell{}, 0, fmt.Errorf("circio: invalid wire key %q", s)
	}
	dir, ok := lettersToDir[s[len(s)-1]]
	if !ok {
		return geom.Cell{}, 0, fmt.Errorf("circio: invalid wire key %q: unknown side letter", s)
	}
	cell, err := parseDelta(s[:len(s)-1])
	if err != nil {
		return geom.Cell{}, 0, fmt.Errorf("circio: invalid wire key %q: %w", s, err)
	}
	return cell, dir, nil
}

var orientPattern = regexp.MustCompile(`^([ft])([0-3])$`)

// formatOrientation renders an orientation as two characters: a mirror
// flag ('t' mirrored, 'f' not) followed by the rotation digit.
func formatOrientation(o geom.Orientation) string {
	flag := byte('f')
	if o.Mirror {
		flag = 't'
	}
	return fmt.Sprintf("%c%d", flag, o.Rotation)
}

// parseOrientation is the inverse of formatOrientation.
func parseOrientation(s string) (geom.Orientation, error) {
	m := orientPattern.FindStringSubmatch(s)
	if m == nil {
		return geom.Orientation{}, fmt.Errorf("circio: invalid orientation string %q", s)
	}
	rot, _ := strconv.Atoi(m[2])
	return geom.MakeOrientation(rot, m[1] == "t"), nil
}
