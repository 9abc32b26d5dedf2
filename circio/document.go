package circio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/grid"
	"github.com/sarchlab/tachygrid/puzzle"
)

// ChipDoc is one placed chip: its type identifier (chip.Type.String
// form, e.g. "Const(5)") and its orientation string.
type ChipDoc struct {
	Type   string `yaml:"type"`
	Orient string `yaml:"orient"`
}

// Document is the on-disk shape of a circuit: the puzzle it solves,
// the board size, the placed chips keyed by their anchor's delta key,
// and the wire fragments keyed by wire key (SPEC_FULL.md §9).
type Document struct {
	Puzzle string `yaml:"puzzle"`
	Size   struct {
		Width  int32 `yaml:"width"`
		Height int32 `yaml:"height"`
	} `yaml:"size"`
	Chips map[string]ChipDoc `yaml:"chips"`
	Wires map[string]string  `yaml:"wires"`
}

// Load reads and parses a circuit document from path, then builds it
// into a *grid.Grid against catalog and interfaces. Like the rest of
// this package's parsing, decoding failures are recovered internally
// and returned as an error rather than propagated as a panic.
func Load(path string, catalog *chip.Catalog, interfaces []puzzle.Interface) (g *grid.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, fmt.Errorf("circio: load %s: %v", path, r)
		}
	}()

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		panic(fmt.Sprintf("read document: %v", readErr))
	}

	var doc Document
	if unmarshalErr := yaml.Unmarshal(data, &doc); unmarshalErr != nil {
		panic(fmt.Sprintf("parse document: %v", unmarshalErr))
	}

	return doc.Build(catalog, interfaces)
}

// Save derives a Document from a grid's current state and writes it to
// path as YAML.
func Save(path string, g *grid.Grid) error {
	doc, err := FromGrid(g)
	if err != nil {
		return fmt.Errorf("circio: save %s: %w", path, err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("circio: save %s: marshal document: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("circio: save %s: %w", path, err)
	}
	return nil
}

// Build converts a parsed Document into a validated *grid.Grid,
// running the same repair-and-check pipeline as any other grid
// construction path.
func (doc Document) Build(catalog *chip.Catalog, interfaces []puzzle.Interface) (*grid.Grid, error) {
	bounds := geom.Rect{W: doc.Size.Width, H: doc.Size.Height}

	var chips []grid.Instance
	for key, cd := range doc.Chips {
		cell, err := parseDelta(key)
		if err != nil {
			return nil, fmt.Errorf("circio: chip key: %w", err)
		}
		t, err := chip.ParseType(cd.Type)
		if err != nil {
			return nil, fmt.Errorf("circio: chip at %s: %w", key, err)
		}
		orient := geom.Identity
		if cd.Orient != "" {
			orient, err = parseOrientation(cd.Orient)
			if err != nil {
				return nil, fmt.Errorf("circio: chip at %s: %w", key, err)
			}
		}
		chips = append(chips, grid.Instance{Cell: cell, Type: t, Orient: orient})
	}

	fragments := make(map[grid.FragmentKey]grid.Shape, len(doc.Wires))
	for key, shapeName := range doc.Wires {
		cell, dir, err := parseWireKey(key)
		if err != nil {
			return nil, fmt.Errorf("circio: wire key: %w", err)
		}
		shape, err := grid.ParseShape(shapeName)
		if err != nil {
			return nil, fmt.Errorf("circio: wire at %s: %w", key, err)
		}
		fragments[grid.FragmentKey{Cell: cell, Dir: dir}] = shape
	}

	return grid.New(doc.Puzzle, interfaces, catalog, bounds, chips, fragments)
}

// FromGrid derives a Document from a grid's current chip and fragment
// state, the inverse of Build.
func FromGrid(g *grid.Grid) (Document, error) {
	var doc Document
	doc.Puzzle = g.PuzzleID()
	doc.Size.Width = g.Bounds().W
	doc.Size.Height = g.Bounds().H

	chips := g.Chips()
	doc.Chips = make(map[string]ChipDoc, len(chips))
	for cell, inst := range chips {
		doc.Chips[formatDelta(cell)] = ChipDoc{
			Type:   inst.Type.String(),
			Orient: formatOrientation(inst.Orient),
		}
	}

	fragments := g.Fragments()
	doc.Wires = make(map[string]string, len(fragments))
	for key, shape := range fragments {
		doc.Wires[formatWireKey(key.Cell, key.Dir)] = shape.String()
	}

	return doc, nil
}
