// Package strategy loads named AI strategy presets from an XML file, in the
// same encoding/xml style a match equity table is loaded in: a root element
// holding a flat list of named entries.
package strategy

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Preset is one named set of search coefficients: the dice-ratio weight and
// the per-ply patience discount.
type Preset struct {
	Name           string
	CoeffDiceRatio float64
	Patience       float64
}

// Table is a set of presets indexed by name.
type Table struct {
	Presets map[string]Preset
}

type xmlTable struct {
	XMLName  xml.Name    `xml:"strategies"`
	Strategy []xmlPreset `xml:"strategy"`
}

type xmlPreset struct {
	Name           string  `xml:"name,attr"`
	CoeffDiceRatio float64 `xml:"coeffDiceRatio"`
	Patience       float64 `xml:"patience"`
}

// LoadXML loads a strategy table from an XML file on disk.
func LoadXML(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("strategy: open %s: %w", filename, err)
	}
	defer f.Close()
	return ParseXML(f)
}

// ParseXML parses a strategy table from an XML document.
func ParseXML(r io.Reader) (*Table, error) {
	var doc xmlTable
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("strategy: parse xml: %w", err)
	}
	t := &Table{Presets: make(map[string]Preset, len(doc.Strategy))}
	for _, p := range doc.Strategy {
		if p.Name == "" {
			return nil, fmt.Errorf("strategy: preset missing name attribute")
		}
		t.Presets[p.Name] = Preset{
			Name:           p.Name,
			CoeffDiceRatio: p.CoeffDiceRatio,
			Patience:       p.Patience,
		}
	}
	return t, nil
}

// Get looks up a preset by name.
func (t *Table) Get(name string) (Preset, bool) {
	p, ok := t.Presets[name]
	return p, ok
}

// Default returns a table containing only the engine's built-in default
// preset: coeffDiceRatio 1.0, patience 0.95.
func Default() *Table {
	return &Table{
		Presets: map[string]Preset{
			"default": {Name: "default", CoeffDiceRatio: 1.0, Patience: 0.95},
		},
	}
}
