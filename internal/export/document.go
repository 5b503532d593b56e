// Package export renders a parsed map for downstream consumers: a stable
// YAML or JSON document, or a human-readable summary.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/flyin/internal/flymap"
)

// Document is the serialized form of a ParsedMap. Zones appear in
// declaration order and connections once per undirected pair.
type Document struct {
	DroneCount  int              `yaml:"nb_drones" json:"nb_drones"`
	Zones       []ZoneSpec       `yaml:"zones" json:"zones"`
	Connections []ConnectionSpec `yaml:"connections" json:"connections"`
}

// ZoneSpec holds a single zone's data.
type ZoneSpec struct {
	Name      string `yaml:"name" json:"name"`
	Role      string `yaml:"role" json:"role"`
	X         int    `yaml:"x" json:"x"`
	Y         int    `yaml:"y" json:"y"`
	Type      string `yaml:"type" json:"type"`
	Color     string `yaml:"color,omitempty" json:"color,omitempty"`
	MaxDrones int    `yaml:"max_drones" json:"max_drones"`
	Passable  bool   `yaml:"passable" json:"passable"`
	// Cost is nil for impassable zones.
	Cost      *float64 `yaml:"cost" json:"cost"`
	Neighbors []string `yaml:"neighbors,omitempty" json:"neighbors,omitempty"`
}

// ConnectionSpec holds a single undirected link.
type ConnectionSpec struct {
	A               string `yaml:"a" json:"a"`
	B               string `yaml:"b" json:"b"`
	MaxLinkCapacity int    `yaml:"max_link_capacity" json:"max_link_capacity"`
}

// FromMap converts a ParsedMap into a Document.
//
// Precondition: m must be non-nil.
// Postcondition: Returns a Document with non-nil Zones and Connections slices.
func FromMap(m *flymap.ParsedMap) *Document {
	doc := &Document{
		DroneCount:  m.DroneCount,
		Zones:       make([]ZoneSpec, 0, len(m.Zones)),
		Connections: make([]ConnectionSpec, 0, m.ConnectionCount()),
	}
	for _, name := range m.ZoneNames() {
		z := m.Zones[name]
		zt := z.Metadata.ZoneType
		spec := ZoneSpec{
			Name:      z.Name,
			Role:      string(z.Role),
			X:         z.Coordinates.X,
			Y:         z.Coordinates.Y,
			Type:      zt.String(),
			Color:     z.Metadata.Color,
			MaxDrones: z.Metadata.MaxDrones,
			Passable:  zt.IsPassable(),
		}
		if spec.Passable {
			cost := zt.Cost()
			spec.Cost = &cost
		}
		if n := m.Neighbors(name); len(n) > 0 {
			spec.Neighbors = n
		}
		doc.Zones = append(doc.Zones, spec)
	}
	for _, c := range m.Pairs() {
		doc.Connections = append(doc.Connections, ConnectionSpec{
			A:               c.A,
			B:               c.B,
			MaxLinkCapacity: c.Metadata.MaxLinkCapacity,
		})
	}
	return doc
}

// EncodeYAML writes doc to w as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding map YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding map YAML: %w", err)
	}
	return nil
}

// EncodeJSON writes doc to w as indented JSON.
func EncodeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding map JSON: %w", err)
	}
	return nil
}

// DecodeYAML reads a Document previously written by EncodeYAML.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing map YAML: %w", err)
	}
	return &doc, nil
}
