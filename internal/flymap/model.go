// Package flymap parses drone-delivery map files into a validated graph:
// zones keyed by name and symmetric connections between them.
package flymap

import (
	"fmt"
	"math"
	"sort"
)

// ZoneType classifies how drones may move through a zone.
type ZoneType int

// Zone types in the order they appear in map files.
const (
	Normal ZoneType = iota
	Blocked
	Restricted
	Priority
)

var zoneTypeNames = [...]string{
	Normal:     "normal",
	Blocked:    "blocked",
	Restricted: "restricted",
	Priority:   "priority",
}

// ZoneTypes lists every zone type.
var ZoneTypes = []ZoneType{Normal, Blocked, Restricted, Priority}

// ParseZoneType resolves a map-file zone type name.
//
// Postcondition: Returns the matching ZoneType, or an error wrapping ErrUnknownZoneType.
func ParseZoneType(s string) (ZoneType, error) {
	for _, zt := range ZoneTypes {
		if zoneTypeNames[zt] == s {
			return zt, nil
		}
	}
	return Normal, fmt.Errorf("%w %q (allowed: %s)", ErrUnknownZoneType, s, joinNames(zoneTypeNames[:]))
}

// String returns the map-file spelling of the zone type.
func (z ZoneType) String() string {
	if z < 0 || int(z) >= len(zoneTypeNames) {
		return fmt.Sprintf("ZoneType(%d)", int(z))
	}
	return zoneTypeNames[z]
}

// Cost is the movement cost of entering a zone of this type.
// Blocked zones cost +Inf.
func (z ZoneType) Cost() float64 {
	switch z {
	case Restricted:
		return 2.0
	case Blocked:
		return math.Inf(1)
	default:
		return 1.0
	}
}

// IsPassable reports whether drones may enter a zone of this type.
func (z ZoneType) IsPassable() bool {
	return z != Blocked
}

// MarshalText implements encoding.TextMarshaler.
func (z ZoneType) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *ZoneType) UnmarshalText(text []byte) error {
	zt, err := ParseZoneType(string(text))
	if err != nil {
		return err
	}
	*z = zt
	return nil
}

// HubRole is the role a zone was declared with.
type HubRole string

// Hub roles, named after their declaration keywords.
const (
	StartHub HubRole = "start_hub"
	EndHub   HubRole = "end_hub"
	Hub      HubRole = "hub"
)

// Point is an integer map coordinate.
type Point struct {
	X int
	Y int
}

// ZoneMetadata holds the bracketed attributes of a hub declaration.
type ZoneMetadata struct {
	// ZoneType defaults to Normal.
	ZoneType ZoneType
	// Color is stored verbatim. Empty means unset.
	Color string
	// MaxDrones is always > 0; defaults to 1.
	MaxDrones int
}

// DefaultZoneMetadata returns the metadata of a hub declared without a fragment.
func DefaultZoneMetadata() ZoneMetadata {
	return ZoneMetadata{ZoneType: Normal, MaxDrones: 1}
}

// ConnectionMetadata holds the bracketed attributes of a connection declaration.
type ConnectionMetadata struct {
	// MaxLinkCapacity is always > 0; defaults to 1.
	MaxLinkCapacity int
}

// DefaultConnectionMetadata returns the metadata of a connection declared without a fragment.
func DefaultConnectionMetadata() ConnectionMetadata {
	return ConnectionMetadata{MaxLinkCapacity: 1}
}

// Zone is a named point on the map.
type Zone struct {
	Name        string
	Role        HubRole
	Coordinates Point
	Metadata    ZoneMetadata
}

// Connection is an undirected link as declared, before expansion.
type Connection struct {
	A        string
	B        string
	Metadata ConnectionMetadata
}

// NameSet is a set of zone names.
type NameSet map[string]struct{}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (s NameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Adjacency lists the neighbors of one zone and the metadata of each link.
// Both half-edges of a connection point at the same ConnectionMetadata.
type Adjacency struct {
	Neighbors NameSet
	Links     map[string]*ConnectionMetadata
}

func newAdjacency() *Adjacency {
	return &Adjacency{
		Neighbors: make(NameSet),
		Links:     make(map[string]*ConnectionMetadata),
	}
}

// ParsedMap is the finished graph. Callers must treat it as read-only.
type ParsedMap struct {
	// DroneCount is >= 0.
	DroneCount int
	// Zones is keyed by zone name.
	Zones map[string]*Zone
	// Connections is keyed by zone name; zones without links have no entry.
	Connections map[string]*Adjacency

	// order records first-declaration order of zone names.
	order []string
}
