package flymap

// Zone returns the zone with the given name.
//
// Postcondition: Returns (zone, true) if found, or (nil, false) otherwise.
func (m *ParsedMap) Zone(name string) (*Zone, bool) {
	z, ok := m.Zones[name]
	return z, ok
}

// ZoneNames returns zone names in first-declaration order.
//
// Postcondition: Returns a non-nil slice of length len(m.Zones).
func (m *ParsedMap) ZoneNames() []string {
	out := make([]string, 0, len(m.Zones))
	for _, n := range m.order {
		if _, ok := m.Zones[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

func (m *ParsedMap) firstWithRole(role HubRole) (*Zone, bool) {
	for _, n := range m.ZoneNames() {
		if z := m.Zones[n]; z.Role == role {
			return z, true
		}
	}
	return nil, false
}

// StartHub returns the first declared zone with the start_hub role.
func (m *ParsedMap) StartHub() (*Zone, bool) {
	return m.firstWithRole(StartHub)
}

// EndHub returns the first declared zone with the end_hub role.
func (m *ParsedMap) EndHub() (*Zone, bool) {
	return m.firstWithRole(EndHub)
}

// Neighbors returns the zones linked to name in lexical order.
//
// Postcondition: Returns a non-nil slice; empty if name has no links.
func (m *ParsedMap) Neighbors(name string) []string {
	adj, ok := m.Connections[name]
	if !ok {
		return []string{}
	}
	return adj.Neighbors.Sorted()
}

// Link returns the metadata of the connection between a and b.
//
// Postcondition: Returns (metadata, true) if a and b are linked, or the zero value and false.
func (m *ParsedMap) Link(a, b string) (ConnectionMetadata, bool) {
	adj, ok := m.Connections[a]
	if !ok {
		return ConnectionMetadata{}, false
	}
	md, ok := adj.Links[b]
	if !ok {
		return ConnectionMetadata{}, false
	}
	return *md, true
}

// ConnectionCount returns the number of undirected links.
func (m *ParsedMap) ConnectionCount() int {
	half := 0
	for _, adj := range m.Connections {
		half += adj.Neighbors.Len()
	}
	return half / 2
}

// Pairs returns every undirected link once, with A < B, sorted by (A, B).
func (m *ParsedMap) Pairs() []Connection {
	var out []Connection
	for _, a := range sortedKeys(m.Connections) {
		adj := m.Connections[a]
		for _, b := range adj.Neighbors.Sorted() {
			if a < b {
				out = append(out, Connection{A: a, B: b, Metadata: *adj.Links[b]})
			}
		}
	}
	return out
}

func sortedKeys(adj map[string]*Adjacency) []string {
	s := make(NameSet, len(adj))
	for k := range adj {
		s[k] = struct{}{}
	}
	return s.Sorted()
}
