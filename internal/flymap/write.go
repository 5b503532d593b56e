package flymap

import (
	"bufio"
	"fmt"
	"io"
)

// Write emits m in canonical map-file form: nb_drones, hubs in declaration
// order, then connections sorted by endpoint names. Every metadata fragment is
// written in full, so Parse(Write(m)) is equal to m.
func Write(w io.Writer, m *ParsedMap) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "nb_drones: %d\n", m.DroneCount)
	for _, name := range m.ZoneNames() {
		z := m.Zones[name]
		fmt.Fprintf(bw, "%s: %s %d %d [%s]\n", z.Role, z.Name, z.Coordinates.X, z.Coordinates.Y, z.Metadata)
	}
	for _, c := range m.Pairs() {
		fmt.Fprintf(bw, "connection: %s-%s [%s]\n", c.A, c.B, c.Metadata)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing map: %w", err)
	}
	return nil
}
