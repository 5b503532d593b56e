package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// SummaryOptions configures WriteSummary.
type SummaryOptions struct {
	NoColor bool
}

// WriteSummary writes doc as two aligned tables: zones, then connections.
func WriteSummary(w io.Writer, doc *Document, opts SummaryOptions) {
	title := color.New(color.Bold)
	if opts.NoColor {
		title.DisableColor()
	}

	title.Fprintf(w, "Drones: %d\n\n", doc.DroneCount)

	title.Fprintf(w, "Zones (%d)\n", len(doc.Zones))
	zones := newTable([]string{"NAME", "ROLE", "POS", "TYPE", "COST", "MAX", "COLOR"}, opts.NoColor)
	for _, z := range doc.Zones {
		cost := "inf"
		if z.Cost != nil {
			cost = strconv.FormatFloat(*z.Cost, 'g', -1, 64)
		}
		zoneColor := z.Color
		if zoneColor == "" {
			zoneColor = "-"
		}
		zones.addRow(z.Name, z.Role, fmt.Sprintf("(%d,%d)", z.X, z.Y), z.Type, cost, strconv.Itoa(z.MaxDrones), zoneColor)
	}
	zones.render(w)

	fmt.Fprintln(w)
	title.Fprintf(w, "Connections (%d)\n", len(doc.Connections))
	links := newTable([]string{"LINK", "CAPACITY"}, opts.NoColor)
	for _, c := range doc.Connections {
		links.addRow(c.A+" - "+c.B, strconv.Itoa(c.MaxLinkCapacity))
	}
	links.render(w)
}

// table is a minimal column-aligned table.
type table struct {
	headers []string
	rows    [][]string
	noColor bool
}

func newTable(headers []string, noColor bool) *table {
	return &table{headers: headers, noColor: noColor}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := color.New(color.Bold, color.FgCyan)
	if t.noColor {
		header.DisableColor()
	}
	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	header.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))

	for _, row := range t.rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
