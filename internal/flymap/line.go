package flymap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LineKind is the category the classifier assigns to one input line.
type LineKind int

const (
	// LineSkip covers blank lines and # comments.
	LineSkip LineKind = iota
	// LineDrones is an nb_drones directive.
	LineDrones
	// LineHub is a start_hub, end_hub or hub declaration.
	LineHub
	// LineConnection is a connection declaration.
	LineConnection
	// LineUnrecognized matched no pattern and is ignored.
	LineUnrecognized
)

func (k LineKind) String() string {
	switch k {
	case LineSkip:
		return "skip"
	case LineDrones:
		return "nb_drones"
	case LineHub:
		return "hub"
	case LineConnection:
		return "connection"
	default:
		return "unrecognized"
	}
}

// Line is a classified input line with its typed fields extracted.
// Only the fields relevant to Kind are set.
type Line struct {
	Kind       LineKind
	Drones     int
	Zone       Zone
	Connection Connection
}

var (
	dronesPattern     = regexp.MustCompile(`^nb_drones:\s*(-?\d+)\s*$`)
	hubPattern        = regexp.MustCompile(`^(start_hub|end_hub|hub):\s*(\S+)\s+(-?\d+)\s+(-?\d+)(?:\s+\[([^\]]*)\])?\s*$`)
	connectionPattern = regexp.MustCompile(`^connection:\s*([^\s\-\[\]]+)-([^\s\-\[\]]+)(?:\s+\[([^\]]*)\])?\s*$`)
)

// ClassifyLine inspects one raw line and extracts its fields.
//
// Postcondition: Returns a Line whose Kind is never invalid. Lines matching no
// pattern are LineUnrecognized with a nil error. A non-nil error means the line
// matched a pattern but broke a value rule.
func ClassifyLine(raw string) (Line, error) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return Line{Kind: LineSkip}, nil
	}

	if m := dronesPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}, fmt.Errorf("nb_drones: %w %q", ErrInvalidNumber, m[1])
		}
		if n < 0 {
			return Line{}, fmt.Errorf("%w, got %d", ErrNegativeDroneCount, n)
		}
		return Line{Kind: LineDrones, Drones: n}, nil
	}

	if m := hubPattern.FindStringSubmatch(text); m != nil {
		x, err := strconv.Atoi(m[3])
		if err != nil {
			return Line{}, fmt.Errorf("hub %q: x %w %q", m[2], ErrInvalidNumber, m[3])
		}
		y, err := strconv.Atoi(m[4])
		if err != nil {
			return Line{}, fmt.Errorf("hub %q: y %w %q", m[2], ErrInvalidNumber, m[4])
		}
		md, err := ParseZoneMetadata(m[5])
		if err != nil {
			return Line{}, fmt.Errorf("hub %q: %w", m[2], err)
		}
		return Line{
			Kind: LineHub,
			Zone: Zone{
				Name:        m[2],
				Role:        HubRole(m[1]),
				Coordinates: Point{X: x, Y: y},
				Metadata:    md,
			},
		}, nil
	}

	if m := connectionPattern.FindStringSubmatch(text); m != nil {
		md, err := ParseConnectionMetadata(m[3])
		if err != nil {
			return Line{}, fmt.Errorf("connection %s-%s: %w", m[1], m[2], err)
		}
		return Line{
			Kind:       LineConnection,
			Connection: Connection{A: m[1], B: m[2], Metadata: md},
		}, nil
	}

	return Line{Kind: LineUnrecognized}, nil
}
