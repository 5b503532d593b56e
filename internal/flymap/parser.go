package flymap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// maxLineBytes bounds a single map-file line.
const maxLineBytes = 1 << 20

type options struct {
	logger         *zap.Logger
	redeclare      RedeclarePolicy
	checkEndpoints bool
	collectErrors  bool
}

// Option configures Parse.
type Option func(*options)

// WithLogger sets the logger used for ignored lines and redeclaration warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRedeclarePolicy sets how a repeated zone name is handled. Default RedeclareWarn.
func WithRedeclarePolicy(p RedeclarePolicy) Option {
	return func(o *options) { o.redeclare = p }
}

// WithEndpointCheck toggles the check that every connection endpoint is a
// declared zone. Default on.
func WithEndpointCheck(on bool) Option {
	return func(o *options) { o.checkEndpoints = on }
}

// WithErrorCollection makes Parse report every validation failure instead of
// stopping at the first. No map is returned either way.
func WithErrorCollection(on bool) Option {
	return func(o *options) { o.collectErrors = on }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:         zap.NewNop(),
		redeclare:      RedeclareWarn,
		checkEndpoints: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// assembler drives one parse. It owns the registries until the map is returned.
type assembler struct {
	opts        options
	droneCount  int
	zones       *zoneRegistry
	connections *connectionRegistry
	errs        error
}

// fail records a validation failure and reports whether parsing must stop.
func (a *assembler) fail(ve *ValidationError) bool {
	a.errs = multierr.Append(a.errs, ve)
	return !a.opts.collectErrors
}

func (a *assembler) line(n int, raw string) bool {
	l, err := ClassifyLine(raw)
	if err == nil {
		switch l.Kind {
		case LineDrones:
			a.droneCount = l.Drones
		case LineHub:
			err = a.zones.add(l.Zone)
		case LineConnection:
			err = a.connections.add(l.Connection, n)
		case LineUnrecognized:
			a.opts.logger.Debug("ignoring unrecognized line", zap.Int("line", n), zap.String("text", raw))
		}
	}
	if err != nil {
		return a.fail(&ValidationError{Line: n, Text: raw, Err: err})
	}
	return false
}

// Parse reads a map file from r and builds the graph.
//
// Precondition: r yields UTF-8 text in the map-file grammar.
// Postcondition: Returns a complete ParsedMap and nil, or nil and a non-nil
// error. Validation failures are *ValidationError values, combined with
// multierr when error collection is on.
func Parse(r io.Reader, opts ...Option) (*ParsedMap, error) {
	o := buildOptions(opts)
	a := &assembler{
		opts:        o,
		zones:       newZoneRegistry(o.redeclare, o.logger),
		connections: newConnectionRegistry(),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		if a.line(n, sc.Text()) {
			return nil, a.errs
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	if o.checkEndpoints {
		for _, ve := range a.connections.checkEndpoints(a.zones.zones) {
			if a.fail(ve) {
				return nil, a.errs
			}
		}
	}
	if a.errs != nil {
		return nil, a.errs
	}

	m := &ParsedMap{
		DroneCount:  a.droneCount,
		Zones:       a.zones.zones,
		Connections: a.connections.expand(),
		order:       a.zones.order,
	}
	o.logger.Debug("map parsed",
		zap.Int("lines", n),
		zap.Int("drones", m.DroneCount),
		zap.Int("zones", len(m.Zones)),
		zap.Int("connections", len(a.connections.raw)),
	)
	return m, nil
}

// ParseBytes parses a map held in memory.
func ParseBytes(data []byte, opts ...Option) (*ParsedMap, error) {
	return Parse(bytes.NewReader(data), opts...)
}

// LoadFile reads and parses the map file at path.
//
// Postcondition: Returns a ParsedMap, or an error. Failures to open or read the
// file wrap the underlying os error and are never *ValidationError values.
func LoadFile(path string, opts ...Option) (*ParsedMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("reading map file %s: %w", path, err)
	}
	return m, nil
}
