package flymap

import (
	"fmt"

	"go.uber.org/zap"
)

// RedeclarePolicy decides what happens when a zone name is declared twice.
type RedeclarePolicy string

const (
	// RedeclareOverwrite silently keeps the last declaration.
	RedeclareOverwrite RedeclarePolicy = "overwrite"
	// RedeclareWarn keeps the last declaration and logs a warning.
	RedeclareWarn RedeclarePolicy = "warn"
	// RedeclareReject fails the parse.
	RedeclareReject RedeclarePolicy = "reject"
)

// ParseRedeclarePolicy validates a policy name.
func ParseRedeclarePolicy(s string) (RedeclarePolicy, error) {
	switch p := RedeclarePolicy(s); p {
	case RedeclareOverwrite, RedeclareWarn, RedeclareReject:
		return p, nil
	default:
		return "", fmt.Errorf("redeclare policy must be one of [overwrite, warn, reject], got %q", s)
	}
}

// zoneRegistry accumulates hub declarations keyed by name.
type zoneRegistry struct {
	policy RedeclarePolicy
	logger *zap.Logger
	zones  map[string]*Zone
	order  []string
}

func newZoneRegistry(policy RedeclarePolicy, logger *zap.Logger) *zoneRegistry {
	return &zoneRegistry{
		policy: policy,
		logger: logger,
		zones:  make(map[string]*Zone),
	}
}

// add inserts or overwrites the zone according to the redeclare policy.
func (r *zoneRegistry) add(z Zone) error {
	if prev, exists := r.zones[z.Name]; exists {
		switch r.policy {
		case RedeclareReject:
			return fmt.Errorf("%w: %q already declared as %s", ErrZoneRedeclared, z.Name, prev.Role)
		case RedeclareWarn:
			r.logger.Warn("zone redeclared, keeping last declaration",
				zap.String("zone", z.Name),
				zap.String("previous_role", string(prev.Role)),
				zap.String("role", string(z.Role)),
			)
		}
	} else {
		r.order = append(r.order, z.Name)
	}
	zone := z
	r.zones[z.Name] = &zone
	return nil
}

// pairKey identifies an unordered pair of zone names.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// connectionRegistry accumulates raw connections until expansion.
type connectionRegistry struct {
	seen map[pairKey]struct{}
	raw  []Connection
	// lines holds the 1-based source line of each raw connection.
	lines []int
}

func newConnectionRegistry() *connectionRegistry {
	return &connectionRegistry{seen: make(map[pairKey]struct{})}
}

// add records a raw connection, rejecting self-loops and repeated pairs.
func (r *connectionRegistry) add(c Connection, line int) error {
	if c.A == c.B {
		return fmt.Errorf("%w: zone %q", ErrSelfConnection, c.A)
	}
	key := newPairKey(c.A, c.B)
	if _, dup := r.seen[key]; dup {
		return fmt.Errorf("%w between %q and %q", ErrDuplicateConnection, c.A, c.B)
	}
	r.seen[key] = struct{}{}
	r.raw = append(r.raw, c)
	r.lines = append(r.lines, line)
	return nil
}

// expand turns every raw connection into two half-edges sharing one metadata value.
//
// Postcondition: For every raw (A, B), adj[A].Links[B] == adj[B].Links[A].
func (r *connectionRegistry) expand() map[string]*Adjacency {
	adj := make(map[string]*Adjacency)
	entry := func(name string) *Adjacency {
		e, ok := adj[name]
		if !ok {
			e = newAdjacency()
			adj[name] = e
		}
		return e
	}
	for i := range r.raw {
		c := r.raw[i]
		md := &c.Metadata
		a, b := entry(c.A), entry(c.B)
		a.Neighbors[c.B] = struct{}{}
		a.Links[c.B] = md
		b.Neighbors[c.A] = struct{}{}
		b.Links[c.A] = md
	}
	return adj
}

// checkEndpoints reports every raw connection naming an undeclared zone.
func (r *connectionRegistry) checkEndpoints(zones map[string]*Zone) []*ValidationError {
	var errs []*ValidationError
	for i, c := range r.raw {
		for _, end := range []string{c.A, c.B} {
			if _, ok := zones[end]; !ok {
				errs = append(errs, &ValidationError{
					Line: r.lines[i],
					Err:  fmt.Errorf("%w %q in %s-%s", ErrUnknownZone, end, c.A, c.B),
				})
			}
		}
	}
	return errs
}
