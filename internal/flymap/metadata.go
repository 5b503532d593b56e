package flymap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Metadata keys accepted in map files.
const (
	KeyZone            = "zone"
	KeyColor           = "color"
	KeyMaxDrones       = "max_drones"
	KeyMaxLinkCapacity = "max_link_capacity"
)

var (
	zoneKeys       = []string{KeyZone, KeyColor, KeyMaxDrones}
	connectionKeys = []string{KeyMaxLinkCapacity}
)

// splitFragment tokenizes a key=value fragment and checks every key against allowed.
// A repeated key keeps its last value.
func splitFragment(fragment string, allowed []string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, tok := range strings.Fields(fragment) {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected key=value", ErrMalformedMetadata, tok)
		}
		if !contains(allowed, key) {
			return nil, fmt.Errorf("%w %q (allowed: %s)", ErrUnknownMetadataKey, key, joinNames(allowed))
		}
		pairs[key] = value
	}
	return pairs, nil
}

func parsePositive(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s %w, got %q", key, ErrNotPositiveInteger, raw)
	}
	return n, nil
}

// ParseZoneMetadata parses the inside of a hub's [ ] fragment.
//
// Postcondition: An empty fragment yields DefaultZoneMetadata; otherwise returns
// the parsed record or an error wrapping one of ErrMalformedMetadata,
// ErrUnknownMetadataKey, ErrUnknownZoneType or ErrNotPositiveInteger.
func ParseZoneMetadata(fragment string) (ZoneMetadata, error) {
	md := DefaultZoneMetadata()
	pairs, err := splitFragment(fragment, zoneKeys)
	if err != nil {
		return ZoneMetadata{}, err
	}
	if v, ok := pairs[KeyZone]; ok {
		if md.ZoneType, err = ParseZoneType(v); err != nil {
			return ZoneMetadata{}, err
		}
	}
	if v, ok := pairs[KeyColor]; ok {
		md.Color = v
	}
	if v, ok := pairs[KeyMaxDrones]; ok {
		if md.MaxDrones, err = parsePositive(KeyMaxDrones, v); err != nil {
			return ZoneMetadata{}, err
		}
	}
	return md, nil
}

// ParseConnectionMetadata parses the inside of a connection's [ ] fragment.
//
// Postcondition: An empty fragment yields DefaultConnectionMetadata; otherwise
// returns the parsed record or an error wrapping one of ErrMalformedMetadata,
// ErrUnknownMetadataKey or ErrNotPositiveInteger.
func ParseConnectionMetadata(fragment string) (ConnectionMetadata, error) {
	md := DefaultConnectionMetadata()
	pairs, err := splitFragment(fragment, connectionKeys)
	if err != nil {
		return ConnectionMetadata{}, err
	}
	if v, ok := pairs[KeyMaxLinkCapacity]; ok {
		if md.MaxLinkCapacity, err = parsePositive(KeyMaxLinkCapacity, v); err != nil {
			return ConnectionMetadata{}, err
		}
	}
	return md, nil
}

// String returns the canonical fragment, without brackets.
// ParseZoneMetadata(md.String()) == md for any record it produced.
func (md ZoneMetadata) String() string {
	parts := []string{KeyZone + "=" + md.ZoneType.String()}
	if md.Color != "" {
		parts = append(parts, KeyColor+"="+md.Color)
	}
	parts = append(parts, KeyMaxDrones+"="+strconv.Itoa(md.MaxDrones))
	return strings.Join(parts, " ")
}

// String returns the canonical fragment, without brackets.
func (md ConnectionMetadata) String() string {
	return KeyMaxLinkCapacity + "=" + strconv.Itoa(md.MaxLinkCapacity)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
