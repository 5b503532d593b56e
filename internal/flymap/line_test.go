package flymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine_Skip(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t", "# comment", "   # indented comment", "#nb_drones: 4"} {
		l, err := ClassifyLine(raw)
		require.NoError(t, err, "line %q", raw)
		assert.Equal(t, LineSkip, l.Kind, "line %q", raw)
	}
}

func TestClassifyLine_Drones(t *testing.T) {
	l, err := ClassifyLine("nb_drones: 5")
	require.NoError(t, err)
	assert.Equal(t, LineDrones, l.Kind)
	assert.Equal(t, 5, l.Drones)

	l, err = ClassifyLine("nb_drones:0\r")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Drones)
}

func TestClassifyLine_NegativeDrones(t *testing.T) {
	_, err := ClassifyLine("nb_drones: -1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeDroneCount)
	assert.Contains(t, err.Error(), "drone count cannot be negative")
}

func TestClassifyLine_DronesOverflow(t *testing.T) {
	_, err := ClassifyLine("nb_drones: 99999999999999999999999")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestClassifyLine_Hubs(t *testing.T) {
	cases := []struct {
		raw  string
		want Zone
	}{
		{"start_hub: a 0 0", Zone{Name: "a", Role: StartHub, Coordinates: Point{0, 0}, Metadata: DefaultZoneMetadata()}},
		{"end_hub: goal -3 12", Zone{Name: "goal", Role: EndHub, Coordinates: Point{-3, 12}, Metadata: DefaultZoneMetadata()}},
		{"hub: roof_1 4 -7 [zone=priority color=green]", Zone{
			Name: "roof_1", Role: Hub, Coordinates: Point{4, -7},
			Metadata: ZoneMetadata{ZoneType: Priority, Color: "green", MaxDrones: 1},
		}},
		{"hub: c 1 1 []", Zone{Name: "c", Role: Hub, Coordinates: Point{1, 1}, Metadata: DefaultZoneMetadata()}},
	}
	for _, tc := range cases {
		l, err := ClassifyLine(tc.raw)
		require.NoError(t, err, "line %q", tc.raw)
		assert.Equal(t, LineHub, l.Kind, "line %q", tc.raw)
		assert.Equal(t, tc.want, l.Zone, "line %q", tc.raw)
	}
}

func TestClassifyLine_HubMetadataError(t *testing.T) {
	_, err := ClassifyLine("hub: d 1 1 [max_drones=0]")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPositiveInteger)
	assert.Contains(t, err.Error(), `hub "d"`)
	assert.Contains(t, err.Error(), "max_drones must be a positive integer")
}

func TestClassifyLine_Connection(t *testing.T) {
	l, err := ClassifyLine("connection: a-b [max_link_capacity=2]")
	require.NoError(t, err)
	assert.Equal(t, LineConnection, l.Kind)
	assert.Equal(t, Connection{A: "a", B: "b", Metadata: ConnectionMetadata{MaxLinkCapacity: 2}}, l.Connection)

	l, err = ClassifyLine("connection: hub_1-hub_2")
	require.NoError(t, err)
	assert.Equal(t, "hub_1", l.Connection.A)
	assert.Equal(t, "hub_2", l.Connection.B)
	assert.Equal(t, DefaultConnectionMetadata(), l.Connection.Metadata)
}

func TestClassifyLine_ConnectionMetadataError(t *testing.T) {
	_, err := ClassifyLine("connection: a-b [zone=blocked]")
	assert.ErrorIs(t, err, ErrUnknownMetadataKey)
}

func TestClassifyLine_Unrecognized(t *testing.T) {
	for _, raw := range []string{
		"nb_drones: lots",
		"hub: a 1",
		"hub: a x y",
		"hub: a 1 1 zone=blocked",
		"connection: a",
		"connection: a-b-c",
		"warp: a b",
		"hubs: a 1 1",
	} {
		l, err := ClassifyLine(raw)
		require.NoError(t, err, "line %q", raw)
		assert.Equal(t, LineUnrecognized, l.Kind, "line %q", raw)
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "connection", LineConnection.String())
	assert.Equal(t, "unrecognized", LineUnrecognized.String())
}
