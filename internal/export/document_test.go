package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/flyin/internal/flymap"
)

const sampleMap = `nb_drones: 4
start_hub: home 0 0 [color=green]
hub: tower 1 0 [zone=restricted max_drones=2]
hub: wall 1 1 [zone=blocked]
end_hub: depot 2 0
connection: home-tower [max_link_capacity=3]
connection: tower-depot
`

func sampleDocument(t *testing.T) *Document {
	m, err := flymap.ParseBytes([]byte(sampleMap))
	require.NoError(t, err)
	return FromMap(m)
}

func TestFromMap(t *testing.T) {
	doc := sampleDocument(t)

	assert.Equal(t, 4, doc.DroneCount)
	require.Len(t, doc.Zones, 4)
	assert.Equal(t, []string{"home", "tower", "wall", "depot"},
		[]string{doc.Zones[0].Name, doc.Zones[1].Name, doc.Zones[2].Name, doc.Zones[3].Name})

	home := doc.Zones[0]
	assert.Equal(t, "start_hub", home.Role)
	assert.Equal(t, "green", home.Color)
	assert.Equal(t, []string{"tower"}, home.Neighbors)
	require.NotNil(t, home.Cost)
	assert.Equal(t, 1.0, *home.Cost)

	tower := doc.Zones[1]
	assert.Equal(t, "restricted", tower.Type)
	assert.Equal(t, 2.0, *tower.Cost)
	assert.Equal(t, 2, tower.MaxDrones)
	assert.Equal(t, []string{"depot", "home"}, tower.Neighbors)

	wall := doc.Zones[2]
	assert.False(t, wall.Passable)
	assert.Nil(t, wall.Cost)
	assert.Nil(t, wall.Neighbors)

	assert.Equal(t, []ConnectionSpec{
		{A: "depot", B: "tower", MaxLinkCapacity: 1},
		{A: "home", B: "tower", MaxLinkCapacity: 3},
	}, doc.Connections)
}

func TestFromMap_Empty(t *testing.T) {
	m, err := flymap.ParseBytes(nil)
	require.NoError(t, err)
	doc := FromMap(m)
	assert.NotNil(t, doc.Zones)
	assert.NotNil(t, doc.Connections)
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	doc := sampleDocument(t)
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, doc))
	assert.Contains(t, buf.String(), "nb_drones: 4")
	assert.Contains(t, buf.String(), "max_link_capacity: 3")

	back, err := DecodeYAML(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestDecodeYAML_Invalid(t *testing.T) {
	_, err := DecodeYAML([]byte("zones: [unterminated"))
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
	doc := sampleDocument(t)
	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, doc))

	var back Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *doc, back)
	assert.Contains(t, buf.String(), `"cost": null`)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleDocument(t), SummaryOptions{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "Drones: 4")
	assert.Contains(t, out, "Zones (4)")
	assert.Contains(t, out, "Connections (2)")
	assert.Regexp(t, `home - tower +3`, out)

	lines := strings.Split(out, "\n")
	var wallLine string
	for _, l := range lines {
		if strings.HasPrefix(l, "wall") {
			wallLine = l
		}
	}
	require.NotEmpty(t, wallLine)
	assert.Contains(t, wallLine, "blocked")
	assert.Contains(t, wallLine, "inf")
	assert.NotContains(t, out, "\x1b[", "no escape codes when color is disabled")
}
