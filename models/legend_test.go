package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLegend(t *testing.T) {
	colours := ColourMap{"Grass": "#499894", "Ice": "#86BCB6", "Water": "#D37295", "Fire": "#8CD17D"}
	legend := BuildLegend(mustDataset(threeRows).Rows(), colours, testLayout)

	require.Len(t, legend, 2, "one entry per category present, not per colour")
	assert.Equal(t, LegendEntry{"Grass", "#499894", 680, 100, 700, 107}, legend[0])
	assert.Equal(t, LegendEntry{"Ice", "#86BCB6", 680, 125, 700, 132}, legend[1])
}

func TestBuildLegendFallbackColour(t *testing.T) {
	legend := BuildLegend(mustDataset(threeRows).Rows(), ColourMap{"Grass": "#499894"}, testLayout)
	require.Len(t, legend, 2)
	assert.Equal(t, FallbackColour, legend[1].Colour)
}

func TestDistinctValues(t *testing.T) {
	rows := []Row{{Primary: "Fire"}, {Primary: "Water"}, {Primary: "Fire"}, {Primary: ""}, {Primary: "Bug"}}
	assert.Equal(t, []string{"Fire", "Water", "", "Bug"}, DistinctValues(rows, func(r Row) string { return r.Primary }))
	assert.Empty(t, DistinctValues(nil, func(r Row) string { return r.Primary }))
}

func TestColourMap(t *testing.T) {
	m := ColourMap{"Bug": "#4E79A7", "Blank": ""}
	assert.Equal(t, "#4E79A7", m.Colour("Bug"))
	assert.Equal(t, FallbackColour, m.Colour("Dragon"))
	assert.Equal(t, FallbackColour, m.Colour("Blank"))
}
