package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	d, err := ParseDataset(testHeader, threeRows, testColumns)
	require.NoError(t, err)
	require.Len(t, d.Rows(), 3)
	assert.Empty(t, d.Skipped())

	assert.Equal(t, Row{
		Name:       "Articuno",
		X:          125,
		Y:          580,
		Primary:    "Ice",
		Secondary:  "Flying",
		Generation: "1",
		Legendary:  "True",
	}, d.Rows()[1])
	assert.Equal(t, []float64{65, 125, 65}, d.Xs())
	assert.Equal(t, []float64{318, 580, 318}, d.Ys())
}

func TestParseDatasetSkipsNonNumericRows(t *testing.T) {
	records := append([][]string{
		{"0", "Missingno", "Bird", "Normal", "???", "29", "1", "False"},
		{"0", "Glitch", "Normal", "", "300", "NaN", "1", "False"},
		{"0", "Short"},
	}, threeRows...)

	d, err := ParseDataset(testHeader, records, testColumns)
	require.NoError(t, err)
	require.Len(t, d.Rows(), 3)
	require.Len(t, d.Skipped(), 3)

	assert.Equal(t, 2, d.Skipped()[0].Line)
	assert.ErrorIs(t, d.Skipped()[0].Err, ErrNotNumeric)
	assert.ErrorIs(t, d.Skipped()[1].Err, ErrNotNumeric)
	assert.Equal(t, 4, d.Skipped()[2].Line)

	for _, r := range d.Rows() {
		assert.False(t, math.IsNaN(r.X))
		assert.False(t, math.IsNaN(r.Y))
	}
}

func TestParseDatasetHeaderErrors(t *testing.T) {
	_, err := ParseDataset(nil, threeRows, testColumns)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ParseDataset([]string{"Name", "Total"}, threeRows, testColumns)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseDatasetTrimsHeader(t *testing.T) {
	header := append([]string{"\ufeff#"}, testHeader[1:]...)
	header[1] = " Name "

	d, err := ParseDataset(header, threeRows, testColumns)
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", d.Rows()[0].Name)
}

func TestParseDatasetEmpty(t *testing.T) {
	d, err := ParseDataset(testHeader, nil, testColumns)
	require.NoError(t, err)
	assert.Empty(t, d.Rows())
	assert.Empty(t, d.Xs())
}

func TestParseDatasetSkipsReservedFilterValues(t *testing.T) {
	records := append([][]string{
		{"0", "Everyone", "Normal", "", "300", "50", All, "False"},
		{"0", "Anyone", "Normal", "", "300", "50", "1", All},
	}, threeRows...)

	d, err := ParseDataset(testHeader, records, testColumns)
	require.NoError(t, err)
	require.Len(t, d.Rows(), 3)
	require.Len(t, d.Skipped(), 2)
	assert.ErrorIs(t, d.Skipped()[0].Err, ErrReservedValue)
	assert.Equal(t, 3, d.Skipped()[1].Line)
	assert.ErrorIs(t, d.Skipped()[1].Err, ErrReservedValue)
}
