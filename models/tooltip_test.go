package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTooltip(t *testing.T) {
	rows := mustDataset(threeRows).Rows()

	tip := ShowTooltip(rows[1], 300, 400, testLayout)
	assert.True(t, tip.Visible)
	assert.Equal(t, 0.9, tip.Opacity())
	assert.Equal(t, 300.0, tip.Left)
	assert.Equal(t, 372.0, tip.Top)
	assert.Equal(t, []string{"Name: Articuno", "Type 1:Ice", "Type 2:Flying"}, tip.Lines())

	hidden := tip.Hide()
	assert.False(t, hidden.Visible)
	assert.Zero(t, hidden.Opacity())
	assert.Equal(t, tip.Lines(), hidden.Lines())
	assert.True(t, tip.Visible, "hiding returns a copy")
}

func TestEmptyTooltip(t *testing.T) {
	var tip Tooltip
	assert.Zero(t, tip.Opacity())
	assert.Nil(t, tip.Lines())
}
