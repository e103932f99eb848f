package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToXDp(t *testing.T) {
	assert.Equal(t, 638.97, RoundToXDp(638.970588, 2))
	assert.Equal(t, 87.5, RoundToXDp(87.5, 2))
	assert.Equal(t, 3.0, RoundToXDp(2.6, 0))
}

func TestBoolsToMask(t *testing.T) {
	assert.Equal(t, "101", BoolsToMask([]bool{true, false, true}))
	assert.Equal(t, "", BoolsToMask(nil))
}

func TestNextAvailableFilename(t *testing.T) {
	dir := t.TempDir()

	first := NextAvailableFilename(dir, "snapshot", ".png")
	assert.Equal(t, filepath.Join(dir, "snapshot.png"), first)
	require.NoError(t, os.WriteFile(first, nil, 0o644))

	second := NextAvailableFilename(dir, "snapshot", ".png")
	assert.Equal(t, filepath.Join(dir, "snapshot_1.png"), second)
	require.NoError(t, os.WriteFile(second, nil, 0o644))

	assert.Equal(t, filepath.Join(dir, "snapshot_2.png"), NextAvailableFilename(dir, "snapshot", ".png"))
}
