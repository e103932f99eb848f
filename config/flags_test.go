package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeplot/store"
)

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", env.Addr)
	assert.Equal(t, "pokemon.csv", env.Data)
	assert.Equal(t, "", env.Sheet)
	assert.Equal(t, 10*time.Second, env.FetchTimeout)
	assert.Equal(t, 30*time.Minute, env.SessionTTL)
	assert.Equal(t, store.DefaultColumns, env.Columns())
}

func TestLoadEnvOverrides(t *testing.T) {
	env, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{
		"POKEPLOT_ADDR":           ":9000",
		"POKEPLOT_DATA":           "https://example.com/pokemon.csv",
		"POKEPLOT_FETCH_TIMEOUT":  "2s",
		"POKEPLOT_X_COLUMN":       "Attack",
		"POKEPLOT_PRIMARY_COLUMN": "Type",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", env.Addr)
	assert.Equal(t, 2*time.Second, env.FetchTimeout)

	columns := env.Columns()
	assert.Equal(t, "Attack", columns.X)
	assert.Equal(t, "Type", columns.Primary)
	assert.Equal(t, store.TOTAL_COLUMN, columns.Y)
}

func TestLoadEnvInvalid(t *testing.T) {
	_, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{
		"POKEPLOT_FETCH_TIMEOUT": "soon",
	}))
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	env, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{
		"POKEPLOT_DATA": "from-env.csv",
	}))
	require.NoError(t, err)

	flags, err := ParseFlags("dashboard", []string{"-addr", ":7070", "-y", "HP", "-sheet", "Gen1", "-session-ttl", "5m"}, env)
	require.NoError(t, err)

	assert.Equal(t, ":7070", flags.Addr)
	assert.Equal(t, "from-env.csv", flags.Data)
	assert.Equal(t, "Gen1", flags.Sheet)
	assert.Equal(t, 5*time.Minute, flags.SessionTTL)
	assert.Equal(t, "HP", flags.Columns.Y)
	assert.Equal(t, store.SP_DEF_COLUMN, flags.Columns.X)

	_, err = ParseFlags("dashboard", []string{"-nope"}, env)
	assert.Error(t, err)
}
