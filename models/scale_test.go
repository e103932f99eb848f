package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleMap(t *testing.T) {
	s := NewScale(FindDomain([]float64{20, 230}), 10, 50, 650)

	assert.Equal(t, 50.0, s.Map(10))
	assert.Equal(t, 650.0, s.Map(240))
	assert.InDelta(t, 350.0, s.Map(125), 1e-9)
	// Same input, same output.
	assert.Equal(t, s.Map(77), s.Map(77))
}

func TestScaleInvertedRange(t *testing.T) {
	s := NewScale(FindDomain([]float64{180, 780}), 5, 650, 50)

	assert.Equal(t, 650.0, s.Map(175))
	assert.Equal(t, 50.0, s.Map(785))
	assert.Greater(t, s.Map(200), s.Map(700), "larger values are drawn higher up")
}

func TestScaleStaysInRange(t *testing.T) {
	values := []float64{20, 65, 125, 230, 99.5, 20.01}
	domain := FindDomain(values)
	x := NewScale(domain, 10, 50, 650)
	y := NewScale(domain, 5, 650, 50)

	for _, v := range values {
		require.True(t, domain.Contains(v))
		assert.GreaterOrEqual(t, x.Map(v), 50.0)
		assert.LessOrEqual(t, x.Map(v), 650.0)
		assert.GreaterOrEqual(t, y.Map(v), 50.0)
		assert.LessOrEqual(t, y.Map(v), 650.0)
	}
}

func TestScaleInvert(t *testing.T) {
	s := NewScale(FindDomain([]float64{20, 230}), 10, 50, 650)
	for _, v := range []float64{10, 42, 125, 240} {
		assert.InDelta(t, v, s.Invert(s.Map(v)), 1e-9)
	}
}

func TestScaleDegenerateDomain(t *testing.T) {
	empty := NewScale(Domain{}, 10, 50, 650)
	assert.Equal(t, 350.0, empty.Map(123))
	assert.Nil(t, empty.Ticks(10))

	single := NewScale(FindDomain([]float64{80}), 0, 650, 50)
	assert.Equal(t, 350.0, single.Map(80))
	assert.Nil(t, single.Ticks(10))
}

func TestScaleTicks(t *testing.T) {
	s := NewScale(FindDomain([]float64{20, 230}), 10, 50, 650)
	assert.Equal(t, []float64{20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 220, 240}, s.Ticks(10))

	y := NewScale(FindDomain([]float64{180, 780}), 5, 650, 50)
	assert.Equal(t, []float64{200, 300, 400, 500, 600, 700}, y.Ticks(5))

	small := NewScale(FindDomain([]float64{0, 1}), 0, 0, 100)
	ticks := small.Ticks(10)
	require.Len(t, ticks, 11)
	assert.InDelta(t, 0.3, ticks[3], 1e-12)
}
