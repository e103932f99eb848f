package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDomain(t *testing.T) {
	d := FindDomain([]float64{65, 125, 20, 65})
	assert.False(t, d.IsEmpty())
	assert.Equal(t, 20.0, d.Min)
	assert.Equal(t, 125.0, d.Max)
	assert.Equal(t, 105.0, d.Span())
}

func TestFindDomainEmpty(t *testing.T) {
	d := FindDomain(nil)
	assert.True(t, d.IsEmpty())
	assert.Zero(t, d.Span())
	assert.False(t, d.Contains(0))
	assert.True(t, d.Padded(10).IsEmpty())
}

func TestDomainExtendIsMonotonic(t *testing.T) {
	d := FindDomain([]float64{50, 60})

	grown := d.Extend(200)
	assert.Equal(t, 50.0, grown.Min)
	assert.Equal(t, 200.0, grown.Max)

	grown = grown.Extend(5)
	assert.Equal(t, 5.0, grown.Min)
	assert.Equal(t, 200.0, grown.Max)

	inside := grown.Extend(100)
	assert.Equal(t, grown, inside)

	// The receiver is untouched.
	assert.Equal(t, 50.0, d.Min)
	assert.Equal(t, 60.0, d.Max)
}

func TestDomainPadded(t *testing.T) {
	d := FindDomain([]float64{20, 230}).Padded(10)
	assert.Equal(t, 10.0, d.Min)
	assert.Equal(t, 240.0, d.Max)
	assert.True(t, d.Contains(240))
	assert.False(t, d.Contains(241))
}
