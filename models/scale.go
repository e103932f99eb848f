package models

import "math"

// Scale linearly maps a padded data domain onto a pixel range. rangeMin may be greater than rangeMax, which is how the
// vertical axis puts small values at the bottom of the plot.
type Scale struct {
	domain   Domain
	rangeMin float64
	rangeMax float64
}

// NewScale pads domain by buffer on each side and maps it onto [rangeMin, rangeMax].
func NewScale(domain Domain, buffer, rangeMin, rangeMax float64) *Scale {
	return &Scale{
		domain.Padded(buffer),
		rangeMin,
		rangeMax,
	}
}

// Domain returns the padded domain.
func (s *Scale) Domain() Domain {
	return s.domain
}

func (s *Scale) Range() (float64, float64) {
	return s.rangeMin, s.rangeMax
}

// Map converts a data value to a pixel coordinate. A degenerate domain maps everything to the middle of the range.
func (s *Scale) Map(v float64) float64 {
	span := s.domain.Span()
	if span == 0 {
		return (s.rangeMin + s.rangeMax) / 2
	}
	return s.rangeMin + (v-s.domain.Min)/span*(s.rangeMax-s.rangeMin)
}

// Invert converts a pixel coordinate back to a data value.
func (s *Scale) Invert(px float64) float64 {
	pixels := s.rangeMax - s.rangeMin
	if pixels == 0 || s.domain.IsEmpty() {
		return s.domain.Min
	}
	return s.domain.Min + (px-s.rangeMin)/pixels*s.domain.Span()
}

// Ticks returns roughly count evenly spaced round values inside the padded domain.
func (s *Scale) Ticks(count int) []float64 {
	if s.domain.IsEmpty() || s.domain.Span() == 0 || count <= 0 {
		return nil
	}
	step := tickStep(s.domain.Span(), count)
	first := math.Ceil(s.domain.Min / step)
	last := math.Floor(s.domain.Max / step)

	ticks := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		// Multiply instead of accumulating so 0.1 steps don't drift.
		ticks = append(ticks, i*step)
	}
	return ticks
}

// tickStep picks a 1, 2 or 5 times a power of ten step that splits span into about count pieces.
func tickStep(span float64, count int) float64 {
	raw := span / float64(count)
	power := math.Floor(math.Log10(raw))
	magnitude := math.Pow(10, power)
	fraction := raw / magnitude

	switch {
	case fraction >= math.Sqrt(50):
		return 10 * magnitude
	case fraction >= math.Sqrt(10):
		return 5 * magnitude
	case fraction >= math.Sqrt(2):
		return 2 * magnitude
	default:
		return magnitude
	}
}
