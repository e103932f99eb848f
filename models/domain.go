package models

// Domain is the [Min, Max] range of a plotted attribute. The zero value is the empty domain.
type Domain struct {
	Min   float64
	Max   float64
	valid bool
}

// FindDomain scans values once for their min and max.
func FindDomain(values []float64) Domain {
	d := Domain{}
	for _, v := range values {
		d = d.Extend(v)
	}
	return d
}

// Extend returns the domain grown to include v.
func (d Domain) Extend(v float64) Domain {
	if !d.valid {
		return Domain{v, v, true}
	}
	if v < d.Min {
		d.Min = v
	}
	if v > d.Max {
		d.Max = v
	}
	return d
}

func (d Domain) IsEmpty() bool {
	return !d.valid
}

func (d Domain) Contains(v float64) bool {
	return d.valid && v >= d.Min && v <= d.Max
}

// Padded widens the domain by buffer on both sides.
func (d Domain) Padded(buffer float64) Domain {
	if !d.valid {
		return d
	}
	return Domain{d.Min - buffer, d.Max + buffer, true}
}

func (d Domain) Span() float64 {
	if !d.valid {
		return 0
	}
	return d.Max - d.Min
}
