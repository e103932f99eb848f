package models

type LegendEntry struct {
	Label  string
	Colour string
	// X, Y is the swatch's top left corner, LabelX, LabelY the text baseline.
	X      float64
	Y      float64
	LabelX float64
	LabelY float64
}

// BuildLegend stacks one entry per primary category actually present in rows, in order of first appearance.
func BuildLegend(rows []Row, colours ColourMap, layout Layout) []LegendEntry {
	categories := DistinctValues(rows, func(r Row) string { return r.Primary })
	entries := make([]LegendEntry, len(categories))
	for i, category := range categories {
		y := layout.LegendY + float64(i)*layout.LegendSpacing
		entries[i] = LegendEntry{
			Label:  category,
			Colour: colours.Colour(category),
			X:      layout.LegendX,
			Y:      y,
			LabelX: layout.LegendLabelX,
			LabelY: y + layout.LegendLabelDY,
		}
	}
	return entries
}

// DistinctValues returns the values of field in order of first appearance, without duplicates.
func DistinctValues(rows []Row, field func(Row) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range rows {
		v := field(r)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
