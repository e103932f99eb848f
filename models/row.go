package models

// Row is a single record of the dataset, already parsed for plotting.
type Row struct {
	Name string
	// X and Y are the two plotted stats.
	X float64
	Y float64
	// Primary picks the point colour and the legend group.
	Primary string
	// Secondary is only shown in the tooltip.
	Secondary  string
	Generation string
	Legendary  string
}

// Columns names the table columns a Row is read from.
type Columns struct {
	Name       string
	X          string
	Y          string
	Primary    string
	Secondary  string
	Generation string
	Legendary  string
}

func (c Columns) names() []string {
	return []string{c.Name, c.X, c.Y, c.Primary, c.Secondary, c.Generation, c.Legendary}
}
