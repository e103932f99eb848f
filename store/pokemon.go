package store

import "pokeplot/models"

const (
	NAME_COLUMN       = "Name"
	SP_DEF_COLUMN     = "Sp. Def"
	TOTAL_COLUMN      = "Total"
	TYPE_1_COLUMN     = "Type 1"
	TYPE_2_COLUMN     = "Type 2"
	GENERATION_COLUMN = "Generation"
	LEGENDARY_COLUMN  = "Legendary"
)

const (
	TITLE = "Pokemon: Special Defense vs Total Stats"

	SVG_WIDTH  = 1000
	SVG_HEIGHT = 1000
)

var DefaultColumns = models.Columns{
	Name:       NAME_COLUMN,
	X:          SP_DEF_COLUMN,
	Y:          TOTAL_COLUMN,
	Primary:    TYPE_1_COLUMN,
	Secondary:  TYPE_2_COLUMN,
	Generation: GENERATION_COLUMN,
	Legendary:  LEGENDARY_COLUMN,
}

// TypeColours covers the primary types we have picked colours for. Everything else gets models.FallbackColour.
var TypeColours = models.ColourMap{
	"Bug":      "#4E79A7",
	"Dark":     "#A0CBE8",
	"Electric": "#F28E2B",
	"Fairy":    "#FFBE7D",
	"Fighting": "#59A14F",
	"Fire":     "#8CD17D",
	"Ghost":    "#B6992D",
	"Grass":    "#499894",
	"Ground":   "#86BCB6",
	"Ice":      "#86BCB6",
	"Normal":   "#E15759",
	"Poison":   "#FF9D9A",
	"Psychic":  "#79706E",
	"Steel":    "#BAB0AC",
	"Water":    "#D37295",
}

// Layout returns the chart layout with the axis labels taken from columns.
func Layout(columns models.Columns) models.Layout {
	return models.Layout{
		Width:      SVG_WIDTH,
		Height:     SVG_HEIGHT,
		PlotLeft:   50,
		PlotRight:  650,
		PlotTop:    50,
		PlotBottom: 650,
		XBuffer:    10,
		YBuffer:    5,
		TickCount:  10,

		PointRadius:  3,
		PointOpacity: 0.6,

		Title:         models.Label{Text: TITLE, X: 120, Y: 30},
		XLabel:        models.Label{Text: columns.X, X: 350, Y: 700},
		YLabel:        models.Label{Text: columns.Y, X: 15, Y: 350, Rotate: -90},
		TitleSize:     "20pt",
		AxisLabelSize: "16pt",

		// 100 is where the first swatch goes, 25 is the distance between swatches
		LegendX:        680,
		LegendY:        100,
		LegendSpacing:  25,
		LegendSwatch:   7,
		LegendLabelX:   700,
		LegendLabelDY:  7,
		LegendFontSize: "10pt",

		TooltipOffsetY: -28,
	}
}
