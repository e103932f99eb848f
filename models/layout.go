package models

// Layout holds every fixed position and size on the drawing surface, in pixels.
type Layout struct {
	Width  float64
	Height float64

	// PlotLeft..PlotBottom bound the area points are scaled into. The x axis sits on PlotBottom and the y axis on
	// PlotLeft.
	PlotLeft   float64
	PlotRight  float64
	PlotTop    float64
	PlotBottom float64

	// XBuffer and YBuffer pad the data domains so no point lands on an axis.
	XBuffer float64
	YBuffer float64
	// TickCount is a hint, the scale picks round steps near it.
	TickCount int

	PointRadius  float64
	PointOpacity float64

	Title         Label
	XLabel        Label
	YLabel        Label
	TitleSize     string
	AxisLabelSize string

	LegendX        float64
	LegendY        float64
	LegendSpacing  float64
	LegendSwatch   float64
	LegendLabelX   float64
	LegendLabelDY  float64
	LegendFontSize string

	// TooltipOffsetY is added to the pointer's page y so the tooltip sits above the cursor.
	TooltipOffsetY float64
}

// Label is a static piece of text. Rotate is in degrees around (X, Y).
type Label struct {
	Text   string
	X      float64
	Y      float64
	Rotate float64
}
