package models

import (
	"errors"
	"math"
	"strconv"

	"pokeplot/utils"
)

var ErrNoSuchPoint = errors.New("no such point")

// Point is the drawn form of a Row.
type Point struct {
	Index  int
	Row    Row
	CX     float64
	CY     float64
	Colour string
}

type Tick struct {
	Value float64
	// Pos is the pixel position along the axis.
	Pos   float64
	Label string
}

type Axis struct {
	// Pos is where the axis line sits on the other dimension: y for the bottom axis, x for the left one.
	Pos   float64
	From  float64
	To    float64
	Ticks []Tick
}

// Scatter is everything needed to draw the chart. It is computed once from a Dataset and only read afterwards.
type Scatter struct {
	dataset *Dataset
	layout  Layout
	colours ColourMap

	xDomain Domain
	yDomain Domain
	xScale  *Scale
	yScale  *Scale

	points []Point
	xAxis  Axis
	yAxis  Axis
	legend []LegendEntry

	generationLabel string
	legendaryLabel  string
}

// NewScatter scans the dataset for its domains, builds both scales and lays out points, axes and legend.
func NewScatter(dataset *Dataset, layout Layout, colours ColourMap) *Scatter {
	s := &Scatter{
		dataset:         dataset,
		layout:          layout,
		colours:         colours,
		xDomain:         FindDomain(dataset.Xs()),
		yDomain:         FindDomain(dataset.Ys()),
		generationLabel: dataset.Columns().Generation,
		legendaryLabel:  dataset.Columns().Legendary,
	}

	s.xScale = NewScale(s.xDomain, layout.XBuffer, layout.PlotLeft, layout.PlotRight)
	// Inverted so the domain minimum lands on the bottom of the plot.
	s.yScale = NewScale(s.yDomain, layout.YBuffer, layout.PlotBottom, layout.PlotTop)

	rows := dataset.Rows()
	s.points = make([]Point, len(rows))
	for i, r := range rows {
		s.points[i] = Point{
			Index:  i,
			Row:    r,
			CX:     utils.RoundToXDp(s.xScale.Map(r.X), 2),
			CY:     utils.RoundToXDp(s.yScale.Map(r.Y), 2),
			Colour: colours.Colour(r.Primary),
		}
	}

	s.xAxis = Axis{layout.PlotBottom, layout.PlotLeft, layout.PlotRight, buildTicks(s.xScale, layout.TickCount)}
	s.yAxis = Axis{layout.PlotLeft, layout.PlotBottom, layout.PlotTop, buildTicks(s.yScale, layout.TickCount)}
	s.legend = BuildLegend(rows, colours, layout)

	return s
}

func buildTicks(scale *Scale, count int) []Tick {
	values := scale.Ticks(count)
	if len(values) == 0 {
		return nil
	}
	dp := uint8(0)
	if len(values) > 1 {
		if step := values[1] - values[0]; step < 1 {
			dp = uint8(math.Ceil(-math.Log10(step)))
		}
	}
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{
			Value: v,
			Pos:   utils.RoundToXDp(scale.Map(v), 2),
			Label: strconv.FormatFloat(utils.RoundToXDp(v, dp), 'f', -1, 64),
		}
	}
	return ticks
}

func (s *Scatter) Dataset() *Dataset {
	return s.dataset
}

func (s *Scatter) Rows() []Row {
	return s.dataset.Rows()
}

func (s *Scatter) Layout() Layout {
	return s.layout
}

func (s *Scatter) Colours() ColourMap {
	return s.colours
}

// XDomain and YDomain are the unpadded data domains.
func (s *Scatter) XDomain() Domain {
	return s.xDomain
}

func (s *Scatter) YDomain() Domain {
	return s.yDomain
}

func (s *Scatter) XScale() *Scale {
	return s.xScale
}

func (s *Scatter) YScale() *Scale {
	return s.yScale
}

func (s *Scatter) Points() []Point {
	return s.points
}

func (s *Scatter) XAxis() Axis {
	return s.xAxis
}

func (s *Scatter) YAxis() Axis {
	return s.yAxis
}

func (s *Scatter) Legend() []LegendEntry {
	return s.legend
}

// NewFilters returns a fresh pair of controls over this chart's rows, both at All.
func (s *Scatter) NewFilters() *Filters {
	return NewFilters(s.dataset.Rows(), s.generationLabel, s.legendaryLabel)
}

// Tooltip describes point i for a pointer at (pageX, pageY).
func (s *Scatter) Tooltip(i int, pageX, pageY float64) (Tooltip, error) {
	if i < 0 || i >= len(s.points) {
		return Tooltip{}, ErrNoSuchPoint
	}
	return ShowTooltip(s.points[i].Row, pageX, pageY, s.layout), nil
}
