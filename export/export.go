package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pokeplot/models"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var (
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrNoVisiblePoints = errors.New("no visible points")
)

// ParseFormat accepts png or svg in any case, empty means png.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG, "":
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) Ext() string {
	return "." + string(f)
}

// pointStyle draws dots only, no connecting line.
func pointStyle(colour string, radius, opacity float64) chart.Style {
	c := drawing.ColorFromHex(strings.TrimPrefix(colour, "#"))
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    radius,
		DotColor:    c.WithAlpha(uint8(opacity * 255)),
	}
}

// Render draws the visible points of s as a static chart, one series per primary category so the legend matches the
// interactive one. visible is indexed like s.Points(), nil shows every point.
func Render(w io.Writer, s *models.Scatter, visible []bool, format Format) error {
	layout := s.Layout()

	type series struct {
		xs []float64
		ys []float64
	}
	byCategory := make(map[string]*series)
	for i, p := range s.Points() {
		if visible != nil && (i >= len(visible) || !visible[i]) {
			continue
		}
		ser, ok := byCategory[p.Row.Primary]
		if !ok {
			ser = &series{}
			byCategory[p.Row.Primary] = ser
		}
		ser.xs = append(ser.xs, p.Row.X)
		ser.ys = append(ser.ys, p.Row.Y)
	}
	if len(byCategory) == 0 {
		return ErrNoVisiblePoints
	}

	graph := chart.Chart{
		Title:  layout.Title.Text,
		Width:  int(layout.Width),
		Height: int(layout.PlotBottom + layout.PlotTop),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  layout.XLabel.Text,
			Range: axisRange(s.XScale()),
		},
		YAxis: chart.YAxis{
			Name:  layout.YLabel.Text,
			Range: axisRange(s.YScale()),
		},
	}

	// Legend order is the order categories first appear in the data.
	for _, entry := range s.Legend() {
		ser, ok := byCategory[entry.Label]
		if !ok {
			continue
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    entry.Label,
			XValues: ser.xs,
			YValues: ser.ys,
			Style:   pointStyle(entry.Colour, layout.PointRadius, layout.PointOpacity),
		})
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	renderer := chart.PNG
	if format == SVG {
		renderer = chart.SVG
	}
	if err := graph.Render(renderer, w); err != nil {
		return fmt.Errorf("couldn't render %s: %w", format, err)
	}
	return nil
}

// axisRange uses the padded domain so points keep their distance from the axes like they do in the browser.
func axisRange(scale *models.Scale) *chart.ContinuousRange {
	d := scale.Domain()
	return &chart.ContinuousRange{Min: d.Min, Max: d.Max}
}
