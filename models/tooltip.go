package models

import "fmt"

const tooltipOpacity = 0.9

// Tooltip is the one tooltip of the page. Hovering a point overwrites it, leaving the point hides it.
type Tooltip struct {
	Visible   bool
	Name      string
	Primary   string
	Secondary string
	// Left and Top are page coordinates in pixels.
	Left float64
	Top  float64
}

// ShowTooltip describes r next to the pointer at (pageX, pageY).
func ShowTooltip(r Row, pageX, pageY float64, layout Layout) Tooltip {
	return Tooltip{
		Visible:   true,
		Name:      r.Name,
		Primary:   r.Primary,
		Secondary: r.Secondary,
		Left:      pageX,
		Top:       pageY + layout.TooltipOffsetY,
	}
}

// Hide keeps the content and position so the fade out doesn't jump.
func (t Tooltip) Hide() Tooltip {
	t.Visible = false
	return t
}

func (t Tooltip) Opacity() float64 {
	if t.Visible {
		return tooltipOpacity
	}
	return 0
}

func (t Tooltip) Lines() []string {
	if t.Name == "" && t.Primary == "" && t.Secondary == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("Name: %s", t.Name),
		fmt.Sprintf("Type 1:%s", t.Primary),
		fmt.Sprintf("Type 2:%s", t.Secondary),
	}
}
