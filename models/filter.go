package models

import (
	"errors"
	"fmt"
	"slices"
)

// All is the option that leaves a control's field unconstrained.
const All = "all"

var ErrUnknownOption = errors.New("unknown option")

// Selection is the current value of both filter controls.
type Selection struct {
	Generation string
	Legendary  string
}

// Unfiltered selects All on both controls.
func Unfiltered() Selection {
	return Selection{All, All}
}

// Matches reports whether r passes every control that isn't set to All.
func (s Selection) Matches(r Row) bool {
	if s.Generation != All && s.Generation != r.Generation {
		return false
	}
	if s.Legendary != All && s.Legendary != r.Legendary {
		return false
	}
	return true
}

// Visibility evaluates the selection against every row. It has no side effects, the result is indexed like rows.
func Visibility(rows []Row, selection Selection) []bool {
	visible := make([]bool, len(rows))
	for i, r := range rows {
		visible[i] = selection.Matches(r)
	}
	return visible
}

// CountVisible returns how many entries of visible are set.
func CountVisible(visible []bool) int {
	n := 0
	for _, v := range visible {
		if v {
			n++
		}
	}
	return n
}

// Control is a dropdown over the distinct values of one field. It is either at All or at one of its values.
type Control struct {
	// key is the identifier and the name of the signal the browser binds the dropdown to.
	key string
	// label is shown before the dropdown.
	label string
	// values are the selectable field values, All excluded.
	values   []string
	selected string
	// listeners are called with the new value after every change of selection.
	listeners []func(selected string)
}

// NewControl builds a control at All. A value equal to All is dropped, it would only duplicate the unfiltered option.
func NewControl(key, label string, values []string) *Control {
	values = slices.DeleteFunc(slices.Clone(values), func(v string) bool { return v == All })
	return &Control{
		key,
		label,
		values,
		All,
		nil,
	}
}

func (c *Control) Key() string {
	return c.key
}

func (c *Control) Label() string {
	return c.label
}

// Options returns All followed by every value.
func (c *Control) Options() []string {
	return append([]string{All}, c.values...)
}

func (c *Control) Selected() string {
	return c.selected
}

// OnChange registers a listener for selection changes.
func (c *Control) OnChange(listener func(selected string)) {
	c.listeners = append(c.listeners, listener)
}

// Select moves the control to value. Listeners only run when the selection actually changes.
func (c *Control) Select(value string) error {
	if value != All && !slices.Contains(c.values, value) {
		return fmt.Errorf("%s %q: %w", c.key, value, ErrUnknownOption)
	}
	if value == c.selected {
		return nil
	}
	c.selected = value
	for _, listener := range c.listeners {
		listener(value)
	}
	return nil
}

// Filters ties the generation and legendary controls to the visibility of a fixed set of rows.
type Filters struct {
	rows       []Row
	generation *Control
	legendary  *Control
	visible    []bool
}

// NewFilters builds both controls from the distinct values found in rows, with everything visible.
func NewFilters(rows []Row, generationLabel, legendaryLabel string) *Filters {
	generations := DistinctValues(rows, func(r Row) string { return r.Generation })
	legendaries := DistinctValues(rows, func(r Row) string { return r.Legendary })
	f := &Filters{
		rows:       rows,
		generation: NewControl("generation", generationLabel, generations),
		legendary:  NewControl("legendary", legendaryLabel, legendaries),
	}
	f.update()
	f.generation.OnChange(func(string) { f.update() })
	f.legendary.OnChange(func(string) { f.update() })
	return f
}

func (f *Filters) update() {
	f.visible = Visibility(f.rows, f.Selection())
}

func (f *Filters) Generation() *Control {
	return f.generation
}

func (f *Filters) Legendary() *Control {
	return f.legendary
}

func (f *Filters) Controls() []*Control {
	return []*Control{f.generation, f.legendary}
}

func (f *Filters) Selection() Selection {
	return Selection{f.generation.Selected(), f.legendary.Selected()}
}

// Apply selects both values. Neither control changes if either value is unknown.
func (f *Filters) Apply(selection Selection) error {
	if selection.Generation == "" {
		selection.Generation = All
	}
	if selection.Legendary == "" {
		selection.Legendary = All
	}
	if selection.Generation != All && !slices.Contains(f.generation.values, selection.Generation) {
		return fmt.Errorf("%s %q: %w", f.generation.key, selection.Generation, ErrUnknownOption)
	}
	if selection.Legendary != All && !slices.Contains(f.legendary.values, selection.Legendary) {
		return fmt.Errorf("%s %q: %w", f.legendary.key, selection.Legendary, ErrUnknownOption)
	}
	if err := f.generation.Select(selection.Generation); err != nil {
		return err
	}
	return f.legendary.Select(selection.Legendary)
}

// Visible returns the current visibility of every row. Callers must not modify it.
func (f *Filters) Visible() []bool {
	return f.visible
}

func (f *Filters) VisibleCount() int {
	return CountVisible(f.visible)
}
