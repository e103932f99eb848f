package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNoHeader      = errors.New("table has no header")
	ErrMissingColumn = errors.New("missing column")
	ErrNotNumeric    = errors.New("not a number")
	ErrReservedValue = errors.New("value is reserved for the unfiltered option")
)

// SkippedRow records a table line that couldn't be turned into a Row.
type SkippedRow struct {
	// Line is 1-based and counts the header, so it matches the line in the source file.
	Line int
	Err  error
}

type Dataset struct {
	columns Columns
	rows    []Row
	skipped []SkippedRow
}

// ParseDataset builds rows from a header and its records. Records whose plotted fields aren't finite numbers are
// skipped and listed in Skipped, they never reach the scales as NaN. So are records whose generation or legendary
// field is All, which couldn't be told apart from the unfiltered option.
func ParseDataset(header []string, records [][]string, columns Columns) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	for _, name := range columns.names() {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}

	field := func(record []string, name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dataset := &Dataset{
		columns: columns,
		rows:    make([]Row, 0, len(records)),
	}
	for i, record := range records {
		line := i + 2
		x, err := parseStat(field(record, columns.X))
		if err != nil {
			dataset.skipped = append(dataset.skipped, SkippedRow{line, fmt.Errorf("column %q: %w", columns.X, err)})
			continue
		}
		y, err := parseStat(field(record, columns.Y))
		if err != nil {
			dataset.skipped = append(dataset.skipped, SkippedRow{line, fmt.Errorf("column %q: %w", columns.Y, err)})
			continue
		}
		generation, legendary := field(record, columns.Generation), field(record, columns.Legendary)
		if generation == All {
			dataset.skipped = append(dataset.skipped, SkippedRow{line, fmt.Errorf("column %q: %w", columns.Generation, ErrReservedValue)})
			continue
		}
		if legendary == All {
			dataset.skipped = append(dataset.skipped, SkippedRow{line, fmt.Errorf("column %q: %w", columns.Legendary, ErrReservedValue)})
			continue
		}
		dataset.rows = append(dataset.rows, Row{
			Name:       field(record, columns.Name),
			X:          x,
			Y:          y,
			Primary:    field(record, columns.Primary),
			Secondary:  field(record, columns.Secondary),
			Generation: generation,
			Legendary:  legendary,
		})
	}

	return dataset, nil
}

func parseStat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return v, nil
}

func (d *Dataset) Columns() Columns {
	return d.columns
}

func (d *Dataset) Rows() []Row {
	return d.rows
}

func (d *Dataset) Skipped() []SkippedRow {
	return d.skipped
}

// Xs returns the x value of every row in order.
func (d *Dataset) Xs() []float64 {
	xs := make([]float64, len(d.rows))
	for i, r := range d.rows {
		xs[i] = r.X
	}
	return xs
}

func (d *Dataset) Ys() []float64 {
	ys := make([]float64, len(d.rows))
	for i, r := range d.rows {
		ys[i] = r.Y
	}
	return ys
}
