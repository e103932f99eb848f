package sources

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"pokeplot/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyTable        = errors.New("table is empty")
)

type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// Table is the raw content of a data source: a header line followed by records.
type Table struct {
	Header  []string
	Records [][]string
}

// Source loads a table once. Every implementation fails with ErrEmptyTable when there isn't even a header.
type Source interface {
	Load(ctx context.Context) (*Table, error)
	String() string
}

type Options struct {
	// Sheet picks the workbook sheet for xlsx sources, empty means the first sheet.
	Sheet string
	// Timeout bounds a remote fetch.
	Timeout time.Duration
}

// Open picks a source for location, which is either a file path or an http(s) url.
func Open(location string, opts Options) (Source, error) {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		format, _ := formatFromExt(u.Path)
		return NewHTTP(location, format, opts), nil
	}

	format, err := formatFromExt(location)
	if err != nil {
		return nil, err
	}
	switch format {
	case XLSX:
		return NewXLSXFile(location, opts.Sheet), nil
	default:
		return NewCSVFile(location), nil
	}
}

func formatFromExt(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".xlsx", ".xlsm":
		return XLSX, nil
	default:
		return "", fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
}

func newTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{
		Header:  rows[0],
		Records: rows[1:],
	}, nil
}

// LoadDataset loads source and parses it into rows, logging every record that had to be skipped.
func LoadDataset(ctx context.Context, source Source, columns models.Columns) (*models.Dataset, error) {
	table, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't load %s: %w", source, err)
	}

	dataset, err := models.ParseDataset(table.Header, table.Records, columns)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", source, err)
	}

	for _, skipped := range dataset.Skipped() {
		log.Printf("skipping %s line %d: %s", source, skipped.Line, skipped.Err)
	}
	log.Printf("loaded %d rows from %s (%d skipped)", len(dataset.Rows()), source, len(dataset.Skipped()))

	return dataset, nil
}
