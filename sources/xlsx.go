package sources

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

type XLSXFile struct {
	path  string
	sheet string
}

func NewXLSXFile(path, sheet string) *XLSXFile {
	return &XLSXFile{path, sheet}
}

func (x *XLSXFile) String() string {
	if x.sheet == "" {
		return x.path
	}
	return x.path + "#" + x.sheet
}

func (x *XLSXFile) Load(_ context.Context) (*Table, error) {
	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, err
	}
	defer closeWorkbook(f)

	return readSheet(f, x.sheet)
}

func readXLSX(reader io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer closeWorkbook(f)

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyTable
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return newTable(rows)
}

func closeWorkbook(f *excelize.File) {
	if err := f.Close(); err != nil {
		log.Printf("couldn't close workbook: %s", err)
	}
}
