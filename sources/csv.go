package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
)

type CSVFile struct {
	path string
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path}
}

func (c *CSVFile) String() string {
	return c.path
}

func (c *CSVFile) Load(_ context.Context) (*Table, error) {
	file, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("couldn't close file: %s", err)
		}
	}(file)

	return readCSV(file)
}

func readCSV(reader io.Reader) (*Table, error) {
	csvReader := csv.NewReader(reader)
	// Rows may be short, ParseDataset treats missing fields as empty.
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return newTable(rows)
}
