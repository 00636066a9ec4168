package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/achrecon-dev/achrecon/internal/model"
)

// CSVReader parses a supplier invoice CSV export. The header row must carry
// the same column names as the xlsx export.
type CSVReader struct{}

// Format returns the reader name.
func (p *CSVReader) Format() string { return "csv" }

// Read reads a supplier invoice CSV and returns InvoiceRows.
func (p *CSVReader) Read(r io.Reader) ([]model.InvoiceRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading invoice CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("invoice file has no header row")
	}

	idx, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	var rows []model.InvoiceRow
	for _, rec := range records[1:] {
		rows = append(rows, rowFromRecord(rec, idx))
	}
	return rows, nil
}
