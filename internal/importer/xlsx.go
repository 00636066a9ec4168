package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/achrecon-dev/achrecon/internal/model"
)

// XLSXReader parses the first sheet of a supplier invoice workbook.
type XLSXReader struct{}

// Format returns the reader name.
func (p *XLSXReader) Format() string { return "xlsx" }

// Read reads a supplier invoice workbook and returns InvoiceRows.
func (p *XLSXReader) Read(r io.Reader) ([]model.InvoiceRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening invoice workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("invoice workbook has no header row")
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
