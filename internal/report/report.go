package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/achrecon-dev/achrecon/internal/model"
	"github.com/achrecon-dev/achrecon/internal/recon"
)

// Columns is the report body header, in output order.
var Columns = []string{
	"First Name",
	"Last Name",
	"Candidate CAI ID",
	"Vector Week Ending",
	"FMS Week Ending",
	"Hours",
	"Bill Rate",
	"Extended Amount",
	"Invoice Amount",
	"Due Date",
	"CAI Invoice Number",
	"ESG Invoice Number",
}

// Options controls report presentation. Zero values fall back to the
// defaults of the finance team's template.
type Options struct {
	SheetName    string
	MaxColWidth  float64
	WidthPadding float64
}

const (
	defaultSheetName    = "ACH Report"
	defaultMaxColWidth  = 40
	defaultWidthPadding = 2
	summaryTitle        = "ACH Summary"
	dateFormat          = "2006-01-02"
)

func (o Options) withDefaults() Options {
	if o.SheetName == "" {
		o.SheetName = defaultSheetName
	}
	if o.MaxColWidth <= 0 {
		o.MaxColWidth = defaultMaxColWidth
	}
	if o.WidthPadding <= 0 {
		o.WidthPadding = defaultWidthPadding
	}
	return o
}

// Build renders a reconciliation result as a single-sheet workbook: summary
// block, blank line, bold header, then body rows with one blank separator
// row between week-ending groups (never leading or trailing). Rows whose
// week ending is empty form their own trailing group and are not separated
// from each other.
func Build(result *recon.Result, opts Options) (*excelize.File, error) {
	opts = opts.withDefaults()

	f := excelize.NewFile()
	sheet := opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	rows := [][]any{
		{summaryTitle},
		{"ACH Description", result.Summary.Description},
		{"ACH Amount", result.Summary.Amount.InexactFloat64()},
		{"ACH Date", result.Summary.Date.Format(dateFormat)},
		{},
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	rows = append(rows, header)
	headerRow := len(rows)

	prevWeek := ""
	for i, r := range result.Rows {
		if i > 0 && r.VectorWeekEnding != prevWeek {
			rows = append(rows, nil)
		}
		rows = append(rows, bodyCells(r))
		prevWeek = r.VectorWeekEnding
	}

	for i, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := boldRow(f, sheet, headerRow, len(Columns)); err != nil {
		f.Close()
		return nil, err
	}
	if err := sizeColumns(f, sheet, rows, opts); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Bytes renders the workbook into an in-memory buffer ready for download.
func Bytes(result *recon.Result, opts Options) (*bytes.Buffer, error) {
	f, err := Build(result, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.WriteToBuffer()
}

func bodyCells(r model.ReconciledRow) []any {
	return []any{
		r.FirstName,
		r.LastName,
		r.CandidateID,
		r.VectorWeekEnding,
		r.FmsWeekEnding,
		r.Hours.InexactFloat64(),
		r.BillRate.InexactFloat64(),
		r.ExtendedAmount.InexactFloat64(),
		r.InvoiceAmount.InexactFloat64(),
		r.DueDate,
		r.CAIInvoiceNumber,
		r.ESGInvoiceNumber,
	}
}

func boldRow(f *excelize.File, sheet string, row, cols int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, start, end, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	return nil
}

// sizeColumns sets each column width to the longest stringified cell in
// that column (summary block and header included), capped at MaxColWidth,
// plus WidthPadding.
func sizeColumns(f *excelize.File, sheet string, rows [][]any, opts Options) error {
	widths := make([]int, len(Columns))
	for _, cells := range rows {
		for j, v := range cells {
			if j >= len(widths) {
				continue
			}
			if n := len(fmt.Sprint(v)); n > widths[j] {
				widths[j] = n
			}
		}
	}
	for j, w := range widths {
		if w == 0 {
			continue
		}
		width := float64(w)
		if width > opts.MaxColWidth {
			width = opts.MaxColWidth
		}
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width+opts.WidthPadding); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}
	return nil
}
