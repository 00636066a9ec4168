package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/achrecon-dev/achrecon/internal/model"
)

// Required column headers in a supplier invoice export.
const (
	ColPaymentDate     = "Payment Date"
	ColDescription     = "Line Item Description"
	ColExtendedAmount  = "Extended Amount"
	ColQuantity        = "Quantity"
	ColUnitCost        = "Unit Cost"
	ColInvoiceAmount   = "Invoice Amount"
	ColDueDate         = "Due Date"
	ColCAIInvoice      = "CAI Invoice Number"
	ColSupplierInvoice = "Supplier's Invoice Number"
)

var requiredColumns = []string{
	ColPaymentDate,
	ColDescription,
	ColExtendedAmount,
	ColQuantity,
	ColUnitCost,
	ColInvoiceAmount,
	ColDueDate,
	ColCAIInvoice,
	ColSupplierInvoice,
}

// columnIndex maps trimmed header names to positions, failing on the first
// missing required column.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

// rowFromRecord builds an InvoiceRow from one record. Per-row defects
// (blank or unparseable cells) degrade the field, never fail the file.
func rowFromRecord(rec []string, idx map[string]int) model.InvoiceRow {
	get := func(col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	return model.InvoiceRow{
		PaymentDate:           parseDate(get(ColPaymentDate)),
		Description:           get(ColDescription),
		ExtendedAmount:        parseAmount(get(ColExtendedAmount)),
		Quantity:              parseAmount(get(ColQuantity)),
		UnitCost:              parseAmount(get(ColUnitCost)),
		InvoiceAmount:         parseAmount(get(ColInvoiceAmount)),
		DueDate:               normalizeDate(get(ColDueDate)),
		CAIInvoiceNumber:      get(ColCAIInvoice),
		SupplierInvoiceNumber: get(ColSupplierInvoice),
	}
}

// dateLayouts covers the formats spreadsheet exports and CSV dumps produce.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"Jan 2, 2006",
}

// parseDate returns nil for blank or unrecognized dates so that bad rows
// simply never match a payment date.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// normalizeDate reformats a date cell to YYYY-MM-DD, passing unparseable
// text through untouched.
func normalizeDate(s string) string {
	if t := parseDate(s); t != nil {
		return t.Format("2006-01-02")
	}
	return s
}

// parseAmount reads a numeric cell. Blank or malformed cells become zero.
// Tolerates "$", thousands separators, and accounting-style parentheses
// negatives.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	if neg {
		return d.Neg()
	}
	return d
}
