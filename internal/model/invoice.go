package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow is one parsed row of a supplier invoice spreadsheet.
type InvoiceRow struct {
	PaymentDate           *time.Time // nil when the cell is blank or unparseable
	Description           string     // raw line item description
	ExtendedAmount        decimal.Decimal
	Quantity              decimal.Decimal
	UnitCost              decimal.Decimal
	InvoiceAmount         decimal.Decimal
	DueDate               string // YYYY-MM-DD when parseable, raw text otherwise
	CAIInvoiceNumber      string
	SupplierInvoiceNumber string
}
