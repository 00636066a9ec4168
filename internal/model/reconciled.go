package model

import "github.com/shopspring/decimal"

// ParsedDescription holds the consultant fields embedded in a line item
// description. The fields are populated together or not at all; an empty
// VectorWeekEnding means the description did not match the expected pattern.
type ParsedDescription struct {
	FirstName        string
	LastName         string // empty when the name was a single token
	CandidateID      string // "S" followed by digits
	VectorWeekEnding string // YYYY-MM-DD
}

// ReconciledRow is one matched invoice row projected to the report schema.
type ReconciledRow struct {
	ParsedDescription
	FmsWeekEnding    string          // VectorWeekEnding + 2 days, empty when underived
	Hours            decimal.Decimal // invoice Quantity
	BillRate         decimal.Decimal // invoice Unit Cost
	ExtendedAmount   decimal.Decimal
	InvoiceAmount    decimal.Decimal
	DueDate          string
	CAIInvoiceNumber string
	ESGInvoiceNumber string // supplier's invoice number
}
