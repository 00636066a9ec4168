package recon

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/achrecon-dev/achrecon/internal/descparse"
	"github.com/achrecon-dev/achrecon/internal/model"
)

// Summary carries the entered ACH transaction onto the report.
type Summary struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// Result is a successful reconciliation: the matched rows sorted by vector
// week ending ascending, plus the ACH summary fields.
type Result struct {
	Rows    []model.ReconciledRow
	Summary Summary
}

// Reconcile verifies that the invoice rows sharing the payment date sum to
// the entered ACH amount and projects them to the report schema.
//
// The amount check runs before any row processing. Rows whose descriptions
// fail to parse keep empty derived fields and sort after every dated row.
// A panic during row processing is reported as an unexpected-error failure
// rather than crashing the caller.
func Reconcile(rows []model.InvoiceRow, payment model.AchPayment) (result *Result, err error) {
	amount, perr := decimal.NewFromString(strings.TrimSpace(payment.Amount))
	if perr != nil {
		return nil, &Error{
			Reason:  ReasonNonNumericAmount,
			Message: fmt.Sprintf("ACH amount %q must be numeric", payment.Amount),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &Error{
				Reason:  ReasonUnexpected,
				Message: fmt.Sprintf("unexpected error: %v", r),
			}
		}
	}()

	matching := filterByDate(rows, payment.Date)
	if len(matching) == 0 {
		return nil, &Error{
			Reason:  ReasonNoMatchingRows,
			Message: fmt.Sprintf("no rows with payment date matching ACH date %s", payment.Date.Format(dateFormat)),
		}
	}

	total := decimal.Zero
	for _, row := range matching {
		total = total.Add(row.ExtendedAmount)
	}
	expected := total.Round(2)
	entered := amount.Round(2)
	if !expected.Equal(entered) {
		return nil, &Error{Reason: ReasonAmountMismatch, Expected: expected, Entered: entered}
	}

	out := make([]model.ReconciledRow, 0, len(matching))
	for _, row := range matching {
		out = append(out, project(row))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return weekEndingLess(out[i].VectorWeekEnding, out[j].VectorWeekEnding)
	})

	return &Result{
		Rows: out,
		Summary: Summary{
			Description: payment.Description,
			Amount:      amount,
			Date:        payment.Date,
		},
	}, nil
}

func filterByDate(rows []model.InvoiceRow, date time.Time) []model.InvoiceRow {
	var matching []model.InvoiceRow
	for _, row := range rows {
		if row.PaymentDate == nil {
			continue
		}
		if sameDay(*row.PaymentDate, date) {
			matching = append(matching, row)
		}
	}
	return matching
}

// sameDay compares calendar dates, ignoring any time-of-day component.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// project maps an invoice row to the report schema, attaching parsed
// consultant fields and the derived FMS week ending.
func project(row model.InvoiceRow) model.ReconciledRow {
	pd, _ := descparse.Parse(row.Description)
	return model.ReconciledRow{
		ParsedDescription: pd,
		FmsWeekEnding:     DeriveFmsWeekEnding(pd.VectorWeekEnding),
		Hours:             row.Quantity,
		BillRate:          row.UnitCost,
		ExtendedAmount:    row.ExtendedAmount,
		InvoiceAmount:     row.InvoiceAmount,
		DueDate:           row.DueDate,
		CAIInvoiceNumber:  row.CAIInvoiceNumber,
		ESGInvoiceNumber:  row.SupplierInvoiceNumber,
	}
}

// weekEndingLess orders YYYY-MM-DD keys ascending; lexicographic order on
// that layout is chronological. Unparsed (empty) keys sort last.
func weekEndingLess(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	return a < b
}
