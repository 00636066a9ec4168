package recon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// FailureReason classifies why a reconciliation run was rejected.
type FailureReason string

const (
	ReasonMissingInput     FailureReason = "missing-input"
	ReasonNonNumericAmount FailureReason = "non-numeric-amount"
	ReasonNoMatchingRows   FailureReason = "no-matching-rows"
	ReasonAmountMismatch   FailureReason = "amount-mismatch"
	ReasonUnexpected       FailureReason = "unexpected-error"
)

// Error is a terminal reconciliation failure. Expected and Entered are
// populated only for ReasonAmountMismatch, both rounded to 2 decimal places.
type Error struct {
	Reason   FailureReason
	Message  string
	Expected decimal.Decimal
	Entered  decimal.Decimal
}

func (e *Error) Error() string {
	if e.Reason == ReasonAmountMismatch {
		return fmt.Sprintf("ACH amount mismatch: expected total from file $%s, entered $%s",
			e.Expected.StringFixed(2), e.Entered.StringFixed(2))
	}
	return e.Message
}

// ReasonOf extracts the failure reason from err. Any error outside the
// taxonomy counts as unexpected.
func ReasonOf(err error) FailureReason {
	var re *Error
	if errors.As(err, &re) {
		return re.Reason
	}
	return ReasonUnexpected
}
