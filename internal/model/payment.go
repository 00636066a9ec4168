package model

import "time"

// AchPayment is the manually entered ACH transaction to reconcile against.
// Amount stays raw text here; the engine owns the numeric validation.
type AchPayment struct {
	Amount      string
	Description string
	Date        time.Time
}
