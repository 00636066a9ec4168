package recon

import "time"

const dateFormat = "2006-01-02"

// fmsOffsetDays is the fixed lag between a vector week ending and the
// corresponding FMS (financial management system) week ending.
const fmsOffsetDays = 2

// DeriveFmsWeekEnding returns vectorWeekEnding plus 2 calendar days,
// formatted YYYY-MM-DD. Empty or unparseable input yields "" so that a
// failed description parse degrades the row instead of aborting the run.
func DeriveFmsWeekEnding(vectorWeekEnding string) string {
	t, err := time.Parse(dateFormat, vectorWeekEnding)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, fmsOffsetDays).Format(dateFormat)
}
