package datemath

import (
	"errors"
	"time"
)

// DateLayout is the canonical calendar date form used for display and storage.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a D/M/Y token cannot be turned into a date.
var ErrInvalidDate = errors.New("invalid date")

// Result is the outcome of normalizing the text that follows a /by or /at marker.
type Result struct {
	// Text is the normalized free text, kept verbatim unless a time token was rewritten.
	Text string
	// Date is set only when the first token was a D/M/Y date.
	Date *time.Time
	// Time is the text paired with Date (normalized when it was a clock value).
	Time string
}

// HasDate reports whether a calendar date was recognized.
func (r Result) HasDate() bool {
	return r.Date != nil
}
