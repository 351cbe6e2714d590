package schedule

import "fmt"

// InvalidTimeFormatError reports a malformed clock string ("HH:MM" or
// "HH:MM:SS" expected). Resolution skips the offending record and keeps going.
type InvalidTimeFormatError struct {
	Value string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Value)
}

// Diagnostic codes attached to resolution results.
const (
	DiagInvalidTimeFormat   = "invalidTimeFormat"
	DiagInconsistentBooking = "inconsistentBookingState"
	DiagUnknownOverrideType = "unknownOverrideType"
)

// Diagnostic is a per-record warning collected during resolution. Bad records
// never fail a whole date; they are skipped and reported here instead.
type Diagnostic struct {
	Code     string `json:"code"`
	RecordID string `json:"recordId,omitempty"`
	Detail   string `json:"detail"`
}
