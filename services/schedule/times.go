package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// ParseClock parses a wall-clock string ("HH:MM" or "HH:MM:SS") into minutes
// from midnight. Seconds are accepted and discarded. Hours must be 0-23 and
// minutes 0-59; anything else is an InvalidTimeFormatError.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &InvalidTimeFormatError{Value: value}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &InvalidTimeFormatError{Value: value}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &InvalidTimeFormatError{Value: value}
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, &InvalidTimeFormatError{Value: value}
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &InvalidTimeFormatError{Value: value}
	}
	return hour*60 + minute, nil
}

// FormatMinutes renders minutes from midnight back to "HH:MM" for display.
func FormatMinutes(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Interval is a half-open [Start, End) wall-clock range in minutes from
// midnight. End <= Start is legal only when CrossesMidnight is set; callers
// dealing with overnight shifts must say so explicitly rather than relying on
// the endpoints being misordered.
type Interval struct {
	Start           int
	End             int
	CrossesMidnight bool
}

// Contains reports whether t (minutes from midnight) falls inside the
// interval. A slot at the End boundary belongs to the next interval.
func (iv Interval) Contains(t int) bool {
	if iv.CrossesMidnight {
		return t >= iv.Start || t < iv.End
	}
	return t >= iv.Start && t < iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	if iv.CrossesMidnight {
		return (MinutesPerDay - iv.Start) + iv.End
	}
	return iv.End - iv.Start
}

// ParseInterval parses two clock strings into an Interval. End before (or
// equal to) start is passed through untouched; rejecting it is a caller
// concern.
func ParseInterval(start, end string, crossesMidnight bool) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e, CrossesMidnight: crossesMidnight}, nil
}

// Overlaps reports whether two same-day half-open intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
