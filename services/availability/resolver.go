// Package availability turns a tutor's raw, possibly string-encoded
// availability payload into a queryable per-date slot index and answers the
// three booking questions: which dates are bookable, which start times are
// bookable on a date, and what end time and price follow from a chosen start.
//
// Everything here is pure: no I/O, no shared state. Callers own caching
// (typically per tutor-id + payload).
package availability

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// SlotKindSpecific is the only recognized slot kind: a concrete calendar
	// date. Recurring weekday patterns are not supported.
	SlotKindSpecific = "specific"

	// DateFormat is the calendar-date key layout used throughout.
	DateFormat = "2006-01-02"
)

// RawSlot is one tutor-declared open interval as stored on the tutor profile.
// The wire field for the kind tag is "type".
type RawSlot struct {
	Kind      string `json:"type"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Window is a bookable interval within one date, minute precision, 24-hour
// zero-padded HH:MM.
type Window struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Index is the per-date grouping of a tutor's bookable windows. It is built
// once per raw payload and read-only afterwards.
type Index struct {
	// Dates holds the distinct bookable dates, sorted ascending.
	Dates []string
	// Windows maps a YYYY-MM-DD key to its windows, sorted ascending by
	// start time. Overlapping windows are kept as-is; each one is a valid
	// booking option.
	Windows map[string][]Window
}

// Parse decodes a raw availability payload into a slot list. The payload may
// arrive as a JSON string, raw bytes, an already-decoded []RawSlot, or any
// value that round-trips through JSON into an array. Anything else yields
// ErrMalformedAvailability.
func Parse(raw any) ([]RawSlot, error) {
	var data []byte
	switch v := raw.(type) {
	case nil:
		return nil, ErrMalformedAvailability
	case []RawSlot:
		return v, nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAvailability, err)
		}
		data = encoded
	}

	var slots []RawSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAvailability, err)
	}
	return slots, nil
}

// BuildIndex builds the availability index for one raw payload. Malformed
// payloads degrade to an empty index rather than erroring: tutor-entered data
// must never break the booking flow, it just presents no slots.
//
// Entries are kept only when they are "specific", carry all three of
// date/startTime/endTime, and their date is today or later. The today
// boundary is today's calendar date in today's location; callers pass their
// local wall clock, which intentionally preserves the local-timezone
// filtering behavior at day boundaries.
func BuildIndex(raw any, today time.Time) Index {
	idx := Index{Windows: map[string][]Window{}}

	slots, err := Parse(raw)
	if err != nil {
		return idx
	}

	// Lexicographic comparison works for both keys: zero-padded YYYY-MM-DD
	// and HH:MM sort the same as their chronological order.
	todayKey := today.Format(DateFormat)

	for _, s := range slots {
		if s.Kind != SlotKindSpecific {
			continue
		}
		if s.Date == "" || s.StartTime == "" || s.EndTime == "" {
			continue
		}
		if s.Date < todayKey {
			continue
		}
		idx.Windows[s.Date] = append(idx.Windows[s.Date], Window{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	for date, windows := range idx.Windows {
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].StartTime < windows[j].StartTime
		})
		idx.Dates = append(idx.Dates, date)
	}
	sort.Strings(idx.Dates)

	return idx
}

// IsEmpty reports whether the index holds no bookable dates.
func (idx Index) IsEmpty() bool {
	return len(idx.Dates) == 0
}

// HasDate reports whether the given date has at least one window.
func (idx Index) HasDate(date string) bool {
	return len(idx.Windows[date]) > 0
}

// StartTimes returns the sorted start times bookable on the given date.
// Unknown dates yield an empty slice.
func (idx Index) StartTimes(date string) []string {
	windows := idx.Windows[date]
	starts := make([]string, 0, len(windows))
	for _, w := range windows {
		starts = append(starts, w.StartTime)
	}
	return starts
}

// ResolveEndTime returns the end time for a chosen date and start time. An
// exact start-time match returns the tutor-declared end verbatim, even when
// it is not start+1h. With no match (the UI can race a just-refreshed index)
// it falls back to start+1h. The fallback does not wrap past midnight, so a
// late start such as "23:30" resolves to "24:30"; clockMinutes accepts hour
// values past 23, which keeps those fallbacks priceable as one-hour lessons.
func (idx Index) ResolveEndTime(date, startTime string) string {
	for _, w := range idx.Windows[date] {
		if w.StartTime == startTime {
			return w.EndTime
		}
	}
	return addOneHour(startTime)
}

// DurationHours computes the selection length in hours, rounded to two
// decimal places half-away-from-zero. A non-positive span, or a clock value
// that does not parse, yields InvalidDurationError.
func DurationHours(startTime, endTime string) (float64, error) {
	start, okStart := clockMinutes(startTime)
	end, okEnd := clockMinutes(endTime)
	if !okStart || !okEnd || end <= start {
		return 0, &InvalidDurationError{StartTime: startTime, EndTime: endTime}
	}
	hours := float64(end-start) / 60.0
	return math.Round(hours*100) / 100, nil
}

// Price computes the total amount for a duration at an hourly rate, rounded
// to the currency's smallest unit (0 decimal places, VND). Zero rates are
// permitted; negative rates yield InvalidRateError.
func Price(durationHours, hourlyRate float64) (float64, error) {
	if hourlyRate < 0 {
		return 0, &InvalidRateError{Rate: hourlyRate}
	}
	return math.Round(durationHours * hourlyRate), nil
}

// clockMinutes converts a zero-padded HH:MM value to minutes since midnight.
// Hour values past 23 are accepted so that fallback end times such as "24:30"
// remain comparable.
func clockMinutes(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	h, ok := twoDigits(clock[0], clock[1])
	if !ok {
		return 0, false
	}
	m, ok := twoDigits(clock[3], clock[4])
	if !ok || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// addOneHour shifts an HH:MM value forward sixty minutes without clamping at
// midnight. Unparseable input yields an empty string.
func addOneHour(clock string) string {
	mins, ok := clockMinutes(clock)
	if !ok {
		return ""
	}
	mins += 60
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
