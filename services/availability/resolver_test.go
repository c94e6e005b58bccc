package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 8, 30, 0, 0, time.Local)
}

func specific(date, start, end string) RawSlot {
	return RawSlot{Kind: SlotKindSpecific, Date: date, StartTime: start, EndTime: end}
}

func TestBuildIndex_GroupsAndSorts(t *testing.T) {
	today := day(2025, time.June, 1)
	idx := BuildIndex([]RawSlot{
		specific("2025-06-10", "14:00", "15:00"),
		specific("2025-06-10", "09:00", "10:30"),
		specific("2025-06-12", "08:00", "09:00"),
	}, today)

	assert.Equal(t, []string{"2025-06-10", "2025-06-12"}, idx.Dates)
	assert.Equal(t, []string{"09:00", "14:00"}, idx.StartTimes("2025-06-10"))
	assert.Equal(t, []string{"08:00"}, idx.StartTimes("2025-06-12"))
}

func TestBuildIndex_Idempotent(t *testing.T) {
	raw := `[
		{"type":"specific","date":"2025-06-10","startTime":"09:00","endTime":"10:30"},
		{"type":"specific","date":"2025-06-11","startTime":"14:00","endTime":"16:00"}
	]`
	today := day(2025, time.June, 1)

	first := BuildIndex(raw, today)
	second := BuildIndex(raw, today)
	assert.Equal(t, first, second)
}

func TestBuildIndex_FiltersPastDates(t *testing.T) {
	today := day(2025, time.June, 10)
	idx := BuildIndex([]RawSlot{
		specific("2025-06-09", "09:00", "10:00"),
		specific("2025-06-10", "09:00", "10:00"),
		specific("2025-06-11", "09:00", "10:00"),
	}, today)

	assert.Equal(t, []string{"2025-06-10", "2025-06-11"}, idx.Dates)
	assert.False(t, idx.HasDate("2025-06-09"))
	assert.Empty(t, idx.StartTimes("2025-06-09"))
}

func TestBuildIndex_DropsIncompleteAndForeignKinds(t *testing.T) {
	today := day(2025, time.June, 1)
	idx := BuildIndex([]RawSlot{
		{Kind: "recurring", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00"},
		{Kind: SlotKindSpecific, Date: "", StartTime: "09:00", EndTime: "10:00"},
		{Kind: SlotKindSpecific, Date: "2025-06-10", StartTime: "", EndTime: "10:00"},
		{Kind: SlotKindSpecific, Date: "2025-06-10", StartTime: "09:00", EndTime: ""},
		specific("2025-06-10", "11:00", "12:00"),
	}, today)

	assert.Equal(t, []string{"2025-06-10"}, idx.Dates)
	assert.Equal(t, []string{"11:00"}, idx.StartTimes("2025-06-10"))
}

func TestBuildIndex_MalformedPayloadsDegradeToEmpty(t *testing.T) {
	today := day(2025, time.June, 1)

	for name, raw := range map[string]any{
		"not json":       "not json",
		"json object":    `{"foo":"bar"}`,
		"nil":            nil,
		"incomplete":     `[{"incomplete":true}]`,
		"wrong type":     42,
		"channel-esque":  map[string]any{"availability": "nope"},
		"truncated json": `[{"type":"specific","date":"2025-0`,
	} {
		idx := BuildIndex(raw, today)
		assert.True(t, idx.IsEmpty(), "payload %q should yield an empty index", name)
		assert.Empty(t, idx.Dates, "payload %q", name)
	}
}

func TestBuildIndex_KeepsOverlappingWindows(t *testing.T) {
	today := day(2025, time.June, 1)
	idx := BuildIndex([]RawSlot{
		specific("2025-06-10", "09:00", "11:00"),
		specific("2025-06-10", "10:00", "12:00"),
	}, today)

	assert.Equal(t, []string{"09:00", "10:00"}, idx.StartTimes("2025-06-10"))
}

func TestParse_DecodedSliceRoundTrip(t *testing.T) {
	raw := []any{
		map[string]any{"type": "specific", "date": "2025-06-10", "startTime": "09:00", "endTime": "10:30"},
	}
	slots, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, specific("2025-06-10", "09:00", "10:30"), slots[0])
}

func TestParse_MalformedError(t *testing.T) {
	_, err := Parse("not json")
	assert.ErrorIs(t, err, ErrMalformedAvailability)
}

func TestResolveEndTime_ExactMatch(t *testing.T) {
	today := day(2025, time.June, 1)
	idx := BuildIndex([]RawSlot{specific("2025-06-10", "09:00", "10:30")}, today)

	// Tutor-declared end is preserved verbatim, not rounded to a default hour.
	assert.Equal(t, "10:30", idx.ResolveEndTime("2025-06-10", "09:00"))
}

func TestResolveEndTime_FallbackOneHour(t *testing.T) {
	today := day(2025, time.June, 1)
	idx := BuildIndex([]RawSlot{specific("2025-06-10", "09:00", "10:30")}, today)

	assert.Equal(t, "15:00", idx.ResolveEndTime("2025-06-10", "14:00"))
	assert.Equal(t, "15:00", idx.ResolveEndTime("2025-07-01", "14:00"))
}

func TestResolveEndTime_FallbackDoesNotWrapMidnight(t *testing.T) {
	idx := BuildIndex(nil, day(2025, time.June, 1))

	assert.Equal(t, "24:30", idx.ResolveEndTime("2025-06-10", "23:30"))
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "10:30", 1.5},
		{"09:00", "10:00", 1},
		{"08:00", "08:05", 0.08},
		{"10:15", "11:40", 1.42},
		{"23:30", "24:30", 1},
	}
	for _, tt := range tests {
		got, err := DurationHours(tt.start, tt.end)
		require.NoError(t, err, "%s-%s", tt.start, tt.end)
		assert.Equal(t, tt.want, got, "%s-%s", tt.start, tt.end)
	}
}

func TestDurationHours_RejectsNonPositive(t *testing.T) {
	var invalid *InvalidDurationError

	_, err := DurationHours("10:00", "09:00")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "10:00", invalid.StartTime)

	_, err = DurationHours("10:00", "10:00")
	assert.ErrorAs(t, err, &invalid)

	_, err = DurationHours("garbage", "10:00")
	assert.ErrorAs(t, err, &invalid)
}

func TestPrice(t *testing.T) {
	got, err := Price(1.5, 200000)
	require.NoError(t, err)
	assert.Equal(t, float64(300000), got)

	// Smallest-unit rounding for VND.
	got, err = Price(1.42, 150000)
	require.NoError(t, err)
	assert.Equal(t, float64(213000), got)

	got, err = Price(0.08, 175000)
	require.NoError(t, err)
	assert.Equal(t, float64(14000), got)

	// Zero rate means "contact for price" upstream, not an error here.
	got, err = Price(2, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPrice_RejectsNegativeRate(t *testing.T) {
	var invalid *InvalidRateError
	_, err := Price(1, -5)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, float64(-5), invalid.Rate)
}

func TestQuoteFlow(t *testing.T) {
	raw := `[{"type":"specific","date":"2025-06-10","startTime":"09:00","endTime":"10:30"}]`
	idx := BuildIndex(raw, day(2025, time.June, 1))

	end := idx.ResolveEndTime("2025-06-10", "09:00")
	hours, err := DurationHours("09:00", end)
	require.NoError(t, err)
	total, err := Price(hours, 200000)
	require.NoError(t, err)

	assert.Equal(t, "10:30", end)
	assert.Equal(t, 1.5, hours)
	assert.Equal(t, float64(300000), total)
}
