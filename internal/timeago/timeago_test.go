package timeago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC)

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want Band
	}{
		{name: "zero", d: 0, want: BandSeconds},
		{name: "future clamps to seconds", d: -5 * time.Minute, want: BandSeconds},
		{name: "59s stays seconds", d: 59 * time.Second, want: BandSeconds},
		{name: "60s flips to minutes", d: time.Minute, want: BandMinutes},
		{name: "3599s stays minutes", d: 3599 * time.Second, want: BandMinutes},
		{name: "3600s flips to hours", d: time.Hour, want: BandHours},
		{name: "23h59m stays hours", d: 24*time.Hour - time.Minute, want: BandHours},
		{name: "one whole day flips to days", d: 24 * time.Hour, want: BandDays},
		{name: "30 days exactly stays days", d: 30 * 24 * time.Hour, want: BandDays},
		{name: "30 days and a second flips to absolute", d: 30*24*time.Hour + time.Second, want: BandAbsolute},
		{name: "31 days absolute", d: 31 * 24 * time.Hour, want: BandAbsolute},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Classify(tc.d))
		})
	}
}

func TestFormatLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds", d: 45 * time.Second, want: "45 seconds ago"},
		{name: "seconds upper edge", d: 59 * time.Second, want: "59 seconds ago"},
		{name: "minutes lower edge", d: time.Minute, want: "1 minutes ago"},
		{name: "minutes", d: 42*time.Minute + 10*time.Second, want: "42 minutes ago"},
		{name: "minutes upper edge", d: 3599 * time.Second, want: "59 minutes ago"},
		{name: "hours lower edge", d: time.Hour, want: "1 hours and 0 min ago"},
		{name: "hours with remainder", d: 5*time.Hour + 7*time.Minute, want: "5 hours and 7 min ago"},
		{name: "days lower edge", d: 24 * time.Hour, want: "1 days and 0 hours ago"},
		{name: "days with remainder", d: 3*24*time.Hour + 11*time.Hour, want: "3 days and 11 hours ago"},
		{name: "thirty days exactly", d: 30 * 24 * time.Hour, want: "30 days and 0 hours ago"},
		{name: "future clamp", d: -time.Hour, want: "0 seconds ago"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Format(now.Add(-tc.d), now))
		})
	}
}

func TestFormatBeyondThirtyDaysUsesAbsoluteDate(t *testing.T) {
	t.Parallel()

	created := now.Add(-(30*24*time.Hour + time.Second))
	require.Equal(t, "07/30/2026", Format(created, now))

	created = now.Add(-90 * 24 * time.Hour)
	require.Equal(t, AbsoluteDate(created), Format(created, now))
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.January, 5, 9, 8, 7, 0, time.UTC)
	require.Equal(t, "01/05/2026 09:08:07", Timestamp(ts))

	// non-UTC inputs are normalized
	jst := time.FixedZone("JST", 9*3600)
	require.Equal(t, "01/05/2026 09:08:07", Timestamp(ts.In(jst)))
}
