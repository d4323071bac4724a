// Package timeago converts the elapsed time since a version's creation into
// the listing's human-readable label. Band selection lives in one pure
// classification function so the boundary rules stay in a single place
// instead of leaking into templates.
package timeago

import (
	"fmt"
	"time"
)

// Band identifies which relative-time form applies to an elapsed duration.
type Band int

const (
	// BandSeconds covers elapsed durations under one minute.
	BandSeconds Band = iota
	// BandMinutes covers 60s up to (but excluding) one hour.
	BandMinutes
	// BandHours covers one hour and beyond while the elapsed whole days are zero.
	BandHours
	// BandDays covers whole days 1 through 30; exactly 30 days still reads
	// "30 days and 0 hours ago".
	BandDays
	// BandAbsolute replaces the relative label with an MM/DD/YYYY date once
	// more than 30 days have passed.
	BandAbsolute
)

const day = 24 * time.Hour

// Classify maps an elapsed duration onto its band. Negative durations
// (future-dated timestamps) are clamped to zero. Exact boundaries at 60s and
// 3600s belong to the later band; the 30-day boundary itself stays in BandDays.
func Classify(d time.Duration) Band {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return BandSeconds
	case d < time.Hour:
		return BandMinutes
	case d < day:
		return BandHours
	case d <= 30*day:
		return BandDays
	default:
		return BandAbsolute
	}
}

// Format renders the label for a version created at createdAt as seen at now.
// Pure and deterministic: no clock reads, no I/O.
func Format(createdAt, now time.Time) string {
	d := now.Sub(createdAt)
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	switch Classify(d) {
	case BandSeconds:
		return fmt.Sprintf("%d seconds ago", secs%60)
	case BandMinutes:
		return fmt.Sprintf("%d minutes ago", (secs%3600)/60)
	case BandHours:
		return fmt.Sprintf("%d hours and %d min ago", secs/3600, (secs%3600)/60)
	case BandDays:
		days := secs / 86400
		return fmt.Sprintf("%d days and %d hours ago", days, (secs-days*86400)/3600)
	default:
		return AbsoluteDate(createdAt)
	}
}

// AbsoluteDate renders the MM/DD/YYYY form used past the 30-day horizon.
func AbsoluteDate(t time.Time) string {
	return t.UTC().Format("01/02/2006")
}

// Timestamp renders the full MM/DD/YYYY HH:MM:SS UTC form shown for each
// entry inside an expanded version panel.
func Timestamp(t time.Time) string {
	return t.UTC().Format("01/02/2006 15:04:05")
}
