// Package timeutil converts between "HH:MM" strings, minute counts and
// the display strings used by the planner views.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoTime is the placeholder shown for an absent time or duration.
const NoTime = "—"

// DateLayout is the calendar day format used for task dates.
const DateLayout = "2006-01-02"

// ToMinutes parses "H:MM" or "HH:MM" into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, fmt.Errorf("parse time %q: missing ':'", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", hhmm, err)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", hhmm, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("parse time %q: out of range", hhmm)
	}
	return hours*60 + minutes, nil
}

// IsMissing reports whether a time field holds no value.
func IsMissing(hhmm string) bool {
	s := strings.TrimSpace(hhmm)
	return s == "" || s == NoTime
}

// NormalizeTime maps an empty input to NoTime and zero-pads valid times,
// so "9:05" is stored as "09:05" and sorts correctly as a string.
func NormalizeTime(hhmm string) string {
	s := strings.TrimSpace(hhmm)
	if s == "" {
		return NoTime
	}
	if m, err := ToMinutes(s); err == nil {
		return fmt.Sprintf("%02d:%02d", m/60, m%60)
	}
	return s
}

// span returns end-start in minutes, ok=false when either side is
// missing or malformed.
func span(start, end string) (int, bool) {
	if IsMissing(start) || IsMissing(end) {
		return 0, false
	}
	s, err := ToMinutes(start)
	if err != nil {
		return 0, false
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, false
	}
	return e - s, true
}

// CalculateDuration renders the span between start and end as "1h 30m".
// It returns NoTime when either time is missing or end is not after start.
func CalculateDuration(start, end string) string {
	diff, ok := span(start, end)
	if !ok || diff <= 0 {
		return NoTime
	}
	return fmt.Sprintf("%dh %dm", diff/60, diff%60)
}

// DurationInMinutes renders the span between start and end as "45 min".
func DurationInMinutes(start, end string) string {
	diff, ok := span(start, end)
	if !ok || diff <= 0 {
		return NoTime
	}
	return fmt.Sprintf("%d min", diff)
}

// To12Hour converts "13:05" to "01:05 PM". NoTime passes through, and so
// does anything that does not parse.
func To12Hour(hhmm string) string {
	if hhmm == NoTime {
		return NoTime
	}
	total, err := ToMinutes(hhmm)
	if err != nil {
		return hhmm
	}
	h, m := total/60, total%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, period)
}

// ParseDate parses a YYYY-MM-DD day in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// Today returns now's calendar day in now's location.
func Today(now time.Time) string { return FormatDate(now) }

// AddDays shifts a YYYY-MM-DD day by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}
