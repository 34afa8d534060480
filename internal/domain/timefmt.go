package domain

import (
	"fmt"
	"time"
)

// KST is Korea Standard Time, the zone of every upstream timestamp.
var KST = time.FixedZone("KST", 9*60*60)

const (
	minuteLayout = "200601021504"
	dateLayout   = "20060102"
)

// FormatDateTime renders t in the upstream fixed-width numeric form:
// YYYYMMDDHHmm when includeTime is set, YYYYMMDD otherwise. Calendar fields
// are taken from t's own location.
func FormatDateTime(t time.Time, includeTime bool) string {
	if includeTime {
		return t.Format(minuteLayout)
	}
	return t.Format(dateLayout)
}

// FormatMinute is FormatDateTime(t, true).
func FormatMinute(t time.Time) string { return FormatDateTime(t, true) }

// FormatDate is FormatDateTime(t, false).
func FormatDate(t time.Time) string { return FormatDateTime(t, false) }

// ParseDateTime parses a YYYYMMDDHHmm string as KST.
func ParseDateTime(s string) (time.Time, error) {
	if len(s) != len(minuteLayout) {
		return time.Time{}, fmt.Errorf("datetime %q: want YYYYMMDDHHmm", s)
	}
	t, err := time.ParseInLocation(minuteLayout, s, KST)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime %q: %w", s, err)
	}
	return t, nil
}

// ParseDate parses a YYYYMMDD string as midnight KST.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(dateLayout) {
		return time.Time{}, fmt.Errorf("date %q: want YYYYMMDD", s)
	}
	t, err := time.ParseInLocation(dateLayout, s, KST)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return t, nil
}
