// Package resolver derives the facts every auction view needs (current price,
// closed state, winner and messaging eligibility) from a snapshot of an auction
// and its bids. All functions are pure and safe for concurrent use.
package resolver

import (
	"regexp"
	"strings"
	"time"
)

var (
	offsetSuffix = regexp.MustCompile(`(Z|[+-]\d{2}(:?\d{2})?)$`)
	naiveSeconds = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
)

// Layouts for strings carrying their own offset. Fractional seconds are
// accepted after the seconds field without being spelled out.
var offsetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07",
}

// Best-effort layouts. Layouts without a zone parse as UTC.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RubyDate,
	time.UnixDate,
	time.ANSIC,
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// ParseTimestamp turns a server timestamp into an absolute instant in UTC with
// millisecond precision. Naive timestamps are UTC, never local time.
// The boolean is false when the value cannot be parsed; callers treat that as
// an unknown instant.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if offsetSuffix.MatchString(s) {
		if t, ok := parseWith(offsetLayouts, s); ok {
			return t, true
		}
	} else if naiveSeconds.MatchString(s) {
		if t, err := time.Parse(time.RFC3339, s+"Z"); err == nil {
			return normalize(t), true
		}
	}

	return parseWith(fallbackLayouts, s)
}

func parseWith(layouts []string, s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return normalize(t), true
		}
	}
	return time.Time{}, false
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
