package resolver

import "time"

// IsClosed reports whether an auction ending at ends has closed by now.
// A missing or unparseable end time never closes an auction.
func IsClosed(ends string, now time.Time) bool {
	end, ok := ParseTimestamp(ends)
	if !ok {
		return false
	}
	return now.After(end)
}
