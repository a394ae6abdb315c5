package normalize

import (
	"fmt"
	"strconv"
	"time"
)

// TimeSource tells how a display timestamp was derived, so callers can
// distinguish a genuinely resolved value from a silently defaulted one.
type TimeSource int

const (
	TimeFromString TimeSource = iota // pre-formatted date field passed through
	TimeFromEpoch                    // numeric epoch converted to local time
	TimeRaw                          // field present but unconvertible; raw form shown
	TimeMissing                      // no timestamp field; placeholder shown
)

const timeLayout = "2006-01-02 15:04:05"

// displayWidth is the canonical "YYYY-MM-DD HH:MM:SS" width; longer
// pre-formatted strings are truncated to it without reparsing.
const displayWidth = 19

// Epoch seconds past this are not a representable wall-clock time
// (year 9999); such values fall back to their raw representation.
const maxEpochSeconds = 253402300799

// ResolveTime produces a single human-readable timestamp for a record.
// It tries a pre-formatted date string first, then a numeric epoch
// field (values above 1e10 are milliseconds), then gives up with the
// "N/A" placeholder. Every branch yields a string; nothing here ever
// fails upward.
func ResolveTime(rec map[string]any) (string, TimeSource) {
	if raw, ok := lookup(rec, dateKeys); ok {
		if s, ok := raw.(string); ok && s != "" {
			if len(s) > displayWidth {
				return s[:displayWidth], TimeFromString
			}
			return s, TimeFromString
		}
	}

	raw, ok := lookup(rec, epochKeys)
	if !ok {
		return "N/A", TimeMissing
	}
	ts, ok := toFloat(raw)
	if !ok {
		return rawString(raw), TimeRaw
	}
	if ts == 0 {
		return "N/A", TimeMissing
	}

	secs := ts
	if ts > 1e10 {
		secs = ts / 1000
	}
	if secs < 0 || secs > maxEpochSeconds {
		return rawString(raw), TimeRaw
	}
	return time.Unix(int64(secs), 0).Format(timeLayout), TimeFromEpoch
}

// rawString renders an unconvertible timestamp field without the
// exponent form fmt would pick for large decoded numbers.
func rawString(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}
