// Package normalize converts loosely-shaped upstream payloads into the
// canonical display model. Its one rule: malformed input degrades
// field-by-field to documented defaults and never surfaces an error —
// partial market data still has to render something.
package normalize

import (
	"encoding/json"
	"strconv"
)

// Synonym tables. Upstream payloads name the same logical field
// differently depending on which service produced them, so each field
// is resolved by consulting its synonyms in priority order, first
// match wins. Short tick-level names are checked before long ones.
var (
	tickListKeys   = []string{"ticks", "data"}
	tickCountKeys  = []string{"tick_count", "count"}
	priceKeys      = []string{"p", "price"}
	latestKeys     = []string{"latest_price", "price"}
	epochKeys      = []string{"t", "timestamp", "time"}
	dateKeys       = []string{"dt"}
	windowTotalKey = []string{"total_value_usd", "total_value"}
	windowLongKey  = []string{"long_value_usd", "long_value"}
	windowShortKey = []string{"short_value_usd", "short_value"}
)

// lookup returns the first value present in rec under any of keys.
func lookup(rec map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// lookupNumber returns the first key whose value converts to a number.
// Keys holding non-numeric values are skipped, not errors.
func lookupNumber(rec map[string]any, keys []string) (float64, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// toFloat converts the numeric shapes a decoded JSON payload can carry.
// Numeric strings count; anything else does not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt truncates a looked-up number to int, defaulting when absent.
func toInt(rec map[string]any, keys []string, fallback int) int {
	if f, ok := lookupNumber(rec, keys); ok {
		return int(f)
	}
	return fallback
}
