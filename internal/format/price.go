// Package format turns numeric market values into display strings.
//
// The instrument universe spans sub-cent memecoins and six-figure
// notionals in the same view, so precision follows magnitude: a fixed
// decimal count would either truncate small caps or waste grid width
// on large ones.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"DexBoard/internal/model"
)

// Price renders a normalized price. Compact mode is used in dense
// grids where absent data should not occupy visual weight, so it
// renders "no data" as an empty cell instead of "N/A".
func Price(p model.Price, compact bool) string {
	if p.Valid {
		return Float(p.Float64, compact)
	}
	if compact {
		return ""
	}
	return "N/A"
}

// Value is the total entry point: nil means no data, numbers (and
// numeric strings) are banded by magnitude, and anything else passes
// through unchanged rather than failing.
func Value(v any, compact bool) string {
	if v == nil {
		if compact {
			return ""
		}
		return "N/A"
	}
	f, ok := toFloat(v)
	if !ok {
		return fmt.Sprint(v)
	}
	return Float(f, compact)
}

// Float applies the magnitude bands. Negative values are banded by
// magnitude with the sign preserved in front of the currency symbol.
func Float(v float64, compact bool) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	if compact {
		switch {
		case v >= 10000:
			return sign + strconv.FormatFloat(v/1000, 'f', 0, 64) + "k"
		case v >= 1000:
			return sign + strconv.FormatFloat(v, 'f', 0, 64)
		case v >= 1:
			return sign + strconv.FormatFloat(v, 'f', 2, 64)
		case v >= 0.01:
			return sign + strconv.FormatFloat(v, 'f', 3, 64)
		default:
			return sign + strconv.FormatFloat(v, 'f', 4, 64)
		}
	}
	switch {
	case v >= 10000:
		return sign + "$" + humanize.FormatFloat("#,###.", v)
	case v >= 1000:
		return sign + "$" + humanize.FormatFloat("#,###.##", v)
	case v >= 1:
		return sign + "$" + humanize.FormatFloat("#,###.##", v)
	case v >= 0.01:
		return sign + "$" + humanize.FormatFloat("#,###.####", v)
	default:
		return sign + "$" + humanize.FormatFloat("#,###.######", v)
	}
}

// USD renders a notional in abbreviated dollar form for one-line
// liquidation rows: $1.2M, $45.6k, $789.
func USD(v float64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	switch {
	case v >= 1_000_000:
		return sign + fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return sign + fmt.Sprintf("$%.1fk", v/1_000)
	default:
		return sign + fmt.Sprintf("$%.0f", v)
	}
}

// Count renders a counter with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

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
