package normalize

import (
	"sort"

	"DexBoard/internal/model"
)

// TickStats converts the aggregate-statistics payload into typed form.
// Every section is optional: whatever is missing or oddly shaped
// becomes a zero value rather than an error, so a partial payload
// still renders.
func TickStats(payload any) model.TickStats {
	obj, ok := payload.(map[string]any)
	if !ok {
		return model.TickStats{LatestPrices: map[string]model.Price{}}
	}

	stats := model.TickStats{
		Symbols:      stringList(obj["symbols"]),
		LatestPrices: latestPrices(obj["latest_prices"]),
		VenueCounts:  intMap(obj["dex_counts"]),
		Categories:   categoryMap(obj["categories"]),
	}
	stats.SymbolCount = toInt(obj, []string{"symbol_count"}, len(stats.Symbols))

	if collector, ok := obj["collector_stats"].(map[string]any); ok {
		if f, ok := lookupNumber(collector, []string{"ticks_received"}); ok {
			stats.TicksReceived = int64(f)
		}
		if f, ok := lookupNumber(collector, []string{"ticks_saved"}); ok {
			stats.TicksSaved = int64(f)
		}
	}
	return stats
}

// LiquidationStats extracts and types the windows mapping from the
// liquidation-statistics payload. Unknown shapes yield an empty map.
func LiquidationStats(payload any) map[string]model.LiquidationWindow {
	windows := map[string]model.LiquidationWindow{}
	obj, ok := payload.(map[string]any)
	if !ok {
		return windows
	}
	raw, ok := obj["windows"].(map[string]any)
	if !ok {
		return windows
	}
	for label, w := range raw {
		win, ok := w.(map[string]any)
		if !ok {
			continue
		}
		windows[label] = liquidationWindow(label, win)
	}
	return windows
}

func liquidationWindow(label string, win map[string]any) model.LiquidationWindow {
	out := model.LiquidationWindow{Label: label}
	out.TotalValue, _ = lookupNumber(win, windowTotalKey)
	out.LongValue, _ = lookupNumber(win, windowLongKey)
	out.ShortValue, _ = lookupNumber(win, windowShortKey)
	out.TotalCount = toInt(win, []string{"total_count"}, 0)

	if byAsset, ok := win["by_asset"].(map[string]any); ok {
		// JSON objects decode to unordered maps, so encounter order is
		// defined here as sorted asset name; ranking stays stable over it.
		names := make([]string, 0, len(byAsset))
		for name := range byAsset {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			entry, ok := byAsset[name].(map[string]any)
			if !ok {
				continue
			}
			asset := model.AssetLiquidation{Asset: name}
			asset.TotalValue, _ = lookupNumber(entry, windowTotalKey)
			asset.LongValue, _ = lookupNumber(entry, windowLongKey)
			asset.ShortValue, _ = lookupNumber(entry, windowShortKey)
			out.ByAsset = append(out.ByAsset, asset)
		}
	}
	return out
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// latestPrices accepts both entry shapes the stats endpoint has used:
// a nested object with a price field, or a bare number.
func latestPrices(v any) map[string]model.Price {
	out := map[string]model.Price{}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for sym, entry := range obj {
		switch e := entry.(type) {
		case map[string]any:
			if f, ok := lookupNumber(e, priceKeys); ok {
				out[sym] = model.SomePrice(f)
			} else {
				out[sym] = model.Price{}
			}
		default:
			if f, ok := toFloat(e); ok {
				out[sym] = model.SomePrice(f)
			} else {
				out[sym] = model.Price{}
			}
		}
	}
	return out
}

func intMap(v any) map[string]int {
	out := map[string]int{}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, entry := range obj {
		if f, ok := toFloat(entry); ok {
			out[k] = int(f)
		}
	}
	return out
}

func categoryMap(v any) map[string][]string {
	out := map[string][]string{}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for cat, members := range obj {
		out[cat] = stringList(members)
	}
	return out
}
