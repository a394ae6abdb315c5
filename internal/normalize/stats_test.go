package normalize

import "testing"

func TestTickStats_FullPayload(t *testing.T) {
	payload := map[string]any{
		"symbols":      []any{"hyna:BTC", "xyz:TSLA", 42.0},
		"symbol_count": 58.0,
		"latest_prices": map[string]any{
			"hyna:BTC": map[string]any{"price": 67250.0},
			"xyz:TSLA": 412.5,
			"flx:XMR":  map[string]any{"note": "stale"},
		},
		"dex_counts": map[string]any{"hyna": 12.0, "xyz": 27.0, "bad": "x"},
		"categories": map[string]any{
			"crypto": []any{"hyna:BTC"},
			"fx":     []any{},
		},
		"collector_stats": map[string]any{
			"ticks_received": 125000.0,
			"ticks_saved":    124800.0,
		},
	}
	stats := TickStats(payload)

	if len(stats.Symbols) != 2 {
		t.Errorf("expected non-string symbols skipped, got %v", stats.Symbols)
	}
	if stats.SymbolCount != 58 {
		t.Errorf("expected explicit symbol_count to win, got %d", stats.SymbolCount)
	}
	if p := stats.LatestPrices["hyna:BTC"]; !p.Valid || p.Float64 != 67250.0 {
		t.Errorf("nested price entry: got %+v", p)
	}
	if p := stats.LatestPrices["xyz:TSLA"]; !p.Valid || p.Float64 != 412.5 {
		t.Errorf("bare number entry: got %+v", p)
	}
	if p := stats.LatestPrices["flx:XMR"]; p.Valid {
		t.Errorf("priceless entry should stay invalid, got %+v", p)
	}
	if stats.VenueCounts["hyna"] != 12 || stats.VenueCounts["xyz"] != 27 {
		t.Errorf("venue counts: got %v", stats.VenueCounts)
	}
	if _, ok := stats.VenueCounts["bad"]; ok {
		t.Error("non-numeric count should be skipped")
	}
	if stats.TicksReceived != 125000 || stats.TicksSaved != 124800 {
		t.Errorf("collector counters: got %d/%d", stats.TicksReceived, stats.TicksSaved)
	}
}

func TestTickStats_DegradesToZeroValues(t *testing.T) {
	for _, payload := range []any{nil, "junk", []any{1, 2}} {
		stats := TickStats(payload)
		if len(stats.Symbols) != 0 || stats.SymbolCount != 0 {
			t.Errorf("TickStats(%v): expected zero stats, got %+v", payload, stats)
		}
		if stats.LatestPrices == nil {
			t.Errorf("TickStats(%v): prices map must be usable", payload)
		}
	}

	stats := TickStats(map[string]any{"symbols": []any{"hyna:BTC"}})
	if stats.SymbolCount != 1 {
		t.Errorf("expected count fallback to len(symbols), got %d", stats.SymbolCount)
	}
}

func TestLiquidationStats(t *testing.T) {
	payload := map[string]any{
		"windows": map[string]any{
			"1h": map[string]any{
				"total_value_usd": 2450000.0,
				"long_value_usd":  1800000.0,
				"short_value_usd": 650000.0,
				"total_count":     312.0,
				"by_asset": map[string]any{
					"BTC": map[string]any{"total_value": 1200000.0, "long_value": 900000.0, "short_value": 300000.0},
					"ETH": map[string]any{"total_value": 800000.0},
					"BAD": "not a breakdown",
				},
			},
			"junk": "not a window",
		},
	}
	windows := LiquidationStats(payload)

	w, ok := windows["1h"]
	if !ok {
		t.Fatal("expected 1h window")
	}
	if w.TotalValue != 2450000 || w.LongValue != 1800000 || w.ShortValue != 650000 {
		t.Errorf("window values: got %+v", w)
	}
	if w.TotalCount != 312 {
		t.Errorf("expected count 312, got %d", w.TotalCount)
	}
	if len(w.ByAsset) != 2 {
		t.Fatalf("expected 2 asset breakdowns, got %d", len(w.ByAsset))
	}
	if w.ByAsset[0].Asset != "BTC" || w.ByAsset[1].Asset != "ETH" {
		t.Errorf("expected name-ordered assets, got %+v", w.ByAsset)
	}
	if _, ok := windows["junk"]; ok {
		t.Error("malformed window should be skipped")
	}
}

func TestLiquidationStats_UnrecognizedShapes(t *testing.T) {
	for _, payload := range []any{nil, 7.0, []any{}, map[string]any{"windows": "x"}} {
		if windows := LiquidationStats(payload); len(windows) != 0 {
			t.Errorf("LiquidationStats(%v): expected empty map, got %v", payload, windows)
		}
	}
}
