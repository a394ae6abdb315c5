package collector

// MockFetcher returns controllable fixed payloads for development and
// testing. Zero-value fields fall back to a small generated sample in
// the same shape the live API produces.
type MockFetcher struct {
	TickStats        any
	Ticks            any
	LiquidationStats any
	Err              error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchTickStats() (any, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.TickStats != nil {
		return m.TickStats, nil
	}
	return sampleTickStats(), nil
}

func (m *MockFetcher) FetchTicks(venue, ticker string) (any, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Ticks != nil {
		return m.Ticks, nil
	}
	return sampleTicks(), nil
}

func (m *MockFetcher) FetchLiquidationStats() (any, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.LiquidationStats != nil {
		return m.LiquidationStats, nil
	}
	return sampleLiquidationStats(), nil
}

func sampleTickStats() map[string]any {
	return map[string]any{
		"symbols": []any{
			"xyz:TSLA", "xyz:NVDA", "xyz:GOLD", "flx:XMR",
			"vntl:OPENAI", "hyna:BTC", "hyna:ETH", "km:US500",
		},
		"symbol_count": float64(8),
		"latest_prices": map[string]any{
			"xyz:TSLA":    map[string]any{"price": 412.5},
			"xyz:NVDA":    map[string]any{"price": 1180.25},
			"xyz:GOLD":    map[string]any{"price": 2388.0},
			"flx:XMR":     map[string]any{"price": 161.44},
			"vntl:OPENAI": map[string]any{"price": 51200.0},
			"hyna:BTC":    map[string]any{"price": 67250.0},
			"hyna:ETH":    map[string]any{"price": 3120.5},
			"km:US500":    map[string]any{"price": 5310.75},
		},
		"dex_counts": map[string]any{
			"xyz": float64(3), "flx": float64(1), "vntl": float64(1),
			"hyna": float64(2), "km": float64(1),
		},
		"categories": map[string]any{
			"stocks":  []any{"xyz:TSLA", "xyz:NVDA"},
			"crypto":  []any{"hyna:BTC", "hyna:ETH", "flx:XMR"},
			"pre_ipo": []any{"vntl:OPENAI"},
			"fx":      []any{},
		},
		"collector_stats": map[string]any{
			"ticks_received": float64(125000),
			"ticks_saved":    float64(124800),
		},
	}
}

func sampleTicks() map[string]any {
	return map[string]any{
		"ticks": []any{
			map[string]any{"p": 67100.0, "t": float64(1700000000)},
			map[string]any{"p": 67180.5, "t": float64(1700000060)},
			map[string]any{"p": 67250.0, "t": float64(1700000120)},
		},
		"tick_count":   float64(3),
		"latest_price": 67250.0,
	}
}

func sampleLiquidationStats() map[string]any {
	return map[string]any{
		"windows": map[string]any{
			"1h": map[string]any{
				"total_value_usd": 2450000.0,
				"long_value_usd":  1800000.0,
				"short_value_usd": 650000.0,
				"total_count":     float64(312),
				"by_asset": map[string]any{
					"BTC": map[string]any{"total_value": 1200000.0, "long_value": 900000.0, "short_value": 300000.0},
					"ETH": map[string]any{"total_value": 800000.0, "long_value": 600000.0, "short_value": 200000.0},
					"SOL": map[string]any{"total_value": 450000.0, "long_value": 300000.0, "short_value": 150000.0},
				},
			},
		},
	}
}
