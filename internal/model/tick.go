package model

// Price is an optional price value. Valid is false when the upstream
// payload carried no usable number for the field; it is never coerced
// to zero so "no data" stays distinguishable from a zero price.
type Price struct {
	Float64 float64
	Valid   bool
}

// SomePrice wraps a known price value.
func SomePrice(v float64) Price {
	return Price{Float64: v, Valid: true}
}

// TickRecord is one normalized, display-ready price observation.
type TickRecord struct {
	Seq   int    // 1-based, assigned in input order at normalization time
	Time  string // resolved display timestamp
	Price Price
}

// TickSeries is the canonical form of a tick-history payload. Ticks are
// kept in the order they arrived; the normalizer re-indexes but never
// re-sorts or deduplicates.
type TickSeries struct {
	Ticks  []TickRecord
	Count  int
	Latest Price
}

// TickStats is the normalized aggregate-statistics payload backing the
// grouped dashboard.
type TickStats struct {
	Symbols       []string
	SymbolCount   int
	LatestPrices  map[string]Price
	VenueCounts   map[string]int
	Categories    map[string][]string
	TicksReceived int64
	TicksSaved    int64
}
