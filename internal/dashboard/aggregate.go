// Package dashboard assembles normalized statistics into the ephemeral
// per-render model the view consumes. Nothing here survives an
// invocation; every snapshot is rebuilt from the current payloads.
package dashboard

import (
	"sort"
	"time"

	"DexBoard/internal/model"
)

// GridRows is the fixed per-venue row budget. Columns are truncated
// and padded to this height so side-by-side tables align.
const GridRows = 15

// Entry is one ticker/price cell pair in a venue column.
type Entry struct {
	Ticker string
	Price  model.Price
}

// VenueGrid is one venue's display column: encounter-order entries,
// exactly GridRows long, blank entries padding the tail.
type VenueGrid struct {
	Venue   model.VenueMetadata
	Count   int
	Entries []Entry
}

// VenueSummary lists a venue's tickers sorted lexicographically. The
// grid favors arrival order; the summary favors scannability.
type VenueSummary struct {
	Venue   model.VenueMetadata
	Tickers []string
}

// CategoryCount is one non-empty category and its member count.
type CategoryCount struct {
	Name  string
	Count int
}

// Snapshot is the assembled model for one dashboard render pass.
type Snapshot struct {
	Stats       model.TickStats
	Grids       []VenueGrid
	Summaries   []VenueSummary
	Categories  []CategoryCount
	Liquidation model.LiquidationWindow
	TopAssets   []model.AssetLiquidation
	FetchedAt   time.Time
}

// DefaultWindow is the liquidation window the dashboard summarizes.
const DefaultWindow = "1h"

// Build assembles a snapshot from normalized statistics.
func Build(stats model.TickStats, windows map[string]model.LiquidationWindow) *Snapshot {
	window := Window(windows, DefaultWindow)
	return &Snapshot{
		Stats:       stats,
		Grids:       Grids(stats),
		Summaries:   Summaries(stats),
		Categories:  CategoryCounts(stats.Categories),
		Liquidation: window,
		TopAssets:   RankAssets(window.ByAsset),
		FetchedAt:   time.Now(),
	}
}

// GroupByVenue buckets venue-qualified symbols with their latest
// prices, preserving encounter order. Keys without a colon and venues
// outside the registry are noise, silently skipped.
func GroupByVenue(stats model.TickStats) map[string][]Entry {
	grouped := make(map[string][]Entry, len(model.VenueOrder))
	for _, code := range model.VenueOrder {
		grouped[code] = nil
	}
	for _, key := range stats.Symbols {
		sym, ok := model.ParseSymbol(key)
		if !ok || !model.KnownVenue(sym.Venue) {
			continue
		}
		grouped[sym.Venue] = append(grouped[sym.Venue], Entry{
			Ticker: sym.Ticker,
			Price:  stats.LatestPrices[key],
		})
	}
	return grouped
}

// Grids builds the display columns in canonical venue order.
func Grids(stats model.TickStats) []VenueGrid {
	grouped := GroupByVenue(stats)
	grids := make([]VenueGrid, 0, len(model.VenueOrder))
	for _, meta := range model.Venues() {
		entries := grouped[meta.Code]
		count, ok := stats.VenueCounts[meta.Code]
		if !ok {
			count = len(entries)
		}
		if len(entries) > GridRows {
			entries = entries[:GridRows]
		}
		column := make([]Entry, GridRows)
		copy(column, entries)
		grids = append(grids, VenueGrid{Venue: meta, Count: count, Entries: column})
	}
	return grids
}

// Summaries returns per-venue sorted ticker lists, skipping venues
// with no symbols.
func Summaries(stats model.TickStats) []VenueSummary {
	grouped := GroupByVenue(stats)
	summaries := make([]VenueSummary, 0, len(model.VenueOrder))
	for _, meta := range model.Venues() {
		entries := grouped[meta.Code]
		if len(entries) == 0 {
			continue
		}
		tickers := make([]string, 0, len(entries))
		for _, e := range entries {
			tickers = append(tickers, e.Ticker)
		}
		sort.Strings(tickers)
		summaries = append(summaries, VenueSummary{Venue: meta, Tickers: tickers})
	}
	return summaries
}

// CategoryCounts emits only categories with at least one member,
// sorted by name for a stable line.
func CategoryCounts(categories map[string][]string) []CategoryCount {
	counts := make([]CategoryCount, 0, len(categories))
	for name, members := range categories {
		if len(members) == 0 {
			continue
		}
		counts = append(counts, CategoryCount{Name: name, Count: len(members)})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
	return counts
}
