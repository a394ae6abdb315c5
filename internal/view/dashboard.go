package view

import (
	"fmt"
	"strings"

	"DexBoard/internal/dashboard"
	"DexBoard/internal/format"
)

const lineWidth = 86

// RenderDashboard builds the full grouped dashboard: header counters,
// category line, liquidation banner, per-venue price grid, sorted
// symbol summary, and the most-liquidated table.
func (r *Renderer) RenderDashboard(snap *dashboard.Snapshot) string {
	var b strings.Builder

	b.WriteString(rule(lineWidth) + "\n")
	b.WriteString(fmt.Sprintf(" %s  |  %d Symbols  |  %d Venues  |  %s Ticks Recv  |  %s Saved\n",
		r.paint("yellow", "DEXBOARD"),
		snap.Stats.SymbolCount,
		len(snap.Stats.VenueCounts),
		format.Count(snap.Stats.TicksReceived),
		format.Count(snap.Stats.TicksSaved)))
	b.WriteString(rule(lineWidth) + "\n")

	if len(snap.Categories) > 0 {
		parts := make([]string, 0, len(snap.Categories))
		for _, c := range snap.Categories {
			parts = append(parts, fmt.Sprintf("%s: %d", titleCase(c.Name), c.Count))
		}
		b.WriteString(" " + strings.Join(parts, " | ") + "\n")
	}

	liq := snap.Liquidation
	b.WriteString(fmt.Sprintf(" %s %s (%s)  |  Longs %s  |  Shorts %s\n",
		r.paint("red", strings.ToUpper(liq.Label)+" LIQUIDATIONS"),
		format.USD(liq.TotalValue),
		format.Count(int64(liq.TotalCount)),
		r.paint("green", format.USD(liq.LongValue)),
		r.paint("red", format.USD(liq.ShortValue))))
	b.WriteString(rule(lineWidth) + "\n")

	r.writeGrid(&b, snap)
	r.writeSummary(&b, snap)
	r.writeTopLiquidated(&b, snap)

	b.WriteString(fmt.Sprintf("\n %s | %s\n", r.Source,
		snap.FetchedAt.Format("2006-01-02 15:04:05")))
	return b.String()
}

// writeGrid prints the five venue columns side by side. Every column
// is exactly dashboard.GridRows tall; blank cells keep rows aligned.
func (r *Renderer) writeGrid(b *strings.Builder, snap *dashboard.Snapshot) {
	headers := make([]string, 0, len(snap.Grids))
	for _, g := range snap.Grids {
		label := fmt.Sprintf("%s %d", g.Venue.DisplayName, g.Count)
		pad := 16 - len(label)
		if pad < 0 {
			pad = 0
		}
		headers = append(headers, r.paint(g.Venue.Color, label)+strings.Repeat(" ", pad))
	}
	b.WriteString("\n " + strings.Join(headers, " ") + "\n")

	for row := 0; row < dashboard.GridRows; row++ {
		cells := make([]string, 0, len(snap.Grids))
		for _, g := range snap.Grids {
			e := g.Entries[row]
			price := ""
			// Compact mode already renders missing prices as empty; zero
			// prices are placeholder rows upstream and stay blank too.
			if e.Price.Valid && e.Price.Float64 != 0 {
				price = format.Price(e.Price, true)
			}
			cells = append(cells, fmt.Sprintf("%-9s%7s", truncate(e.Ticker, 9), price))
		}
		b.WriteString(" " + strings.Join(cells, " ") + "\n")
	}
}

func (r *Renderer) writeSummary(b *strings.Builder, snap *dashboard.Snapshot) {
	if len(snap.Summaries) == 0 {
		return
	}
	b.WriteString("\n" + rule(lineWidth) + "\n")
	for _, s := range snap.Summaries {
		b.WriteString(fmt.Sprintf(" %s %s\n",
			r.paint(s.Venue.Color, s.Venue.DisplayName+":"),
			strings.Join(s.Tickers, ", ")))
	}
}

func (r *Renderer) writeTopLiquidated(b *strings.Builder, snap *dashboard.Snapshot) {
	if len(snap.TopAssets) == 0 {
		return
	}
	b.WriteString("\n " + r.paint("red", fmt.Sprintf("Most Liquidated (%s)", snap.Liquidation.Label)) + "\n")
	b.WriteString(fmt.Sprintf(" %-10s %12s %12s %12s\n", "Asset", "Total", "Longs", "Shorts"))
	for _, a := range snap.TopAssets {
		b.WriteString(fmt.Sprintf(" %-10s %12s %12s %12s\n",
			truncate(a.Asset, 10),
			format.USD(a.TotalValue),
			format.USD(a.LongValue),
			format.USD(a.ShortValue)))
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
