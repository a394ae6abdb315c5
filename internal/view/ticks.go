package view

import (
	"fmt"
	"strings"
	"time"

	"DexBoard/internal/format"
	"DexBoard/internal/model"
)

// tickRows caps the tick table; older ticks are summarized in a
// trailing count line instead of scrolling the terminal.
const tickRows = 20

// RenderTicks builds the single-symbol tick history view.
func (r *Renderer) RenderTicks(venue model.VenueMetadata, ticker string, series model.TickSeries) string {
	var b strings.Builder
	r.writeTicksHeader(&b, venue, ticker)

	b.WriteString(fmt.Sprintf(" Latest %s  |  %s Ticks  |  %s\n\n",
		r.paint("yellow", format.Price(series.Latest, false)),
		format.Count(int64(series.Count)),
		venue.Focus))

	if len(series.Ticks) > 0 {
		b.WriteString(fmt.Sprintf(" %4s  %-19s  %14s\n", "#", "Time", "Price"))
		ticks := series.Ticks
		if len(ticks) > tickRows {
			ticks = ticks[len(ticks)-tickRows:]
		}
		for _, t := range ticks {
			b.WriteString(fmt.Sprintf(" %4d  %-19s  %14s\n",
				t.Seq, t.Time, format.Price(t.Price, false)))
		}
		b.WriteString(fmt.Sprintf(" Showing last %d of %d ticks\n", len(ticks), len(series.Ticks)))
	}

	r.writeTicksFooter(&b)
	return b.String()
}

// RenderTicksError reports a failed tick-history fetch inside the
// framed view; the failure is visible but does not kill the process.
func (r *Renderer) RenderTicksError(venue model.VenueMetadata, ticker string, err error) string {
	var b strings.Builder
	r.writeTicksHeader(&b, venue, ticker)
	b.WriteString(" " + r.paint("red", fmt.Sprintf("Error: %v", err)) + "\n")
	r.writeTicksFooter(&b)
	return b.String()
}

func (r *Renderer) writeTicksHeader(b *strings.Builder, venue model.VenueMetadata, ticker string) {
	title := fmt.Sprintf("%s:%s", venue.DisplayName, strings.ToUpper(ticker))
	b.WriteString(rule(lineWidth) + "\n")
	b.WriteString(" " + r.paint(venue.Color, title) + " Tick Data\n")
	b.WriteString(rule(lineWidth) + "\n")
}

func (r *Renderer) writeTicksFooter(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("\n %s | %s\n", r.Source,
		time.Now().Format("2006-01-02 15:04:05")))
}
