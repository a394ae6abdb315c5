package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"DexBoard/internal/collector"
	"DexBoard/internal/config"
	"DexBoard/internal/dashboard"
	"DexBoard/internal/model"
	"DexBoard/internal/normalize"
	"DexBoard/internal/scheduler"
	"DexBoard/internal/view"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var fetcher collector.Fetcher
	if os.Getenv("DEXBOARD_MOCK") == "true" {
		fetcher = &collector.MockFetcher{}
	} else {
		fetcher = collector.NewAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}

	renderer := view.NewRenderer(os.Stdout, sourceLabel(cfg.DataSource.BaseURL))

	args := os.Args[1:]
	switch {
	case len(args) == 0:
		if cfg.Watch.Cron != "" {
			runWatch(cfg.Watch.Cron, fetcher, renderer)
			return
		}
		if err := runDashboard(fetcher, renderer); err != nil {
			log.Fatalf("[FATAL] dashboard: %v", err)
		}
	case len(args) == 2:
		venue := strings.ToLower(args[0])
		ticker := strings.ToLower(args[1])
		if !model.KnownVenue(venue) {
			fmt.Fprintf(os.Stderr, "unknown venue: %s (use %s)\n",
				venue, strings.Join(model.VenueOrder, ", "))
			os.Exit(1)
		}
		runTicks(fetcher, renderer, venue, ticker)
	default:
		fmt.Println("Usage: dexboard [venue] [ticker]")
		fmt.Println("Example: dexboard xyz tsla")
	}
}

// runDashboard fetches both aggregate payloads, normalizes them, and
// prints the grouped view. A liquidation fetch failure only degrades
// that section to zeros; a tick-stats failure is fatal to the run.
func runDashboard(fetcher collector.Fetcher, renderer *view.Renderer) error {
	raw, err := fetcher.FetchTickStats()
	if err != nil {
		return fmt.Errorf("fetch tick stats: %w", err)
	}
	stats := normalize.TickStats(raw)

	var windows map[string]model.LiquidationWindow
	if lraw, err := fetcher.FetchLiquidationStats(); err != nil {
		log.Printf("[WARN] fetch liquidation stats: %v", err)
	} else {
		windows = normalize.LiquidationStats(lraw)
	}

	snap := dashboard.Build(stats, windows)
	fmt.Print(renderer.RenderDashboard(snap))
	return nil
}

// runTicks renders the single-symbol view. A transport failure here is
// shown inline and the process still exits cleanly.
func runTicks(fetcher collector.Fetcher, renderer *view.Renderer, venue, ticker string) {
	meta, _ := model.LookupVenue(venue)
	raw, err := fetcher.FetchTicks(venue, ticker)
	if err != nil {
		fmt.Print(renderer.RenderTicksError(meta, ticker, err))
		return
	}
	series := normalize.Ticks(raw)
	fmt.Print(renderer.RenderTicks(meta, ticker, series))
}

// runWatch renders once immediately, then re-renders on the cron
// schedule until interrupted.
func runWatch(spec string, fetcher collector.Fetcher, renderer *view.Renderer) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	task := func() {
		if err := runDashboard(fetcher, renderer); err != nil {
			log.Printf("[ERROR] dashboard refresh: %v", err)
		}
	}
	task()

	sched := scheduler.NewScheduler(ctx, task)
	if err := sched.Register(spec); err != nil {
		log.Fatalf("[FATAL] register watch schedule: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}

// sourceLabel reduces the base URL to a short footer label.
func sourceLabel(baseURL string) string {
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return baseURL
}
