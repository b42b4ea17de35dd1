// Command ls-almanac is a terminal almanac: rise and set times, lunar phases
// and apsides, seasons and planet visibility for an observing site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/report"
	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/ui"
)

const (
	minRefresh = 1 * time.Second
	maxRefresh = 1 * time.Hour
)

func main() {
	configPath := flag.String("config", "", "Path to TOML site config")
	lat := flag.Float64("lat", 91, "Observer latitude in degrees (overrides config)")
	lon := flag.Float64("lon", 181, "Observer longitude in degrees (overrides config)")
	elev := flag.Float64("elev", 0, "Observer elevation in meters")
	date := flag.String("date", "", "Almanac date as YYYY-MM-DD (default: now)")
	year := flag.Int("year", 0, "Print season table for a year and exit")
	summaryMode := flag.Bool("summary", false, "Print text almanac instead of TUI")
	refresh := flag.Duration("refresh", 0, "TUI recompute interval (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *lat >= -90 && *lat <= 90 {
		cfg.Observer.Latitude = *lat
	}
	if *lon >= -180 && *lon <= 180 {
		cfg.Observer.Longitude = *lon
	}
	if *elev != 0 {
		cfg.Observer.Height = *elev
	}
	if *refresh != 0 {
		cfg.Refresh = *refresh
	}
	if cfg.Refresh < minRefresh {
		cfg.Refresh = minRefresh
	} else if cfg.Refresh > maxRefresh {
		cfg.Refresh = maxRefresh
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	startTime := astrotime.Now()
	if *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q: %v\n", *date, err)
			os.Exit(1)
		}
		startTime = astrotime.FromTime(parsed)
	}

	if *year != 0 {
		seasons, err := almanac.Seasons(*year)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		report.WriteSeasons(os.Stdout, *year, seasons)
		return
	}

	// Headless when asked for, or when stdout is not a terminal.
	if *summaryMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		r, err := report.Compute(cfg.Observer, startTime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		report.WriteSummary(os.Stdout, r)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.Config{RefreshInterval: cfg.Refresh}
	stateMgr := state.NewManager(stateCfg)

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, cfg.Observer, stateMgr, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runComputeLoop(ctx context.Context, obs astro.Observer, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doCompute(obs, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(obs, stateMgr, p, logger)
		}
	}
}

func doCompute(obs astro.Observer, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	logger.Debug("Computing almanac...")
	start := time.Now()

	r, err := report.Compute(obs, astrotime.Now())
	duration := time.Since(start)

	if err != nil {
		logger.Error("Compute failed: %v", err)
		stateMgr.Update(nil, duration, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	logger.Debug("Almanac computed in %v", duration)
	stateMgr.Update(r, duration, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}
