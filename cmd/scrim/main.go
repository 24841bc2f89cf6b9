// Command scrim runs a small interactive demo of the surface manager on a
// real terminal: a main menu, a name form, a modal quit confirmation, and
// an always-active HUD panel. Arrow keys navigate, enter confirms, and
// escape routes through the manager's back navigation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberforge/scrim/pkg/bus"
	"github.com/emberforge/scrim/pkg/config"
	"github.com/emberforge/scrim/pkg/host"
	"github.com/emberforge/scrim/pkg/surface"
	"github.com/emberforge/scrim/pkg/telemetry"
)

const tickRate = time.Second / 30

func main() {
	configPath := flag.String("config", "", "path to scrim.yaml")
	logPath := flag.String("log", "scrim.log", "structured log destination")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "scrim:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Logs go to a file; stdout belongs to the terminal UI.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))

	lifecycle := bus.New()
	defer lifecycle.Close()
	if _, err := lifecycle.Subscribe("surface.>", func(ev bus.Event) {
		logger.Debug("lifecycle", "subject", ev.Subject, "surface", ev.Payload)
	}); err != nil {
		return err
	}

	opts, err := cfg.ManagerOptions(logger, lifecycle)
	if err != nil {
		return err
	}
	mgr := surface.NewManager(opts)
	defer mgr.Teardown()

	if cfg.Telemetry.Enabled {
		collector := telemetry.NewCollector(cfg.Telemetry.Namespace, mgr.Statistics)
		if err := telemetry.Register(nil, collector); err != nil {
			return fmt.Errorf("register telemetry: %w", err)
		}
		if cfg.Telemetry.Listen != "" {
			go func() {
				if err := http.ListenAndServe(cfg.Telemetry.Listen, promhttp.Handler()); err != nil {
					logger.Warn("metrics listener stopped", "err", err)
				}
			}()
		}
	}

	backend, err := host.NewTcell()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer backend.Fini()

	quit := make(chan struct{})
	requestQuit := func() {
		select {
		case <-quit:
		default:
			close(quit)
		}
	}

	if err := openDemo(mgr, requestQuit); err != nil {
		return err
	}

	events := make(chan host.Event, 32)
	go func() {
		for {
			ev := backend.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-quit:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logical, ok := host.Translate(ev)
			if !ok {
				continue
			}
			consumed := mgr.Dispatch(logical)
			if _, isBack := logical.(surface.BackEvent); isBack && !consumed {
				if mgr.Len() <= 1 {
					// ESC on the root surface ends the demo.
					return nil
				}
				mgr.GoBack()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			mgr.Update(dt)
			backend.Clear()
			mgr.Render(backend)
			backend.Show()
		}
	}
}

// openDemo builds the demo content: an always-active HUD and the main
// menu. Everything else opens from menu selections.
func openDemo(mgr *surface.Manager, requestQuit func()) error {
	if _, err := mgr.CreateAndShow(surface.VariantHUD, "clock", surface.Config{}); err != nil {
		return err
	}

	_, err := mgr.CreateAndShow(surface.VariantMenu, "main", surface.Config{
		Handler: func(messageType string, payload any) bool {
			switch messageType {
			case "menu.highlight":
				return true
			case "menu.select":
				switch payload.(int) {
				case 0:
					openNameForm(mgr)
				default:
					openQuitDialog(mgr, requestQuit)
				}
				return true
			}
			return false
		},
	})
	return err
}

func openNameForm(mgr *surface.Manager) {
	mgr.CreateAndShow(surface.VariantForm, "player-name", surface.Config{
		ParentID: "main",
		Handler: func(messageType string, payload any) bool {
			switch messageType {
			case "form.submit", "form.cancel":
				mgr.Close("player-name")
				return true
			}
			return false
		},
	})
}

// openQuitDialog shows a blocking confirmation. The modal lock keeps all
// input on the dialog until it closes; closing drops the lock.
func openQuitDialog(mgr *surface.Manager, requestQuit func()) {
	if _, err := mgr.CreateAndShow(surface.VariantDialog, "confirm-quit", surface.Config{
		ParentID: "main",
		Handler: func(messageType string, payload any) bool {
			switch messageType {
			case "dialog.confirm":
				requestQuit()
				return true
			case "dialog.cancel":
				mgr.Close("confirm-quit")
				return true
			}
			return false
		},
	}); err != nil {
		return
	}
	mgr.Lock("confirm-quit")
}
