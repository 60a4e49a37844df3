// Command debugmenu-tui shows a sample debug menu in the terminal. It reads
// the same config file as game hosts, applies saved overrides on start and
// writes them back on exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/debugmenu"
	"github.com/go-theft-auto/debugmenu/backend/terminal"
	"github.com/go-theft-auto/debugmenu/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default ~/.config/debugmenu/config.toml)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debugmenu-tui: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := runMenu(ctx, *configPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "debugmenu-tui: %v\n", err)
		return 1
	}
	return 0
}

// openLog returns a logger writing to path, or a discarding one. The
// terminal belongs to the menu, so nothing goes to stderr while it runs.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }, nil
}

func runMenu(ctx context.Context, configPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Style = "cell"
	cfg.FontScale = 0

	menu, err := cfg.NewMenu(debugmenu.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create menu: %w", err)
	}

	s := &settings{}
	if err := buildMenu(menu, s); err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	if n := menu.ApplyOverrides(cfg.Overrides); n > 0 {
		logger.Info("applied config overrides", "count", n)
	}
	loadOverrides(menu, cfg.SaveFile, logger)
	menu.Open()

	queue := debugmenu.NewQueue(16)
	go discoverDevices(ctx, queue, make([]bool, 6))

	p := tea.NewProgram(terminal.New(terminal.Options{
		Menu:      menu,
		Queue:     queue,
		Clipboard: terminal.Clipboard{},
		Logger:    logger,
	}), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return saveOverrides(menu, cfg.SaveFile, logger)
}

// settings is the state the sample menu edits.
type settings struct {
	godMode   bool
	infAmmo   bool
	wanted    int
	weather   string
	hour      int
	drawDist  float32
	wireframe bool
	spawned   int
}

func buildMenu(m *debugmenu.Menu, s *settings) error {
	var errs []error
	add := func(_ debugmenu.Handle, err error) { errs = append(errs, err) }

	add(m.CreateBoolItem(debugmenu.Handle{}, "Player/God Mode", "Player takes no damage.", &s.godMode))
	add(m.CreateBoolItem(debugmenu.Handle{}, "Player/Infinite Ammo", "Weapons never run dry.", &s.infAmmo))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Player/Wanted Level", "Police attention, in stars.",
		[]string{"0", "1", "2", "3", "4", "5"}, debugmenu.ArrayValues([]int{0, 1, 2, 3, 4, 5}, &s.wanted)))
	add(m.CreatePresetItem(debugmenu.Handle{}, "Player/Spawn Vehicle", "Spawn a vehicle next to the player.",
		[]string{"Sedan", "Bike", "Helicopter"},
		func(int) { s.spawned++ }))

	weathers := []string{"Clear", "Rain", "Fog", "Storm"}
	add(m.CreateArrayItem(debugmenu.Handle{}, "World/Weather", "",
		weathers, debugmenu.ArrayValues(weathers, &s.weather)))
	add(m.CreateArrayItem(debugmenu.Handle{}, "World/Time/Hour", "Hour of the in-game day.",
		[]string{"06:00", "12:00", "18:00", "00:00"}, debugmenu.ArrayValues([]int{6, 12, 18, 0}, &s.hour),
		debugmenu.WithDefaultIndex(1)))
	add(m.CreateArrayItem(debugmenu.Handle{}, "Render/Draw Distance", "Distance at which props stop rendering.",
		[]string{"250m", "500m", "1000m"}, debugmenu.ArrayValues([]float32{250, 500, 1000}, &s.drawDist),
		debugmenu.WithDefaultIndex(1)))
	add(m.CreateBoolItem(debugmenu.Handle{}, "Render/Wireframe", "", &s.wireframe))
	return errors.Join(errs...)
}

// discoverDevices registers items from a background goroutine through q.
func discoverDevices(ctx context.Context, q *debugmenu.Queue, enabled []bool) {
	for i := range enabled {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
		req := debugmenu.CreateRequest{
			Kind:        debugmenu.RequestBool,
			Path:        fmt.Sprintf("Devices/Pad %d", i+1),
			Description: "Accept input from this controller.",
			Target:      &enabled[i],
		}
		for q.Push(req) != nil {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func loadOverrides(m *debugmenu.Menu, path string, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("read overrides", "file", path, "error", err)
		}
		return
	}
	n, err := m.Load(data)
	if err != nil {
		logger.Warn("ignoring saved overrides", "file", path, "error", err)
		return
	}
	logger.Info("loaded overrides", "file", path, "count", n)
}

func saveOverrides(m *debugmenu.Menu, path string, logger *slog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	if err := os.WriteFile(path, m.AppendSave(nil), 0o644); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	logger.Info("saved overrides", "file", path, "count", len(m.Overrides()))
	return nil
}
