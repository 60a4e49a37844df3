package debugmenu

import (
	"context"
	"log/slog"
	"os"
)

// menuLogLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
var menuLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for menus that were not
// given their own logger. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		menuLogLevel.Set(slog.LevelDebug)
	} else {
		menuLogLevel.Set(slog.LevelInfo)
	}
}

// debugEnabled returns true if the menu's logger records debug messages.
func (m *Menu) debugEnabled() bool {
	return m.log.Enabled(context.Background(), slog.LevelDebug)
}

// defaultLogger writes text records to stderr at menuLogLevel.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: menuLogLevel}))
