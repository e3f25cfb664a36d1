package log

import (
	"io"
	"log/slog"
)

// Setup builds the process slog.Logger writing text records to w.
// debug selects Debug level, verbose selects Info, otherwise Warn.
// The logger also becomes the default one (slog.SetDefault).
func Setup(w io.Writer, debug bool, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
