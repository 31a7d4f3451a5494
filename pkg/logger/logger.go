package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init sets up a global structured JSON logger on stderr, keeping stdout
// free for CSV previews and request messages.
func Init(debug bool) {
	InitWriter(os.Stderr, debug)
}

// InitWriter installs the JSON logger on w. The level is Debug when debug is set.
func InitWriter(w io.Writer, debug bool) {
	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	handler := slog.NewJSONHandler(w, opts)
	slog.SetDefault(slog.New(handler))
}
