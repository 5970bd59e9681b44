package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-formatted logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  debug,
	}))
}

// InitLogger installs a stderr logger as the slog default. Stdout is
// reserved for command output such as the OpenAPI document.
func InitLogger(debug bool) {
	slog.SetDefault(New(os.Stderr, debug))
}
