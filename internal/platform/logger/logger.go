package logger

import (
	"log/slog"
	"os"
)

// New returns a text slog logger writing to stdout. Handlers and middleware
// take *slog.Logger so tests can swap in a discard logger.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
