package logger

import (
	"log/slog"
	"os"
)

// New returns the application logger. Text handler on stdout; deployments
// scrape it as-is.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
