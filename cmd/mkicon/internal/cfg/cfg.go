// Package cfg contains the logging configuration of mkicon.
package cfg

import (
	"io"
	"log/slog"

	"github.com/rusq/osenv/v2"
)

var (
	JSONHandler bool = osenv.Value("JSON_LOG", false)
	Verbose     bool = osenv.Value("DEBUG", false)
)

// NewLogger returns the logger writing to w.  The JSON handler is used if
// jsonHandler is set, debug messages are enabled if verbose is set.
func NewLogger(w io.Writer, jsonHandler, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: iftrue(verbose, slog.LevelDebug, slog.LevelInfo),
	}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if jsonHandler {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func iftrue[T any](cond bool, t T, f T) T {
	if cond {
		return t
	}
	return f
}
