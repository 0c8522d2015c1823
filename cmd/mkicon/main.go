// Command mkicon generates the checklist launcher icons for all Android
// densities.  It takes no arguments and must be run from a directory that is
// one level below the project root.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rusq/checkicon"
	"github.com/rusq/checkicon/cmd/mkicon/internal/cfg"
)

var resDir = filepath.Join("..", "android", "app", "src", "main", "res")

func main() {
	lg := cfg.NewLogger(os.Stderr, cfg.JSONHandler, cfg.Verbose)
	slog.SetDefault(lg)

	g := checkicon.NewGenerator(resDir, checkicon.WithLogger(lg))
	if err := g.Generate(context.Background()); err != nil {
		lg.Error("icon generation failed", "error", err)
		os.Exit(1)
	}
}
