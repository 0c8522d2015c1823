package checkicon

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pterm/pterm"
)

// Generator writes launcher icons for a set of targets into a resource
// directory.
type Generator struct {
	dir     string
	targets []Target
	lg      *slog.Logger

	done *pterm.PrefixPrinter
	info *pterm.PrefixPrinter
}

// Option is the generator option.
type Option func(*Generator)

// WithTargets overrides the default AndroidTargets.
func WithTargets(tt []Target) Option {
	return func(g *Generator) {
		g.targets = tt
	}
}

// WithOutput sets the writer for progress messages.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.done = g.done.WithWriter(w)
		g.info = g.info.WithWriter(w)
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(g *Generator) {
		if lg != nil {
			g.lg = lg
		}
	}
}

// NewGenerator creates a generator that writes into dir.
func NewGenerator(dir string, opt ...Option) *Generator {
	done, info := pterm.Success, pterm.Info
	g := &Generator{
		dir:     dir,
		targets: AndroidTargets,
		lg:      slog.Default(),
		done:    &done,
		info:    &info,
	}
	for _, o := range opt {
		o(g)
	}
	return g
}

// Generate renders and writes the icons for all targets in order.  The first
// error aborts the run.
func (g *Generator) Generate(ctx context.Context) error {
	for _, t := range g.targets {
		if err := g.generate(ctx, t); err != nil {
			return err
		}
	}
	g.info.Printfln("All launcher icons generated in %s", g.dir)
	return nil
}

func (g *Generator) generate(ctx context.Context, t Target) error {
	dir := filepath.Join(g.dir, t.Folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	g.lg.DebugContext(ctx, "rendering icon", "folder", t.Folder, "size", t.Size)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Render(t.Size), imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode %dx%d icon: %w", t.Size, t.Size, err)
	}

	// the round variant is not masked, both files carry the same image.
	for _, name := range []string{IconFile, RoundIconFile} {
		filename := filepath.Join(dir, name)
		if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		g.lg.DebugContext(ctx, "icon written", "filename", filename, "bytes", buf.Len())
		g.done.Printfln("Generated %s/%s (%dx%d)", t.Folder, name, t.Size, t.Size)
	}
	return nil
}
