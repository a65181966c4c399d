package main

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-boxtree"
	"github.com/grindlemire/go-boxtree/internal/observability"
	"github.com/grindlemire/go-boxtree/measure"
	"github.com/grindlemire/go-boxtree/pkg/layoutfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// textFlags selects how text nodes are measured.
type textFlags struct {
	mode     string
	fontPath string
	fontSize float64
}

func (f *textFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "raster or cells (default from config)")
	cmd.Flags().StringVar(&f.fontPath, "font", "", "TrueType or OpenType font for raster text (default 7x13 bitmap)")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", 13, "font size in pixels")
}

// resolveMode returns the flag value or the configured mode.
func (f *textFlags) resolveMode(a *app) (string, error) {
	mode := f.mode
	if mode == "" {
		mode = a.cfg.Render.Mode
	}
	switch mode {
	case "raster", "cells":
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode %q, want raster or cells", mode)
}

func (f *textFlags) buildOptions(mode string) (layoutfile.BuildOptions, error) {
	if mode == "cells" {
		return layoutfile.BuildOptions{Measurer: measure.Cells{}}, nil
	}

	var face font.Face = measure.DefaultFace
	if f.fontPath != "" {
		var err error
		if face, err = measure.LoadFace(f.fontPath, f.fontSize); err != nil {
			return layoutfile.BuildOptions{}, err
		}
	}
	return layoutfile.BuildOptions{Measurer: measure.Face{}, Face: face}, nil
}

// loadTree decodes, builds and lays out the document at path.
func loadTree(path string, opts layoutfile.BuildOptions) (*boxtree.Node, error) {
	logger := observability.GetLogger().With(zap.String("path", path))
	start := time.Now()

	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := doc.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", path, err)
	}
	root.Layout()

	count := 0
	root.Walk(func(*boxtree.Node, int) bool {
		count++
		return true
	})
	logger.Debug("layout complete",
		zap.Int("nodes", count),
		zap.Int("templates", len(doc.Templates)),
		zap.Duration("elapsed", time.Since(start)))
	return root, nil
}
