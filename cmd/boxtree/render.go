package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/grindlemire/go-boxtree"
	"github.com/grindlemire/go-boxtree/internal/observability"
	"github.com/grindlemire/go-boxtree/render/cells"
	"github.com/grindlemire/go-boxtree/render/raster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		text   textFlags
		output string
		ansi   bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a document to a PNG or to terminal text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := text.resolveMode(a)
			if err != nil {
				return err
			}
			opts, err := text.buildOptions(mode)
			if err != nil {
				return err
			}
			root, err := loadTree(args[0], opts)
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeOut()

			if mode == "cells" {
				err = renderCells(w, root, a, ansi)
			} else {
				err = renderRaster(w, root, a)
			}
			if err != nil {
				return err
			}
			observability.GetLogger().Info("rendered",
				zap.String("path", args[0]),
				zap.String("mode", mode),
				zap.String("output", output))
			return nil
		},
	}
	text.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&ansi, "ansi", false, "emit 24-bit color escapes in cells mode")
	return cmd
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// canvasSize is the configured size, or the extent of the laid-out tree.
func canvasSize(root *boxtree.Node, a *app) (int, int) {
	w, h := a.cfg.Render.Width, a.cfg.Render.Height
	extent := boxtree.Rect{}
	root.Walk(func(n *boxtree.Node, _ int) bool {
		extent = extent.Union(n.Rect())
		return true
	})
	if w == 0 {
		w = extent.Right()
	}
	if h == 0 {
		h = extent.Bottom()
	}
	return w, h
}

// applyDefaultScale gives nine-patches without a scale the configured one.
func applyDefaultScale(root *boxtree.Node, scale int) {
	root.Walk(func(n *boxtree.Node, _ int) bool {
		if p, ok := n.Visual().(boxtree.NinePatch); ok && p.Scale <= 0 {
			p.Scale = scale
			n.SetVisual(p)
		}
		return true
	})
}

func renderRaster(w io.Writer, root *boxtree.Node, a *app) error {
	bg, err := boxtree.ParseColor(a.cfg.Render.Background)
	if err != nil {
		return err
	}
	applyDefaultScale(root, a.cfg.Render.Scale)

	width, height := canvasSize(root, a)
	img, r := raster.NewCanvas(width, height, bg)
	boxtree.Draw(root, r)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func renderCells(w io.Writer, root *boxtree.Node, a *app, ansi bool) error {
	border, ok := cells.ParseBorderStyle(a.cfg.Render.Border)
	if !ok {
		return fmt.Errorf("unknown border style %q", a.cfg.Render.Border)
	}

	width, height := canvasSize(root, a)
	buf := cells.NewBuffer(width, height)
	boxtree.Draw(root, cells.New(buf, cells.WithBorder(border)))

	out := buf.StringTrimmed()
	if ansi {
		out = buf.ANSI()
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
