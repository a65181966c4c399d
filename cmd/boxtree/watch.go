package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grindlemire/go-boxtree/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		text   textFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-layout a document every time it changes",
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

			path := args[0]
			out := cmd.OutOrStdout()
			relayout := func() {
				root, err := loadTree(path, opts)
				if err != nil {
					// keep watching; the next save may fix it
					observability.GetLogger().Warn("layout failed", zap.String("path", path), zap.Error(err))
					fmt.Fprintf(out, "error: %v\n", err)
					return
				}
				if err := writeReport(out, root, format); err != nil {
					observability.GetLogger().Warn("report failed", zap.Error(err))
				}
			}

			relayout()
			return watchFile(cmd.Context(), path, a.cfg.Watch.Debounce, relayout)
		},
	}
	text.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	return cmd
}

// watchFile calls onChange after path is written, created or renamed into
// place, coalescing events that arrive within debounce of each other. It
// watches the parent directory so editors that replace the file are
// followed. It returns nil when ctx is cancelled.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	logger := observability.GetLogger().With(zap.String("path", path))

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching for changes", zap.Duration("debounce", debounce))

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped watching")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("file event", zap.Stringer("op", ev.Op))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("event queue overflowed, reloading")
				timer.Reset(debounce)
				continue
			}
			return fmt.Errorf("watch %s: %w", path, err)

		case <-timer.C:
			logger.Debug("reloading")
			onChange()
		}
	}
}
