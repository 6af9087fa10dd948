package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const defaultDebounce = 200 * time.Millisecond

func (a *App) watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the check whenever a catalog file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Quiet period before re-running after a change")
	return cmd
}

// watch runs the check once, then again after every burst of catalog
// changes, until ctx is cancelled. Failures are printed, not returned, so
// the loop survives a half-edited catalog.
func (a *App) watch(ctx context.Context, debounce time.Duration) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fsw.Close()

	watched := 0
	for _, ns := range cfg.Namespaces() {
		if err := fsw.Add(ns.Dir); err != nil {
			a.logger.Warn("Failed to watch catalog directory", "path", ns.Dir, "error", err)
			continue
		}
		watched++
		a.logger.Info("Watching catalog directory", "namespace", ns.Name, "path", ns.Dir)
	}
	if watched == 0 {
		return errors.New("watch: no catalog directory could be watched")
	}

	run := func() {
		if err := a.runCheck(""); err != nil && !errors.Is(err, errIssues) {
			fmt.Fprintln(a.stderr, err)
		}
	}
	run()
	return watchLoop(ctx, fsw, debounce, a.logger, run)
}

// watchLoop calls run once per burst of file events, after debounce of quiet.
func watchLoop(ctx context.Context, fsw *fsnotify.Watcher, debounce time.Duration, logger *slog.Logger, run func()) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			logger.Debug("Catalog change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)

		case <-timer.C:
			run()
		}
	}
}
