package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nbcell/internal/histcache"
	"nbcell/internal/project"
	"nbcell/internal/trace"
	"nbcell/internal/transpile"
)

// loadConfig читает --config или ищет nbcell.toml вверх от рабочей директории.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.LoadConfig(path)
	}
	return project.Discover(".")
}

func openHistory(cmd *cobra.Command, cfg project.Config) (*histcache.Store, error) {
	path, err := cmd.Root().PersistentFlags().GetString("history")
	if err != nil {
		return nil, fmt.Errorf("failed to get history flag: %w", err)
	}
	if path == "" {
		path = cfg.History.File
	}
	return histcache.Open(path)
}

// newTranspiler builds a Transpiler whose history continues the stored
// snapshot. A snapshot from an incompatible version is ignored with a
// warning.
func newTranspiler(cmd *cobra.Command, cfg project.Config, tracer trace.Tracer) (*transpile.Transpiler, *histcache.Store, error) {
	store, err := openHistory(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	history := transpile.NewHistory(cfg.Transpile.HistoryLimit)
	if _, err := store.Load(history); err != nil {
		if !errors.Is(err, histcache.ErrSchema) && !errors.Is(err, histcache.ErrCorrupt) {
			return nil, nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring history: %v\n", err)
		history = transpile.NewHistory(cfg.Transpile.HistoryLimit)
	}

	tr := transpile.New(cfg.Transpile, transpile.WithHistory(history), transpile.WithTracer(tracer))
	return tr, store, nil
}
