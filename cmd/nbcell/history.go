package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"nbcell/internal/transpile"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear the saved transpilation history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cells kept in the history snapshot",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the history snapshot",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	historyCmd.AddCommand(historyListCmd, historyClearCmd)
}

type historyEntry struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openHistory(cmd, cfg)
	if err != nil {
		return err
	}
	history := transpile.NewHistory(cfg.Transpile.HistoryLimit)
	if _, err := store.Load(history); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	entries := make([]historyEntry, 0, history.Len())
	for _, rec := range history.Records() {
		entries = append(entries, historyEntry{
			ID:    rec.ID,
			Name:  rec.Name,
			Lines: strings.Count(rec.Anchor.Text(), "\n") + 1,
		})
	}

	switch format {
	case "pretty":
		return renderHistoryPretty(cmd.OutOrStdout(), store.Path(), entries)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderHistoryPretty(out io.Writer, path string, entries []historyEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "history %s is empty\n", path)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(out, "%6d  %-24s %d line(s)\n", e.ID, e.Name, e.Lines); err != nil {
			return err
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openHistory(cmd, cfg)
	if err != nil {
		return err
	}
	if err := store.Drop(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", store.Path())
	return nil
}
