package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nbcell/internal/diag"
	"nbcell/internal/diagfmt"
	"nbcell/internal/driver"
	"nbcell/internal/observ"
	"nbcell/internal/source"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [flags] [cell.js...]",
	Short: "Transpile notebook cells",
	Long: `Transpile rewrites each cell into an async function expression. Without
arguments the cell is read from stdin. Transpiled cells are appended to the
history snapshot so that "nbcell stack" can map their stack traces later.`,
	RunE: runTranspile,
}

func init() {
	transpileCmd.Flags().String("name", "", "cell name for stdin input (default cell-<id>)")
	transpileCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	transpileCmd.Flags().String("format", "code", "output format (code|json)")
	transpileCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json)")
	transpileCmd.Flags().Bool("no-save", false, "do not write the history snapshot")
}

type cellOutput struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func runTranspile(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return fmt.Errorf("failed to get no-save flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	switch format {
	case "code", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	switch diagFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown diagnostics format: %s", diagFormat)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	tr, store, err := newTranspiler(cmd, cfg, tracer)
	if err != nil {
		return err
	}

	opts := driver.TranspileOptions{MaxDiagnostics: maxDiagnostics, Jobs: jobs, Timings: timings}
	var (
		fs      *source.FileSet
		results []driver.TranspileResult
	)
	if len(args) == 0 {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		fs, results, err = driver.TranspileCells(cmd.Context(), tr, []driver.Cell{{Name: name, Text: string(data)}}, opts)
	} else {
		fs, results, err = driver.TranspileFiles(cmd.Context(), tr, args, opts)
	}
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	total := observ.NewTimer()
	var outputs []cellOutput
	failed := 0
	for _, r := range results {
		bag.Merge(r.Bag)
		if r.Result == nil {
			failed++
			continue
		}
		total.Merge(r.Result.Timings)
		outputs = append(outputs, cellOutput{ID: r.Result.ID, Name: r.Result.Name, Code: r.Result.Code})
	}

	if err := writeCells(cmd.OutOrStdout(), outputs, format); err != nil {
		return err
	}

	if bag.Len() > 0 {
		bag.Dedup()
		bag.Sort()
		if diagFormat == "json" {
			if err := diagfmt.JSON(cmd.ErrOrStderr(), bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
			})
		}
	}
	if timings {
		printTimings(cmd.ErrOrStderr(), total)
	}

	if len(outputs) > 0 && !noSave {
		if err := store.Save(tr.History()); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
	}

	if failed > 0 {
		dumpTraceRing(cmd, tracer)
		return fmt.Errorf("%d of %d cell(s) failed", failed, len(results))
	}
	return nil
}

func writeCells(w io.Writer, cells []cellOutput, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cells)
	}
	for _, c := range cells {
		if _, err := fmt.Fprintln(w, c.Code); err != nil {
			return err
		}
	}
	return nil
}
