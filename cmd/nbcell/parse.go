package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nbcell/internal/diagfmt"
	"nbcell/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] cell.js",
	Short: "Parse a cell and print its syntax tree",
	Long: `Parse reads a cell the way transpile does, with top-level await and return
allowed, and prints the resulting tree`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Dedup()
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
	}
	if result.Err != nil {
		return result.Err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Program, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
