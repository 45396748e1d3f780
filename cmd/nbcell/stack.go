package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var stackCmd = &cobra.Command{
	Use:   "stack [file|-]",
	Short: "Map a stack trace back to cell sources",
	Long: `Stack reads a stack trace produced by running transpiled cells and rewrites
every reference to a transpiled source as cell:line:column, using the history
saved by "nbcell transpile". Host frames below the top-level cell are dropped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStack,
}

func runStack(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read stack: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	tr, _, err := newTranspiler(cmd, cfg, tracer)
	if err != nil {
		return err
	}

	stack := strings.TrimRight(string(data), "\r\n")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tr.FormatStack(stack))
	return err
}
