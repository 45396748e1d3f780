package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nbcell/internal/project"
	"nbcell/internal/trace"
)

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns the tracer, a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command, cfg project.Config) (trace.Tracer, func(), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	// Флаги важнее nbcell.toml; --trace без уровня включает phase
	if levelStr == "" {
		levelStr = cfg.Trace.Level
	}
	if levelStr == "" && traceOutput != "" {
		levelStr = "phase"
	}
	if levelStr == "" {
		levelStr = "off"
	}
	if formatStr == "auto" && cfg.Trace.Format != "" {
		formatStr = cfg.Trace.Format
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace level: %w", err)
	}

	// If level is off, skip tracing
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return trace.Nop, func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	// Корневой span команды; driver-спаны становятся его детьми
	cmdSpan := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(trace.WithSpan(ctx, cmdSpan))

	cleanup := func() {
		cmdSpan.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return tracer, cleanup, nil
}

// dumpTraceRing печатает кольцевой буфер трассировки после сбоя.
func dumpTraceRing(cmd *cobra.Command, tracer trace.Tracer) {
	ring := trace.RingOf(tracer)
	if ring == nil {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "trace: last events")
	if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
	}
}
