package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"

	"github.com/rawbytedev/stackvec/internal/bench"
)

func newRunCmd() *cobra.Command {
	def := bench.DefaultConfig()
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure vector setup cost against slices",
		Long: `Run times every size/kind pair and prints a report. Sizes are limited
to the capacities compiled into stackbench (100, 1000, 10000); kinds are
uint8, uint32 and string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg := benchConfig(v)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !quiet {
				hookProgress(cmd.ErrOrStderr())
			}
			rep, runErr := bench.Run(ctx, cfg)
			// drain pending events before the report is written
			capitan.Shutdown()
			if rep != nil {
				if err := rep.Encode(cmd.OutOrStdout(), v.GetString(cfgKeyFormat)); err != nil {
					return err
				}
			}
			if runErr != nil {
				return fmt.Errorf("run: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().Int(cfgKeyIterations, def.Iterations, "iterations per case")
	cmd.Flags().IntSlice(cfgKeySizes, def.Sizes, "vector capacities to measure")
	cmd.Flags().StringSlice(cfgKeyKinds, def.Kinds, "element kinds to measure")
	cmd.Flags().String(cfgKeyFormat, bench.FormatText, "report format: text or yaml")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print progress")
	return cmd
}

// hookProgress prints one line per benchmark event to w.
func hookProgress(w io.Writer) {
	capitan.Hook(bench.RunStarted, func(_ context.Context, e *capitan.Event) {
		id, _ := bench.KeyRunID.From(e)
		iters, _ := bench.KeyIterations.From(e)
		fmt.Fprintf(w, "[run %s] started, %d iterations per case\n", id, iters)
	})

	capitan.Hook(bench.CaseCompleted, func(_ context.Context, e *capitan.Event) {
		size, _ := bench.KeySize.From(e)
		kind, _ := bench.KeyKind.From(e)
		sliceTime, _ := bench.KeySliceTime.From(e)
		vecTime, _ := bench.KeyVecTime.From(e)
		fmt.Fprintf(w, "  %5d %-6s slice=%s vec=%s\n", size, kind, sliceTime, vecTime)
	})

	capitan.Hook(bench.RunCompleted, func(_ context.Context, e *capitan.Event) {
		cases, _ := bench.KeyCases.From(e)
		elapsed, _ := bench.KeyElapsed.From(e)
		if msg, ok := bench.KeyError.From(e); ok {
			fmt.Fprintf(w, "[run] stopped after %d cases (%s): %s\n", cases, elapsed, msg)
			return
		}
		fmt.Fprintf(w, "[run] %d cases in %s\n", cases, elapsed)
	})
}
