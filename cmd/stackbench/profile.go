package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/stackvec/internal/bench"
)

func newProfileCmd() *cobra.Command {
	var (
		out       string
		iters     int
		pprofAddr string
		linger    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Write a heap profile of a vector fill/drain workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pprofAddr != "" {
				go func() {
					log.Println(http.ListenAndServe(pprofAddr, nil))
				}()
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			defer f.Close()

			if err := bench.Profile(f, iters); err != nil {
				return err
			}
			log.Printf("heap profile written to %s", out)

			if pprofAddr != "" && linger > 0 {
				log.Printf("serving pprof on %s for %s", pprofAddr, linger)
				time.Sleep(linger)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "mem.prof", "heap profile output path")
	cmd.Flags().IntVarP(&iters, "iterations", "n", 10000, "fill/drain rounds")
	cmd.Flags().StringVar(&pprofAddr, "pprof-addr", "", "serve net/http/pprof on this address while profiling")
	cmd.Flags().DurationVar(&linger, "linger", 0, "keep serving pprof this long after the profile is written")
	return cmd
}
