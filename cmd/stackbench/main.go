// Package main provides the stackbench CLI, which measures the setup cost of
// stackvec vectors against heap slices and records heap profiles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stackbench",
	Short: "Benchmark fixed-capacity vectors against heap slices",
	Long: `stackbench times creating an empty stackvec.Vec of a given capacity
against making a slice with the same capacity, for several sizes and element
kinds, and can write a heap profile of a vector workload.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "stackbench v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./stackbench.yaml if present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newProfileCmd())
}
