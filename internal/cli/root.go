// SPDX-License-Identifier: MIT

// Package cli wires the precisionlens commands: batch trace generation and
// trace interrogation. Heavy lifting lives in trace/; commands only parse
// flags, load configuration, and report progress.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the --config override; empty means probe the default file.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "precisionlens",
		Short: "Power-method convergence study across simulated precisions",
		Long: `precisionlens runs the power method on generated SPD test matrices under
simulated FP64/FP32/FP16/FP8 arithmetic and records per-iteration convergence
traces as JSON for downstream analysis.`,
	}
)

// Execute runs the root command; main handles the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./precisionlens.yaml)")
}
