// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/precisionlens/internal/config"
	"github.com/katalvlaran/precisionlens/powermethod"
	"github.com/katalvlaran/precisionlens/trace"
)

var outputOverride string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full trace library (every condition × precision)",
	Long: `Runs the power method for every configured condition number under every
configured precision mode and writes one JSON trace per combination. The test
matrix is generated once per condition number and shared across modes, so
results differ only by arithmetic width.

Traces are named <mode>_cond<k>_n<size>.json. A failed run is reported and
skipped; the batch continues and the final tally counts both outcomes.`,
	Example: `  # Default study (50×50, κ ∈ {10,100,1000}, all four modes)
  precisionlens generate

  # Custom study
  precisionlens generate --config study.yaml -o ./traces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if err = cfg.Validate(); err != nil {
			return err
		}

		return runBatch(cmd, cfg)
	},
}

// runBatch executes the condition × precision sweep. Per-run failures are
// reported on stderr and skipped; only configuration-level problems abort.
func runBatch(cmd *cobra.Command, cfg *config.Config) error {
	modes, err := cfg.Modes()
	if err != nil {
		return err
	}

	opts := powermethod.DefaultOptions()
	opts.Tolerance = cfg.Tolerance
	opts.MaxIterations = cfg.MaxIterations
	opts.Seed = cfg.Seed

	total := len(cfg.ConditionNumbers) * len(modes)
	cmd.Printf("Generating %d traces (size %d) into %s\n", total, cfg.MatrixSize, cfg.OutputDir)

	generated, failed := 0, 0
	for _, cond := range cfg.ConditionNumbers {
		// One matrix per condition number, shared across modes, so the runs
		// differ only by arithmetic width.
		runner, errGen := trace.NewRunner(cfg.MatrixSize, cond, cfg.Seed)
		if errGen != nil {
			cmd.PrintErrf("cond=%v: matrix generation failed: %v\n", cond, errGen)
			failed += len(modes)

			continue
		}

		for _, mode := range modes {
			path := filepath.Join(cfg.OutputDir, traceFilename(mode.String(), cond, cfg.MatrixSize))
			tr, errRun := runner.Run(mode, opts)
			if errRun != nil {
				cmd.PrintErrf("%s cond=%v: run failed: %v\n", mode, cond, errRun)
				failed++

				continue
			}
			if errSave := trace.Save(tr, path); errSave != nil {
				cmd.PrintErrf("%s cond=%v: %v\n", mode, cond, errSave)
				failed++

				continue
			}

			cmd.Printf("  %-24s %s, %d iterations, final error %.3e\n",
				filepath.Base(path), tr.Metadata.State, tr.Summary.TotalIterations, tr.Metadata.FinalError)
			generated++
		}
	}

	cmd.Printf("Done: %d generated, %d failed\n", generated, failed)
	if generated == 0 && failed > 0 {
		return fmt.Errorf("all %d runs failed", failed)
	}

	return nil
}

// traceFilename follows the library convention: fp8_cond100_n50.json.
func traceFilename(mode string, cond float64, size int) string {
	return fmt.Sprintf("%s_cond%d_n%d.json", strings.ToLower(mode), int(cond), size)
}

func init() {
	generateCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(generateCmd)
}
