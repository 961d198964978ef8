// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/precisionlens/trace"
)

var errorThreshold float64

var timeToErrorCmd = &cobra.Command{
	Use:   "time-to-error <trace.json>",
	Short: "Report when a saved trace first reached an error threshold",
	Long: `Loads a saved trace and reports the cumulative wall time at which the
relative error first dropped to the given threshold, or "not reached" if the
run never got there (e.g. a narrow precision stuck at its accuracy floor).`,
	Example: `  precisionlens time-to-error traces/fp32_cond100_n50.json --threshold 1e-6`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := trace.Load(args[0])
		if err != nil {
			return err
		}

		tt, ok := trace.TimeToError(tr, errorThreshold)
		if !ok {
			cmd.Printf("%s: error %.3e not reached (%d iterations, final error %.3e)\n",
				tr.Metadata.Precision, errorThreshold, tr.Summary.TotalIterations, tr.Metadata.FinalError)

			return nil
		}
		cmd.Printf("%s: error %.3e reached after %.6fs\n", tr.Metadata.Precision, errorThreshold, tt)

		return nil
	},
}

func init() {
	timeToErrorCmd.Flags().Float64Var(&errorThreshold, "threshold", 1e-6, "relative error threshold")
	rootCmd.AddCommand(timeToErrorCmd)
}
