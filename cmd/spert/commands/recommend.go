package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/recommend"
)

var (
	recommendMin        float64
	recommendMostLikely float64
	recommendMax        float64
	recommendConfidence string
	recommendSDOverride float64
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a distribution family for a three-point estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := recommend.Distribution(recommendMin, recommendMostLikely, recommendMax, estimate.ConfidenceLevel(recommendConfidence), recommendSDOverride)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recommended: %s\n", result.Kind)
		fmt.Fprintf(cmd.OutOrStdout(), "Rationale:   %s\n", result.Rationale)
		return nil
	},
}

func init() {
	recommendCmd.Flags().Float64Var(&recommendMin, "min", 0, "minimum estimate")
	recommendCmd.Flags().Float64Var(&recommendMostLikely, "most-likely", 0, "most likely estimate")
	recommendCmd.Flags().Float64Var(&recommendMax, "max", 0, "maximum estimate")
	recommendCmd.Flags().StringVar(&recommendConfidence, "confidence", string(estimate.MediumConfidence), "confidence level")
	recommendCmd.Flags().Float64Var(&recommendSDOverride, "sd-override", 0, "standard deviation override (0 = unset)")
	rootCmd.AddCommand(recommendCmd)
}
