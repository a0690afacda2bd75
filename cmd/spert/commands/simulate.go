package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/montecarlo"
	"github.com/spertscheduler/engine/protocol"
	"github.com/spertscheduler/engine/statistics"
)

var (
	simulateInput            string
	simulateTrials           int
	simulateSeed             string
	simulateProgressInterval int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo simulation over a set of activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := readActivities(simulateInput)
		if err != nil {
			return err
		}

		interval := simulateProgressInterval
		if interval <= 0 {
			interval = simulateTrials / 20
			if interval < 1 {
				interval = 1
			}
		}

		samples, err := montecarlo.Run(context.Background(), activities, simulateTrials, simulateSeed, nil, func(completed, total int) {
			logger.Debug().Int("completed", completed).Int("total", total).Msg("simulation progress")
		}, interval)
		if err != nil {
			return err
		}

		run, err := statistics.BuildSimulationRun(samples, simulateSeed, protocol.EngineVersion)
		if err != nil {
			return err
		}

		fmt.Printf("Trials:   %s\n", humanize.Comma(int64(run.TrialCount)))
		fmt.Printf("Mean:     %.2f days\n", run.Mean)
		fmt.Printf("Std Dev:  %.2f days\n", run.StandardDeviation)
		fmt.Printf("Min/Max:  %.2f / %.2f days\n\n", run.MinSample, run.MaxSample)

		ranks := make([]int, 0, len(run.Percentiles))
		for rank := range run.Percentiles {
			ranks = append(ranks, rank)
		}
		sort.Ints(ranks)
		for _, rank := range ranks {
			fmt.Printf("P%-3d %.2f days\n", rank, run.Percentiles[rank])
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateInput, "input", "", "path to a JSON activity list")
	simulateCmd.Flags().IntVar(&simulateTrials, "trials", 50000, "number of Monte Carlo trials")
	simulateCmd.Flags().StringVar(&simulateSeed, "seed", "spert-default", "RNG seed")
	simulateCmd.Flags().IntVar(&simulateProgressInterval, "progress-interval", 0, "trials between progress reports (0 = auto)")
	_ = simulateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(simulateCmd)
}
