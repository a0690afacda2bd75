package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/calendar"
	"github.com/spertscheduler/engine/scheduler"
)

var (
	scheduleInput       string
	scheduleStart       string
	scheduleProbability float64
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Build a deterministic schedule at a probability target",
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := readActivities(scheduleInput)
		if err != nil {
			return err
		}
		start, err := calendar.ParseDate(scheduleStart)
		if err != nil {
			return err
		}

		sched, err := scheduler.BuildSchedule(activities, start, scheduleProbability, nil)
		if err != nil {
			return err
		}

		const displayLayout = "%a %b %-d, %Y"
		for _, a := range sched.Activities {
			actual := ""
			if a.IsActual {
				actual = " (actual)"
			}
			fmt.Printf("%-20s %3d day(s)%s  %s -> %s\n", a.Name, a.Duration, actual,
				calendar.MustFormatDisplay(a.StartDate, displayLayout), calendar.MustFormatDisplay(a.EndDate, displayLayout))
		}
		fmt.Printf("\nTotal:      %d day(s)\n", sched.TotalDurationDays)
		fmt.Printf("Finish:     %s\n", calendar.MustFormatDisplay(sched.ProjectEndDate, displayLayout))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleInput, "input", "", "path to a JSON activity list")
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "", "project start date (YYYY-MM-DD)")
	scheduleCmd.Flags().Float64Var(&scheduleProbability, "probability", 0.5, "per-activity probability target")
	_ = scheduleCmd.MarkFlagRequired("input")
	_ = scheduleCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(scheduleCmd)
}
