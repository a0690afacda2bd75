package commands

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spertscheduler/engine/protocol"
	"github.com/spertscheduler/engine/scenario"
	"github.com/spertscheduler/engine/statistics"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a simulation run or project set",
}

var (
	exportCSVInput    string
	exportCSVOutput   string
	exportCSVScenario string
	exportCSVProject  string
)

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export a SimulationRun as a CSV report",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(exportCSVInput)
		if err != nil {
			return err
		}
		var run statistics.SimulationRun
		if err := json.Unmarshal(raw, &run); err != nil {
			return err
		}

		out, err := os.Create(exportCSVOutput)
		if err != nil {
			return err
		}
		defer out.Close()

		return protocol.WriteCSV(out, &run, exportCSVScenario, exportCSVProject)
	},
}

var (
	exportJSONInput  string
	exportJSONOutput string
)

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export a project set as a persisted JSON envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(exportJSONInput)
		if err != nil {
			return err
		}
		var projects []*scenario.Project
		if err := json.Unmarshal(raw, &projects); err != nil {
			return err
		}

		envelope := protocol.NewEnvelope(projects, time.Now().UTC())
		return writeJSONFile(exportJSONOutput, envelope)
	},
}

func init() {
	exportCSVCmd.Flags().StringVar(&exportCSVInput, "input", "", "path to a JSON-encoded SimulationRun")
	exportCSVCmd.Flags().StringVar(&exportCSVOutput, "output", "report.csv", "output CSV path")
	exportCSVCmd.Flags().StringVar(&exportCSVScenario, "scenario", "", "scenario name for the report header")
	exportCSVCmd.Flags().StringVar(&exportCSVProject, "project", "", "project name for the report header")
	_ = exportCSVCmd.MarkFlagRequired("input")

	exportJSONCmd.Flags().StringVar(&exportJSONInput, "input", "", "path to a JSON-encoded project list")
	exportJSONCmd.Flags().StringVar(&exportJSONOutput, "output", "export.json", "output envelope path")
	_ = exportJSONCmd.MarkFlagRequired("input")

	exportCmd.AddCommand(exportCSVCmd, exportJSONCmd)
	rootCmd.AddCommand(exportCmd)
}
