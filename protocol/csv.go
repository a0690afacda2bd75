package protocol

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spertscheduler/engine/statistics"
)

// WriteCSV writes run as the §6 CSV report for the given scenario and
// project names. Output uses \n line endings with no trailing newline
// after the final row.
func WriteCSV(w io.Writer, run *statistics.SimulationRun, scenarioName, projectName string) error {
	var lines []string

	lines = append(lines, csvRow("# SPERT Scheduler"))
	lines = append(lines, csvRow("# Project", projectName))
	lines = append(lines, csvRow("# Scenario", scenarioName))
	lines = append(lines, csvRow("# Trial Count", strconv.Itoa(run.TrialCount)))
	lines = append(lines, csvRow("# Seed", run.Seed))
	lines = append(lines, csvRow("# Engine Version", run.EngineVersion))
	lines = append(lines, csvRow("# Timestamp", run.Timestamp.Format("2006-01-02T15:04:05Z07:00")))
	lines = append(lines, "")

	lines = append(lines, csvRow("Statistic", "Value"))
	lines = append(lines, csvRow("Mean", formatStat(run.Mean)))
	lines = append(lines, csvRow("Standard Deviation", formatStat(run.StandardDeviation)))
	lines = append(lines, csvRow("Min Sample", formatStat(run.MinSample)))
	lines = append(lines, csvRow("Max Sample", formatStat(run.MaxSample)))
	lines = append(lines, "")

	lines = append(lines, csvRow("Percentile", "Duration (days)"))
	ranks := make([]int, 0, len(run.Percentiles))
	for rank := range run.Percentiles {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	for _, rank := range ranks {
		lines = append(lines, csvRow(fmt.Sprintf("P%d", rank), formatStat(run.Percentiles[rank])))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// csvRow joins fields with commas, quoting any field containing a comma,
// double quote, or newline (doubling embedded quotes), per §6.
func csvRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f)
	}
	return strings.Join(quoted, ",")
}

func quoteField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
