package protocol_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spertscheduler/engine/protocol"
	"github.com/spertscheduler/engine/scenario"
	"github.com/spertscheduler/engine/statistics"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	projects := []*scenario.Project{scenario.NewProject("demo")}
	env := protocol.NewEnvelope(projects, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	parsed, err := protocol.ParseEnvelope(raw)
	require.NoError(t, err)
	require.Equal(t, protocol.ExportFormat, parsed.Format)
	require.Equal(t, protocol.SchemaVersion, parsed.SchemaVersion)
}

func TestParseEnvelope_RejectsWrongFormat(t *testing.T) {
	raw := []byte(`{"format":"something-else","schemaVersion":1}`)
	_, err := protocol.ParseEnvelope(raw)
	require.Error(t, err)
}

func TestParseEnvelope_RejectsMalformedJSON(t *testing.T) {
	_, err := protocol.ParseEnvelope([]byte("not json"))
	require.Error(t, err)
}

func TestMigrate_CurrentVersionPassesThrough(t *testing.T) {
	raw := []byte(`{"some":"payload"}`)
	out, err := protocol.Migrate(protocol.SchemaVersion, raw)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestMigrate_UnknownVersionErrors(t *testing.T) {
	_, err := protocol.Migrate(protocol.SchemaVersion+1, []byte(`{}`))
	require.Error(t, err)
}

func TestWriteCSV_NoTrailingNewlineAndLFEndings(t *testing.T) {
	run, err := statistics.BuildSimulationRun([]float64{1, 2, 3, 4, 5}, "seed", "1.0.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, protocol.WriteCSV(&buf, run, "My Scenario", "My Project"))

	out := buf.String()
	require.False(t, strings.HasSuffix(out, "\n"))
	require.NotContains(t, out, "\r\n")
	require.Contains(t, out, "# SPERT Scheduler")
	require.Contains(t, out, "Statistic,Value")
	require.Contains(t, out, "Percentile,Duration (days)")
}

func TestWriteCSV_QuotesFieldsContainingComma(t *testing.T) {
	run, err := statistics.BuildSimulationRun([]float64{1, 2, 3}, "seed", "1.0.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, protocol.WriteCSV(&buf, run, "Scenario, with comma", "Project \"quoted\""))

	out := buf.String()
	require.Contains(t, out, `"Scenario, with comma"`)
	require.Contains(t, out, `"Project ""quoted"""`)
}

func TestMessages_TypesMatchWireShapes(t *testing.T) {
	start := protocol.NewStartMessage(protocol.StartPayload{TrialCount: 100, RNGSeed: "s"})
	require.Equal(t, protocol.SimulationStart, start.Type)

	progress := protocol.NewProgressMessage(50, 100)
	require.Equal(t, protocol.SimulationProgress, progress.Type)
	require.Equal(t, 50, progress.Payload.CompletedTrials)

	errMsg := protocol.NewErrorMessage(errors.New("boom"))
	require.Equal(t, protocol.SimulationError, errMsg.Type)
	require.Equal(t, "boom", errMsg.Payload.Message)
}
