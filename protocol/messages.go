package protocol

import (
	"github.com/google/uuid"

	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/scenario"
	"github.com/spertscheduler/engine/statistics"
)

// MessageType identifies one of the four §6 message shapes.
type MessageType string

const (
	SimulationStart    MessageType = "simulation:start"
	SimulationProgress MessageType = "simulation:progress"
	SimulationResult   MessageType = "simulation:result"
	SimulationError    MessageType = "simulation:error"
)

// ActivityInput is the wire representation of one activity inside a
// simulation:start request.
type ActivityInput struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Min              float64                  `json:"min"`
	MostLikely       float64                  `json:"mostLikely"`
	Max              float64                  `json:"max"`
	Confidence       estimate.ConfidenceLevel `json:"confidence"`
	SDOverride       float64                  `json:"sdOverride,omitempty"`
	DistributionType distributions.Kind       `json:"distributionType"`
	Status           scenario.ActivityStatus  `json:"status"`
	ActualDuration   *float64                 `json:"actualDuration,omitempty"`
}

// StartPayload is the simulation:start request payload.
type StartPayload struct {
	Activities             []ActivityInput       `json:"activities"`
	TrialCount             int                   `json:"trialCount"`
	RNGSeed                string                `json:"rngSeed"`
	DeterministicDurations map[uuid.UUID]float64 `json:"deterministicDurations,omitempty"`
}

// StartMessage is a simulation:start request.
type StartMessage struct {
	Type    MessageType  `json:"type"`
	Payload StartPayload `json:"payload"`
}

// NewStartMessage builds a StartMessage with the Type field set.
func NewStartMessage(payload StartPayload) StartMessage {
	return StartMessage{Type: SimulationStart, Payload: payload}
}

// ProgressPayload is the simulation:progress payload.
type ProgressPayload struct {
	CompletedTrials int `json:"completedTrials"`
	TotalTrials     int `json:"totalTrials"`
}

// ProgressMessage is a simulation:progress message.
type ProgressMessage struct {
	Type    MessageType     `json:"type"`
	Payload ProgressPayload `json:"payload"`
}

// NewProgressMessage builds a ProgressMessage with the Type field set.
func NewProgressMessage(completed, total int) ProgressMessage {
	return ProgressMessage{Type: SimulationProgress, Payload: ProgressPayload{CompletedTrials: completed, TotalTrials: total}}
}

// ResultPayload is the simulation:result payload: a SimulationRun plus
// the wall-clock duration of the run.
type ResultPayload struct {
	statistics.SimulationRun
	ElapsedMs int64 `json:"elapsedMs"`
}

// ResultMessage is a terminal simulation:result message.
type ResultMessage struct {
	Type    MessageType   `json:"type"`
	Payload ResultPayload `json:"payload"`
}

// NewResultMessage builds a ResultMessage with the Type field set.
func NewResultMessage(run statistics.SimulationRun, elapsedMs int64) ResultMessage {
	return ResultMessage{Type: SimulationResult, Payload: ResultPayload{SimulationRun: run, ElapsedMs: elapsedMs}}
}

// ErrorPayload is the simulation:error payload.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ErrorMessage is a terminal simulation:error message.
type ErrorMessage struct {
	Type    MessageType  `json:"type"`
	Payload ErrorPayload `json:"payload"`
}

// NewErrorMessage builds an ErrorMessage with the Type field set.
func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Type: SimulationError, Payload: ErrorPayload{Message: err.Error()}}
}
