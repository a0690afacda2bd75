package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/spertscheduler/engine/montecarlo"
	"github.com/spertscheduler/engine/obsmetrics"
	"github.com/spertscheduler/engine/protocol"
	"github.com/spertscheduler/engine/scenario"
	"github.com/spertscheduler/engine/statistics"
)

// Server is the HTTP transport adapting the simulation protocol (§6)
// onto request/response semantics.
type Server struct {
	registry   *prometheus.Registry
	collectors *obsmetrics.Collectors
	log        zerolog.Logger
}

// NewServer builds a Server. registry backs the /metrics endpoint; its
// Monte Carlo collectors are registered once and shared across requests.
func NewServer(registry *prometheus.Registry, log zerolog.Logger) *Server {
	return &Server{registry: registry, collectors: obsmetrics.NewCollectors(registry), log: log}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Minute))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/simulations", s.handleSimulate)

	return r
}

// handleSimulate decodes a simulation:start request and streams
// simulation:progress / terminal simulation:result|simulation:error
// messages as newline-delimited JSON (§4.16).
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var start protocol.StartMessage
	if err := json.NewDecoder(r.Body).Decode(&start); err != nil {
		http.Error(w, "malformed simulation:start payload", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(w)

	activities, overrides, err := s.decodeActivities(start.Payload)
	if err != nil {
		_ = encoder.Encode(protocol.NewErrorMessage(err))
		flusher.Flush()
		return
	}

	onProgress := s.collectors.WrapProgress(func(completed, total int) {
		_ = encoder.Encode(protocol.NewProgressMessage(completed, total))
		flusher.Flush()
	})

	startedAt := time.Now()
	samples, err := montecarlo.Run(r.Context(), activities, start.Payload.TrialCount, start.Payload.RNGSeed, overrides, onProgress, progressIntervalOf(start.Payload.TrialCount))
	if err != nil {
		_ = encoder.Encode(protocol.NewErrorMessage(err))
		flusher.Flush()
		return
	}

	run, err := statistics.BuildSimulationRun(samples, start.Payload.RNGSeed, protocol.EngineVersion)
	if err != nil {
		_ = encoder.Encode(protocol.NewErrorMessage(err))
		flusher.Flush()
		return
	}
	s.collectors.SetRunningMean(run.Mean)

	_ = encoder.Encode(protocol.NewResultMessage(*run, time.Since(startedAt).Milliseconds()))
	flusher.Flush()
}

func progressIntervalOf(trialCount int) int {
	interval := trialCount / 20
	if interval < 1 {
		interval = 1
	}
	return interval
}

// decodeActivities converts a simulation:start payload's ActivityInputs
// into scenario.Activity values. Each activity is validated; a non-error
// OpenQuestionFlag (inProgress with actualDuration set, §9) is logged
// rather than rejected.
func (s *Server) decodeActivities(payload protocol.StartPayload) ([]*scenario.Activity, map[uuid.UUID]float64, error) {
	activities := make([]*scenario.Activity, len(payload.Activities))
	for i, in := range payload.Activities {
		a := scenario.NewActivity(in.Name, in.Min, in.MostLikely, in.Max, in.Confidence, in.DistributionType)
		a.ID = in.ID
		a.SDOverride = in.SDOverride
		a.Status = in.Status
		a.ActualDuration = in.ActualDuration
		activities[i] = a

		actPath := fmt.Sprintf("activities[%d]", i)
		errs, flags := a.Validate(actPath)
		if len(errs) > 0 {
			return nil, nil, errs
		}
		for _, flag := range flags {
			s.log.Warn().Str("path", flag.Path).Str("activity", a.Name).Msg(flag.Message)
		}
	}
	return activities, payload.DeterministicDurations, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
