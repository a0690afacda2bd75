package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/spertscheduler/engine/protocol"
	"github.com/spertscheduler/engine/scenario"
)

// readActivities loads a JSON-encoded []protocol.ActivityInput document
// from path and converts it into scenario.Activity values. Every
// activity is validated; a non-error OpenQuestionFlag (inProgress with
// actualDuration set, §9) is logged rather than rejected.
func readActivities(path string) ([]*scenario.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inputs []protocol.ActivityInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, err
	}

	activities := make([]*scenario.Activity, len(inputs))
	for i, in := range inputs {
		a := scenario.NewActivity(in.Name, in.Min, in.MostLikely, in.Max, in.Confidence, in.DistributionType)
		if in.ID != uuid.Nil {
			a.ID = in.ID
		}
		a.SDOverride = in.SDOverride
		a.Status = in.Status
		a.ActualDuration = in.ActualDuration
		activities[i] = a

		actPath := fmt.Sprintf("activities[%d]", i)
		errs, flags := a.Validate(actPath)
		if len(errs) > 0 {
			return nil, errs
		}
		for _, flag := range flags {
			logger.Warn().Str("path", flag.Path).Str("activity", a.Name).Msg(flag.Message)
		}
	}
	return activities, nil
}

func writeJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
