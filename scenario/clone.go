package scenario

import "github.com/google/uuid"

// Clone returns a deep copy of the scenario, per §8.9:
//
//   - preserves activity count unless dropCompleted is set, in which
//     case Complete activities are dropped from the clone;
//   - assigns a fresh id to the scenario and to every retained activity;
//   - rerolls Settings.RNGSeed (from a fresh UUID, so the clone never
//     replays the original's Monte Carlo trials);
//   - drops SimulationResults;
//   - preserves StartDate and every other setting.
func (s *Scenario) Clone(dropCompleted bool) *Scenario {
	clone := &Scenario{
		ID:        uuid.New(),
		Name:      s.Name,
		StartDate: s.StartDate,
		Settings:  s.Settings,
		Calendar:  s.Calendar,
	}
	clone.Settings.RNGSeed = uuid.New().String()

	clone.Activities = make([]*Activity, 0, len(s.Activities))
	for _, a := range s.Activities {
		if dropCompleted && a.Status == Complete {
			continue
		}
		fresh := a.Clone()
		fresh.ID = uuid.New()
		clone.Activities = append(clone.Activities, fresh)
	}
	return clone
}
