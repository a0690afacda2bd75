// Package scenario implements the engine's data model (§3, §4.12):
// Activity, ScenarioSettings, Scenario, and Project, their validation,
// and the Activity status state machine (§4.11).
//
// Activity and Scenario are mutable value types with a Validate pass
// that surfaces every invariant violation at once (never stops at the
// first) and a Clone that returns a deep copy with fresh identity.
// Activities are identified by github.com/google/uuid values, minted at
// creation and re-minted by Clone.
package scenario
