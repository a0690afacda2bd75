// Package buffer derives a project-level schedule buffer (§4.8) from a
// deterministic schedule and a completed simulation run: the gap between
// the simulation's project-target percentile and the schedule's
// deterministic total.
package buffer
