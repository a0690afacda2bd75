// Package scheduler builds the deterministic activity-by-activity
// schedule used as the baseline for buffer computation (§4.5): each
// activity gets a single-point duration — either its recorded actual
// duration or its distribution's inverse CDF at a chosen probability
// target — and activities are placed back-to-back on working days.
package scheduler
