// Package sensitivity ranks activities by their contribution to overall
// project-duration variance (§4.9): each activity's variance share of
// the total, plus an impact score from a 10%-scaled what-if recompute.
package sensitivity
