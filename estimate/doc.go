// Package estimate implements the SPERT/PERT three-point estimators (§4.3):
// the weighted PERT mean, the RSM-derived standard deviation, a skew
// indicator, and the coefficient of variation. These are pure functions
// with no dependency on the distributions package — distributions.FromEstimate
// calls into estimate to turn (min, mostLikely, max, confidence) into the
// (mean, sd) pair it then builds a concrete distribution from.
package estimate
