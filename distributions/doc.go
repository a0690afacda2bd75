// Package distributions implements the four parametric distributions the
// engine samples project-activity durations from (§4.2): Uniform,
// Triangular, Normal (advertised as "T-Normal" once truncated), and
// LogNormal.
//
// Dynamic dispatch (§9): the four share one capability set —
//
//	Sample(*rng.Stream) float64
//	Mean() float64
//	Variance() float64
//	InverseCDF(p float64) (float64, error)
//	Parameters() map[string]float64
//
// — expressed as the Distribution interface below and implemented by four
// small tagged structs, not a class hierarchy.
//
// FromEstimate is the one entry point the rest of the engine actually
// calls: given an activity's three-point estimate, a confidence level,
// and a chosen Kind, it derives (mean, sd) via the estimate package and
// builds the requested distribution, including the lognormal
// mean/sd-matching solve and the normal truncation wrapper described in
// §4.2's "Construction from three-point estimates".
package distributions
