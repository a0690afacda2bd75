// Package obsmetrics wires Prometheus collectors into the Monte Carlo
// driver's progress callback (§4.6). It never imports montecarlo: the
// driver accepts a plain onProgress(completed, total int) callback, and
// this package only wraps one, so the single-threaded/no-locks property
// of the trial loop is untouched.
package obsmetrics
