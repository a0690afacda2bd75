// Package montecarlo runs the single-threaded Monte Carlo trial loop
// (§4.6): one RNG stream consumed in strict activity-major order per
// trial, accumulated into a packed sample buffer, with progress reported
// through a plain callback. The loop holds no locks and no goroutines —
// concurrency, where it exists, lives entirely above this package.
package montecarlo
