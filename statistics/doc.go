// Package statistics implements the single-pass statistics computation
// that turns a Monte Carlo driver's raw sample buffer into a SimulationRun
// (§4.7, §3): one in-place sort, then percentiles, histogram, CDF, and
// mean/SD/min/max all derived from that one sorted view.
//
// The sort uses golang.org/x/exp/slices; percentile positions and the CDF
// downsampling stride are plain index arithmetic.
package statistics
