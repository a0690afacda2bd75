package statistics

import (
	"math"

	"golang.org/x/exp/slices"
)

// SortInPlace sorts samples ascending, in place, once. Every other
// function in this package expects its input already sorted this way —
// the statistics pass is a single sort feeding several derived views
// (§4.7), never a sort per view.
func SortInPlace(samples []float64) {
	slices.Sort(samples)
}

// Percentile returns the value at real-valued position p*(n-1) in sorted
// (linear interpolation between the two bracketing order statistics),
// per §4.7. p=0 and p=1 return the first and last element exactly.
// Returns ErrEmptySamples when sorted is empty.
func Percentile(sorted []float64, p float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptySamples
	}
	if n == 1 {
		return sorted[0], nil
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}

// ComputeStandardPercentiles returns the seventeen standard percentile
// ranks (StandardPercentileRanks) mapped to their values in sorted.
// Returns ErrEmptySamples when sorted is empty.
func ComputeStandardPercentiles(sorted []float64) (map[int]float64, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptySamples
	}
	out := make(map[int]float64, len(StandardPercentileRanks))
	for _, rank := range StandardPercentileRanks {
		v, err := Percentile(sorted, float64(rank)/100)
		if err != nil {
			return nil, err
		}
		out[rank] = v
	}
	return out, nil
}

// Mean returns the arithmetic mean of sorted (0 on empty input; order
// does not matter for this computation, but callers always have a sorted
// slice on hand already).
func Mean(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// StandardDeviation returns the population standard deviation of sorted
// (0 on empty input and on constant inputs).
func StandardDeviation(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mean := Mean(sorted)
	sumSq := 0.0
	for _, v := range sorted {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n))
}

// Histogram bins sorted into binCount contiguous bins spanning
// [min, max], closed-open except the last bin which is closed-closed
// (§4.7). When every value is equal, returns a single bin [v, v] with
// count = n. Returns an empty slice on empty input.
func Histogram(sorted []float64, binCount int) []HistogramBin {
	n := len(sorted)
	if n == 0 {
		return []HistogramBin{}
	}
	min, max := sorted[0], sorted[n-1]
	if min == max {
		return []HistogramBin{{Lo: min, Hi: max, Count: n}}
	}

	bins := make([]HistogramBin, binCount)
	width := (max - min) / float64(binCount)
	for i := range bins {
		bins[i].Lo = min + float64(i)*width
		bins[i].Hi = min + float64(i+1)*width
	}
	bins[binCount-1].Hi = max // avoid float drift leaving the last bin short

	for _, v := range sorted {
		idx := int((v - min) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins
}

// CDF emits (value, probability) pairs with probability = (i+1)/n
// (§4.7). When n > maxPoints, it downsamples by a uniform stride and
// always appends the final point so the last probability is exactly 1
// (§8.7). maxPoints <= 0 disables downsampling.
func CDF(sorted []float64, maxPoints int) []CDFPoint {
	n := len(sorted)
	if n == 0 {
		return []CDFPoint{}
	}
	if maxPoints <= 0 || n <= maxPoints {
		points := make([]CDFPoint, n)
		for i, v := range sorted {
			points[i] = CDFPoint{Value: v, Probability: float64(i+1) / float64(n)}
		}
		return points
	}

	stride := n / maxPoints
	if stride < 1 {
		stride = 1
	}
	points := make([]CDFPoint, 0, maxPoints+1)
	for i := 0; i < n; i += stride {
		points = append(points, CDFPoint{Value: sorted[i], Probability: float64(i+1) / float64(n)})
	}
	last := CDFPoint{Value: sorted[n-1], Probability: 1}
	if points[len(points)-1].Value != last.Value || points[len(points)-1].Probability != 1 {
		points = append(points, last)
	}
	return points
}
