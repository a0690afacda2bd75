package distributions

import "github.com/spertscheduler/engine/rng"

// maxTruncationRetries bounds the rejection loop in TruncatedNormalDist.Sample
// before falling back to a hard clamp (§4.2: "cap retries at e.g. 8, then
// clamp").
const maxTruncationRetries = 8

// TruncatedNormalDist wraps a NormalDist and rejection-samples into
// [min, max] (§4.2's "T-Normal"). Mean/Variance/InverseCDF/Parameters
// report the untruncated underlying normal — only Sample is affected,
// matching the spec's "truncate samples to [min, max] by rejection".
type TruncatedNormalDist struct {
	underlying *NormalDist
	min, max   float64
}

// NewTruncatedNormal validates sigma >= 0 (via the underlying normal) and
// min <= max, returning a TruncatedNormalDist.
func NewTruncatedNormal(mu, sigma, min, max float64) (*TruncatedNormalDist, error) {
	if min > max {
		return nil, ErrInvalidUniform
	}
	n, err := NewNormal(mu, sigma)
	if err != nil {
		return nil, err
	}
	return &TruncatedNormalDist{underlying: n, min: min, max: max}, nil
}

func (d *TruncatedNormalDist) Sample(s *rng.Stream) float64 {
	v := d.underlying.Sample(s)
	for i := 0; i < maxTruncationRetries && (v < d.min || v > d.max); i++ {
		v = d.underlying.Sample(s)
	}
	if v < d.min {
		return d.min
	}
	if v > d.max {
		return d.max
	}
	return v
}

func (d *TruncatedNormalDist) Mean() float64 { return d.underlying.Mean() }

func (d *TruncatedNormalDist) Variance() float64 { return d.underlying.Variance() }

func (d *TruncatedNormalDist) InverseCDF(p float64) (float64, error) {
	return d.underlying.InverseCDF(p)
}

func (d *TruncatedNormalDist) Parameters() map[string]float64 {
	params := d.underlying.Parameters()
	params["min"] = d.min
	params["max"] = d.max
	return params
}
