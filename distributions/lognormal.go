package distributions

import (
	"math"

	"github.com/spertscheduler/engine/rng"
)

// LogNormalDist is parametrised by the mu, sigma of the underlying normal
// (§4.2), not by its own mean/sd directly — use NewLogNormalFromMeanSD to
// solve for (mu, sigma) that reproduce a desired mean/sd.
type LogNormalDist struct {
	underlying *NormalDist
}

// NewLogNormal builds a LogNormalDist directly from the underlying
// normal's mu and sigma.
func NewLogNormal(mu, sigma float64) (*LogNormalDist, error) {
	n, err := NewNormal(mu, sigma)
	if err != nil {
		return nil, err
	}
	return &LogNormalDist{underlying: n}, nil
}

// NewLogNormalFromMeanSD solves for (mu, sigma) such that the resulting
// lognormal has the given mean and standard deviation (§4.2):
//
//	sigma^2 = ln(1 + sd^2/mean^2)
//	mu      = ln(mean) - sigma^2/2
//
// Returns ErrLogNormalMeanNonPositive when mean <= 0; callers implementing
// §4.2's construction rule fall back to Normal(mean, sd) in that case.
func NewLogNormalFromMeanSD(mean, sd float64) (*LogNormalDist, error) {
	if mean <= 0 {
		return nil, ErrLogNormalMeanNonPositive
	}
	sigma2 := math.Log(1 + (sd*sd)/(mean*mean))
	mu := math.Log(mean) - sigma2/2
	return NewLogNormal(mu, math.Sqrt(sigma2))
}

func (d *LogNormalDist) Sample(s *rng.Stream) float64 {
	return math.Exp(d.underlying.Sample(s))
}

func (d *LogNormalDist) Mean() float64 {
	mu, sigma := d.underlying.mu, d.underlying.sigma
	return math.Exp(mu + sigma*sigma/2)
}

func (d *LogNormalDist) Variance() float64 {
	mu, sigma := d.underlying.mu, d.underlying.sigma
	s2 := sigma * sigma
	return (math.Exp(s2) - 1) * math.Exp(2*mu+s2)
}

func (d *LogNormalDist) InverseCDF(p float64) (float64, error) {
	q, err := d.underlying.InverseCDF(p)
	if err != nil {
		return 0, err
	}
	return math.Exp(q), nil
}

func (d *LogNormalDist) Parameters() map[string]float64 {
	return map[string]float64{"mu": d.underlying.mu, "sigma": d.underlying.sigma}
}
