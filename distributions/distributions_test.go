package distributions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/rng"
)

// DistributionsSuite exercises bounds, monotonicity, and mean convergence
// (§8.2-4) across all four distribution families.
type DistributionsSuite struct {
	suite.Suite
}

func TestDistributionsSuite(t *testing.T) {
	suite.Run(t, new(DistributionsSuite))
}

func (s *DistributionsSuite) TestUniform_BoundsAndMoments() {
	u, err := distributions.NewUniform(8, 12)
	s.Require().NoError(err)
	s.InDelta(10.0, u.Mean(), 1e-9)
	s.InDelta(16.0/12, u.Variance(), 1e-9)

	stream := rng.NewStream("uniform-bounds")
	sum := 0.0
	const n = 50000
	for i := 0; i < n; i++ {
		v := u.Sample(stream)
		s.GreaterOrEqual(v, 8.0)
		s.Less(v, 12.0)
		sum += v
	}
	s.InDelta(u.Mean(), sum/n, 0.05*math.Max(1, u.Mean()))
}

func (s *DistributionsSuite) TestUniform_InvalidParams() {
	_, err := distributions.NewUniform(12, 8)
	s.ErrorIs(err, distributions.ErrInvalidUniform)
}

func (s *DistributionsSuite) TestTriangular_BoundsAndMoments() {
	tri, err := distributions.NewTriangular(8, 10, 12)
	s.Require().NoError(err)
	s.InDelta(10.0, tri.Mean(), 1e-9)

	stream := rng.NewStream("tri-bounds")
	for i := 0; i < 50000; i++ {
		v := tri.Sample(stream)
		s.GreaterOrEqual(v, 8.0)
		s.LessOrEqual(v, 12.0)
	}
}

func (s *DistributionsSuite) TestTriangular_InvalidParams() {
	_, err := distributions.NewTriangular(8, 20, 12)
	s.ErrorIs(err, distributions.ErrInvalidTriangular)
}

func (s *DistributionsSuite) TestTruncatedNormal_BoundsViaFromEstimate() {
	dist, err := distributions.FromEstimate(distributions.Normal, distributions.Estimate{
		Min: 8, MostLikely: 10, Max: 12, Confidence: estimate.MediumConfidence,
	})
	s.Require().NoError(err)

	stream := rng.NewStream("tnormal-bounds")
	sum := 0.0
	const n = 50000
	for i := 0; i < n; i++ {
		v := dist.Sample(stream)
		s.GreaterOrEqual(v, 8.0)
		s.LessOrEqual(v, 12.0)
		sum += v
	}
	s.InDelta(dist.Mean(), sum/n, 0.05*math.Max(1, dist.Mean()))
}

func (s *DistributionsSuite) TestLogNormal_FromEstimateMeanConvergence() {
	dist, err := distributions.FromEstimate(distributions.LogNormalK, distributions.Estimate{
		Min: 2, MostLikely: 5, Max: 30, Confidence: estimate.MediumConfidence,
	})
	s.Require().NoError(err)

	stream := rng.NewStream("lognormal-convergence")
	sum := 0.0
	const n = 50000
	for i := 0; i < n; i++ {
		sum += dist.Sample(stream)
	}
	s.InDelta(dist.Mean(), sum/n, 0.05*math.Max(1, dist.Mean()))
}

func (s *DistributionsSuite) TestLogNormal_NonPositiveMeanFallsBackToNormal() {
	_, err := distributions.NewLogNormalFromMeanSD(-1, 1)
	s.ErrorIs(err, distributions.ErrLogNormalMeanNonPositive)

	dist, err := distributions.FromEstimate(distributions.LogNormalK, distributions.Estimate{
		Min: 0, MostLikely: 0, Max: 0, Confidence: estimate.MediumConfidence,
	})
	s.Require().NoError(err)
	s.IsType(&distributions.NormalDist{}, dist)
}

func (s *DistributionsSuite) TestInverseCDF_MonotonicAcrossAllKinds() {
	cases := []distributions.Distribution{
		mustUniform(s, 8, 12),
		mustTriangular(s, 8, 10, 12),
		mustNormal(s, 10, 1.5),
		mustLogNormal(s, 10, 1.5),
	}
	ps := []float64{0, 0.05, 0.25, 0.5, 0.75, 0.95, 1}
	for _, d := range cases {
		prev := math.Inf(-1)
		for _, p := range ps {
			v, err := d.InverseCDF(p)
			s.Require().NoError(err)
			s.GreaterOrEqual(v, prev)
			prev = v
		}
	}
}

func (s *DistributionsSuite) TestInverseCDF_RejectsOutOfRange() {
	u, _ := distributions.NewUniform(0, 1)
	_, err := u.InverseCDF(-0.1)
	s.ErrorIs(err, distributions.ErrInverseCDFRange)
	_, err = u.InverseCDF(1.1)
	s.ErrorIs(err, distributions.ErrInverseCDFRange)
}

func (s *DistributionsSuite) TestNormal_ZeroSigmaIsConstant() {
	n, err := distributions.NewNormal(10, 0)
	s.Require().NoError(err)
	stream := rng.NewStream("zero-sigma")
	for i := 0; i < 100; i++ {
		s.Equal(10.0, n.Sample(stream))
	}
	v, err := n.InverseCDF(0.95)
	s.Require().NoError(err)
	s.Equal(10.0, v)
}

func mustUniform(s *DistributionsSuite, a, b float64) distributions.Distribution {
	d, err := distributions.NewUniform(a, b)
	s.Require().NoError(err)
	return d
}

func mustTriangular(s *DistributionsSuite, a, c, b float64) distributions.Distribution {
	d, err := distributions.NewTriangular(a, c, b)
	s.Require().NoError(err)
	return d
}

func mustNormal(s *DistributionsSuite, mu, sigma float64) distributions.Distribution {
	d, err := distributions.NewNormal(mu, sigma)
	s.Require().NoError(err)
	return d
}

func mustLogNormal(s *DistributionsSuite, mean, sd float64) distributions.Distribution {
	d, err := distributions.NewLogNormalFromMeanSD(mean, sd)
	s.Require().NoError(err)
	return d
}

func TestFromEstimate_UnknownKind(t *testing.T) {
	_, err := distributions.FromEstimate(distributions.Kind("bogus"), distributions.Estimate{
		Min: 1, MostLikely: 2, Max: 3, Confidence: estimate.MediumConfidence,
	})
	require.ErrorIs(t, err, distributions.ErrUnknownKind)
}
