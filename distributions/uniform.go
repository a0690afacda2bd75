package distributions

import "github.com/spertscheduler/engine/rng"

// UniformDist is Uniform(a, b), a <= b (§4.2).
type UniformDist struct {
	a, b float64
}

// NewUniform validates a <= b and returns a UniformDist.
func NewUniform(a, b float64) (*UniformDist, error) {
	if a > b {
		return nil, ErrInvalidUniform
	}
	return &UniformDist{a: a, b: b}, nil
}

func (u *UniformDist) Sample(s *rng.Stream) float64 {
	return u.a + s.Float64()*(u.b-u.a)
}

func (u *UniformDist) Mean() float64 {
	return (u.a + u.b) / 2
}

func (u *UniformDist) Variance() float64 {
	d := u.b - u.a
	return d * d / 12
}

func (u *UniformDist) InverseCDF(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, ErrInverseCDFRange
	}
	return u.a + p*(u.b-u.a), nil
}

func (u *UniformDist) Parameters() map[string]float64 {
	return map[string]float64{"a": u.a, "b": u.b}
}
