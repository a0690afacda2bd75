package distributions

import (
	"math"

	"github.com/spertscheduler/engine/rng"
)

// TriangularDist is Triangular(a, c, b): a <= c <= b, a < b (§4.2).
type TriangularDist struct {
	a, c, b float64
}

// NewTriangular validates a <= c <= b and a < b, returning a TriangularDist.
func NewTriangular(a, c, b float64) (*TriangularDist, error) {
	if !(a <= c && c <= b && a < b) {
		return nil, ErrInvalidTriangular
	}
	return &TriangularDist{a: a, c: c, b: b}, nil
}

func (d *TriangularDist) Sample(s *rng.Stream) float64 {
	// InverseCDF never fails for p in [0,1), which Float64 always yields.
	v, _ := d.InverseCDF(s.Float64())
	return v
}

func (d *TriangularDist) Mean() float64 {
	return (d.a + d.c + d.b) / 3
}

func (d *TriangularDist) Variance() float64 {
	a, b, c := d.a, d.b, d.c
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d *TriangularDist) InverseCDF(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, ErrInverseCDFRange
	}
	fc := (d.c - d.a) / (d.b - d.a)
	if p <= fc {
		return d.a + math.Sqrt(p*(d.b-d.a)*(d.c-d.a)), nil
	}
	return d.b - math.Sqrt((1-p)*(d.b-d.a)*(d.b-d.c)), nil
}

func (d *TriangularDist) Parameters() map[string]float64 {
	return map[string]float64{"a": d.a, "c": d.c, "b": d.b}
}
