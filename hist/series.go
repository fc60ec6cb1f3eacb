// Package hist holds the binned containers the systematics are computed
// on: a 1D series of value+error bins and a 3D grid of cells.
package hist

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrZeroIntegral is returned when normalizing a series whose bins
	// sum to zero.
	ErrZeroIntegral = errors.New("hist: zero integral")

	// ErrBinning is returned when combining series over different axes.
	ErrBinning = errors.New("hist: incompatible binning")
)

// Series is a 1D sequence of bins, each with a value and an uncertainty.
// The binning is fixed at construction.
type Series struct {
	axis Axis
	vals []float64
	errs []float64
}

// NewSeries returns a zero-filled series over axis.
func NewSeries(axis Axis) *Series {
	return &Series{
		axis: axis,
		vals: make([]float64, axis.Len()),
		errs: make([]float64, axis.Len()),
	}
}

func (s *Series) Axis() Axis { return s.axis }
func (s *Series) Len() int { return len(s.vals) }
func (s *Series) Value(i int) float64 { return s.vals[i] }
func (s *Series) Error(i int) float64 { return s.errs[i] }
func (s *Series) Set(i int, v, e float64) { s.vals[i], s.errs[i] = v, e }

// Clone returns a deep copy of s.
func (s *Series) Clone() *Series {
	return &Series{
		axis: s.axis,
		vals: append([]float64(nil), s.vals...),
		errs: append([]float64(nil), s.errs...),
	}
}

// Add adds o to s bin by bin. Uncertainties are added in quadrature.
func (s *Series) Add(o *Series) error {
	if !s.axis.Compatible(o.axis) {
		return fmt.Errorf("add: %w", ErrBinning)
	}
	floats.Add(s.vals, o.vals)
	for i, e := range o.errs {
		s.errs[i] = math.Hypot(s.errs[i], e)
	}
	return nil
}

// Integral returns the sum of all bin values.
func (s *Series) Integral() float64 {
	return floats.Sum(s.vals)
}

// Scale multiplies every value and uncertainty by f.
func (s *Series) Scale(f float64) {
	floats.Scale(f, s.vals)
	floats.Scale(math.Abs(f), s.errs)
}

// Normalize scales s so that its bins sum to one.
func (s *Series) Normalize() error {
	sum := s.Integral()
	if sum == 0 || math.IsNaN(sum) {
		return ErrZeroIntegral
	}
	s.Scale(1 / sum)
	return nil
}

// Divide returns the bin-wise ratio s/o.
//
// Numerator and denominator are treated as uncorrelated, so relative
// uncertainties add in quadrature. Bins where o is zero get value 0 and
// error 0.
func (s *Series) Divide(o *Series) (*Series, error) {
	if !s.axis.Compatible(o.axis) {
		return nil, fmt.Errorf("divide: %w", ErrBinning)
	}
	r := NewSeries(s.axis)
	for i := range s.vals {
		n, d := s.vals[i], o.vals[i]
		if d == 0 {
			continue
		}
		en, ed := s.errs[i], o.errs[i]
		r.vals[i] = n / d
		r.errs[i] = math.Sqrt(en*en*d*d+ed*ed*n*n) / (d * d)
	}
	return r, nil
}
