package hist

import (
	"fmt"
	"math"
	"sort"
)

// Axis is an ordered set of variable-width bins defined by its edges.
type Axis struct {
	edges []float64
}

// NewAxis returns an axis with len(edges)-1 bins. The edges must be
// strictly increasing.
func NewAxis(edges []float64) (Axis, error) {
	if len(edges) < 2 {
		return Axis{}, fmt.Errorf("hist: axis needs at least 2 edges, got %d", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return Axis{}, fmt.Errorf("hist: axis edges not strictly increasing at %d (%v <= %v)", i, edges[i], edges[i-1])
		}
	}
	return Axis{edges: append([]float64(nil), edges...)}, nil
}

// MustAxis is like NewAxis but panics on invalid edges.
func MustAxis(edges ...float64) Axis {
	a, err := NewAxis(edges)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of bins.
func (a Axis) Len() int {
	if len(a.edges) == 0 {
		return 0
	}
	return len(a.edges) - 1
}

// Edges returns a copy of the bin edges.
func (a Axis) Edges() []float64 {
	return append([]float64(nil), a.edges...)
}

func (a Axis) Low(i int) float64 { return a.edges[i] }
func (a Axis) High(i int) float64 { return a.edges[i+1] }

// FindBin returns the index of the bin containing x, or -1 if x lies
// outside the axis. Bins are half-open except the last one, which also
// holds its upper edge.
func (a Axis) FindBin(x float64) int {
	n := a.Len()
	if n == 0 || math.IsNaN(x) || x < a.edges[0] || x > a.edges[n] {
		return -1
	}
	if x == a.edges[n] {
		return n - 1
	}
	i := sort.SearchFloat64s(a.edges, x)
	if a.edges[i] == x {
		return i
	}
	return i - 1
}

// Compatible reports whether both axes have the same number of bins and
// edges that agree to within a relative tolerance of 1e-6, so that edges
// stored in single precision match their double precision originals.
func (a Axis) Compatible(o Axis) bool {
	if len(a.edges) != len(o.edges) {
		return false
	}
	for i := range a.edges {
		d := math.Abs(a.edges[i] - o.edges[i])
		if d > 1e-6*math.Max(1, math.Max(math.Abs(a.edges[i]), math.Abs(o.edges[i]))) {
			return false
		}
	}
	return true
}

// Equal reports whether both axes have identical edges.
func (a Axis) Equal(o Axis) bool {
	if len(a.edges) != len(o.edges) {
		return false
	}
	for i := range a.edges {
		if a.edges[i] != o.edges[i] {
			return false
		}
	}
	return true
}
