package hist

import (
	"go-hep.org/x/hep/hbook"
)

// FromH1D copies the in-range bins of h into a new Series. Bin errors are
// taken as sqrt(sumw2).
func FromH1D(h *hbook.H1D) (*Series, error) {
	bins := h.Binning.Bins
	edges := make([]float64, 0, len(bins)+1)
	for i, b := range bins {
		if i == 0 {
			edges = append(edges, b.XMin())
		}
		edges = append(edges, b.XMax())
	}
	axis, err := NewAxis(edges)
	if err != nil {
		return nil, err
	}
	s := NewSeries(axis)
	for i, b := range bins {
		s.Set(i, b.SumW(), b.ErrW())
	}
	return s, nil
}

// H1D returns an hbook histogram named name holding the content of s.
// Each bin's sumw is the series value and its sumw2 the squared
// uncertainty.
func (s *Series) H1D(name string) *hbook.H1D {
	h := hbook.NewH1DFromEdges(s.axis.Edges())
	h.Ann["name"] = name
	for i := range s.vals {
		d := &h.Binning.Bins[i].Dist.Dist
		d.N = 1
		d.SumW = s.vals[i]
		d.SumW2 = s.errs[i] * s.errs[i]

		tot := &h.Binning.Dist.Dist
		tot.N++
		tot.SumW += d.SumW
		tot.SumW2 += d.SumW2
	}
	return h
}
