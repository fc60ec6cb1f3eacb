package derivesyst

import (
	"fmt"

	"github.com/decibelcooper/derivesyst/hist"
)

// Profile1D is the unsliced data/MC ratio along ppt.
type Profile1D struct {
	Name   string
	Series *hist.Series
}

func NewProfile1D(name string, ppt hist.Axis) *Profile1D {
	return &Profile1D{Name: name, Series: hist.NewSeries(ppt)}
}

// FillFromRatio copies the bins of r one to one.
func (p *Profile1D) FillFromRatio(r *hist.Series) error {
	if r.Len() != p.Series.Len() {
		return fmt.Errorf("ratio has %d bins, profile %q has %d: %w", r.Len(), p.Name, p.Series.Len(), hist.ErrBinning)
	}
	for i := 0; i < r.Len(); i++ {
		p.Series.Set(i, r.Value(i), r.Error(i))
	}
	return nil
}

// Profile3D is the clamped data/MC ratio binned in eta, pt and ppt.
type Profile3D struct {
	Name string
	Grid *hist.Grid3D
}

func NewProfile3D(name string, eta, pt, ppt hist.Axis) *Profile3D {
	return &Profile3D{Name: name, Grid: hist.NewGrid3D(eta, pt, ppt)}
}

// FillFromRatio stores the clamped bins of r into the (eta, pt) plane.
func (p *Profile3D) FillFromRatio(eta, pt int, r *hist.Series, clamp ClampPolicy) error {
	_, _, nz := p.Grid.Dims()
	if r.Len() != nz {
		return fmt.Errorf("ratio has %d bins, profile %q has %d ppt bins: %w", r.Len(), p.Name, nz, hist.ErrBinning)
	}
	for z := 0; z < nz; z++ {
		v, e := clamp.Clamp(r.Value(z), r.Error(z))
		p.Grid.Set(eta, pt, z, v, e)
	}
	return nil
}

// Lookup returns the weight stored for the cell holding (eta, pt, ppt).
// ok is false if the point is outside the map.
func (p *Profile3D) Lookup(eta, pt, ppt float64) (v, e float64, ok bool) {
	ix, iy, iz, ok := p.Grid.FindBin(eta, pt, ppt)
	if !ok {
		return 0, 0, false
	}
	v, e = p.Grid.At(ix, iy, iz)
	return v, e, true
}
