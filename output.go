package derivesyst

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

// cell is one entry of the tree holding the 3D map.
type cell struct {
	EtaBin int32   `groot:"eta_bin"`
	PtBin  int32   `groot:"pt_bin"`
	PptBin int32   `groot:"ppt_bin"`
	EtaLo  float64 `groot:"eta_lo"`
	EtaHi  float64 `groot:"eta_hi"`
	PtLo   float64 `groot:"pt_lo"`
	PtHi   float64 `groot:"pt_hi"`
	PptLo  float64 `groot:"ppt_lo"`
	PptHi  float64 `groot:"ppt_hi"`
	Value  float64 `groot:"value"`
	Error  float64 `groot:"error"`
}

// WriteROOT stores both profiles in a new ROOT file at path, replacing
// any existing file. The 1D profile is written as a TH1D; the 3D profile
// as a tree with one entry per (eta, pt, ppt) cell.
func WriteROOT(path string, p1 *Profile1D, p3 *Profile3D) (err error) {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := f.Put(p1.Name, rhist.NewH1DFrom(p1.Series.H1D(p1.Name))); err != nil {
		return fmt.Errorf("writing %s: %w", p1.Name, err)
	}
	if err := writeCells(f, p3); err != nil {
		return fmt.Errorf("writing %s: %w", p3.Name, err)
	}
	return nil
}

func writeCells(dir riofs.Directory, p *Profile3D) error {
	var c cell
	w, err := rtree.NewWriter(dir, p.Name, rtree.WriteVarsFromStruct(&c))
	if err != nil {
		return err
	}

	g := p.Grid
	eta, pt, ppt := g.XAxis(), g.YAxis(), g.ZAxis()
	nx, ny, nz := g.Dims()
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				v, e := g.At(ix, iy, iz)
				c = cell{
					EtaBin: int32(ix),
					PtBin:  int32(iy),
					PptBin: int32(iz),
					EtaLo:  eta.Low(ix),
					EtaHi:  eta.High(ix),
					PtLo:   pt.Low(iy),
					PtHi:   pt.High(iy),
					PptLo:  ppt.Low(iz),
					PptHi:  ppt.High(iz),
					Value:  v,
					Error:  e,
				}
				if _, err := w.Write(); err != nil {
					w.Close()
					return err
				}
			}
		}
	}
	return w.Close()
}
