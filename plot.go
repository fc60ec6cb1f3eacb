package derivesyst

import (
	"fmt"
	"os"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotProfile1D draws the 1D profile with its error bars into file.
func PlotProfile1D(p *Profile1D, file string) error {
	pl := plot.New()
	pl.Title.Text = p.Name
	pl.X.Label.Text = "ppt"
	pl.Y.Label.Text = "data / MC"
	pl.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	pl.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	h := hplot.NewH1D(p.Series.H1D(p.Name), hplot.WithYErrBars(true))
	h.FillColor = nil
	h.Infos.Style = hplot.HInfoNone
	pl.Add(h)

	return pl.Save(6*vg.Inch, 4*vg.Inch, file)
}

// PlotProfile3D draws the eta-pt plane of the 3D profile at ppt bin iz as
// a heat map with a color bar, written as PNG into file. The color scale
// spans [0, clamp.Upper].
func PlotProfile3D(p *Profile3D, iz int, clamp ClampPolicy, file string) error {
	_, _, nz := p.Grid.Dims()
	if iz < 0 || iz >= nz {
		return fmt.Errorf("ppt bin %d outside [0, %d)", iz, nz)
	}
	ppt := p.Grid.ZAxis()

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s, %g <= ppt < %g", p.Name, ppt.Low(iz), ppt.High(iz))
	pl.X.Label.Text = "|eta|"
	pl.Y.Label.Text = "p_T (MeV)"
	pl.X.Tick.Marker = EdgeTicks{Axis: p.Grid.XAxis()}
	pl.Y.Tick.Marker = EdgeTicks{Axis: p.Grid.YAxis()}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(clamp.Upper)
	heatMap := plotter.NewHeatMap(pptPlane{g: p, iz: iz}, colorMap.Palette(1000))
	heatMap.Min = 0
	heatMap.Max = clamp.Upper
	pl.Add(heatMap)

	pl.Draw(dc0)

	pl = plot.New()
	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	pl.Add(colorBar)
	pl.HideX()
	pl.Y.Padding = 0

	pl.Draw(dc1)

	w, err := os.Create(file)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// pptPlane exposes one ppt bin of a Profile3D as a plotter.GridXYZ over
// eta (columns) and pt (rows). Cells are placed in bin index coordinates,
// cell (c, r) covering [c, c+1]x[r, r+1], so variable-width bins are not
// distorted; EdgeTicks puts the edge values back on the axes.
type pptPlane struct {
	g  *Profile3D
	iz int
}

func (p pptPlane) Dims() (c, r int) {
	nx, ny, _ := p.g.Grid.Dims()
	return nx, ny
}

func (p pptPlane) Z(c, r int) float64 {
	v, _ := p.g.Grid.At(c, r, p.iz)
	return v
}

func (p pptPlane) X(c int) float64 { return float64(c) + 0.5 }
func (p pptPlane) Y(r int) float64 { return float64(r) + 0.5 }
