package derivesyst

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

func TestPlotProfiles(t *testing.T) {
	cfg := DefaultConfig()
	l, err := cfg.Layout()
	require.NoError(t, err)

	p1 := NewProfile1D("hist_ppt_prompt_1D", l.Ppt)
	require.NoError(t, p1.FillFromRatio(poisson(l.Ppt, 0.8, 0.9, 1, 1.1, 1.2, 1.1, 1, 0.9, 0.8, 0.7)))

	p3 := NewProfile3D("hist_ppt_prompt_3D", l.Eta, l.Pt, l.Ppt)
	for eta := 0; eta < l.Eta.Len(); eta++ {
		if eta == l.Crack {
			continue
		}
		for pt := 0; pt < l.Pt.Len(); pt++ {
			require.NoError(t, p3.FillFromRatio(eta, pt, constant(l.Ppt, 1+0.1*float64(pt)), DefaultClamp))
		}
	}

	dir := t.TempDir()
	f1 := filepath.Join(dir, "syst_1D.png")
	f3 := filepath.Join(dir, "syst_3D.png")
	require.NoError(t, PlotProfile1D(p1, f1))
	require.NoError(t, PlotProfile3D(p3, 7, DefaultClamp, f3))

	for _, f := range []string{f1, f3} {
		fi, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0))
	}

	assert.Error(t, PlotProfile3D(p3, 10, DefaultClamp, f3))
}

func TestPptPlaneCellsFollowBinIndices(t *testing.T) {
	l, err := DefaultConfig().Layout()
	require.NoError(t, err)
	p3 := NewProfile3D("hist_ppt_prompt_3D", l.Eta, l.Pt, l.Ppt)

	hm := plotter.NewHeatMap(pptPlane{g: p3, iz: 0}, moreland.ExtendedBlackBody().Palette(10))
	xmin, xmax, ymin, ymax := hm.DataRange()
	assert.Equal(t, [4]float64{0, 4, 0, 5}, [4]float64{xmin, xmax, ymin, ymax})

	// Cell borders sit halfway between neighbouring X values, which must
	// be the bin boundaries 1, 2 and 3 whatever the bin widths.
	plane := pptPlane{g: p3}
	for c := 1; c < l.Eta.Len(); c++ {
		assert.Equal(t, float64(c), (plane.X(c-1)+plane.X(c))/2)
	}

	ticks := EdgeTicks{Axis: l.Eta}.Ticks(xmin, xmax)
	require.Len(t, ticks, l.Eta.Len()+1)
	for i, tk := range ticks {
		assert.Equal(t, float64(i), tk.Value)
		assert.Equal(t, formatFloatTick(l.Eta.Edges()[i], -1), tk.Label)
	}
}
