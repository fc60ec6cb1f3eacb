package derivesyst

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/decibelcooper/derivesyst/hist"
)

const prefix = "ph_HFT_MVA_eta0006_pt0027_dilepton_ppt_"

func TestComputeRatio(t *testing.T) {
	axis := hist.MustAxis(0, 0.5, 1)
	src := newMemSource()
	src.add("f", prefix+"Data", poisson(axis, 10, 30))
	src.add("f", prefix+"ttphoton", poisson(axis, 5, 5))
	src.add("f", prefix+"hadronfakes", poisson(axis, 15, 15))

	c, err := src.Open("f")
	require.NoError(t, err)
	mc, err := NewComponents("ttphoton", "hadronfakes")
	require.NoError(t, err)

	r, err := ComputeRatio(c, prefix, mc, nil)
	require.NoError(t, err)

	// data normalized: 0.25, 0.75; MC normalized: 0.5, 0.5
	assert.InDelta(t, 0.5, r.Value(0), 1e-12)
	assert.InDelta(t, 1.5, r.Value(1), 1e-12)

	// relative errors in quadrature
	dRel := math.Sqrt(10) / 10
	mRel := math.Sqrt(5+15) / 20
	assert.InDelta(t, 0.5*math.Hypot(dRel, mRel), r.Error(0), 1e-12)

	assert.Equal(t, 2, mc.Len())
}

func TestComputeRatioEqualShapes(t *testing.T) {
	axis := hist.MustAxis(0, 1)
	src := newMemSource()
	src.add("f", prefix+"Data", poisson(axis, 10))
	src.add("f", prefix+"ttphoton", poisson(axis, 20))
	c, _ := src.Open("f")
	mc, _ := NewComponents("ttphoton")

	r, err := ComputeRatio(c, prefix, mc, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Value(0), 1e-12)
}

func TestComputeRatioDropsMissingComponent(t *testing.T) {
	src := newMemSource()
	for _, f := range []string{"a", "b"} {
		src.add(f, prefix+"Data", constant(pptAxis, 4))
		src.add(f, prefix+"ttphoton", constant(pptAxis, 2))
		src.add(f, prefix+"Other", constant(pptAxis, 2))
	}
	mc, err := NewComponents("ttphoton", "electronfakes", "Other")
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	c, _ := src.Open("a")
	r, err := ComputeRatio(c, prefix, mc, log)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Value(3), 1e-12)
	assert.Equal(t, []string{"ttphoton", "Other"}, mc.Names())
	assert.Equal(t, 1, logs.FilterField(zap.String("component", "electronfakes")).Len())

	// a second slice does not look the dropped component up again
	src.fetched = nil
	c, _ = src.Open("b")
	_, err = ComputeRatio(c, prefix, mc, log)
	require.NoError(t, err)
	assert.Equal(t, []string{prefix + "Data", prefix + "ttphoton", prefix + "Other"}, src.fetched)
	assert.Equal(t, 1, logs.Len())
}

func TestComputeRatioRequiredHistograms(t *testing.T) {
	for _, tc := range []struct {
		name    string
		missing string
	}{
		{"no data", "Data"},
		{"no signal", "ttphoton"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := newMemSource()
			for _, k := range []string{"Data", "ttphoton", "hadronfakes"} {
				if k != tc.missing {
					src.add("f", prefix+k, constant(pptAxis, 1))
				}
			}
			// keep the file known to the source even without histograms
			src.add("f", "unrelated", constant(pptAxis, 1))

			mc, err := NewComponents("ttphoton", "hadronfakes", "electronfakes")
			require.NoError(t, err)
			c, _ := src.Open("f")

			_, err = ComputeRatio(c, prefix, mc, nil)
			var nf *NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, prefix+tc.missing, nf.Key)
			assert.Equal(t, []string{"ttphoton", "hadronfakes", "electronfakes"}, mc.Names())
		})
	}
}

func TestComputeRatioZeroIntegral(t *testing.T) {
	src := newMemSource()
	src.add("f", prefix+"Data", constant(pptAxis, 0))
	src.add("f", prefix+"ttphoton", constant(pptAxis, 1))
	src.add("g", prefix+"Data", constant(pptAxis, 1))
	src.add("g", prefix+"ttphoton", constant(pptAxis, 0))
	mc, _ := NewComponents("ttphoton")

	for _, f := range []string{"f", "g"} {
		c, _ := src.Open(f)
		_, err := ComputeRatio(c, prefix, mc, nil)
		assert.ErrorIs(t, err, hist.ErrZeroIntegral, f)
	}
}

func TestComputeRatioEmptyMCBin(t *testing.T) {
	axis := hist.MustAxis(0, 1, 2)
	src := newMemSource()
	src.add("f", prefix+"Data", poisson(axis, 3, 1))
	src.add("f", prefix+"ttphoton", poisson(axis, 4, 0))
	mc, _ := NewComponents("ttphoton")
	c, _ := src.Open("f")

	r, err := ComputeRatio(c, prefix, mc, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Value(1))
	assert.Equal(t, 0.0, r.Error(1))
}

func TestComputeRatioDoesNotModifyInputs(t *testing.T) {
	src := newMemSource()
	data := constant(pptAxis, 3)
	sig := constant(pptAxis, 2)
	src.add("f", prefix+"Data", data)
	src.add("f", prefix+"ttphoton", sig)
	src.add("f", prefix+"Other", constant(pptAxis, 1))
	mc, _ := NewComponents("ttphoton", "Other")
	c, _ := src.Open("f")

	_, err := ComputeRatio(c, prefix, mc, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, data.Value(0))
	assert.Equal(t, 2.0, sig.Value(0))
}

func TestComputeRatioBinningMismatch(t *testing.T) {
	src := newMemSource()
	src.add("f", prefix+"Data", constant(pptAxis, 3))
	src.add("f", prefix+"ttphoton", constant(hist.MustAxis(0, 1), 2))
	mc, _ := NewComponents("ttphoton")
	c, _ := src.Open("f")

	_, err := ComputeRatio(c, prefix, mc, nil)
	assert.ErrorIs(t, err, hist.ErrBinning)
}

// failingFile returns a non-lookup error for one key.
type failingFile struct {
	Container
	key string
}

func (f failingFile) Fetch(key string) (*hist.Series, error) {
	if key == f.key {
		return nil, errors.New("read error")
	}
	return f.Container.Fetch(key)
}

func TestComputeRatioFetchFailureIsFatal(t *testing.T) {
	src := newMemSource()
	src.add("f", prefix+"Data", constant(pptAxis, 3))
	src.add("f", prefix+"ttphoton", constant(pptAxis, 2))
	src.add("f", prefix+"Other", constant(pptAxis, 2))
	mc, _ := NewComponents("ttphoton", "Other")
	c, _ := src.Open("f")

	_, err := ComputeRatio(failingFile{Container: c, key: prefix + "Other"}, prefix, mc, nil)
	require.Error(t, err)
	assert.True(t, mc.Contains("Other"))
}
