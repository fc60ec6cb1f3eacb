package derivesyst

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decibelcooper/derivesyst/hist"
)

// Layout describes the slicing of the (eta, pt) plane.
type Layout struct {
	Eta, Pt, Ppt hist.Axis

	// EtaLabels and PtLabels name the slices in the input file names,
	// one per bin of the matching axis.
	EtaLabels []string
	PtLabels  []string

	// Crack is the eta bin that is never processed; -1 disables it.
	Crack int
}

// Validate checks that the labels match the axes.
func (l Layout) Validate() error {
	switch {
	case len(l.EtaLabels) != l.Eta.Len():
		return fmt.Errorf("%d eta labels for %d eta bins", len(l.EtaLabels), l.Eta.Len())
	case len(l.PtLabels) != l.Pt.Len():
		return fmt.Errorf("%d pt labels for %d pt bins", len(l.PtLabels), l.Pt.Len())
	case l.Ppt.Len() == 0:
		return fmt.Errorf("empty ppt axis")
	case l.Crack < -1 || l.Crack >= l.Eta.Len():
		return fmt.Errorf("crack index %d outside [-1, %d)", l.Crack, l.Eta.Len())
	}
	return nil
}

// Builder derives the systematic profiles from the files of one channel.
type Builder struct {
	Source Source
	Layout Layout
	Clamp  ClampPolicy
	Log    *zap.Logger
}

// NewBuilder returns a builder reading from src with the default clamp
// policy.
func NewBuilder(src Source, layout Layout, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		Source: src,
		Layout: layout,
		Clamp:  DefaultClamp,
		Log:    log,
	}
}

// Build1D computes the ratio of the unsliced base file.
func (b *Builder) Build1D(base string, mc *Components) (*Profile1D, error) {
	name, _ := OutputNames(base)
	r, err := b.ratio(base, mc)
	if err != nil {
		return nil, err
	}
	p := NewProfile1D(name, b.Layout.Ppt)
	if err := p.FillFromRatio(r); err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}
	return p, nil
}

// Build3D computes the clamped ratio of every (eta, pt) slice of base.
// The crack eta bin is skipped and left at zero. The first slice that
// fails aborts the build.
func (b *Builder) Build3D(base string, mc *Components) (*Profile3D, error) {
	l := b.Layout
	if err := l.Validate(); err != nil {
		return nil, err
	}
	_, name := OutputNames(base)
	p := NewProfile3D(name, l.Eta, l.Pt, l.Ppt)

	for ipt, ptTag := range l.PtLabels {
		for ieta, etaTag := range l.EtaLabels {
			if ieta == l.Crack {
				b.Log.Debug("skipping crack region", zap.String("eta", etaTag), zap.String("pt", ptTag))
				continue
			}
			path, err := SliceFileName(base, etaTag, ptTag)
			if err != nil {
				return nil, err
			}
			r, err := b.ratio(path, mc)
			if err != nil {
				return nil, err
			}
			if err := p.FillFromRatio(ieta, ipt, r, b.Clamp); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return p, nil
}

// ratio opens path, computes its data/MC ratio and closes it again.
func (b *Builder) ratio(path string, mc *Components) (r *hist.Series, err error) {
	prefix, err := HistKeyPrefix(path)
	if err != nil {
		return nil, err
	}

	b.Log.Info("opening file", zap.String("file", path))
	c, err := b.Source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	r, err = ComputeRatio(c, prefix, mc, b.Log)
	if err != nil {
		return nil, fmt.Errorf("retrieving histograms from %s: %w", path, err)
	}
	return r, nil
}
