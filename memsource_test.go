package derivesyst

import (
	"math"
	"os"

	"github.com/decibelcooper/derivesyst/hist"
)

// memSource is an in-memory Source that records every access.
type memSource struct {
	files   map[string]map[string]*hist.Series
	opened  []string
	fetched []string
	open    int
}

func newMemSource() *memSource {
	return &memSource{files: make(map[string]map[string]*hist.Series)}
}

func (m *memSource) add(path, key string, s *hist.Series) {
	if m.files[path] == nil {
		m.files[path] = make(map[string]*hist.Series)
	}
	m.files[path][key] = s
}

func (m *memSource) Open(path string) (Container, error) {
	hists, ok := m.files[path]
	if !ok {
		return nil, &OpenError{Path: path, Err: os.ErrNotExist}
	}
	m.opened = append(m.opened, path)
	m.open++
	return &memFile{src: m, path: path, hists: hists}, nil
}

type memFile struct {
	src   *memSource
	path  string
	hists map[string]*hist.Series
}

func (f *memFile) Fetch(key string) (*hist.Series, error) {
	f.src.fetched = append(f.src.fetched, key)
	h, ok := f.hists[key]
	if !ok {
		return nil, &NotFoundError{Path: f.path, Key: key}
	}
	return h, nil
}

func (f *memFile) Close() error {
	f.src.open--
	return nil
}

var pptAxis = hist.MustAxis(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)

// poisson returns a series over axis with the given values and sqrt(N)
// errors.
func poisson(axis hist.Axis, vals ...float64) *hist.Series {
	s := hist.NewSeries(axis)
	for i, v := range vals {
		s.Set(i, v, math.Sqrt(math.Abs(v)))
	}
	return s
}

func constant(axis hist.Axis, v float64) *hist.Series {
	vals := make([]float64, axis.Len())
	for i := range vals {
		vals[i] = v
	}
	return poisson(axis, vals...)
}
