package derivesyst

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook/rootcnv"

	"github.com/decibelcooper/derivesyst/hist"
)

// Source opens histogram files.
type Source interface {
	// Open returns the container stored at path. Failures are reported
	// as *OpenError.
	Open(path string) (Container, error)
}

// Container is an opened histogram file.
type Container interface {
	// Fetch returns a copy of the 1D histogram stored under key. Only a
	// key absent from the file is reported as *NotFoundError; a stored
	// histogram that cannot be read is any other error.
	Fetch(key string) (*hist.Series, error)
	Close() error
}

// ROOTSource reads histograms from ROOT files.
type ROOTSource struct{}

func (ROOTSource) Open(path string) (Container, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &rootFile{f: f, path: path}, nil
}

type rootFile struct {
	f    *groot.File
	path string
}

func (r *rootFile) Fetch(key string) (*hist.Series, error) {
	obj, err := r.f.Get(key)
	if err != nil {
		if !r.hasKey(key) {
			return nil, &NotFoundError{Path: r.path, Key: key, Err: err}
		}
		return nil, fmt.Errorf("%s: reading %q: %w", r.path, key, err)
	}
	h, ok := obj.(rhist.H1)
	if !ok {
		return nil, fmt.Errorf("%s: %q is a %s, not a 1D histogram", r.path, key, obj.Class())
	}
	s, err := hist.FromH1D(rootcnv.H1D(h))
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", r.path, key, err)
	}
	return s, nil
}

// hasKey reports whether the top directory of the file holds a key
// named key, whatever its cycle.
func (r *rootFile) hasKey(key string) bool {
	for _, k := range r.f.Keys() {
		if k.Name() == key {
			return true
		}
	}
	return false
}

func (r *rootFile) Close() error {
	return r.f.Close()
}
