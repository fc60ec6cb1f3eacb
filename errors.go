package derivesyst

import (
	"errors"
	"fmt"
)

// ErrMalformedName is returned when a path lacks one of the markers the
// slice file and histogram naming scheme relies on.
var ErrMalformedName = errors.New("malformed name")

// OpenError reports an input file that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// NotFoundError reports a histogram key missing from an opened file.
type NotFoundError struct {
	Path string
	Key  string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("histogram %q not found in %q", e.Key, e.Path)
	}
	return fmt.Sprintf("histogram %q not found in %q: %v", e.Key, e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
