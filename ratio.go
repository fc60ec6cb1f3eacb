package derivesyst

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/decibelcooper/derivesyst/hist"
)

// DataKey is the suffix of the data histogram key.
const DataKey = "Data"

// ComputeRatio returns the normalized data/MC ratio stored in c under the
// key prefix.
//
// The data histogram and the first MC component are required. Every other
// component is added to the MC stack if present; a missing one is logged
// and removed from mc, so later calls sharing mc skip it. Data and the MC
// stack are each scaled to unit integral before dividing.
func ComputeRatio(c Container, prefix string, mc *Components, log *zap.Logger) (*hist.Series, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if mc == nil || mc.Len() == 0 {
		return nil, errors.New("no MC components")
	}

	data, err := c.Fetch(prefix + DataKey)
	if err != nil {
		return nil, err
	}
	data = data.Clone()

	stack, err := c.Fetch(prefix + mc.First())
	if err != nil {
		return nil, err
	}
	stack = stack.Clone()

	names := mc.Names()
	for _, name := range names[1:] {
		key := prefix + name
		h, res, err := fetchOptional(c, key)
		switch res {
		case fetchFailed:
			return nil, err
		case fetchMissing:
			log.Warn("could not retrieve MC histogram, removing it from the list of components",
				zap.String("component", name),
				zap.String("key", key),
			)
			mc.Remove(name)
			continue
		}
		if err := stack.Add(h); err != nil {
			return nil, fmt.Errorf("stacking MC component %q: %w", name, err)
		}
	}

	if err := data.Normalize(); err != nil {
		return nil, fmt.Errorf("normalizing %q: %w", prefix+DataKey, err)
	}
	if err := stack.Normalize(); err != nil {
		return nil, fmt.Errorf("normalizing MC stack %q: %w", prefix, err)
	}
	return data.Divide(stack)
}

type fetchResult int

const (
	fetchFound fetchResult = iota
	fetchMissing
	fetchFailed
)

// fetchOptional looks up a histogram that is allowed to be absent.
func fetchOptional(c Container, key string) (*hist.Series, fetchResult, error) {
	h, err := c.Fetch(key)
	if err == nil {
		return h, fetchFound, nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nil, fetchMissing, nil
	}
	return nil, fetchFailed, err
}
