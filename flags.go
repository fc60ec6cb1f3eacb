package derivesyst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*EdgesFlag)(nil)

// EdgesFlag collects axis bin edges from a repeatable command-line flag.
// Each occurrence may hold one edge or a comma-separated list. The first
// occurrence replaces the default edges.
type EdgesFlag struct {
	Edges   []float64
	beenSet bool
}

func (f *EdgesFlag) Set(valueStr string) error {
	var vals []float64
	for _, s := range strings.Split(valueStr, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Edges = nil
	}

	f.Edges = append(f.Edges, vals...)
	return nil
}

func (f *EdgesFlag) String() string {
	return fmt.Sprint(f.Edges)
}

// Type names the flag value type in usage output.
func (f *EdgesFlag) Type() string {
	return "edges"
}

// Changed reports whether the flag was given on the command line.
func (f *EdgesFlag) Changed() bool {
	return f.beenSet
}
