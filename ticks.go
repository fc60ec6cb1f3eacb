package derivesyst

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/decibelcooper/derivesyst/hist"
)

// PreciseTicks places labelled ticks on round values with enough digits
// to tell neighbouring ticks apart, plus unlabelled minor ticks between
// them.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks < 2 {
		t.NSuggestedTicks = 4
	}
	if !(max > min) {
		return nil
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	ticks := majorTicks(min, max, majorDelta)

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}
	return append(ticks, minorTicks(min, max, minorDelta, ticks)...)
}

func majorTicks(min, max, delta float64) []plot.Tick {
	prec := int(math.Ceil(math.Log10(math.Max(math.Abs(min), math.Abs(max)))) - math.Floor(math.Log10(delta)))

	var ticks []plot.Tick
	for _, v := range steps(min, max, delta) {
		v = round(v, prec)
		ticks = append(ticks, plot.Tick{Value: v, Label: formatFloatTick(v, -1)})
	}
	return ticks
}

func minorTicks(min, max, delta float64, major []plot.Tick) []plot.Tick {
	var ticks []plot.Tick
	for _, v := range steps(min, max, delta) {
		if !isMajor(v, delta, major) {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// steps returns the multiples of delta within [min, max], allowing for
// rounding at both ends.
func steps(min, max, delta float64) []float64 {
	eps := 1e-9 * delta
	first := math.Ceil((min - eps) / delta)
	var vals []float64
	for i := first; i*delta <= max+eps; i++ {
		vals = append(vals, i*delta)
	}
	return vals
}

func isMajor(v, delta float64, major []plot.Tick) bool {
	for _, t := range major {
		if math.Abs(t.Value-v) < 1e-9*delta {
			return true
		}
	}
	return false
}

// EdgeTicks labels the bin edges of a variable-width axis drawn in bin
// index coordinates: edge i sits at i and carries the edge value.
type EdgeTicks struct {
	Axis hist.Axis
}

func (t EdgeTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, e := range t.Axis.Edges() {
		x := float64(i)
		if x < min || x > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: x, Label: formatFloatTick(e, -1)})
	}
	return ticks
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}
	if x == 0 {
		return 0
	}
	return x / pow
}

func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
