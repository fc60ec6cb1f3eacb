package derivesyst

import "fmt"

// ClampPolicy bounds per-slice ratios into a correction band. A ratio
// above Upper is stored as (Upper, UpperErr), one below Lower as
// (Lower, LowerErr); anything in between is stored unchanged.
type ClampPolicy struct {
	Upper    float64 `yaml:"upper"`
	UpperErr float64 `yaml:"upper_error"`
	Lower    float64 `yaml:"lower"`
	LowerErr float64 `yaml:"lower_error"`
}

// DefaultClamp is the [0.5, 2] band used for the 3D map.
var DefaultClamp = ClampPolicy{
	Upper:    2.0,
	UpperErr: 1.0,
	Lower:    0.5,
	LowerErr: 0.5,
}

// Clamp applies the policy to a ratio v with uncertainty e.
func (p ClampPolicy) Clamp(v, e float64) (float64, float64) {
	switch {
	case v > p.Upper:
		return p.Upper, p.UpperErr
	case v < p.Lower:
		return p.Lower, p.LowerErr
	default:
		return v, e
	}
}

// Validate checks that the band is not empty.
func (p ClampPolicy) Validate() error {
	if !(p.Lower <= p.Upper) {
		return fmt.Errorf("clamp band [%v, %v] is empty", p.Lower, p.Upper)
	}
	return nil
}
