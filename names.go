package derivesyst

import (
	"fmt"
	"strings"
)

const (
	sliceMarker     = "HFT_MVA_"
	histMarker      = "ph_HFT_MVA_"
	dileptonTag     = "dilepton_ppt_"
	singleleptonTag = "singlelepton_ppt_"
	promptChannel   = "dilepton"
)

// SliceFileName returns the file holding the (eta, pt) slice of base: the
// slice tags are inserted right after the first "HFT_MVA_" in base.
//
//	ph_HFT_MVA_dilepton_ppt_X.root -> ph_HFT_MVA_eta0006_pt0027_dilepton_ppt_X.root
func SliceFileName(base, etaTag, ptTag string) (string, error) {
	i := strings.Index(base, sliceMarker)
	if i < 0 {
		return "", fmt.Errorf("%w: %q does not contain %q", ErrMalformedName, base, sliceMarker)
	}
	i += len(sliceMarker)
	return base[:i] + etaTag + "_" + ptTag + "_" + base[i:], nil
}

// HistKeyPrefix returns the common prefix of the histogram keys stored in
// the file at path. It starts at "ph_HFT_MVA_" and ends after the last
// "dilepton_ppt_", or failing that the last "singlelepton_ppt_".
func HistKeyPrefix(path string) (string, error) {
	i := strings.Index(path, histMarker)
	if i < 0 {
		return "", fmt.Errorf("%w: %q does not contain %q", ErrMalformedName, path, histMarker)
	}
	s := path[i:]
	for _, tag := range []string{dileptonTag, singleleptonTag} {
		if j := strings.LastIndex(s, tag); j >= 0 {
			return s[:j+len(tag)], nil
		}
	}
	return "", fmt.Errorf("%w: %q has no channel marker (%q or %q)", ErrMalformedName, path, dileptonTag, singleleptonTag)
}

// OutputLabel classifies the systematic derived from path: "prompt" for
// the dilepton channel, "fake" for anything else.
func OutputLabel(path string) string {
	if strings.Contains(path, promptChannel) {
		return "prompt"
	}
	return "fake"
}

// OutputNames returns the names of the 1D and 3D output objects for path.
func OutputNames(path string) (name1D, name3D string) {
	base := "hist_ppt_" + OutputLabel(path)
	return base + "_1D", base + "_3D"
}
