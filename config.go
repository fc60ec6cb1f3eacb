package derivesyst

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decibelcooper/derivesyst/hist"
)

// Config holds the binning, slice labels and MC samples of a derivation.
type Config struct {
	EtaEdges []float64 `yaml:"eta_edges"`
	PtEdges  []float64 `yaml:"pt_edges"`
	PptEdges []float64 `yaml:"ppt_edges"`

	EtaLabels []string `yaml:"eta_labels"`
	PtLabels  []string `yaml:"pt_labels"`

	// CrackIndex is the eta slice excluded from the 3D map; -1 keeps all.
	CrackIndex int `yaml:"crack_index"`

	// MCComponents lists the MC samples to stack, the required one first.
	MCComponents []string `yaml:"mc_components"`

	Clamp ClampPolicy `yaml:"clamp"`
}

// DefaultConfig returns the configuration of the photon ppt systematics.
func DefaultConfig() Config {
	return Config{
		EtaEdges:  []float64{0, 0.6, 1.37, 1.52, 2.37},
		PtEdges:   []float64{0, 27000, 35000, 50000, 80000, 1000000},
		PptEdges:  []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		EtaLabels: []string{"eta0006", "eta06137", "eta137152", "eta152inf"},
		PtLabels:  []string{"pt0027", "pt2735", "pt3550", "pt5080", "pt80inf"},

		CrackIndex: 2,

		MCComponents: []string{
			"ttphoton",
			"hadronfakes",
			"electronfakes",
			"Zphoton",
			"Wphoton",
			"Other",
		},
		Clamp: DefaultClamp,
	}
}

// LoadConfig reads a YAML file on top of the default configuration.
// Fields absent from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Layout builds the slice layout described by the configuration.
func (c Config) Layout() (Layout, error) {
	var (
		l   Layout
		err error
	)
	if l.Eta, err = hist.NewAxis(c.EtaEdges); err != nil {
		return l, fmt.Errorf("eta axis: %w", err)
	}
	if l.Pt, err = hist.NewAxis(c.PtEdges); err != nil {
		return l, fmt.Errorf("pt axis: %w", err)
	}
	if l.Ppt, err = hist.NewAxis(c.PptEdges); err != nil {
		return l, fmt.Errorf("ppt axis: %w", err)
	}
	l.EtaLabels = append([]string(nil), c.EtaLabels...)
	l.PtLabels = append([]string(nil), c.PtLabels...)
	l.Crack = c.CrackIndex
	return l, l.Validate()
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, err := c.Layout(); err != nil {
		return err
	}
	if _, err := NewComponents(c.MCComponents...); err != nil {
		return err
	}
	return c.Clamp.Validate()
}
