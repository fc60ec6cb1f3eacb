package derivesyst

import (
	"go.uber.org/zap"
)

// Result holds the profiles of one channel.
type Result struct {
	Profile1D *Profile1D
	Profile3D *Profile3D

	// Components lists the MC samples that were found in every file.
	Components []string
}

// Run derives the 1D and 3D profiles for the channel whose unsliced input
// is base. Both builds share one MC component list.
func Run(cfg Config, src Source, base string, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	mc, err := NewComponents(cfg.MCComponents...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Clamp.Validate(); err != nil {
		return nil, err
	}

	b := NewBuilder(src, layout, log)
	b.Clamp = cfg.Clamp

	p1, err := b.Build1D(base, mc)
	if err != nil {
		return nil, err
	}
	p3, err := b.Build3D(base, mc)
	if err != nil {
		return nil, err
	}

	log.Info("derived systematics",
		zap.String("profile1D", p1.Name),
		zap.String("profile3D", p3.Name),
		zap.Strings("components", mc.Names()),
	)
	return &Result{
		Profile1D:  p1,
		Profile3D:  p3,
		Components: mc.Names(),
	}, nil
}
