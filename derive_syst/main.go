package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decibelcooper/derivesyst"
)

const defaultOutput = "output.root"

var (
	configPath string
	verbose    bool
	plotPrefix string
	doProfile  bool
	lookup     []float64

	etaEdges derivesyst.EdgesFlag
	ptEdges  derivesyst.EdgesFlag
	pptEdges derivesyst.EdgesFlag

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "derive_syst <input-file> [output-file]",
	Short: "Derive data/MC ppt systematics binned in eta and pt",
	Long: `derive_syst computes the normalized data/MC ratio along ppt for the unsliced
input file and for each of its (eta, pt) slice files, and writes a 1D profile
and a clamped 3D (eta, pt, ppt) map to the output file (default ` + defaultOutput + `).

Slice files are found by inserting "<eta>_<pt>_" after "HFT_MVA_" in the
input file name.`,
	Args: cobra.RangeArgs(1, 2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML file overriding binning, slice labels and MC components")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&plotPrefix, "plot", "p", "", "write <prefix>_1D.png and <prefix>_3D.png control plots")
	flags.BoolVar(&doProfile, "profile", false, "write a CPU profile of the run")
	flags.Float64SliceVar(&lookup, "lookup", []float64{1.20, 64213, 0.78}, "eta,pt,ppt point whose 3D weight is reported")
	flags.Var(&etaEdges, "eta-edge", "eta bin edges (repeatable, replaces the configured edges)")
	flags.Var(&ptEdges, "pt-edge", "pt bin edges (repeatable, replaces the configured edges)")
	flags.Var(&pptEdges, "ppt-edge", "ppt bin edges (repeatable, replaces the configured edges)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	input, output := args[0], defaultOutput
	if len(args) > 1 {
		output = args[1]
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	res, err := derivesyst.Run(cfg, derivesyst.ROOTSource{}, input, logger)
	if err != nil {
		logger.Error("derivation failed", zap.String("input", input), zap.Error(err))
		return err
	}

	if err := derivesyst.WriteROOT(output, res.Profile1D, res.Profile3D); err != nil {
		logger.Error("writing output failed", zap.String("output", output), zap.Error(err))
		return err
	}
	logger.Info("wrote output", zap.String("output", output))

	iz := 0
	if len(lookup) == 3 {
		v, e, ok := res.Profile3D.Lookup(lookup[0], lookup[1], lookup[2])
		if ok {
			logger.Info("ppt weight",
				zap.Float64("eta", lookup[0]),
				zap.Float64("pt", lookup[1]),
				zap.Float64("ppt", lookup[2]),
				zap.Float64("weight", v),
				zap.Float64("error", e),
			)
			iz = res.Profile3D.Grid.ZAxis().FindBin(lookup[2])
		} else {
			logger.Warn("lookup point outside the 3D map", zap.Float64s("point", lookup))
		}
	} else {
		logger.Warn("ignoring lookup, expected eta,pt,ppt", zap.Float64s("point", lookup))
	}

	if plotPrefix == "" {
		return nil
	}
	if err := derivesyst.PlotProfile1D(res.Profile1D, plotPrefix+"_1D.png"); err != nil {
		logger.Error("plotting 1D profile failed", zap.Error(err))
		return err
	}
	if err := derivesyst.PlotProfile3D(res.Profile3D, iz, cfg.Clamp, plotPrefix+"_3D.png"); err != nil {
		logger.Error("plotting 3D profile failed", zap.Error(err))
		return err
	}
	return nil
}

func loadConfig() (derivesyst.Config, error) {
	cfg := derivesyst.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = derivesyst.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	if etaEdges.Changed() {
		cfg.EtaEdges = etaEdges.Edges
	}
	if ptEdges.Changed() {
		cfg.PtEdges = ptEdges.Edges
	}
	if pptEdges.Changed() {
		cfg.PptEdges = pptEdges.Edges
	}
	return cfg, cfg.Validate()
}
