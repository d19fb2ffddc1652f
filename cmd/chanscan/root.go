package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-chanscan/internal/config"
	"github.com/cwbudde/algo-chanscan/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	logger     *zap.Logger
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":        "log_level",
	"log-format":       "log_format",
	"output":           "output",
	"db":               "db",
	"mode":             "detector.mode",
	"sample-rate":      "detector.sample_rate",
	"window-size":      "detector.window_size",
	"alpha":            "detector.alpha",
	"center-frequency": "detector.center_frequency",
	"decimation":       "detector.decimation",
	"demo-rate":        "demo.sample_rate",
	"seconds":          "demo.seconds",
	"tones":            "demo.tones",
	"amplitude":        "demo.amplitude",
	"noise":            "demo.noise",
	"seed":             "demo.seed",
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "chanscan",
		Short: "Online spectral channel detector",
		Long: `chanscan streams complex baseband samples through an exponentially
averaged FFT and reports the frequency bands whose energy stands above an
adaptive noise threshold.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default searches ./chanscan.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml)")

	root.AddCommand(a.newScanCmd(), a.newDemoCmd(), newVersionCmd())
	return root
}

// addDetectorFlags registers the detector settings shared by scan and demo.
func addDetectorFlags(fs *pflag.FlagSet) {
	fs.String("mode", "discovery", "detector mode (discovery, cyclostationary, order-estimation)")
	fs.Int("window-size", 512, "FFT size in samples (number of bins)")
	fs.Float64("alpha", 0.25, "spectral damping factor in (0, 1]")
	fs.Float64("center-frequency", 0, "local oscillator frequency in Hz (tuned modes)")
	fs.Int("decimation", 1, "decimation factor applied before the FFT")
}

func (a *app) initialize(cmd *cobra.Command) error {
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}
	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// bindFlags binds each known flag of cmd to its configuration key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Name, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("binding flags: %s", strings.Join(errs, "; "))
	}
	return nil
}
