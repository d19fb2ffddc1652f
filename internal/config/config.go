// Package config loads chanscan settings from flags, environment variables
// and YAML files through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-chanscan/dsp/chandetect"
)

// EnvPrefix prefixes environment variables, e.g. CHANSCAN_DETECTOR_ALPHA.
const EnvPrefix = "CHANSCAN"

// Name is the config file base name searched for when none is given.
const Name = "chanscan"

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	Output    string `mapstructure:"output" yaml:"output"`
	Database  string `mapstructure:"db" yaml:"db"`

	Detector DetectorConfig `mapstructure:"detector" yaml:"detector"`
	Demo     DemoConfig     `mapstructure:"demo" yaml:"demo"`
}

// DetectorConfig mirrors chandetect.Config with string modes. A zero
// SampleRate means "use the source's rate".
type DetectorConfig struct {
	Mode            string  `mapstructure:"mode" yaml:"mode"`
	SampleRate      int     `mapstructure:"sample_rate" yaml:"sample_rate"`
	WindowSize      int     `mapstructure:"window_size" yaml:"window_size"`
	Alpha           float64 `mapstructure:"alpha" yaml:"alpha"`
	CenterFrequency float64 `mapstructure:"center_frequency" yaml:"center_frequency"`
	Decimation      int     `mapstructure:"decimation" yaml:"decimation"`
	MaxOrder        int     `mapstructure:"max_order" yaml:"max_order"`
}

// DemoConfig describes the synthetic signal used by the demo command.
type DemoConfig struct {
	SampleRate int       `mapstructure:"sample_rate" yaml:"sample_rate"`
	Seconds    float64   `mapstructure:"seconds" yaml:"seconds"`
	Tones      []float64 `mapstructure:"tones" yaml:"tones"`
	Amplitude  float64   `mapstructure:"amplitude" yaml:"amplitude"`
	Noise      float64   `mapstructure:"noise" yaml:"noise"`
	Seed       int64     `mapstructure:"seed" yaml:"seed"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	Defaults(v)
	return v
}

// Defaults registers the default value of every key.
func Defaults(v *viper.Viper) {
	d := chandetect.DefaultConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("output", "table")
	v.SetDefault("db", "")

	v.SetDefault("detector.mode", d.Mode.String())
	v.SetDefault("detector.sample_rate", 0)
	v.SetDefault("detector.window_size", d.WindowSize)
	v.SetDefault("detector.alpha", d.Alpha)
	v.SetDefault("detector.center_frequency", d.CenterFrequency)
	v.SetDefault("detector.decimation", d.Decimation)
	v.SetDefault("detector.max_order", d.MaxOrder)

	v.SetDefault("demo.sample_rate", d.SampleRate)
	v.SetDefault("demo.seconds", 2.0)
	v.SetDefault("demo.tones", []float64{1000, 2500})
	v.SetDefault("demo.amplitude", 1.0)
	v.SetDefault("demo.noise", 0.05)
	v.SetDefault("demo.seed", 1)
}

// ReadFile reads the config file at path, or searches the working
// directory, ./configs and the user config directory for chanscan.yaml when
// path is empty. A missing searched file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, Name))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that chandetect does not check itself.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
	if _, err := chandetect.ParseMode(c.Detector.Mode); err != nil {
		return err
	}
	if c.Detector.SampleRate < 0 {
		return fmt.Errorf("detector sample rate cannot be negative")
	}
	if c.Demo.Seconds <= 0 {
		return fmt.Errorf("demo duration must be positive")
	}
	if c.Demo.Noise < 0 {
		return fmt.Errorf("demo noise cannot be negative")
	}
	return nil
}

// Detector converts the detector section into a chandetect.Config. The
// result is validated by chandetect.New, not here.
func (c Config) Detector() (chandetect.Config, error) {
	mode, err := chandetect.ParseMode(c.Detector.Mode)
	if err != nil {
		return chandetect.Config{}, err
	}
	return chandetect.Config{
		Mode:            mode,
		SampleRate:      c.Detector.SampleRate,
		WindowSize:      c.Detector.WindowSize,
		Alpha:           c.Detector.Alpha,
		CenterFrequency: c.Detector.CenterFrequency,
		Decimation:      c.Detector.Decimation,
		MaxOrder:        c.Detector.MaxOrder,
	}, nil
}

// YAML renders the configuration as YAML.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}
