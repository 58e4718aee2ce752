package config

// #region imports
import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

// #endregion

// #region file-config

// FileConfig is the YAML configuration file layout. Every field is optional;
// absent fields keep the package defaults.
type FileConfig struct {
	DBPath string `yaml:"db_path"`
	Tone   struct {
		Baseline       *float64 `yaml:"baseline"`
		AdaptationRate *float64 `yaml:"adaptation_rate"`
		Sensitivity    *float64 `yaml:"sensitivity"`
		Weights        *struct {
			HeartRate    float64 `yaml:"heart_rate"`
			Inflammation float64 `yaml:"inflammation"`
			Social       float64 `yaml:"social"`
			Recovery     float64 `yaml:"recovery"`
		} `yaml:"weights"`
	} `yaml:"tone"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DBPath string
	Tone   tone.Config
}

// #endregion file-config

// #region defaults

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DBPath: "adaptive_tone.db",
		Tone:   tone.DefaultConfig(),
	}
}

// #endregion defaults

// #region load

// Load reads a YAML file and overlays it onto the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.Tone.Baseline != nil {
		cfg.Tone.Baseline = *fc.Tone.Baseline
	}
	if fc.Tone.AdaptationRate != nil {
		cfg.Tone.AdaptationRate = *fc.Tone.AdaptationRate
	}
	if fc.Tone.Sensitivity != nil {
		cfg.Tone.Sensitivity = *fc.Tone.Sensitivity
	}
	if fc.Tone.Weights != nil {
		cfg.Tone.Weights = tone.Weights{
			HeartRate:    fc.Tone.Weights.HeartRate,
			Inflammation: fc.Tone.Weights.Inflammation,
			Social:       fc.Tone.Weights.Social,
			Recovery:     fc.Tone.Weights.Recovery,
		}
	}

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load

// #region validate

func validate(cfg Config) error {
	if cfg.Tone.AdaptationRate <= 0 || cfg.Tone.AdaptationRate > 1 {
		return fmt.Errorf("tone.adaptation_rate must be in (0, 1], got %f", cfg.Tone.AdaptationRate)
	}
	if cfg.Tone.Baseline < 0 || cfg.Tone.Baseline > 1 {
		return fmt.Errorf("tone.baseline must be in [0, 1], got %f", cfg.Tone.Baseline)
	}
	w := cfg.Tone.Weights
	sum := w.HeartRate + w.Inflammation + w.Social + w.Recovery
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("tone.weights must sum to 1, got %f", sum)
	}
	return nil
}

// #endregion validate
