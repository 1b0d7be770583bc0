// Package tuning loads the rope's tunables — CHUNK_SIZE and
// BALANCE_RATIO — plus the CLI's display defaults from an optional YAML
// file, falling back to the documented defaults when absent.
package tuning

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tbttfox/sumrope/internal/sumrope"
)

// Config holds every tunable exposed at construction time. These are
// compile-time constants in the original design; this package only
// lets a deployment override the defaults without a rebuild.
type Config struct {
	ChunkSize    int     `yaml:"chunk_size"`
	BalanceRatio float64 `yaml:"balance_ratio"`

	// Normalize, when true, NFC-normalizes line text before it is fed
	// to rle.Construct. See internal/adapter.
	Normalize bool `yaml:"normalize"`

	// JSON, when true, makes the CLI emit machine-readable output.
	JSON bool `yaml:"json"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		ChunkSize:    sumrope.DefaultChunkSize,
		BalanceRatio: sumrope.DefaultBalanceRatio,
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// A missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options converts cfg into sumrope construction options.
func (c Config) Options() []sumrope.Option {
	return []sumrope.Option{
		sumrope.WithChunkSize(c.ChunkSize),
		sumrope.WithBalanceRatio(c.BalanceRatio),
	}
}
