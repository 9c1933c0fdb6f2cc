// Package config loads the optional YAML defaults file consulted by
// cmd/retrolm before flag parsing. The binary's behavior is fully
// determined by its CLI flags; this file only supplies the defaults
// those flags fall back to, so a deployment can pin a weights directory
// and sampling policy without repeating them on every invocation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/retrolm/retrolm/pkg/core/errs"
)

// Config mirrors cmd/retrolm's flag set. Load starts from Default(), so
// any field a file leaves out keeps the binary's own flag default and a
// missing or partially-specified file degrades gracefully.
type Config struct {
	WeightsDir    string  `yaml:"weights_dir"`
	Temperature   float32 `yaml:"temperature"`
	Seed          int64   `yaml:"seed"`
	MaxTokens     int     `yaml:"max_tokens"`
	WallClockSeed bool    `yaml:"wall_clock_seed"`
}

// Default returns the built-in defaults, identical to cmd/retrolm's flag
// defaults absent any config file.
func Default() Config {
	return Config{
		WeightsDir:    "./weights",
		Temperature:   1.0,
		Seed:          1,
		MaxTokens:     256,
		WallClockSeed: true,
	}
}

// Load reads a YAML config file at path and overlays it onto Default().
// A missing file is not an error: it simply yields the defaults, since
// the config file is an optional convenience, not a required input. A
// present-but-malformed file fails with ValueError and is fatal at load.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errs.Wrap(errs.FileError, "config.Load: reading "+path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ValueError, "config.Load: parsing "+path, err)
	}
	return cfg, nil
}
