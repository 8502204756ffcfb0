package bezmesh

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pelletier/go-toml/v2"
)

// Config is a serializable form of the refinement options, for programs that
// keep their tessellation settings in a TOML file:
//
//	budget = 20000
//	split = 0.5
//	max_passes = 6
//	workers = 4
//
// Zero values select the defaults. MaxPasses is a pointer so that
// max_passes = 0, which disables refinement, can be told apart from a
// missing key.
type Config struct {
	Budget    int     `toml:"budget"`
	Split     float64 `toml:"split"`
	MaxPasses *int    `toml:"max_passes"`
	Workers   int     `toml:"workers"`
}

// ParseConfig decodes a TOML document into a Config and validates it.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing tessellation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (cfg Config) Validate() error {
	switch {
	case cfg.Budget < 0:
		return fmt.Errorf("invalid budget %d: must not be negative", cfg.Budget)
	case cfg.MaxPasses != nil && *cfg.MaxPasses < 0:
		return fmt.Errorf("invalid max_passes %d: must not be negative", *cfg.MaxPasses)
	case cfg.Workers < 0:
		return fmt.Errorf("invalid workers %d: must not be negative", cfg.Workers)
	case math.IsNaN(cfg.Split) || math.IsInf(cfg.Split, 0):
		return fmt.Errorf("invalid split %g: must be finite", cfg.Split)
	}
	return nil
}

// Options converts the configuration to refinement options.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.Budget != 0 {
		opts = append(opts, WithBudget(cfg.Budget))
	}
	if cfg.Split != 0 {
		opts = append(opts, WithSplit(cfg.Split))
	}
	if cfg.MaxPasses != nil {
		opts = append(opts, WithMaxPasses(*cfg.MaxPasses))
	}
	if cfg.Workers != 0 {
		opts = append(opts, WithWorkers(cfg.Workers))
	}
	return opts
}
