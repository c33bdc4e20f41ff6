package smoothlife

import "strconv"

// Params holds the tunable knobs of the continuous life sim.
type Params struct {
	KernelRadius int     `yaml:"kernel_radius"`
	DT           float64 `yaml:"dt"`

	InitRadius  float64 `yaml:"init_radius"`
	InitDensity float64 `yaml:"init_density"`
	SeedBlocks  bool    `yaml:"seed_blocks"`

	ActivityEps float64 `yaml:"activity_eps"`
	Workers     int     `yaml:"workers"`
}

// Config controls the smoothlife simulation dimensions and parameters.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			KernelRadius: 13,
			DT:           0.05,
			InitRadius:   0.3,
			InitDensity:  0.3,
			SeedBlocks:   true,
			ActivityEps:  0.01,
			Workers:      0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge applies flag-style key/value overrides on top of the receiver and
// returns the result. Unknown keys and unparsable values are ignored.
func (c Config) Merge(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["kernel_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.KernelRadius = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DT = parsed
		}
	}
	if v, ok := cfg["init_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.InitRadius = parsed
		}
	}
	if c.Params.InitRadius > 0.5 {
		c.Params.InitRadius = 0.5
	}
	if v, ok := cfg["init_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.InitDensity = parsed
		}
	}
	if v, ok := cfg["seed_blocks"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.SeedBlocks = parsed
		}
	}
	if v, ok := cfg["activity_eps"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ActivityEps = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Workers = parsed
		}
	}
	return c
}
