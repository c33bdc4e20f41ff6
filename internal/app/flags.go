package app

import (
	"flag"
	"strings"
)

// KVList collects repeatable key=value flag values.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one key=value entry.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Pairs splits the collected entries into a key/value map. Entries without
// an equals sign are skipped.
func (l KVList) Pairs() map[string]string {
	if len(l) == 0 {
		return nil
	}
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	HUDWidth  int
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "smoothlife", Scale: 3, TPS: 60, Seed: 42, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 disables it)")
	fs.Var(&c.Overrides, "set", "simulation parameter override in key=value form (repeatable)")
}

// SimOptions returns the overrides in the option-map form sim factories accept.
func (c *Config) SimOptions() map[string]string { return c.Overrides.Pairs() }
