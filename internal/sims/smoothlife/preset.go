package smoothlife

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML preset. Fields absent from the file keep their
// defaults, so a preset can pin just the knobs it cares about.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return Config{}, fmt.Errorf("preset %s: dimensions %dx%d out of range", path, cfg.Width, cfg.Height)
	}
	if cfg.Params.KernelRadius < 1 {
		return Config{}, fmt.Errorf("preset %s: kernel radius %d out of range", path, cfg.Params.KernelRadius)
	}
	return cfg, nil
}

// SaveConfig writes the config as a YAML preset, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
