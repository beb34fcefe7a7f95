package tween

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	TickMS      int    `yaml:"tick_ms"`      // 16 (by default), frame interval for FrameClock hosts
	EventBuffer int    `yaml:"event_buffer"` // 256 (by default), status channel capacity
	Easing      string `yaml:"easing"`       // "ease-in-out" (by default)
	CSVLog      string `yaml:"csv_log"`      // empty = no CSV logging
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		TickMS:      16,
		EventBuffer: 256,
		Easing:      "ease-in-out",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.TickMS <= 0 {
		cfg.TickMS = 16
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 256
	}
	if _, err := ParseEasing(cfg.Easing); err != nil {
		cfg.Easing = "ease-in-out"
	}

	return cfg
}
