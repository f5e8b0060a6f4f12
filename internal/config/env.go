// Package config loads run settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"varheat/internal/heatmap"
)

// Settings are the environment-level defaults for a run. Command-line flags
// override DataFile, OutFile and TopN; Style is only reachable through the
// environment.
type Settings struct {
	DataFile string `env:"VARHEAT_DATA_FILE" envDefault:"gasch2000.txt"`
	OutFile  string `env:"VARHEAT_OUT_FILE" envDefault:"heatmap.png"`
	TopN     int    `env:"VARHEAT_TOP_N" envDefault:"10"`

	Style heatmap.Style `envPrefix:"VARHEAT_"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads VARHEAT_* overrides on top of Defaults. On error the returned
// Settings still carry every value that parsed; the invalid ones keep their
// defaults.
func Load() (Settings, error) {
	s := Defaults()
	err := ParseEnv(&s)
	return s, err
}

// Defaults returns Settings as if no VARHEAT_* variable were set.
func Defaults() Settings {
	return Settings{DataFile: "gasch2000.txt", OutFile: "heatmap.png", TopN: 10, Style: heatmap.DefaultStyle()}
}
