package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	LogLevel string `koanf:"log_level"`

	Output   OutputConfig   `koanf:"output"`
	Generate GenerateConfig `koanf:"generate"`
}

type OutputConfig struct {
	// Format selects how CLI results are rendered: "text" or "json".
	Format string `koanf:"format"`
}

type GenerateConfig struct {
	// Formatted applies canonical punctuation to generated documents.
	Formatted bool `koanf:"formatted"`
	// Mercosul selects the plate format generators produce by default.
	Mercosul bool `koanf:"mercosul"`
	// AreaCode, when set, pins generated phone numbers to one DDD.
	AreaCode string `koanf:"area_code"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		LogLevel: "warn",
		Output: OutputConfig{
			Format: "text",
		},
		Generate: GenerateConfig{
			Formatted: true,
			Mercosul:  true,
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Config file is optional.
	if err := k.Load(file.Provider("configs/docbr.yaml"), yaml.Parser()); err != nil {
		// Missing file falls back to defaults and environment.
	}

	// Override with environment variables. Double underscores delimit
	// nesting so single underscores survive in key names:
	// DOCBR_OUTPUT__FORMAT maps to output.format.
	if err := k.Load(env.Provider("DOCBR_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "DOCBR_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
