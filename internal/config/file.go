package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileDTO mirrors the YAML config file shape. Pointer fields
// distinguish "not set" from zero values so the file only overrides
// what it mentions.
type fileDTO struct {
	Inputs []string `yaml:"inputs"`

	Include    []string `yaml:"include"`
	Exclude    []string `yaml:"exclude"`
	MaxGenomes *int     `yaml:"max_genomes"`

	AAComposition *bool  `yaml:"aa_composition"`
	MinLength     *int64 `yaml:"min_length"`
	MaxLength     *int64 `yaml:"max_length"`
	DecimalPlaces *int   `yaml:"decimal_places"`
	Stats         *bool  `yaml:"stats"`

	Out           *string `yaml:"out"`
	OutFormat     *string `yaml:"out_format"`
	ConsoleFormat *string `yaml:"console_format"`
	NoHeader      *bool   `yaml:"no_header"`
	NoConsole     *bool   `yaml:"no_console"`

	Threads *int    `yaml:"threads"`
	Timeout *string `yaml:"timeout"`
}

// LoadFile applies a YAML config file onto cfg. CLI flags are applied
// after the file by the caller, so flags win over file values.
func LoadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var dto fileDTO
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(dto.Inputs) > 0 {
		cfg.Inputs.Paths = append(cfg.Inputs.Paths, dto.Inputs...)
	}
	if len(dto.Include) > 0 {
		cfg.Inputs.Include = append(cfg.Inputs.Include, dto.Include...)
	}
	if len(dto.Exclude) > 0 {
		cfg.Inputs.Exclude = append(cfg.Inputs.Exclude, dto.Exclude...)
	}
	if dto.MaxGenomes != nil {
		cfg.Inputs.MaxGenomes = *dto.MaxGenomes
	}

	if dto.AAComposition != nil {
		cfg.Metrics.AAComposition = *dto.AAComposition
	}
	if dto.MinLength != nil {
		cfg.Metrics.MinLength = *dto.MinLength
	}
	if dto.MaxLength != nil {
		cfg.Metrics.MaxLength = *dto.MaxLength
	}
	if dto.DecimalPlaces != nil {
		cfg.Metrics.DecimalPlaces = *dto.DecimalPlaces
	}
	if dto.Stats != nil {
		cfg.Metrics.Stats = *dto.Stats
	}

	if dto.Out != nil {
		cfg.Output.Out = *dto.Out
	}
	if dto.OutFormat != nil {
		cfg.Output.OutFormat = *dto.OutFormat
	}
	if dto.ConsoleFormat != nil {
		cfg.Output.ConsoleFormat = *dto.ConsoleFormat
	}
	if dto.NoHeader != nil {
		cfg.Output.NoHeader = *dto.NoHeader
	}
	if dto.NoConsole != nil {
		cfg.Output.NoConsole = *dto.NoConsole
	}

	if dto.Threads != nil {
		cfg.Runtime.Threads = *dto.Threads
	}
	if dto.Timeout != nil {
		d, err := time.ParseDuration(*dto.Timeout)
		if err != nil {
			return fmt.Errorf("parse config file %s: timeout: %w", path, err)
		}
		cfg.Runtime.Timeout = d
	}

	return nil
}
