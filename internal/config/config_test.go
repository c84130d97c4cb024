package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func validConfig() *Config {
	cfg := New()
	cfg.Inputs.Paths = []string{"genomes/"}
	return cfg
}

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Metrics.DecimalPlaces != 6 {
		t.Errorf("DecimalPlaces = %d, want 6", cfg.Metrics.DecimalPlaces)
	}
	if cfg.Output.ConsoleFormat != "tsv" {
		t.Errorf("ConsoleFormat = %q, want tsv", cfg.Output.ConsoleFormat)
	}
	if cfg.Runtime.Threads != 1 {
		t.Errorf("Threads = %d, want 1", cfg.Runtime.Threads)
	}
	if cfg.Runtime.Timeout != 30*time.Minute {
		t.Errorf("Timeout = %v, want 30m", cfg.Runtime.Timeout)
	}
}

func TestValidateSplitsCommaLists(t *testing.T) {
	cfg := New()
	cfg.Inputs.Paths = []string{"a.faa, b.faa", "c/"}
	cfg.Inputs.Include = []string{"G*,H?", " "}
	cfg.Inputs.Exclude = []string{"bad*"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if diff := cmp.Diff([]string{"a.faa", "b.faa", "c/"}, cfg.Inputs.Paths); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"G*", "H?"}, cfg.Inputs.Include); diff != "" {
		t.Errorf("Include mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRequiresInput(t *testing.T) {
	err := New().Validate()
	if err == nil || !strings.Contains(err.Error(), "missing input") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestValidateRejectsBadPattern(t *testing.T) {
	cfg := validConfig()
	cfg.Inputs.Include = []string{"[unclosed"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestValidateOutFormatInference(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"results.tsv", "tsv"},
		{"results.tab", "tsv"},
		{"results.txt", "tsv"},
		{"results.json", "json"},
		{"results.ndjson", "ndjson"},
		{"results.jsonl", "ndjson"},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			cfg := validConfig()
			cfg.Output.Out = tt.out
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if cfg.Output.OutFormat != tt.want {
				t.Errorf("OutFormat = %q, want %q", cfg.Output.OutFormat, tt.want)
			}
		})
	}
}

func TestValidateOutFormatUnknownExtension(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Out = "results.xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected inference error for .xml")
	}

	cfg = validConfig()
	cfg.Output.Out = "results"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected inference error for missing extension")
	}

	// An explicit format sidesteps inference entirely.
	cfg = validConfig()
	cfg.Output.Out = "results.xml"
	cfg.Output.OutFormat = "TSV"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Output.OutFormat != "tsv" {
		t.Errorf("OutFormat = %q, want tsv", cfg.Output.OutFormat)
	}
}

func TestValidateConsoleFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Output.ConsoleFormat = " NDJSON "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Output.ConsoleFormat != "ndjson" {
		t.Errorf("ConsoleFormat = %q, want ndjson", cfg.Output.ConsoleFormat)
	}

	cfg = validConfig()
	cfg.Output.ConsoleFormat = "csv"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported console format")
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative max-genomes", func(c *Config) { c.Inputs.MaxGenomes = -1 }},
		{"negative min-length", func(c *Config) { c.Metrics.MinLength = -1 }},
		{"negative max-length", func(c *Config) { c.Metrics.MaxLength = -1 }},
		{"min above max", func(c *Config) { c.Metrics.MinLength = 10; c.Metrics.MaxLength = 5 }},
		{"decimal places too large", func(c *Config) { c.Metrics.DecimalPlaces = 18 }},
		{"zero threads", func(c *Config) { c.Runtime.Threads = 0 }},
		{"zero timeout", func(c *Config) { c.Runtime.Timeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
