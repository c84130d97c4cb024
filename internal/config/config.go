package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect
	// run behavior, keep the CLI flags in internal/cli/compute.go and the
	// YAML mapping in internal/config/file.go in sync.
	Inputs  Inputs
	Metrics Metrics
	Output  Output
	Runtime Runtime
}

type Inputs struct {
	// Paths lists .faa/.faa.gz files or directories to scan (see --input).
	// Directories are searched non-recursively. "-" reads a single
	// genome from stdin.
	Paths []string

	// Include filters genomes by ID using Go path.Match style (see --include).
	Include []string

	// Exclude filters genomes by ID using Go path.Match style (see --exclude).
	Exclude []string

	// MaxGenomes limits how many genomes to process (see --max-genomes).
	// 0 means unlimited.
	MaxGenomes int

	// DryRun resolves the genome set and prints it without computing
	// metrics (see --dry-run).
	DryRun bool
}

type Metrics struct {
	// AAComposition adds per-amino-acid frequency ratio columns and the
	// total residue length to the output (see --aa-composition).
	AAComposition bool

	// MinLength drops genomes shorter than this many residues from the
	// output (see --min-length). 0 disables the bound.
	MinLength int64

	// MaxLength drops genomes longer than this many residues from the
	// output (see --max-length). 0 disables the bound.
	MaxLength int64

	// DecimalPlaces controls presentation rounding in tsv output
	// (see --decimal-places).
	DecimalPlaces int

	// Stats prints a mean/stdev/min/max summary per metric to stderr
	// after the run (see --stats).
	Stats bool
}

type Output struct {
	// Out writes results to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: tsv, json, ndjson. If empty, it is inferred from
	// the --out file extension.
	OutFormat string

	// ConsoleFormat controls the stdout sink format (see --console-format).
	// Allowed values: tsv, ndjson.
	ConsoleFormat string

	// NoHeader suppresses the header line in tsv output (see --no-header).
	NoHeader bool

	// NoConsole suppresses the stdout sink and progress lines
	// (see --no-console). Use with --out for machine output.
	NoConsole bool
}

type Runtime struct {
	// Threads controls how many genomes are processed concurrently
	// (see --threads). Must be >= 1.
	Threads int

	// Timeout is the global timeout for the run (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// Verbose enables more detailed diagnostics on stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		Metrics: Metrics{
			DecimalPlaces: 6,
		},
		Output: Output{
			ConsoleFormat: "tsv",
		},
		Runtime: Runtime{
			Threads: 1,
			Timeout: 30 * time.Minute,
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Inputs.Paths = splitCommaList(c.Inputs.Paths)
	c.Inputs.Include = splitCommaList(c.Inputs.Include)
	c.Inputs.Exclude = splitCommaList(c.Inputs.Exclude)

	if len(c.Inputs.Paths) == 0 {
		return errors.New("missing input: provide a .faa/.faa.gz file or directory via --input")
	}

	for _, pat := range append(append([]string(nil), c.Inputs.Include...), c.Inputs.Exclude...) {
		if _, err := filepath.Match(pat, "probe"); err != nil {
			return fmt.Errorf("invalid filter pattern %q: %w", pat, err)
		}
	}

	if c.Inputs.MaxGenomes < 0 {
		return errors.New("--max-genomes must be >= 0")
	}

	// Metrics validation
	if c.Metrics.MinLength < 0 {
		return errors.New("--min-length must be >= 0")
	}
	if c.Metrics.MaxLength < 0 {
		return errors.New("--max-length must be >= 0")
	}
	if c.Metrics.MinLength > 0 && c.Metrics.MaxLength > 0 && c.Metrics.MinLength > c.Metrics.MaxLength {
		return errors.New("--min-length must not exceed --max-length")
	}
	if c.Metrics.DecimalPlaces < 0 || c.Metrics.DecimalPlaces > 17 {
		return errors.New("--decimal-places must be between 0 and 17")
	}

	// Output validation
	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		c.Output.ConsoleFormat = "tsv"
	}
	if c.Output.ConsoleFormat != "tsv" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: tsv, ndjson)", c.Output.ConsoleFormat)
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".tsv", ".tab", ".txt":
				c.Output.OutFormat = "tsv"
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "tsv" && c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	// Runtime validation
	if c.Runtime.Threads <= 0 {
		return errors.New("--threads must be >= 1")
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
