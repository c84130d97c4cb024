package flags

// Package flags defines canonical CLI flag names shared across the CLI
// and engine. Keeping these as constants avoids drift between Cobra
// flag wiring and other code paths that need to reference flags (e.g.
// validation error messages).
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Inputs
	FlagInput      = "input"
	FlagInclude    = "include"
	FlagExclude    = "exclude"
	FlagMaxGenomes = "max-genomes"
	FlagDryRun     = "dry-run"

	// Metrics
	FlagAAComposition = "aa-composition"
	FlagMinLength     = "min-length"
	FlagMaxLength     = "max-length"
	FlagDecimalPlaces = "decimal-places"
	FlagStats         = "stats"

	// Output
	FlagOut           = "out"
	FlagOutFormat     = "out-format"
	FlagConsoleFormat = "console-format"
	FlagNoHeader      = "no-header"
	FlagNoConsole     = "no-console"

	// Runtime
	FlagConfig  = "config"
	FlagThreads = "threads"
	FlagTimeout = "timeout"
)
