package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"astur/internal/config"
	"astur/internal/engine"
	"astur/internal/flags"

	"github.com/spf13/cobra"
)

var cfg = config.New()
var cfgFile string

var computeCmd = &cobra.Command{
	Use:   "compute [input ...]",
	Short: "Compute ARSC metrics for one or more proteomes",
	Long: `Compute N-ARSC, C-ARSC, S-ARSC and AvgResMW for protein sequence sets.

Each input is a .faa/.faa.gz file or a directory of them; every file is
one genome. Genomes are processed concurrently (--threads) and one
genome's failure never aborts the rest of the batch.

Unrecognized residue symbols (ambiguity codes, stops, gaps) are counted
but excluded from metric denominators. A genome with no recognized
residues at all is reported as a failure, not as zero metrics.

Output:
	Console output is tab-separated by default; --console-format ndjson
	streams one lifecycle event per line instead. --out writes results to
	a file (tsv, json or ndjson, inferred from the extension). Failed
	genomes are omitted from tsv/json rows and reported on stderr.

Exit codes:
	0 = all genomes computed
	2 = partial failure (some genomes failed)
	3 = fatal error (run did not complete)

Examples:
  # Single compressed proteome to stdout
  astur compute Ecoli.faa.gz

  # Directory of proteomes, four workers, TSV file plus summary stats
  astur compute --input protein_faa/ --out ARSC.tsv --threads 4 --stats

  # Machine-readable event stream
  astur compute --input protein_faa/ --no-console --out run.ndjson
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Inputs.Paths = append(cfg.Inputs.Paths, args...)
		cfg.Runtime.Verbose = rootVerbose

		if cfgFile != "" {
			if err := applyConfigFile(cmd, cfg, cfgFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(3)
			}
		}

		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Runtime.Timeout)
		defer cancelTimeout()

		eng := engine.NewEngine()
		os.Exit(eng.Run(ctx, cfg))
	},
}

// applyConfigFile merges a YAML config file into cfg. Flags the user
// set explicitly on the command line win over file values; everything
// else the file mentions overrides the built-in defaults.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config, path string) error {
	fileCfg := config.New()
	if err := config.LoadFile(path, fileCfg); err != nil {
		return err
	}

	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	cfg.Inputs.Paths = append(cfg.Inputs.Paths, fileCfg.Inputs.Paths...)
	cfg.Inputs.Include = append(cfg.Inputs.Include, fileCfg.Inputs.Include...)
	cfg.Inputs.Exclude = append(cfg.Inputs.Exclude, fileCfg.Inputs.Exclude...)
	if !changed(flags.FlagMaxGenomes) {
		cfg.Inputs.MaxGenomes = fileCfg.Inputs.MaxGenomes
	}

	if !changed(flags.FlagAAComposition) {
		cfg.Metrics.AAComposition = fileCfg.Metrics.AAComposition
	}
	if !changed(flags.FlagMinLength) {
		cfg.Metrics.MinLength = fileCfg.Metrics.MinLength
	}
	if !changed(flags.FlagMaxLength) {
		cfg.Metrics.MaxLength = fileCfg.Metrics.MaxLength
	}
	if !changed(flags.FlagDecimalPlaces) {
		cfg.Metrics.DecimalPlaces = fileCfg.Metrics.DecimalPlaces
	}
	if !changed(flags.FlagStats) {
		cfg.Metrics.Stats = fileCfg.Metrics.Stats
	}

	if !changed(flags.FlagOut) {
		cfg.Output.Out = fileCfg.Output.Out
	}
	if !changed(flags.FlagOutFormat) {
		cfg.Output.OutFormat = fileCfg.Output.OutFormat
	}
	if !changed(flags.FlagConsoleFormat) {
		cfg.Output.ConsoleFormat = fileCfg.Output.ConsoleFormat
	}
	if !changed(flags.FlagNoHeader) {
		cfg.Output.NoHeader = fileCfg.Output.NoHeader
	}
	if !changed(flags.FlagNoConsole) {
		cfg.Output.NoConsole = fileCfg.Output.NoConsole
	}

	if !changed(flags.FlagThreads) {
		cfg.Runtime.Threads = fileCfg.Runtime.Threads
	}
	if !changed(flags.FlagTimeout) {
		cfg.Runtime.Timeout = fileCfg.Runtime.Timeout
	}

	return nil
}

func init() {
	rootCmd.AddCommand(computeCmd)

	// Inputs
	computeCmd.Flags().StringSliceVarP(&cfg.Inputs.Paths, flags.FlagInput, "i", nil, "A .faa/.faa.gz file or directory (repeatable; comma-separated accepted)")
	computeCmd.Flags().StringSliceVar(&cfg.Inputs.Include, flags.FlagInclude, nil, "Include genome ID pattern(s), Go path.Match style (repeatable)")
	computeCmd.Flags().StringSliceVar(&cfg.Inputs.Exclude, flags.FlagExclude, nil, "Exclude genome ID pattern(s), same matching rules as --include")
	computeCmd.Flags().IntVar(&cfg.Inputs.MaxGenomes, flags.FlagMaxGenomes, 0, "Maximum number of genomes to process (0 = unlimited)")
	computeCmd.Flags().BoolVar(&cfg.Inputs.DryRun, flags.FlagDryRun, false, "Resolve genomes and print the set without computing")

	// Metrics
	computeCmd.Flags().BoolVarP(&cfg.Metrics.AAComposition, flags.FlagAAComposition, "a", false, "Include amino acid composition ratios and total length in output")
	computeCmd.Flags().Int64Var(&cfg.Metrics.MinLength, flags.FlagMinLength, 0, "Minimum total residue length (filter results; 0 = no bound)")
	computeCmd.Flags().Int64Var(&cfg.Metrics.MaxLength, flags.FlagMaxLength, 0, "Maximum total residue length (filter results; 0 = no bound)")
	computeCmd.Flags().IntVarP(&cfg.Metrics.DecimalPlaces, flags.FlagDecimalPlaces, "d", 6, "Number of decimal places for floating point values")
	computeCmd.Flags().BoolVarP(&cfg.Metrics.Stats, flags.FlagStats, "s", false, "Print a mean/stdev/min/max summary per metric to stderr")

	// Output
	computeCmd.Flags().StringVarP(&cfg.Output.Out, flags.FlagOut, "o", "", "Write results to this path (tsv, json or ndjson)")
	computeCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Output format for --out: tsv|json|ndjson (default: inferred from file extension)")
	computeCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "tsv", "Console output format: tsv|ndjson")
	computeCmd.Flags().BoolVar(&cfg.Output.NoHeader, flags.FlagNoHeader, false, "Suppress the header line in console tsv output")
	computeCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output and progress lines (use with --out)")

	// Runtime
	computeCmd.Flags().StringVar(&cfgFile, flags.FlagConfig, "", "YAML config file (flags override file values)")
	computeCmd.Flags().IntVarP(&cfg.Runtime.Threads, flags.FlagThreads, "t", 1, "Number of genomes processed concurrently")
	computeCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 30m)")
}
