package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "astur",
	Short: "Compute elemental composition metrics for predicted proteomes",
	Long: `ASTUR computes the Mende et al. (2017) stoichiometric metrics for
protein sequence sets: N-ARSC, C-ARSC, S-ARSC and average residue
molecular weight.

Inputs are .faa or .faa.gz files (or directories of them); each file is
treated as one genome and processed independently, in parallel.

Examples:
	# Show available commands and global flags
	astur --help

	# Compute metrics for a directory of proteomes
	astur compute --input protein_faa/ --out ARSC.tsv --threads 4

	# Show the residue reference table
	astur table

	# Print build info
	astur version

Output:
	By default, compute writes tab-separated rows to stdout. Structured
	output is available via --out and --console-format (see
	"astur compute --help").`,
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "Enable verbose diagnostics on stderr")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
