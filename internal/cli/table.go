package cli

import (
	"fmt"
	"io"

	"astur/internal/residue"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tableQuiet bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the amino-acid reference table",
	Long: `Show the residue reference table used for metric computation.

For each canonical amino acid, the table lists the carbon, nitrogen and
sulfur atom counts and the average molecular weight, as used by
Mende et al. (2017).

Examples:
  astur table
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTable(cmd.OutOrStdout())
		return nil
	},
}

func printTable(w io.Writer) {
	bold := color.New(color.Bold)

	if tableQuiet {
		for _, code := range residue.Codes() {
			fmt.Fprintf(w, "%c\n", code)
		}
		return
	}

	bold.Fprintf(w, "%-6s %8s %10s %8s %10s\n", "Code", "Carbon", "Nitrogen", "Sulfur", "Weight")
	for _, code := range residue.Codes() {
		info, _ := residue.Lookup(code)
		fmt.Fprintf(w, "%-6c %8d %10d %8d %10.2f\n", info.Code, info.Carbon, info.Nitrogen, info.Sulfur, info.Weight)
	}
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolVarP(&tableQuiet, "quiet", "q", false, "Print only the residue codes")
}
