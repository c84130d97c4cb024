package output

import (
	"strconv"
	"strings"

	"astur/internal/arsc"
	"astur/internal/residue"
)

// tsvHeader renders the column header. The base columns match the
// published ASTUR layout; composition mode appends one column per
// canonical code plus the total residue length.
func tsvHeader(opts Options) string {
	cols := []string{"Genome", "N_ARSC", "C_ARSC", "S_ARSC", "AvgResMW"}
	if opts.AAComposition {
		for _, code := range residue.Codes() {
			cols = append(cols, string(code))
		}
		cols = append(cols, "TotalAALength")
	}
	return strings.Join(cols, "\t")
}

func tsvRow(m arsc.Metrics, opts Options) string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', opts.DecimalPlaces, 64)
	}
	cols := []string{m.Genome, f(m.NARSC), f(m.CARSC), f(m.SARSC), f(m.AvgResMW)}
	if opts.AAComposition {
		for _, code := range residue.Codes() {
			cols = append(cols, f(m.Composition[string(code)]))
		}
		cols = append(cols, strconv.FormatInt(m.TotalLength, 10))
	}
	return strings.Join(cols, "\t")
}
