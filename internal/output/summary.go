package output

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/fatih/color"

	"astur/internal/arsc"
)

// Summary accumulates successful genome metrics and renders the
// mean/stdev/min/max table requested by --stats.
type Summary struct {
	mu    sync.Mutex
	narsc []float64
	carsc []float64
	sarsc []float64
	avgMW []float64
}

func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) Add(m arsc.Metrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.narsc = append(s.narsc, m.NARSC)
	s.carsc = append(s.carsc, m.CARSC)
	s.sarsc = append(s.sarsc, m.SARSC)
	s.avgMW = append(s.avgMW, m.AvgResMW)
}

// Count reports how many genomes have been added.
func (s *Summary) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.narsc)
}

// Render writes the summary table. It is a no-op when no genomes
// succeeded.
func (s *Summary) Render(w io.Writer, decimals int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.narsc) == 0 {
		return
	}

	bold := color.New(color.Bold)

	rule := func(c string) { fmt.Fprintln(w, strings.Repeat(c, 70)) }
	rule("=")
	bold.Fprintf(w, "%34s\n", "SUMMARY STATISTICS")
	rule("=")
	bold.Fprintf(w, "%-12s %-16s %-16s %-16s %-16s\n", "Metric", "Mean", "Stdev", "Min", "Max")
	rule("-")

	rows := []struct {
		name   string
		values []float64
	}{
		{"N_ARSC", s.narsc},
		{"C_ARSC", s.carsc},
		{"S_ARSC", s.sarsc},
		{"AvgResMW", s.avgMW},
	}
	for _, row := range rows {
		mean, stdev, lo, hi := describe(row.values)
		fmt.Fprintf(w, "%-12s %-16.*f %-16.*f %-16.*f %-16.*f\n",
			row.name, decimals, mean, decimals, stdev, decimals, lo, decimals, hi)
	}
	rule("-")
	fmt.Fprintf(w, "%-12s %-16d\n", "Count", len(s.narsc))
	rule("=")
}

// describe returns mean, sample standard deviation, min and max.
// Stdev is 0 for a single observation.
func describe(values []float64) (mean, stdev, lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values {
		mean += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	mean /= float64(len(values))

	if len(values) > 1 {
		var ss float64
		for _, v := range values {
			d := v - mean
			ss += d * d
		}
		stdev = math.Sqrt(ss / float64(len(values)-1))
	}
	return mean, stdev, lo, hi
}
