package arsc

import (
	"errors"
	"fmt"

	"astur/internal/residue"
)

// ErrDegenerateGenome marks a genome whose metrics are undefined:
// zero sequences, or sequences containing no recognized residues.
var ErrDegenerateGenome = errors.New("no recognized residues in genome")

// Accumulator folds per-sequence compositions into per-genome totals.
// Each genome job owns exactly one Accumulator; it is never shared.
type Accumulator struct {
	carbon   int64
	nitrogen int64
	sulfur   int64
	weight   float64
	residues int64
	unknown  int64

	counts    map[byte]int64
	sequences int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{counts: make(map[byte]int64)}
}

// Fold adds one sequence's composition to the running totals. Folding
// is associative and commutative over sequences, so fold order never
// affects the finalized metrics. Unknown residues are tracked but
// contribute to neither atom totals nor the metric denominator.
func (a *Accumulator) Fold(c Composition) {
	for code, n := range c.Counts {
		info, ok := residue.Lookup(code)
		if !ok {
			a.unknown += int64(n)
			continue
		}
		a.carbon += int64(n) * int64(info.Carbon)
		a.nitrogen += int64(n) * int64(info.Nitrogen)
		a.sulfur += int64(n) * int64(info.Sulfur)
		a.weight += float64(n) * info.Weight
		a.residues += int64(n)
		a.counts[info.Code] += int64(n)
	}
	a.unknown += int64(c.Unknown)
	a.sequences++
}

// Sequences reports how many sequences have been folded.
func (a *Accumulator) Sequences() int { return a.sequences }

// TotalLength reports all residues read, recognized or not.
func (a *Accumulator) TotalLength() int64 { return a.residues + a.unknown }

// Metrics is the finalized per-genome record handed to output sinks.
type Metrics struct {
	Genome   string  `json:"genome"`
	NARSC    float64 `json:"n_arsc"`
	CARSC    float64 `json:"c_arsc"`
	SARSC    float64 `json:"s_arsc"`
	AvgResMW float64 `json:"avg_res_mw"`

	// Composition holds per-amino-acid frequency ratios over recognized
	// residues. Populated only when amino-acid composition output is
	// requested.
	Composition map[string]float64 `json:"aa_composition,omitempty"`

	// TotalLength counts every residue read, including unrecognized
	// symbols.
	TotalLength int64 `json:"total_aa_length"`
	Sequences   int   `json:"sequences"`
	Unknown     int64 `json:"unknown_residues,omitempty"`
}

// Finalize derives the four metrics. It fails with ErrDegenerateGenome
// when no recognized residues were folded; callers must report that as
// a per-genome failure rather than emitting zero or NaN values.
func (a *Accumulator) Finalize(genome string, withComposition bool) (Metrics, error) {
	if a.residues == 0 {
		return Metrics{}, fmt.Errorf("genome %s: %w", genome, ErrDegenerateGenome)
	}
	m := Metrics{
		Genome:      genome,
		NARSC:       float64(a.nitrogen) / float64(a.residues),
		CARSC:       float64(a.carbon) / float64(a.residues),
		SARSC:       float64(a.sulfur) / float64(a.residues),
		AvgResMW:    a.weight / float64(a.residues),
		TotalLength: a.TotalLength(),
		Sequences:   a.sequences,
		Unknown:     a.unknown,
	}
	if withComposition {
		m.Composition = make(map[string]float64, len(a.counts))
		for _, code := range residue.Codes() {
			m.Composition[string(code)] = float64(a.counts[code]) / float64(a.residues)
		}
	}
	return m, nil
}
