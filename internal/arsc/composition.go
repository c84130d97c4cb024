// Package arsc implements the Mende et al. (2017) stoichiometric
// proteome metrics: N-ARSC, C-ARSC, S-ARSC and average residue
// molecular weight.
package arsc

import "astur/internal/residue"

// Composition is the per-sequence residue tally produced by Count.
// Length always equals the sum of Counts plus Unknown.
type Composition struct {
	Counts  map[byte]int
	Unknown int
	Length  int
}

// Count tallies residue-type frequencies for one protein sequence.
// Symbols outside the canonical table (ambiguity codes, stops, gaps,
// masking characters) are counted as unknown, never dropped. An empty
// sequence yields a zero composition.
func Count(seq []byte) Composition {
	c := Composition{Counts: make(map[byte]int)}
	for _, b := range seq {
		info, ok := residue.Lookup(b)
		if !ok {
			c.Unknown++
			c.Length++
			continue
		}
		c.Counts[info.Code]++
		c.Length++
	}
	return c
}
