// Package residue holds the amino-acid reference table used for
// elemental composition metrics.
//
// Atom counts and weights follow the full-molecule values used by
// Mende et al. (Nature Microbiology, 2017), originally from
// Baudouin-Cornu et al. (Science, 2001). The table covers the 20
// canonical single-letter codes; everything else (ambiguity codes,
// stops, gaps) is unknown and must be handled by the caller.
package residue

// Info describes one canonical amino acid: atoms of carbon, nitrogen
// and sulfur per molecule, and its average molecular weight in Da.
type Info struct {
	Code     byte
	Carbon   int
	Nitrogen int
	Sulfur   int
	Weight   float64
}

var table = map[byte]Info{
	'A': {'A', 3, 1, 0, 89.09},
	'R': {'R', 6, 4, 0, 174.20},
	'N': {'N', 4, 2, 0, 132.12},
	'D': {'D', 4, 1, 0, 133.10},
	'C': {'C', 3, 1, 1, 121.16},
	'E': {'E', 5, 1, 0, 147.13},
	'Q': {'Q', 5, 2, 0, 146.15},
	'G': {'G', 2, 1, 0, 75.07},
	'H': {'H', 6, 3, 0, 155.16},
	'I': {'I', 6, 1, 0, 131.17},
	'L': {'L', 6, 1, 0, 131.17},
	'K': {'K', 6, 2, 0, 146.19},
	'M': {'M', 5, 1, 1, 149.21},
	'F': {'F', 9, 1, 0, 165.19},
	'P': {'P', 5, 1, 0, 115.13},
	'S': {'S', 3, 1, 0, 105.09},
	'T': {'T', 4, 1, 0, 119.12},
	'W': {'W', 11, 2, 0, 204.23},
	'Y': {'Y', 9, 1, 0, 181.19},
	'V': {'V', 5, 1, 0, 117.15},
}

// Lookup returns the reference entry for a single-letter code.
// Lowercase input is accepted and normalized to uppercase. The second
// return value is false for any symbol outside the 20 canonical codes;
// callers must count those as unknown rather than treating them as
// zero-weight residues.
func Lookup(code byte) (Info, bool) {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	info, ok := table[code]
	return info, ok
}

// Codes returns the canonical codes in ascending byte order.
func Codes() []byte {
	out := make([]byte, 0, len(table))
	for c := byte('A'); c <= 'Z'; c++ {
		if _, ok := table[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
