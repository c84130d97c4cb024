package arsc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountTalliesResidues(t *testing.T) {
	c := Count([]byte("MKTM"))

	want := map[byte]int{'M': 2, 'K': 1, 'T': 1}
	if diff := cmp.Diff(want, c.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if c.Unknown != 0 {
		t.Errorf("unknown = %d, want 0", c.Unknown)
	}
	if c.Length != 4 {
		t.Errorf("length = %d, want 4", c.Length)
	}
}

func TestCountEmptySequence(t *testing.T) {
	c := Count(nil)
	if c.Length != 0 || c.Unknown != 0 || len(c.Counts) != 0 {
		t.Errorf("empty sequence should yield a zero composition, got %+v", c)
	}
}

func TestCountUnknownSymbols(t *testing.T) {
	// Ambiguity codes, stops and gaps are tracked, never dropped.
	c := Count([]byte("MX*K-B"))
	if c.Unknown != 4 {
		t.Errorf("unknown = %d, want 4", c.Unknown)
	}
	if c.Counts['M'] != 1 || c.Counts['K'] != 1 {
		t.Errorf("recognized counts wrong: %v", c.Counts)
	}
	if c.Length != 6 {
		t.Errorf("length = %d, want 6", c.Length)
	}
}

func TestCountLowercaseMasking(t *testing.T) {
	c := Count([]byte("mKt"))
	if c.Counts['M'] != 1 || c.Counts['K'] != 1 || c.Counts['T'] != 1 {
		t.Errorf("lowercase residues should normalize to uppercase, got %v", c.Counts)
	}
	if c.Unknown != 0 {
		t.Errorf("unknown = %d, want 0", c.Unknown)
	}
}

func TestCountLengthInvariant(t *testing.T) {
	for _, seq := range []string{"", "MK", "XXX", "MKTXZ*", "mktBJ"} {
		c := Count([]byte(seq))
		sum := c.Unknown
		for _, n := range c.Counts {
			sum += n
		}
		if sum != c.Length {
			t.Errorf("Count(%q): counts+unknown = %d, length = %d", seq, sum, c.Length)
		}
	}
}
