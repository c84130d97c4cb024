package residue

import "testing"

func TestLookupCanonicalCodes(t *testing.T) {
	codes := Codes()
	if got := len(codes); got != 20 {
		t.Fatalf("expected 20 canonical codes, got %d", got)
	}
	for _, code := range codes {
		info, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%c) not found", code)
		}
		if info.Code != code {
			t.Errorf("Lookup(%c) returned code %c", code, info.Code)
		}
		if info.Carbon <= 0 || info.Nitrogen <= 0 {
			t.Errorf("Lookup(%c): carbon/nitrogen must be positive, got C=%d N=%d", code, info.Carbon, info.Nitrogen)
		}
		if info.Sulfur < 0 {
			t.Errorf("Lookup(%c): sulfur must be >= 0, got %d", code, info.Sulfur)
		}
		if info.Weight <= 0 {
			t.Errorf("Lookup(%c): weight must be positive, got %f", code, info.Weight)
		}
	}
}

func TestLookupReferenceValues(t *testing.T) {
	tests := []struct {
		code     byte
		carbon   int
		nitrogen int
		sulfur   int
		weight   float64
	}{
		{'M', 5, 1, 1, 149.21},
		{'K', 6, 2, 0, 146.19},
		{'T', 4, 1, 0, 119.12},
		{'C', 3, 1, 1, 121.16},
		{'W', 11, 2, 0, 204.23},
		{'G', 2, 1, 0, 75.07},
	}
	for _, tt := range tests {
		info, ok := Lookup(tt.code)
		if !ok {
			t.Fatalf("Lookup(%c) not found", tt.code)
		}
		if info.Carbon != tt.carbon || info.Nitrogen != tt.nitrogen || info.Sulfur != tt.sulfur {
			t.Errorf("Lookup(%c) atoms = C%d N%d S%d, want C%d N%d S%d",
				tt.code, info.Carbon, info.Nitrogen, info.Sulfur, tt.carbon, tt.nitrogen, tt.sulfur)
		}
		if info.Weight != tt.weight {
			t.Errorf("Lookup(%c) weight = %f, want %f", tt.code, info.Weight, tt.weight)
		}
	}
}

func TestLookupNormalizesCase(t *testing.T) {
	upper, ok := Lookup('M')
	if !ok {
		t.Fatal("Lookup('M') not found")
	}
	lower, ok := Lookup('m')
	if !ok {
		t.Fatal("Lookup('m') not found")
	}
	if upper != lower {
		t.Errorf("lowercase lookup differs: %+v vs %+v", lower, upper)
	}
}

func TestLookupRejectsNonCanonicalSymbols(t *testing.T) {
	for _, code := range []byte{'B', 'J', 'O', 'U', 'X', 'Z', '*', '-', '.', ' ', '1'} {
		if _, ok := Lookup(code); ok {
			t.Errorf("Lookup(%q) unexpectedly found", code)
		}
	}
}
