package engine

import (
	"context"
	"testing"
)

func TestAnalyzeGenomeValid(t *testing.T) {
	dir := t.TempDir()
	path := writeSeqFile(t, dir, "G1.faa", ">p1\nMK\n>p2\nMKT\n")

	res := analyzeGenome(context.Background(), GenomeRef{ID: "G1", Path: path}, false)
	if !res.OK() {
		t.Fatalf("unexpected failure: %v", res.Failure)
	}
	m := res.Metrics
	if m.NARSC != 1.4 || m.CARSC != 5.2 || m.SARSC != 0.4 {
		t.Errorf("ratios = N%v C%v S%v, want N1.4 C5.2 S0.4", m.NARSC, m.CARSC, m.SARSC)
	}
	if m.Sequences != 2 || m.TotalLength != 5 {
		t.Errorf("sequences=%d length=%d, want 2 and 5", m.Sequences, m.TotalLength)
	}
}

func TestAnalyzeGenomeFailureKinds(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantKind FailureKind
	}{
		{
			name:     "degenerate genome",
			path:     writeSeqFile(t, dir, "G2.faa", ">p1\nXXX\n"),
			wantKind: KindDegenerate,
		},
		{
			name:     "empty file",
			path:     writeSeqFile(t, dir, "empty.faa", ""),
			wantKind: KindDegenerate,
		},
		{
			name:     "sequence before header",
			path:     writeSeqFile(t, dir, "bad.faa", "MKT\n>p1\nMK\n"),
			wantKind: KindParse,
		},
		{
			name:     "missing file",
			path:     dir + "/does-not-exist.faa",
			wantKind: KindIO,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := analyzeGenome(context.Background(), GenomeRef{ID: tt.name, Path: tt.path}, false)
			if res.OK() {
				t.Fatal("expected a failure")
			}
			if res.Failure.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s (err: %v)", res.Failure.Kind, tt.wantKind, res.Failure.Err)
			}
			if res.Failure.Genome != tt.name {
				t.Errorf("failure genome = %q, want %q", res.Failure.Genome, tt.name)
			}
		})
	}
}
