package engine

import (
	"fmt"

	"astur/internal/arsc"
)

// FailureKind classifies why a single genome job failed. Failures are
// scoped to their genome and never abort the batch.
type FailureKind string

const (
	// KindParse marks structurally malformed sequence input.
	KindParse FailureKind = "parse"
	// KindDegenerate marks a genome with zero recognized residues,
	// for which the metrics are undefined.
	KindDegenerate FailureKind = "degenerate"
	// KindIO marks a read failure (missing file, bad gzip stream, ...).
	KindIO FailureKind = "io"
)

// GenomeFailure carries a failed genome's identifier, classification
// and underlying error.
type GenomeFailure struct {
	Genome string      `json:"genome"`
	Kind   FailureKind `json:"kind"`
	Err    error       `json:"-"`
}

func (f *GenomeFailure) Error() string {
	return fmt.Sprintf("genome %s: %s: %v", f.Genome, f.Kind, f.Err)
}

func (f *GenomeFailure) Unwrap() error { return f.Err }

// Message is the human-facing failure description without the genome
// prefix, for sinks that already print the genome column.
func (f *GenomeFailure) Message() string {
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

// GenomeResult is the outcome of one genome job: either finalized
// metrics or a classified failure, never both. The scheduler emits
// exactly one GenomeResult per planned genome.
type GenomeResult struct {
	Genome  string
	Metrics *arsc.Metrics
	Failure *GenomeFailure
}

// OK reports whether the job produced metrics.
func (r GenomeResult) OK() bool { return r.Failure == nil }
