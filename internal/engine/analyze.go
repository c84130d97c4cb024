package engine

import (
	"context"
	"errors"

	"astur/internal/arsc"
	"astur/internal/fasta"
)

// analyzeGenome runs one genome job: stream records from the source
// file, count each sequence, fold the counts into a fresh accumulator
// and finalize. Every error is converted into a classified failure on
// the result; nothing propagates to sibling jobs.
func analyzeGenome(ctx context.Context, ref GenomeRef, withComposition bool) GenomeResult {
	acc := arsc.NewAccumulator()
	err := fasta.EachRecord(ctx, ref.Path, func(rec fasta.Record) error {
		acc.Fold(arsc.Count(rec.Seq))
		return nil
	})
	if err != nil {
		return failureResult(ref.ID, err)
	}

	m, err := acc.Finalize(ref.ID, withComposition)
	if err != nil {
		return failureResult(ref.ID, err)
	}
	return GenomeResult{Genome: ref.ID, Metrics: &m}
}

func failureResult(genome string, err error) GenomeResult {
	return GenomeResult{
		Genome:  genome,
		Failure: &GenomeFailure{Genome: genome, Kind: classifyFailure(err), Err: err},
	}
}

func classifyFailure(err error) FailureKind {
	var pe *fasta.ParseError
	switch {
	case errors.Is(err, arsc.ErrDegenerateGenome):
		return KindDegenerate
	case errors.As(err, &pe):
		return KindParse
	default:
		return KindIO
	}
}
