package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Scheduler fans genome jobs out across a bounded worker pool. Each
// worker owns one genome at a time; jobs share nothing but the
// read-only residue table, so no locking is needed beyond the results
// channel.
type Scheduler struct {
	threads         int
	withComposition bool

	// analyze is a test seam; nil means the real per-genome job.
	analyze func(ctx context.Context, ref GenomeRef) GenomeResult
}

func NewScheduler(threads int, withComposition bool) (*Scheduler, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("threads must be >= 1, got %d", threads)
	}
	return &Scheduler{threads: threads, withComposition: withComposition}, nil
}

// Execute streams per-genome results.
//
// Channel semantics:
//   - In the normal (non-canceled) case, exactly one GenomeResult is
//     sent per genome; per-genome failures arrive as results, never on
//     the error channel.
//   - On context cancellation, the scheduler stops promptly; it may
//     emit fewer than N results.
//   - Both channels are closed reliably. The error channel carries only
//     fatal errors (cancellation), at most one.
//
// The result multiset is invariant to thread count; only arrival order
// varies.
func (s *Scheduler) Execute(ctx context.Context, refs []GenomeRef) (<-chan GenomeResult, <-chan error) {
	resultsCh := make(chan GenomeResult)
	errCh := make(chan error, 1)

	job := s.analyze
	if job == nil {
		job = func(ctx context.Context, ref GenomeRef) GenomeResult {
			return analyzeGenome(ctx, ref, s.withComposition)
		}
	}

	go func() {
		defer close(resultsCh)
		defer close(errCh)

		if ctx == nil {
			errCh <- errors.New("context is nil")
			return
		}

		g, runCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.threads)

		for _, ref := range refs {
			if runCtx.Err() != nil {
				break
			}
			ref := ref
			g.Go(func() error {
				res := job(runCtx, ref)
				if err := runCtx.Err(); err != nil {
					// Abandoned in-flight job: emit nothing.
					return err
				}
				select {
				case resultsCh <- res:
					return nil
				case <-runCtx.Done():
					return runCtx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			errCh <- err
		}
	}()

	return resultsCh, errCh
}
