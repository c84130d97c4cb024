package engine

import (
	"context"
	"fmt"
	"os"

	"astur/internal/config"
	"astur/internal/output"
)

func exitCodeForRun(fatal, partial bool) int {
	// Exit code contract:
	// 0 = all genomes computed
	// 2 = partial failure (some genomes failed)
	// 3 = fatal error (run did not complete)
	if fatal {
		return 3
	}
	if partial {
		return 2
	}
	return 0
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	opts := output.Options{
		DecimalPlaces: cfg.Metrics.DecimalPlaces,
		AAComposition: cfg.Metrics.AAComposition,
		NoHeader:      cfg.Output.NoHeader,
	}

	outMgr := output.NewManager()

	// Console sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, opts)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat, opts)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

type Engine struct {
	// schedulerExecute is a test seam for streaming execution.
	// If nil, Engine uses the real scheduler.
	schedulerExecute func(ctx context.Context, cfg *config.Config, refs []GenomeRef) (<-chan GenomeResult, <-chan error)
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) executeStream(ctx context.Context, cfg *config.Config, refs []GenomeRef) (<-chan GenomeResult, <-chan error) {
	if e.schedulerExecute != nil {
		return e.schedulerExecute(ctx, cfg, refs)
	}

	scheduler, err := NewScheduler(cfg.Runtime.Threads, cfg.Metrics.AAComposition)
	if err != nil {
		resCh := make(chan GenomeResult)
		errCh := make(chan error, 1)
		close(resCh)
		errCh <- err
		close(errCh)
		return resCh, errCh
	}
	return scheduler.Execute(ctx, refs)
}

// withinLengthBounds applies the --min-length/--max-length result
// filter. Failed genomes always pass so they stay visible.
func withinLengthBounds(res GenomeResult, cfg *config.Config) bool {
	if !res.OK() {
		return true
	}
	n := res.Metrics.TotalLength
	if cfg.Metrics.MinLength > 0 && n < cfg.Metrics.MinLength {
		return false
	}
	if cfg.Metrics.MaxLength > 0 && n > cfg.Metrics.MaxLength {
		return false
	}
	return true
}

func maybeDryRun(cfg *config.Config, refs []GenomeRef) (int, bool) {
	if !cfg.Inputs.DryRun {
		return 0, false
	}
	fmt.Println("Resolved genomes:")
	for _, r := range refs {
		fmt.Printf("%s\t%s\n", r.ID, r.Path)
	}
	return 0, true
}

// collectStreamingResults drains per-genome results, applies the length
// filter, forwards successes and failure events to the sinks, and
// reports failures on stderr.
func collectStreamingResults(cfg *config.Config, resCh <-chan GenomeResult, outMgr *output.Manager, summary *output.Summary) (received, kept int, hasFailures bool) {
	for res := range resCh {
		received++
		if !withinLengthBounds(res, cfg) {
			continue
		}
		if !res.OK() {
			hasFailures = true
			fmt.Fprintf(os.Stderr, "Error: %v\n", res.Failure)
			_ = outMgr.Write(output.Event{
				Type:    "genome.failed",
				Genome:  res.Genome,
				Kind:    string(res.Failure.Kind),
				Message: res.Failure.Message(),
			})
			continue
		}
		kept++
		summary.Add(*res.Metrics)
		_ = outMgr.Write(*res.Metrics)
	}
	return received, kept, hasFailures
}

func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	refs, err := ResolveGenomes(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving genomes: %v\n", err)
		return exitCodeForRun(true, false)
	}
	refs = FilterGenomes(refs, cfg)

	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Found %d genomes to process.\n", len(refs))
		fmt.Fprintf(os.Stderr, "Using %d threads.\n", cfg.Runtime.Threads)
	}

	if code, ok := maybeDryRun(cfg, refs); ok {
		return code
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, false)
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{Type: "run.started", Genomes: len(refs), Threads: cfg.Runtime.Threads})

	resCh, errCh := e.executeStream(ctx, cfg, refs)

	summary := output.NewSummary()
	received, kept, hasFailures := collectStreamingResults(cfg, resCh, outMgr, summary)

	var schedErr error
	// Drain scheduler errors; keep one non-nil error to decide fatality.
	for err := range errCh {
		if err != nil {
			schedErr = err
		}
	}

	if !cfg.Output.NoConsole && (cfg.Metrics.MinLength > 0 || cfg.Metrics.MaxLength > 0) {
		fmt.Fprintf(os.Stderr, "After length filtering: %d of %d results.\n", kept, received)
	}

	if cfg.Metrics.Stats {
		summary.Render(os.Stderr, cfg.Metrics.DecimalPlaces)
	}

	fatal := schedErr != nil
	if fatal {
		fmt.Fprintf(os.Stderr, "Error: %v\n", schedErr)
	}
	code := exitCodeForRun(fatal, hasFailures)
	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
