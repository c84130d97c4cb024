package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"astur/internal/arsc"
)

// ConsoleSink writes results to stdout.
//
// Formats:
//   - tsv: one row per successful genome; failures are skipped (they
//     are reported on stderr by the engine)
//   - ndjson: streams every Event, one JSON object per line
type ConsoleSink struct {
	writer      io.Writer
	format      string // "tsv" | "ndjson"
	opts        Options
	mu          sync.Mutex
	wroteHeader bool
}

func NewConsoleSink(w io.Writer, format string, opts Options) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "tsv"
	}
	return &ConsoleSink{writer: w, format: format, opts: opts}
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "tsv":
		m, ok := v.(arsc.Metrics)
		if !ok {
			// Ignore lifecycle events in tsv mode.
			return nil
		}
		if !s.wroteHeader && !s.opts.NoHeader {
			if _, err := fmt.Fprintln(s.writer, tsvHeader(s.opts)); err != nil {
				return err
			}
		}
		s.wroteHeader = true
		if _, err := fmt.Fprintln(s.writer, tsvRow(m, s.opts)); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case arsc.Metrics:
			if err := encoder.Encode(eventFromMetrics(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.format != "tsv" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
