package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"astur/internal/arsc"
)

// FileSink writes results to a file.
//
// Formats:
//   - tsv: header plus one row per successful genome
//   - json: aggregates metrics and writes a single JSON array on Close
//   - ndjson: streams Events (one JSON object per line)
type FileSink struct {
	path        string
	format      string
	opts        Options
	file        *os.File
	mu          sync.Mutex
	wroteHeader bool
	results     []arsc.Metrics
}

func NewFileSink(path, format string, opts Options) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path required")
	}

	// Infer format if not provided
	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".tsv", ".tab", ".txt":
			format = "tsv"
		case ".json":
			format = "json"
		case ".ndjson", ".jsonl":
			format = "ndjson"
		default:
			return nil, fmt.Errorf("cannot infer output format from file extension %q", ext)
		}
	}

	if format != "tsv" && format != "json" && format != "ndjson" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{path: path, format: format, opts: opts, file: f}, nil
}

func (s *FileSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "tsv":
		m, ok := v.(arsc.Metrics)
		if !ok {
			// Ignore lifecycle events in tsv mode.
			return nil
		}
		if !s.wroteHeader {
			if _, err := fmt.Fprintln(s.file, tsvHeader(s.opts)); err != nil {
				return err
			}
			s.wroteHeader = true
		}
		_, err := fmt.Fprintln(s.file, tsvRow(m, s.opts))
		return err
	case "json":
		m, ok := v.(arsc.Metrics)
		if !ok {
			// Ignore lifecycle events in JSON aggregate mode.
			return nil
		}
		s.results = append(s.results, m)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.file)
		switch t := v.(type) {
		case Event:
			return encoder.Encode(t)
		case arsc.Metrics:
			return encoder.Encode(eventFromMetrics(t))
		default:
			return nil
		}
	}
	return nil
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch s.format {
	case "json":
		encoder := json.NewEncoder(s.file)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(s.results)
	case "tsv":
		// An empty run still gets a header so downstream parsers see
		// the expected columns.
		if !s.wroteHeader {
			_, err = fmt.Fprintln(s.file, tsvHeader(s.opts))
			s.wroteHeader = true
		}
	}

	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
