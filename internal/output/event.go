package output

import "astur/internal/arsc"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line):
// - run.started
// - genome.result
// - genome.failed
// - run.finished
//
// TSV and JSON modes carry only successful genome metrics; failures
// surface through genome.failed events and stderr.
type Event struct {
	Type     string        `json:"type"`
	Genome   string        `json:"genome,omitempty"`
	Metrics  *arsc.Metrics `json:"metrics,omitempty"`
	Kind     string        `json:"kind,omitempty"`
	Message  string        `json:"message,omitempty"`
	Genomes  int           `json:"genomes,omitempty"`
	Threads  int           `json:"threads,omitempty"`
	ExitCode int           `json:"exit_code,omitempty"`
}

func eventFromMetrics(m arsc.Metrics) Event {
	return Event{Type: "genome.result", Genome: m.Genome, Metrics: &m}
}
