package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"astur/internal/config"
)

// GenomeRef identifies one discovered genome: a stable ID and the
// sequence file backing it.
type GenomeRef struct {
	ID   string
	Path string
}

var sequenceSuffixes = []string{".faa", ".faa.gz", ".fa", ".fa.gz", ".fasta", ".fasta.gz"}

// ResolveGenomes expands the configured input paths into genome refs.
// Files are accepted as-is; directories contribute every recognized
// sequence file they directly contain (non-recursive). "-" reads one
// genome from stdin. Duplicate IDs keep the first occurrence.
func ResolveGenomes(cfg *config.Config) ([]GenomeRef, error) {
	var refs []GenomeRef
	for _, p := range cfg.Inputs.Paths {
		if p == "-" {
			refs = append(refs, GenomeRef{ID: "stdin", Path: "-"})
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p, err)
		}
		if !fi.IsDir() {
			refs = append(refs, GenomeRef{ID: GenomeID(p), Path: p})
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", p, err)
		}
		var found int
		for _, e := range entries {
			if e.IsDir() || !hasSequenceSuffix(e.Name()) {
				continue
			}
			full := filepath.Join(p, e.Name())
			refs = append(refs, GenomeRef{ID: GenomeID(full), Path: full})
			found++
		}
		if found == 0 {
			return nil, fmt.Errorf("input %s: no .faa or .faa.gz files found", p)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return dedupeRefs(refs), nil
}

// GenomeID derives the genome identifier from a file path: the base
// name with the compression and sequence extensions stripped.
func GenomeID(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range []string{".faa", ".fa", ".fasta"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

func hasSequenceSuffix(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sequenceSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

func dedupeRefs(refs []GenomeRef) []GenomeRef {
	seen := make(map[string]struct{}, len(refs))
	out := refs[:0]
	for _, r := range refs {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
