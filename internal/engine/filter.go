package engine

import (
	"path"
	"strings"

	"astur/internal/config"
)

// FilterGenomes applies the include/exclude patterns and the
// max-genomes cap to the discovered genome set.
func FilterGenomes(refs []GenomeRef, cfg *config.Config) []GenomeRef {
	if cfg == nil {
		panic("engine.FilterGenomes: cfg must not be nil")
	}

	includePatterns := cfg.Inputs.Include
	excludePatterns := cfg.Inputs.Exclude

	var filtered []GenomeRef
	for _, r := range refs {
		// If Include is set, must match at least one
		if len(includePatterns) > 0 && !matchesAnyPattern(includePatterns, r) {
			continue
		}
		// If Exclude is set, must not match any
		if len(excludePatterns) > 0 && matchesAnyPattern(excludePatterns, r) {
			continue
		}
		filtered = append(filtered, r)
	}

	if cfg.Inputs.MaxGenomes > 0 && len(filtered) > cfg.Inputs.MaxGenomes {
		filtered = filtered[:cfg.Inputs.MaxGenomes]
	}

	return filtered
}

func matchesAnyPattern(patterns []string, r GenomeRef) bool {
	for _, p := range patterns {
		if matchPattern(p, r) {
			return true
		}
	}
	return false
}

// matchPattern matches against the genome ID, or against the full path
// when the pattern contains a path separator (so patterns like
// "proteomes/marine_*" work alongside "GCF_*").
func matchPattern(pattern string, r GenomeRef) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	if strings.Contains(pattern, "/") {
		matched, _ := path.Match(pattern, r.Path)
		return matched
	}
	matched, _ := path.Match(pattern, r.ID)
	return matched
}
