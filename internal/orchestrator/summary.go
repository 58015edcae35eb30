package orchestrator

import (
	"fmt"
	"time"
)

// Summary represents the overall results of a changejane run.
type Summary struct {
	TotalLines int           // Lines read from the list file
	Attempted  int           // Renames attempted before completion or the first failure
	Renamed    int           // Successful renames that changed the name
	Unchanged  int           // Successful no-op renames (no "jane" in the name)
	Failed     int           // Failed renames; at most one since processing stops
	Duration   time.Duration // Total processing time
	Results    []Result      // Per-line results in list order
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	s.Attempted++
	switch {
	case !r.Success:
		s.Failed++
	case r.Pair.Unchanged():
		s.Unchanged++
	default:
		s.Renamed++
	}
}

// HasErrors returns true if a rename failed.
func (s *Summary) HasErrors() bool {
	return s.Failed > 0
}

// Skipped returns how many lines were never attempted because of an earlier failure.
func (s *Summary) Skipped() int {
	return s.TotalLines - s.Attempted
}

// PrintSummary returns a formatted summary string.
func (s *Summary) PrintSummary() string {
	return fmt.Sprintf("Processed %d of %d lines: %d renamed, %d unchanged, %d failed, %d skipped in %s",
		s.Attempted, s.TotalLines, s.Renamed, s.Unchanged, s.Failed, s.Skipped(), s.Duration.Round(time.Millisecond))
}
