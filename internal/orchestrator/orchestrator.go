// Package orchestrator coordinates the batch rename workflow for changejane.
package orchestrator

import (
	"fmt"
	"time"

	"changejane/internal/listfile"
	"changejane/internal/renamer"
	"changejane/internal/substitute"
)

// Result represents the outcome of renaming the file named on one list line.
type Result struct {
	Line    int // 1-based line number in the list file
	Pair    substitute.Pair
	Success bool
	Error   error
}

// Run executes the batch rename workflow.
// It reads the list file, derives a rename pair for every line and renames
// each file in order. Processing stops at the first failed rename; the
// returned Summary then covers every line attempted so far, including the
// failing one. A list file that cannot be read returns a nil Summary.
func Run(listPath string) (*Summary, error) {
	start := time.Now()

	lines, err := listfile.Read(listPath)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalLines: len(lines),
		Results:    make([]Result, 0, len(lines)),
	}

	for i, line := range lines {
		result := processLine(i+1, line)
		summary.add(result)
		if !result.Success {
			summary.Duration = time.Since(start)
			return summary, fmt.Errorf("line %d: %w", result.Line, result.Error)
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// processLine renames the single file named on a list line.
func processLine(lineNo int, line string) Result {
	pair := substitute.PairFor(line)

	if err := renamer.Rename(pair); err != nil {
		return Result{
			Line:    lineNo,
			Pair:    pair,
			Success: false,
			Error:   err,
		}
	}

	return Result{
		Line:    lineNo,
		Pair:    pair,
		Success: true,
	}
}
