// Package outwriter renders match runs as tables, CSV, JSON and parquet.
package outwriter

import (
	"os"
	"time"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRun prints a match run using the configured output format.
func (ow *OutWriter) WriteRun(run *schema.PipelineRun, cfg *contract.Config, duration time.Duration) error {
	return WriteRunResults(run, cfg, duration)
}

// WriteCandidates prints the candidate pool using the configured output format.
func (ow *OutWriter) WriteCandidates(candidates []schema.CandidateProfile, cfg *contract.Config) error {
	return WriteCandidateList(candidates, cfg)
}

// getMaxTableNameWidth calculates the maximum width for candidate names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + ID + Position + Match + Label with borders/padding

	if cfg.Detail {
		baseWidth += 30 // Cluster rate columns
	}
	if cfg.Explain {
		baseWidth += 35 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
