package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Match rate label constants.
const (
	ExcellentValue = "Excellent" // 90 and above
	StrongValue    = "Strong"    // 80 to 89
	ModerateValue  = "Moderate"  // 70 to 79
	LowValue       = "Low"       // below 70
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks benchmark-grade matches.
	StrongColor    = color.New(color.FgCyan, color.Bold)  // strongColor marks top-talent matches.
	ModerateColor  = color.New(color.FgYellow)            // moderateColor marks borderline matches.
	LowColor       = color.New(color.FgRed)               // lowColor marks weak matches.
)

// GetPlainLabel returns a plain text label for a final match rate. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(rate float64) string {
	switch {
	case rate >= 90:
		return ExcellentValue
	case rate >= 80:
		return StrongValue
	case rate >= 70:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(rate float64) string {
	text := GetPlainLabel(rate)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// Round1 rounds a rate to one decimal place. All rounding happens at the
// presentation boundary; the core keeps full float precision so the two
// aggregation levels do not compound rounding error.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText shortens a string to maxLen runes with an ellipsis marker.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	rr := []rune(s)
	if len(rr) <= maxLen {
		return s
	}
	return string(rr[:maxLen-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for the candidate store.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".talentmatch.db"
	}
	return filepath.Join(homeDir, ".talentmatch.db")
}
