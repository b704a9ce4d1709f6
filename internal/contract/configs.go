package contract

import (
	"fmt"
	"strings"

	"github.com/talentco/talentmatch/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// Config holds the runtime configuration for a match run.
// This struct remains the "final, validated" config.
type Config struct {
	Role         schema.RoleDescriptor
	BenchmarkIDs []string

	Position    string
	Directorate string
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	DBBackend schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	AIModel      string
	GeminiAPIKey string // Please use env var as this is plaintext

	// Weights holds the optional override weights for cluster and variable
	// aggregation. Empty maps mean equal weights.
	Weights schema.Weights

	Detail    bool // If true, print per-candidate cluster rate columns
	Explain   bool // If true, print the clusters driving each rate
	UseColors bool // Enable colored labels in table output
}

// Clone returns a copy of the config safe for per-request mutation. The
// weight maps are shared since nothing mutates them after validation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.BenchmarkIDs = append([]string(nil), c.BenchmarkIDs...)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Role       string `mapstructure:"role"`
	Level      string `mapstructure:"level"`
	Purpose    string `mapstructure:"purpose"`
	Benchmarks string `mapstructure:"benchmarks"`

	Position    string `mapstructure:"position"`
	Directorate string `mapstructure:"directorate"`
	Limit       int    `mapstructure:"limit"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Width       int    `mapstructure:"width"`
	Color       string `mapstructure:"color"`
	Detail      bool   `mapstructure:"detail"`
	Explain     bool   `mapstructure:"explain"`

	DBBackend string `mapstructure:"db-backend"`
	DBConnect string `mapstructure:"db-connect"`

	AIModel      string `mapstructure:"ai-model"`
	GeminiAPIKey string `mapstructure:"gemini-api-key"`

	// --- Custom weights from config file ---
	Weights schema.Weights `mapstructure:"weights"`
}

// ParseBenchmarkIDs splits a comma-separated benchmark ID string into a
// clean slice, preserving caller order. Truncation to the benchmark maximum
// happens in the core, not here.
func ParseBenchmarkIDs(raw string) []string {
	var ids []string
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// ProcessAndValidate converts raw input into a validated Config.
// It populates cfg in place and returns the first validation error found.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Role = schema.RoleDescriptor{
		Name:    strings.TrimSpace(input.Role),
		Level:   strings.TrimSpace(input.Level),
		Purpose: strings.TrimSpace(input.Purpose),
	}
	cfg.BenchmarkIDs = ParseBenchmarkIDs(input.Benchmarks)

	cfg.Position = strings.TrimSpace(input.Position)
	cfg.Directorate = strings.TrimSpace(input.Directorate)

	if input.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", input.Limit)
	}
	if input.Limit > MaxResultLimit {
		return fmt.Errorf("limit cannot exceed %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.Width = input.Width

	backend := schema.DatabaseBackend(strings.ToLower(input.DBBackend))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid db backend %q. Must be sqlite, mysql, postgresql, or none", input.DBBackend)
	}
	cfg.DBBackend = backend
	cfg.DBConnect = input.DBConnect

	cfg.AIModel = input.AIModel
	cfg.GeminiAPIKey = input.GeminiAPIKey

	if err := validateWeights(input.Weights.Clusters, "clusters"); err != nil {
		return err
	}
	if err := validateWeights(input.Weights.Variables, "variables"); err != nil {
		return err
	}
	cfg.Weights = input.Weights

	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.UseColors = parseBoolish(input.Color)

	return nil
}

// ValidateRole ensures all role fields required for a match run are present.
// Kept separate from ProcessAndValidate so that commands which do not run
// the pipeline (candidates, seed) can share the rest of the validation.
func ValidateRole(cfg *Config) error {
	if cfg.Role.Name == "" {
		return fmt.Errorf("--role is required")
	}
	if cfg.Role.Level == "" {
		return fmt.Errorf("--level is required")
	}
	if cfg.Role.Purpose == "" {
		return fmt.Errorf("--purpose is required")
	}
	if len(cfg.BenchmarkIDs) == 0 {
		return fmt.Errorf("--benchmarks is required (comma-separated employee IDs)")
	}
	return nil
}

func validateWeights(weights map[string]float64, kind string) error {
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("weights.%s[%q] must be non-negative, got %v", kind, name, w)
		}
	}
	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 leniently, defaulting to true.
func parseBoolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no", "false", "0", "off":
		return false
	default:
		return true
	}
}
