package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentco/talentmatch/schema"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Role:       "Data Engineer",
		Level:      "Senior",
		Purpose:    "Build and operate data pipelines",
		Benchmarks: "EMP1000,EMP1003",
		Limit:      10,
		Precision:  1,
		Output:     "text",
		DBBackend:  "none",
		Color:      "yes",
	}
}

func TestParseBenchmarkIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single id",
			input:    "EMP1000",
			expected: []string{"EMP1000"},
		},
		{
			name:     "multiple ids preserve order",
			input:    "EMP1003,EMP1000,EMP1007",
			expected: []string{"EMP1003", "EMP1000", "EMP1007"},
		},
		{
			name:     "whitespace is trimmed",
			input:    " EMP1000 , EMP1003 ",
			expected: []string{"EMP1000", "EMP1003"},
		},
		{
			name:     "empty segments dropped",
			input:    "EMP1000,,EMP1003,",
			expected: []string{"EMP1000", "EMP1003"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    ", ,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBenchmarkIDs(tt.input))
		})
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{
			name:   "valid minimal config",
			mutate: func(in *ConfigRawInput) {},
		},
		{
			name:        "limit zero",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: "limit must be at least 1",
		},
		{
			name:        "limit over maximum",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: "limit cannot exceed",
		},
		{
			name:        "invalid output mode",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: "invalid output mode",
		},
		{
			name: "parquet without output file",
			mutate: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = ""
			},
			expectError: "parquet output requires --output-file",
		},
		{
			name: "parquet with output file",
			mutate: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = "results.parquet"
			},
		},
		{
			name:        "invalid db backend",
			mutate:      func(in *ConfigRawInput) { in.DBBackend = "oracle" },
			expectError: "invalid db backend",
		},
		{
			name: "negative cluster weight",
			mutate: func(in *ConfigRawInput) {
				in.Weights.Clusters = map[string]float64{"Core Values": -1}
			},
			expectError: "must be non-negative",
		},
		{
			name: "negative variable weight",
			mutate: func(in *ConfigRawInput) {
				in.Weights.Variables = map[string]float64{"Integrity": -0.5}
			},
			expectError: "must be non-negative",
		},
		{
			name: "zero weight is allowed",
			mutate: func(in *ConfigRawInput) {
				in.Weights.Clusters = map[string]float64{"Core Values": 0}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateNormalization(t *testing.T) {
	t.Run("precision clamped to valid range", func(t *testing.T) {
		for raw, want := range map[int]int{-1: 1, 0: 1, 1: 1, 2: 2, 5: 2} {
			input := validRawInput()
			input.Precision = raw

			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, input))
			assert.Equal(t, want, cfg.Precision, "raw precision %d", raw)
		}
	})

	t.Run("output mode is case insensitive", func(t *testing.T) {
		input := validRawInput()
		input.Output = "JSON"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("backend is case insensitive", func(t *testing.T) {
		input := validRawInput()
		input.DBBackend = "SQLite"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.SQLiteBackend, cfg.DBBackend)
	})

	t.Run("role fields are trimmed", func(t *testing.T) {
		input := validRawInput()
		input.Role = "  Data Engineer  "
		input.Level = " Senior"
		input.Purpose = "Build pipelines "

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "Data Engineer", cfg.Role.Name)
		assert.Equal(t, "Senior", cfg.Role.Level)
		assert.Equal(t, "Build pipelines", cfg.Role.Purpose)
	})

	t.Run("benchmarks parsed into ids", func(t *testing.T) {
		input := validRawInput()

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, []string{"EMP1000", "EMP1003"}, cfg.BenchmarkIDs)
	})
}

func TestValidateRole(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Role: schema.RoleDescriptor{
				Name:    "Data Engineer",
				Level:   "Senior",
				Purpose: "Build and operate data pipelines",
			},
			BenchmarkIDs: []string{"EMP1000"},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{
			name:   "complete role",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "missing role name",
			mutate:      func(cfg *Config) { cfg.Role.Name = "" },
			expectError: "--role is required",
		},
		{
			name:        "missing level",
			mutate:      func(cfg *Config) { cfg.Role.Level = "" },
			expectError: "--level is required",
		},
		{
			name:        "missing purpose",
			mutate:      func(cfg *Config) { cfg.Role.Purpose = "" },
			expectError: "--purpose is required",
		},
		{
			name:        "missing benchmarks",
			mutate:      func(cfg *Config) { cfg.BenchmarkIDs = nil },
			expectError: "--benchmarks is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateRole(cfg)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	original := &Config{
		Role:         schema.RoleDescriptor{Name: "Data Engineer", Level: "Senior", Purpose: "Pipelines"},
		BenchmarkIDs: []string{"EMP1000", "EMP1003"},
		ResultLimit:  10,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone's benchmark list must not touch the original.
	clone.BenchmarkIDs[0] = "EMP9999"
	clone.Role.Name = "Analyst"
	assert.Equal(t, "EMP1000", original.BenchmarkIDs[0])
	assert.Equal(t, "Data Engineer", original.Role.Name)
}

func TestParseBoolish(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"yes", true},
		{"true", true},
		{"1", true},
		{"", true},
		{"anything", true},
		{"no", false},
		{"NO", false},
		{"false", false},
		{"0", false},
		{"off", false},
		{" off ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseBoolish(tt.input))
		})
	}
}
