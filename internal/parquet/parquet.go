// Package parquet exports match run data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/talentco/talentmatch/schema"
)

// MatchRecord represents a single ranked candidate in a match run.
// Cluster and variable rates are variable-width maps, so they are stored
// as JSON-encoded columns rather than one column per name.
type MatchRecord struct {
	// Rank is the 1-based position in the ranked result set
	Rank int32 `parquet:"rank,snappy"`

	// EmployeeID identifies the candidate
	EmployeeID string `parquet:"employee_id,snappy"`

	// Name is the candidate's full name
	Name string `parquet:"name,snappy"`

	// Position is the candidate's current position
	Position string `parquet:"position,snappy"`

	// Grade is the candidate's grade level
	Grade string `parquet:"grade,snappy"`

	// Directorate is the candidate's organizational unit
	Directorate string `parquet:"directorate,snappy"`

	// FinalMatchRate is the overall match rate at full precision
	FinalMatchRate float64 `parquet:"final_match_rate,snappy"`

	// IsBenchmark marks candidates who were part of the benchmark group
	IsBenchmark bool `parquet:"is_benchmark,snappy"`

	// ClusterRates contains the JSON-encoded cluster rate map
	ClusterRates string `parquet:"cluster_rates,snappy"`

	// VariableRates contains the JSON-encoded variable rate map
	VariableRates string `parquet:"variable_rates,snappy"`
}

// MatchRecordsFromRun flattens a pipeline run into parquet records, in
// ranked order.
func MatchRecordsFromRun(run *schema.PipelineRun) ([]MatchRecord, error) {
	records := make([]MatchRecord, 0, len(run.Results))
	for i, r := range run.Results {
		clusterJSON, err := json.Marshal(r.ClusterRates)
		if err != nil {
			return nil, fmt.Errorf("encode cluster rates for %s: %w", r.EmployeeID, err)
		}
		variableJSON, err := json.Marshal(r.VariableRates)
		if err != nil {
			return nil, fmt.Errorf("encode variable rates for %s: %w", r.EmployeeID, err)
		}
		records = append(records, MatchRecord{
			Rank:           int32(i + 1),
			EmployeeID:     r.EmployeeID,
			Name:           r.Name,
			Position:       r.Position,
			Grade:          r.Grade,
			Directorate:    r.Directorate,
			FinalMatchRate: r.FinalMatchRate,
			IsBenchmark:    r.IsBenchmark,
			ClusterRates:   string(clusterJSON),
			VariableRates:  string(variableJSON),
		})
	}
	return records, nil
}

// WriteMatchRecordsParquet writes a slice of MatchRecord structs to a Parquet file.
func WriteMatchRecordsParquet(data []MatchRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the MatchRecord struct tags
	writer := parquet.NewGenericWriter[MatchRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
