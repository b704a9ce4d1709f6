package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the candidate store.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported. NoneBackend disables the store entirely and
// the CLI falls back to the built-in sample dataset.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// TopTalentThreshold is the final match rate at or above which a candidate
// counts as top talent.
const TopTalentThreshold = 80.0
