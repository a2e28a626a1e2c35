package logger

import (
	"strings"

	"github.com/flexlog/flexlog/core"
	"github.com/flexlog/flexlog/formatter"
	"github.com/flexlog/flexlog/writer"
)

// Identifiers of the default level set, lowest severity first.
const (
	LevelTrace = "TRACE"
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
)

// DefaultLevels returns the default level set. Position encodes rank:
// index 0 is the lowest severity.
func DefaultLevels() []string {
	return []string{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// Config is a logger configuration. Build treats it as read-only and
// the Logger keeps its own copy, so a Config value in caller hands can
// never mutate a running Logger.
//
// No field is validated. An ActiveLevel that is not a member of Levels
// disables every level (that is the designed off switch, not an error),
// and a nil strategy function fails when it is first invoked.
type Config struct {
	// Levels is the ordered level set; position encodes severity rank.
	Levels []string

	// ActiveLevel is the minimum level that logs. Levels ranked below
	// it become no-ops; a value absent from Levels disables all of
	// them.
	ActiveLevel string

	// Namer derives the public function name for a level identifier.
	Namer core.NamerFunc

	// Enrich attaches metadata to a raw message.
	Enrich core.EnrichFunc

	// Format serializes the enriched message.
	Format core.FormatFunc

	// Write delivers the serialized line and produces the call result.
	Write core.WriteFunc

	// NoOp produces the result of inactive log functions.
	NoOp core.NoOpFunc
}

// DefaultConfig returns the default configuration: the six-level set,
// INFO active, lowercase function names, Record enrichment with an
// ISO-8601 timestamp, single-line JSON, stdout delivery, and an empty
// string as the no-op result.
//
// Each call returns a fresh value; there is no shared default to
// corrupt.
func DefaultConfig() Config {
	return Config{
		Levels:      DefaultLevels(),
		ActiveLevel: LevelInfo,
		Namer:       strings.ToLower,
		Enrich:      DefaultEnrich,
		Format:      formatter.JSON(),
		Write:       writer.Stdout(),
		NoOp:        func() string { return "" },
	}
}

// DefaultEnrich is the default enrich strategy: it wraps the raw
// message in a core.Record carrying the level identifier and the
// current ISO-8601 timestamp from core.Timestamp.
func DefaultEnrich(level string, message any) any {
	return core.Record{
		Timestamp: core.Timestamp(),
		Level:     level,
		Message:   message,
	}
}
