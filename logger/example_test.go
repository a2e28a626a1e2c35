package logger_test

import (
	"fmt"

	"github.com/flexlog/flexlog/core"
	"github.com/flexlog/flexlog/logger"
)

// fixedEnrich pins the timestamp so example output is deterministic.
func fixedEnrich(level string, message any) any {
	return core.Record{
		Timestamp: "2024-01-01T00:00:00Z",
		Level:     level,
		Message:   message,
	}
}

// Build a logger with the default configuration (INFO active, JSON to
// stdout) and call level functions by their derived names.
func ExampleBuild() {
	cfg := logger.DefaultConfig()
	cfg.Enrich = fixedEnrich
	log := logger.Build(cfg)

	log.Func("info")("server started")
	log.Func("debug")("dropped: below the active level")

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"INFO","message":"server started"}
}

// Replace the level set wholesale and pick a custom active level.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithLevels("NORMAL", "IMPORTANT", "VERY_IMPORTANT").
		WithActiveLevel("IMPORTANT").
		WithEnrich(fixedEnrich).
		Build()

	for _, name := range log.Names() {
		log.Func(name)("ping")
	}

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"IMPORTANT","message":"ping"}
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"VERY_IMPORTANT","message":"ping"}
}

// Defer expensive message construction with a thunk. Inactive levels
// never invoke it.
func ExampleThunk() {
	log := logger.NewBuilder().
		WithEnrich(fixedEnrich).
		Build()

	log.Func("trace")(logger.Thunk(func() any {
		fmt.Println("building the trace dump") // never runs: TRACE is inactive
		return "trace dump"
	}))

	log.Func("error")(logger.Thunk(func() any {
		return "disk full"
	}))

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"ERROR","message":"disk full"}
}

// Structured messages ride through the pipeline as-is and are
// JSON-encoded by the default format strategy.
func ExampleFunc_structured() {
	log := logger.NewBuilder().
		WithEnrich(fixedEnrich).
		Build()

	log.Func("warn")(map[string]any{"disk": "/dev/sda1", "free": 512})

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"WARN","message":{"disk":"/dev/sda1","free":512}}
}
