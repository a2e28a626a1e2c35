package core

// Record is the enriched message produced by the default enrich
// strategy. Its JSON encoding is the default wire format: a single
// object with exactly the keys timestamp, logLevel and message.
//
// Level carries the level identifier as it appears in the configured
// level set, not the derived function name.
type Record struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"logLevel"`
	Message   any    `json:"message"`
}

// NamerFunc derives the public function name for a level identifier.
type NamerFunc func(level string) string

// EnrichFunc attaches metadata to a raw message. The returned value is
// opaque to the logger; it is handed straight to the format strategy.
type EnrichFunc func(level string, message any) any

// FormatFunc serializes an enriched message into its wire
// representation.
type FormatFunc func(enriched any) (string, error)

// WriteFunc delivers a serialized line to its destination and returns a
// result, conventionally the line itself. A WriteFunc is free to hand
// the line off asynchronously and return immediately; the logger never
// waits on it.
type WriteFunc func(level, line string) (string, error)

// NoOpFunc produces the sentinel result returned by inactive log
// functions.
type NoOpFunc func() string
