// Package formatter provides the built-in format strategies: functions
// that serialize an enriched message into its wire representation.
//
// JSON is the default. For the core.Record shape it emits a single-line
// JSON object with exactly the keys timestamp, logLevel and message,
// built manually into a pooled bytes.Buffer to avoid per-call
// allocations. String messages go through a hand-rolled escaper; every
// other message type, and any enriched value that is not a core.Record
// (custom enrich strategies may return whatever they like), falls back
// to encoding/json.
//
// Text is a human-readable alternative: timestamp, bracketed level,
// message.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
