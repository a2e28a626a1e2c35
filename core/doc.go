// Package core holds the leaf types shared by every other package: the
// default enriched record, the signatures of the pluggable pipeline
// strategies, and the timestamp source.
//
// The pipeline stages are plain function values rather than interfaces.
// A logger configuration carries one function per stage (namer, enrich,
// format, write, no-op), and the logger package invokes them without
// knowing anything about their internals. Anything with the right shape
// plugs in: a closure over an io.Writer, a method value on a file sink,
// an adapter delivering into another logging library.
//
// Record is the shape the default enrich strategy produces. Custom
// enrich strategies may return any value at all; only the configured
// format strategy needs to understand it.
package core
