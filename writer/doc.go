// Package writer provides the built-in write strategies: functions that
// deliver a serialized log line to its destination and return a result,
// conventionally the line itself.
//
// Everything here produces (or is) a core.WriteFunc, so it plugs
// straight into a logger configuration:
//
//	log := logger.NewBuilder().
//	    WithWrite(writer.Stderr()).
//	    Build()
//
// The io.Writer-backed strategies (To, Stdout, Stderr) and the file
// sink serialize concurrent calls with a mutex so that lines from
// concurrent log functions never interleave mid-line. Discard keeps the
// pipeline observable without I/O, Multi fans a line out to several
// strategies, and Zap delivers lines through a *zap.Logger for programs
// that already route their output through zap cores.
package writer
