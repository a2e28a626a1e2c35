package writer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/flexlog/flexlog/core"
)

// To returns a write strategy that emits each line, followed by a
// newline, to w and returns the line. Calls are serialized with a
// mutex so concurrent log functions never interleave mid-line.
func To(w io.Writer) core.WriteFunc {
	var mu sync.Mutex
	return func(level, line string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if _, err := fmt.Fprintln(w, line); err != nil {
			return "", err
		}
		return line, nil
	}
}

// Stdout returns the default write strategy: lines go to standard
// output.
func Stdout() core.WriteFunc {
	return To(os.Stdout)
}

// Stderr returns a write strategy that emits lines to standard error.
func Stderr() core.WriteFunc {
	return To(os.Stderr)
}

// Discard returns a write strategy that drops the line and returns it.
// Useful in tests and benchmarks to exercise the full pipeline without
// I/O.
func Discard() core.WriteFunc {
	return func(level, line string) (string, error) {
		return line, nil
	}
}
