package writer

import (
	"slices"

	"github.com/flexlog/flexlog/core"
)

// Multi returns a write strategy that fans each line out to every given
// strategy in order. The result of the last strategy that succeeded is
// returned (or the line itself when none did), along with the last
// error encountered; one failing destination does not stop delivery to
// the others.
func Multi(writes ...core.WriteFunc) core.WriteFunc {
	ws := slices.Clone(writes)
	return func(level, line string) (string, error) {
		result := line
		var lastErr error
		for _, w := range ws {
			r, err := w(level, line)
			if err != nil {
				lastErr = err
				continue
			}
			result = r
		}
		return result, lastErr
	}
}
