package formatter

import (
	"fmt"

	"github.com/flexlog/flexlog/core"
)

// Text returns a human-readable format strategy.
//
// A core.Record is emitted as "timestamp [LEVEL] message". Any other
// enriched value is rendered with %v.
func Text() core.FormatFunc {
	return formatText
}

func formatText(enriched any) (string, error) {
	rec, ok := enriched.(core.Record)
	if !ok {
		return fmt.Sprintf("%v", enriched), nil
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(rec.Timestamp)
	buf.WriteString(" [")
	buf.WriteString(rec.Level)
	buf.WriteString("] ")

	if msg, ok := rec.Message.(string); ok {
		buf.WriteString(msg)
	} else {
		fmt.Fprintf(buf, "%v", rec.Message)
	}

	return buf.String(), nil
}
