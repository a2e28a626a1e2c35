package formatter

import (
	"bytes"
	"encoding/json"

	"github.com/flexlog/flexlog/core"
)

// JSON returns the default format strategy: a single-line JSON object.
//
// A core.Record is emitted with the keys timestamp, logLevel and
// message, in that order. Any other enriched value is serialized with
// encoding/json as-is.
func JSON() core.FormatFunc {
	return formatJSON
}

func formatJSON(enriched any) (string, error) {
	rec, ok := enriched.(core.Record)
	if !ok {
		b, err := json.Marshal(enriched)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(`{"timestamp":"`)
	appendJSONString(buf, rec.Timestamp)
	buf.WriteString(`","logLevel":"`)
	appendJSONString(buf, rec.Level)
	buf.WriteString(`","message":`)

	switch msg := rec.Message.(type) {
	case string:
		buf.WriteByte('"')
		appendJSONString(buf, msg)
		buf.WriteByte('"')
	default:
		b, err := json.Marshal(msg)
		if err != nil {
			return "", err
		}
		buf.Write(b)
	}

	buf.WriteByte('}')
	return buf.String(), nil
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
