package core

import (
	"encoding/json"
	"testing"
)

func TestRecord_WireKeys(t *testing.T) {
	// Custom format strategies may json.Marshal a Record directly; the
	// tags must produce the wire keys.
	b, err := json.Marshal(Record{
		Timestamp: "2024-01-01T00:00:00Z",
		Level:     "INFO",
		Message:   "hello",
	})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	want := `{"timestamp":"2024-01-01T00:00:00Z","logLevel":"INFO","message":"hello"}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}
