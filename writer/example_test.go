package writer_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flexlog/flexlog/core"
	"github.com/flexlog/flexlog/logger"
	"github.com/flexlog/flexlog/writer"
)

func fixedEnrich(level string, message any) any {
	return core.Record{
		Timestamp: "2024-01-01T00:00:00Z",
		Level:     level,
		Message:   message,
	}
}

// Fan a line out to several destinations with Multi.
func ExampleMulti() {
	log := logger.NewBuilder().
		WithEnrich(fixedEnrich).
		WithWrite(writer.Multi(writer.Stdout(), writer.Discard())).
		Build()

	log.Func("info")("fanned out")

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"INFO","message":"fanned out"}
}

// Route log lines to a file with a FileSink.
func ExampleFile() {
	dir, err := os.MkdirTemp("", "flexlog-example")
	if err != nil {
		fmt.Println("tempdir:", err)
		return
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.log")

	sink, err := writer.File(path)
	if err != nil {
		fmt.Println("open:", err)
		return
	}

	log := logger.NewBuilder().
		WithEnrich(fixedEnrich).
		WithWrite(sink.Write).
		Build()

	log.Func("error")("disk full")
	if err := sink.Close(); err != nil {
		fmt.Println("close:", err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read:", err)
		return
	}
	fmt.Print(string(data))

	// Output:
	// {"timestamp":"2024-01-01T00:00:00Z","logLevel":"ERROR","message":"disk full"}
}
