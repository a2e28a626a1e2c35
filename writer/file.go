package writer

import (
	"bufio"
	"os"
	"sync"
)

// FileSink is a write strategy that appends lines to a file through a
// buffered writer. Its Write method has the core.WriteFunc shape, so a
// sink plugs into a configuration as a method value:
//
//	sink, err := writer.File("/var/log/app.log")
//	...
//	log := logger.NewBuilder().WithWrite(sink.Write).Build()
//	defer sink.Close()
//
// Buffered bytes reach the file on Flush or Close. Rotation is out of
// scope; wrap the sink in your own core.WriteFunc if you need it.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
}

// File opens (creating if necessary) the named file in append mode and
// returns a sink writing to it.
func File(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

// Write appends the line, followed by a newline, to the file and
// returns the line.
func (s *FileSink) Write(level, line string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.buf.WriteString(line); err != nil {
		return "", err
	}
	if err := s.buf.WriteByte('\n'); err != nil {
		return "", err
	}
	return line, nil
}

// Flush forces buffered lines out to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Flush()
}

// Close flushes buffered lines and closes the file. The sink must not
// be used afterwards.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flushErr := s.buf.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
