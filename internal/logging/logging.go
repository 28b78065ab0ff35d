// Package logging sets up the dmux lifecycle log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout written in front of every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Open creates (if needed) and opens the append-only log at path. Past 10MB the
// file is rotated aside with a timestamp suffix and every rotated file is
// retained. The returned closer flushes the underlying file and must be closed
// on exit.
func Open(path string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create dir for %s: %w", path, err)
	}
	// Rotated files are kept forever; nothing is deleted on rotation.
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 0,
		MaxAge:     0,
	}
	return New(w), w, nil
}

// New returns a logger writing debug-level plain text lines to w.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	return New(io.Discard)
}
