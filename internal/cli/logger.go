package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes "[timestamp] message" lines to an optional log file and an
// optional mirror (stderr in verbose mode). A nil Logger discards everything.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	mirror io.Writer
}

// NewLogger creates a logger. An empty logPath disables the file; a nil mirror
// disables mirroring.
func NewLogger(logPath string, mirror io.Writer) (*Logger, error) {
	logger := &Logger{mirror: mirror}

	if logPath != "" {
		f, err := os.Create(logPath) // #nosec G304 - log path is chosen by the user
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}

		logger.file = f
		logger.writeFile(fmt.Sprintf("=== fsutil Log Started: %s ===", time.Now().Format(time.RFC3339)))
	}

	return logger, nil
}

// Close writes the end banner and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.writeFile(fmt.Sprintf("=== fsutil Log Ended: %s ===", time.Now().Format(time.RFC3339)))

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.file.Close()
	l.file = nil

	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

// Logf formats and logs a message.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}

	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_, _ = fmt.Fprintf(l.file, "[%s] %s\n", timestamp, message)
	}

	if l.mirror != nil {
		_, _ = fmt.Fprintf(l.mirror, "[%s] %s\n", timestamp, message)
	}
}

func (l *Logger) writeFile(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_, _ = fmt.Fprintln(l.file, line)
	}
}
