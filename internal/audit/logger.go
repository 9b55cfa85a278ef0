package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/turtle-script/internal/config"
	"github.com/turtle-script/turtle"
)

// FileName is the transcript file name inside the configured directory.
const FileName = "transcript.jsonl"

// Entry represents a single transcript entry.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	RunID     string    `json:"runId"`
	Step      int       `json:"step"`
	Op        string    `json:"op"`
	Arg       string    `json:"arg,omitempty"` // as written, so NaN and Inf survive
	Line      string    `json:"line"`
}

// Logger writes transcript entries. It implements turtle.Observer.
type Logger struct {
	mu       sync.Mutex
	runID    string
	step     int
	filePath string
	out      *lumberjack.Logger
}

var _ turtle.Observer = (*Logger)(nil)

// NewLogger creates a transcript logger for one run.
func NewLogger(cfg config.TranscriptConfig) (*Logger, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}

	filePath := filepath.Join(cfg.Dir, FileName)

	return &Logger{
		runID:    uuid.New().String(),
		filePath: filePath,
		out: &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}, nil
}

// Observe records an emitted command.
func (l *Logger) Observe(c turtle.Command) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.step++
	entry := Entry{
		Timestamp: time.Now().UTC(),
		RunID:     l.runID,
		Step:      l.step,
		Op:        string(c.Op),
		Line:      c.String(),
	}
	if c.HasArg {
		entry.Arg = turtle.FormatArg(c.Arg)
	}

	l.writeEntry(entry)
}

// writeEntry writes one JSON line. Callers hold l.mu.
func (l *Logger) writeEntry(entry Entry) {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal transcript entry: %v\n", err)
		return
	}

	if _, err := l.out.Write(append(jsonData, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write transcript entry: %v\n", err)
	}
}

// RunID returns the identifier stamped on every entry of this run.
func (l *Logger) RunID() string {
	return l.runID
}

// Steps returns the number of commands recorded so far.
func (l *Logger) Steps() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.step
}

// GetFilePath returns the path to the active transcript file.
func (l *Logger) GetFilePath() string {
	return l.filePath
}

// Rotate closes the current file, renames it with a timestamp and opens a
// fresh one.
func (l *Logger) Rotate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.out.Rotate(); err != nil {
		return fmt.Errorf("failed to rotate transcript: %w", err)
	}
	return nil
}

// Close closes the transcript file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}
