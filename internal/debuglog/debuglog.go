// Package debuglog writes JSON-lines debug events to a file when enabled.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs
const DefaultPath = "rendezvous-debug.log"

// Logger logs search and UI events to a writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

// Global logger instance, disabled until Init is called.
var std = &Logger{}

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w, enabled: true}
}

// Init enables the global logger, writing to path.
func Init(enabled bool, path string) error {
	if !enabled {
		std = &Logger{}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = &Logger{out: f, closer: f, enabled: true}
	std.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// Close flushes and closes the global logger.
func Close() {
	if std != nil && std.closer != nil {
		std.Log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = std.closer.Close()
	}
	std = &Logger{}
}

// Enabled reports whether the global logger writes anything.
func Enabled() bool {
	return std.enabled
}

// Log writes an event through the global logger.
func Log(event string, data map[string]any) {
	std.Log(event, data)
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if l == nil || !l.enabled || l.out == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.out, "%s\n", b)
}
