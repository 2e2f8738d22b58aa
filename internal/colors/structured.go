package colors

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

var structuredEnabled atomic.Bool

func init() {
	structuredEnabled.Store(true)
}

// StructuredLogLevel is the level of a structured console entry.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line written to stderr in debug mode.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging stops structured entries, e.g. while the TUI
// owns the terminal.
func DisableStructuredLogging() {
	structuredEnabled.Store(false)
}

// EnableStructuredLogging re-enables structured entries.
func EnableStructuredLogging() {
	structuredEnabled.Store(true)
}

// StructuredLoggingEnabled reports whether structured entries are written.
func StructuredLoggingEnabled() bool {
	return structuredEnabled.Load()
}

// StructuredLog writes a JSON entry to stderr when debug output is on.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, fields map[string]any) {
	if !debugEnabled.Load() || !structuredEnabled.Load() {
		return
	}
	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		write(true, "structured", fmt.Sprintf("failed to marshal structured log: %v", marshalErr))
		return
	}
	write(true, "structured", string(data))
}

// StructuredDebug logs a structured debug entry.
func StructuredDebug(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelDebug, component, action, status, err, fields)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, err, fields)
}

// StructuredWarn logs a structured warning entry.
func StructuredWarn(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelWarn, component, action, status, err, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, fields)
}
