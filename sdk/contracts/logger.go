package contracts

import "time"

// LogLevel represents the severity level for logging. Levels are ordered;
// a logger set to a level emits that level and everything above it.
type LogLevel int

const (
	// DebugLevel indicates verbose messages useful when troubleshooting.
	DebugLevel LogLevel = iota + 1
	// InfoLevel indicates informational messages about normal progress.
	InfoLevel
	// WarnLevel indicates potentially harmful situations worth monitoring.
	WarnLevel
	// ErrorLevel indicates serious issues that need attention.
	ErrorLevel
)

// Field carries one structured key/value pair attached to a log entry.
// Each builder method returns a fresh Field holding that single pair.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
}

// Logger provides leveled, structured logging. Implementations must be
// safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Field returns a builder for a structured field, e.g.
	// log.Field().String("device", path).
	Field() Field

	SetLevel(level LogLevel)
}
