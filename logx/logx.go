// Package logx provides the leveled, field-annotated logger the boruvka
// command writes through; the engine packages themselves do not log. It
// is a stdlib-only hand roll:
// grepping the full example repos in the retrieval pack turned up no
// third-party structured-logging library (zap, zerolog, logrus) in
// actual use anywhere — only junjiewwang-perf-analysis's own hand-rolled
// pkg/utils.Logger, which this package adapts.
package logx

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config/flag string onto a Level, defaulting to Info
// for anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO", "":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled, field-annotated lines. WithFields returns a new
// Logger carrying the combined field set; it never mutates the receiver,
// so a base logger can be safely shared and derived from concurrently.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	WithFields(fields map[string]interface{}) Logger
}

// textLogger is the sole Logger implementation: plain timestamped lines
// with sorted "key=value" field suffixes, written under a mutex so
// concurrent round workers never interleave partial lines.
type textLogger struct {
	mu     *sync.Mutex
	level  Level
	output io.Writer
	fields map[string]interface{}
}

// New builds a Logger at the given level, writing to output.
func New(level Level, output io.Writer) Logger {
	return &textLogger{
		mu:     &sync.Mutex{},
		level:  level,
		output: output,
		fields: map[string]interface{}{},
	}
}

// Default is a convenience Logger at LevelInfo writing to stderr, used
// by anything that has not been handed an explicit Logger.
var Default Logger = New(LevelInfo, os.Stderr)

func (l *textLogger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }
func (l *textLogger) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args...) }
func (l *textLogger) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args...) }
func (l *textLogger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

func (l *textLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &textLogger{mu: l.mu, level: l.level, output: l.output, fields: merged}
}

func (l *textLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fieldStr string
	for _, k := range keys {
		fieldStr += fmt.Sprintf(" %s=%v", k, l.fields[k])
	}

	line := fmt.Sprintf("[%s] [%s]%s %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		level, fieldStr, fmt.Sprintf(msg, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write([]byte(line))
}
