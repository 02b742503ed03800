package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// Logger writes messages for a single subsystem to its Backend.
type Logger struct {
	level   uint32 // atomic
	tag     string
	backend *Backend
}

// Tracef formats message according to format specifier and writes to
// log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Writef(LevelTrace, format, args...)
}

// Debugf formats message according to format specifier and writes to
// log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Writef(LevelDebug, format, args...)
}

// Infof formats message according to format specifier and writes to
// log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Writef(LevelInfo, format, args...)
}

// Warnf formats message according to format specifier and writes to
// log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Writef(LevelWarn, format, args...)
}

// Errorf formats message according to format specifier and writes to
// log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Writef(LevelError, format, args...)
}

// Criticalf formats message according to format specifier and writes to
// log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Writef(LevelCritical, format, args...)
}

// Info writes the default-formatted args with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.Write(LevelInfo, args...)
}

// Warn writes the default-formatted args with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.Write(LevelWarn, args...)
}

// Write formats args using the default formats and writes them with the
// given level.
func (l *Logger) Write(logLevel Level, args ...interface{}) {
	if !l.IsEnabled(logLevel) {
		return
	}
	l.print(logLevel, fmt.Sprint(args...))
}

// Writef formats args according to format and writes them with the given
// level.
func (l *Logger) Writef(logLevel Level, format string, args ...interface{}) {
	if !l.IsEnabled(logLevel) {
		return
	}
	l.print(logLevel, fmt.Sprintf(format, args...))
}

// IsEnabled returns whether a message at logLevel would be written.
func (l *Logger) IsEnabled(logLevel Level) bool {
	return logLevel >= l.Level()
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

// Backend returns the log backend.
func (l *Logger) Backend() *Backend {
	return l.backend
}

// print formats the entry as
// "2006-01-02 15:04:05.000 [LVL] TAG: message" plus an optional callsite.
func (l *Logger) print(logLevel Level, message string) {
	var builder strings.Builder
	builder.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	builder.WriteString(" [")
	builder.WriteString(logLevel.String())
	builder.WriteString("] ")
	builder.WriteString(l.tag)
	if l.backend.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		builder.WriteByte(' ')
		builder.WriteString(callsite(l.backend.flag))
	}
	builder.WriteString(": ")
	builder.WriteString(message)
	if !strings.HasSuffix(message, "\n") {
		builder.WriteByte('\n')
	}
	l.backend.write(logEntry{log: []byte(builder.String()), level: logLevel})
}

// callsite returns the file and line of the caller of the exported
// Logger method.
func callsite(flag uint32) string {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "???:0"
	}
	if flag&LogFlagShortFile != 0 {
		file = filepath.Base(file)
	}
	return fmt.Sprintf("%s:%d", file, line)
}
