package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured log attribute.
type Field struct {
	Key   string
	Value any
}

// String creates a Field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a Field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used across the codec, arithmetic, and
// server layers. Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger atop a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger builds a component-scoped ZerologAdapter writing to w.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger builds a ZerologAdapter writing JSON to stderr at info
// level, scoped to the "basex" component.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "basex")
}

func (a *ZerologAdapter) applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// Debug logs a debug-level message.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Info logs an info-level message.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.zl.Info(), fields).Msg(msg)
}

// Error logs an error-level message, attaching err under the "error" key
// when non-nil.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.zl.Error()
	if err != nil {
		e = e.Err(err)
	}
	a.applyFields(e, fields).Msg(msg)
}

// Printf formats and logs at info level, for call sites migrated from
// fmt-style logging.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msgf(format, args...)
}

// Println joins args and logs at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// StdLoggerAdapter implements Logger atop the standard library's log.Logger,
// for environments where structured JSON output isn't wanted (e.g. a
// human-facing CLI running in a terminal).
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += " " + f.Key + "=" + fmt.Sprint(f.Value)
	}
	return s
}

// Debug logs a [DEBUG]-tagged message.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Print("[DEBUG] " + msg + formatFields(fields))
}

// Info logs an [INFO]-tagged message.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Print("[INFO] " + msg + formatFields(fields))
}

// Error logs an [ERROR]-tagged message, appending err when non-nil.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	line := "[ERROR] " + msg
	if err != nil {
		line += ": " + err.Error()
	}
	a.l.Print(line + formatFields(fields))
}

// Printf formats and writes a raw line.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.l.Printf(format, args...)
}

// Println writes a raw line joining args.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.l.Println(args...)
}
