package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

// field helpers, so callers don't need to import zap
var (
	Skip     = zap.Skip
	Binary   = zap.Binary
	Bool     = zap.Bool
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Ints     = zap.Ints
	Int64    = zap.Int64
	Uint     = zap.Uint
	Float    = zap.Float64
	Float64  = zap.Float64
	Time     = zap.Time
	Duration = zap.Duration
	Any      = zap.Any
	Stringer = zap.Stringer

	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
	AddStacktrace = zap.AddStacktrace
)

func ErrorField(err error) Field {
	return zap.Error(err)
}

type Logger struct {
	l     *zap.Logger
	level Level
}

var std = New(os.Stderr, InfoLevel)

func Default() *Logger {
	return std
}

// ResetDefault replaces the default logger and the package level functions
// bound to it. Not safe for concurrent use, call it during startup.
func ResetDefault(l *Logger) {
	std = l
	Info = std.Info
	Warn = std.Warn
	Error = std.Error
	Debug = std.Debug
	Fatal = std.Fatal
	Fatalf = std.Fatalf
}

var (
	Info   = std.Info
	Warn   = std.Warn
	Error  = std.Error
	Debug  = std.Debug
	Fatal  = std.Fatal
	Fatalf = std.Fatalf
)

// New creates a json logger writing to writer.
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// DevLogger creates a human readable console logger writing to writer.
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	if writer == nil {
		panic("the writer is nil")
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) WithOptions(opts ...Option) *Logger {
	return &Logger{l: l.l.WithOptions(opts...), level: l.level}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...Field) {
	l.l.Fatal(msg, fields...)
}

func (l *Logger) Fatalf(template string, args ...any) {
	l.l.Sugar().Fatalf(template, args...)
}

func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	l.l.Sugar().Debugw(msg, keysAndValues...)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func Sync() error {
	if std != nil {
		return std.Sync()
	}
	return nil
}
