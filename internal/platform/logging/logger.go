// Package logging is a thin key/value facade over zap. Context variants attach
// the active trace and span ids so log lines join up with Uptrace spans.
package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// callerSkip hides the facade method and emit from reported callers.
const callerSkip = 2

type Logger struct {
	base     *zap.Logger
	syncOnce *sync.Once
}

var fallback atomic.Pointer[Logger]

func init() {
	fallback.Store(NewNop())
}

func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", raw)
}

// New picks the console encoder in dev and JSON everywhere else.
func New(env string, level Level) *Logger {
	if strings.EqualFold(strings.TrimSpace(env), "dev") {
		return NewConsole(level)
	}
	return NewJSON(level)
}

func NewConsole(level Level) *Logger {
	cfg := encoding()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return build(zapcore.NewConsoleEncoder(cfg), level)
}

func NewJSON(level Level) *Logger {
	return build(zapcore.NewJSONEncoder(encoding()), level, zap.AddStacktrace(zapcore.ErrorLevel))
}

func NewNop() *Logger {
	return FromZap(nil)
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{base: z, syncOnce: &sync.Once{}}
}

func build(enc zapcore.Encoder, level Level, extra ...zap.Option) *Logger {
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level)
	opts := append([]zap.Option{zap.AddCaller(), zap.AddCallerSkip(callerSkip)}, extra...)
	return FromZap(zap.New(core, opts...))
}

func encoding() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "msg"
	cfg.FunctionKey = zapcore.OmitKey
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

func Default() *Logger {
	return fallback.Load()
}

// SetDefault replaces the logger used by nil receivers; nil resets to no-op.
func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	fallback.Store(logger)
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	var err error
	l.syncOnce.Do(func() { err = l.base.Sync() })
	return err
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		l = Default()
	}
	return &Logger{base: l.base.With(fields(args)...), syncOnce: l.syncOnce}
}

func (l *Logger) Debug(msg string, args ...any) { l.emit(context.Background(), LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.emit(context.Background(), LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.emit(context.Background(), LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.emit(context.Background(), LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelError, msg, args)
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, args []any) {
	if l == nil {
		l = Default()
	}
	entry := l.base.Check(level, msg)
	if entry == nil {
		return
	}

	out := fields(args)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		out = append(out,
			zap.Stringer("trace_id", sc.TraceID()),
			zap.Stringer("span_id", sc.SpanID()),
		)
	}
	entry.Write(out...)
}

// fields pairs up alternating keys and values. Non-string keys become "arg"
// and a trailing key is kept with a nil value.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2+2)
	for len(args) > 0 {
		key, _ := args[0].(string)
		if key == "" {
			key = "arg"
		}
		var value any
		if len(args) > 1 {
			value = args[1]
		}
		args = args[min(2, len(args)):]

		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}
	return out
}
