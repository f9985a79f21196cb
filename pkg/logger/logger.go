package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zap.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		z = zap.NewExample()
	}

	return &Logger{logger: z}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{logger: zap.NewNop()}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(zapcore.DebugLevel, message, args...)
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(zapcore.InfoLevel, message, args...)
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(zapcore.WarnLevel, message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(zapcore.ErrorLevel, message, args...)
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(zapcore.FatalLevel, message, args...)
}

func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// msg accepts either a format string with args, or an error followed by an
// optional call site string and key/value pairs.
func (l *Logger) msg(level zapcore.Level, message interface{}, args ...interface{}) {
	switch m := message.(type) {
	case error:
		where := m.Error()
		if len(args) > 0 {
			if s, ok := args[0].(string); ok {
				where = s
			}
		}
		fields := []zap.Field{zap.Error(m)}
		for i := 1; i+1 < len(args); i += 2 {
			fields = append(fields, zap.Any(fmt.Sprint(args[i]), args[i+1]))
		}
		l.logger.Log(level, where, fields...)
	case string:
		l.log(level, m, args...)
	default:
		l.log(level, fmt.Sprintf("%s message %v has unknown type %v", level.CapitalString(), message, m), args...)
	}
}

func (l *Logger) log(level zapcore.Level, message string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.Log(level, message)
	} else {
		l.logger.Log(level, fmt.Sprintf(message, args...))
	}
}
