// Package log is the logging facade of the command line tools, a thin
// layer over zap's sugared logger.
package log

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger logs key/value pairs at different levels.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
	Sync() error
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// DefaultLevel is the level of DefaultLogger.
var DefaultLevel = WarnLevel

var defaultOnce sync.Once
var defaultLogger Logger

// DefaultLogger logs to stderr at DefaultLevel in console format.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(nil, DefaultLevel, false)
	})
	return defaultLogger
}

// New returns a logger writing to output (stderr when nil) at level.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	if output == nil {
		output = os.Stderr
	}
	encoder := getConsoleEncoder()
	if isJSON {
		encoder = getJSONEncoder()
	}
	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &log{zap.New(core).Sugar()}
}

// ParseLevel maps "debug", "info", "warn" or "error" to a level.
func ParseLevel(s string) (int, error) {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return 0, errors.Wrapf(err, "log level %q", s)
	}
	return int(lvl), nil
}

func getJSONEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

type ctxLoggerKey struct{}

// ToContext stores l on ctx.
func ToContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContextOrDefault returns the logger set with ToContext, or
// DefaultLogger when there is none.
func FromContextOrDefault(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxLoggerKey{}).(Logger); ok {
			return l
		}
	}
	return DefaultLogger()
}
