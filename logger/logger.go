// Package logger provides a structured logging interface for applications.
//
// It wraps the zap logging library to provide a simpler API while maintaining
// high performance. The package supports different log levels and a
// development-friendly console encoding.
package logger

import (
	"os"

	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the standard logging interface used across applications.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(args ...any)
	// Info logs a message at info level.
	Info(args ...any)
	// Warn logs a message at warn level.
	Warn(args ...any)
	// Error logs a message at error level.
	Error(args ...any)

	// Debugf logs a formatted message at debug level.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at info level.
	Infof(format string, args ...any)
	// Warnf logs a formatted message at warn level.
	Warnf(format string, args ...any)
	// Errorf logs a formatted message at error level.
	Errorf(format string, args ...any)

	// Debugw logs a message with key-value pairs at debug level.
	Debugw(msg string, keysAndValues ...any)
	// Infow logs a message with key-value pairs at info level.
	Infow(msg string, keysAndValues ...any)
	// Warnw logs a message with key-value pairs at warn level.
	Warnw(msg string, keysAndValues ...any)
	// Errorw logs a message with key-value pairs at error level.
	Errorw(msg string, keysAndValues ...any)

	// With creates a new logger with the given key-value pairs attached to
	// all subsequent log entries.
	With(keysAndValues ...any) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	// Intended for use on application shutdown to ensure all logs are written.
	Sync() error
}

// logger implements the Logger interface using zap's SugaredLogger.
type logger struct {
	*zap.SugaredLogger
}

// New creates a new Logger instance with the provided configuration.
func New(cfg Config) (Logger, error) {
	if err := cfg.prepare(); err != nil {
		return nil, errx.Wrap(err)
	}

	zapConfig, err := cfg.zapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	var zapLogger *zap.Logger

	if cfg.Encoding == EncodingConsole {
		core := zapcore.NewCore(
			newDevEncoder(zapConfig.EncoderConfig),
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		)
		zapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddCallerSkip(1),
		)
	} else {
		zapLogger, err = zapConfig.Build()
		if err != nil {
			return nil, errx.Wrap(err)
		}
	}

	return &logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// FromZap wraps an existing zap logger. Useful in tests where log output is
// captured with an observer core.
func FromZap(z *zap.Logger) Logger {
	return &logger{SugaredLogger: z.Sugar()}
}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return &logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.With(keysAndValues...),
	}
}

func (l *logger) Named(name string) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.Named(name),
	}
}
