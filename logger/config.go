// Package logger provides a structured logging interface for applications.
package logger

import (
	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "file"
	timeKey    = "time"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error"
	// Default is "info".
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"info"`

	// Encoding specifies the log format.
	// Valid values are: "json", "console"
	// Default is "json".
	//
	// "console" produces colored, human-readable output with indented JSON
	// for complex fields. "json" produces compact JSON logs suitable for
	// production environments and log processing systems.
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"json"`
}

// prepare applies defaults to unset fields and validates the result.
func (c *Config) prepare() error {
	if err := defaults.Set(c); err != nil {
		return errx.Wrap(err)
	}
	if err := validator.New().Struct(c); err != nil {
		return errx.Wrap(err)
	}
	return nil
}

// zapConfig converts the logger Config to a zap.Config.
func (c Config) zapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	err := zapLevel.UnmarshalText([]byte(c.Level))
	if err != nil {
		return nil, errx.Wrap(err)
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	zapConfig := zap.Config{
		Level:            zapLevel,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         c.Encoding,
		EncoderConfig:    encoderConfig,
	}

	return &zapConfig, nil
}
