// Package logger provides a structured logging interface for applications.
package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder is a custom encoder for development mode that outputs colored,
// human-readable logs with indented JSON for complex fields.
type devEncoder struct {
	zapcore.Encoder
	jsonEncoder zapcore.Encoder
	pool        buffer.Pool
}

// newDevEncoder creates a development encoder with color support and JSON
// indentation.
func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	return &devEncoder{
		Encoder:     zapcore.NewConsoleEncoder(encoderConfig),
		jsonEncoder: zapcore.NewJSONEncoder(encoderConfig),
		pool:        buffer.NewPool(),
	}
}

// EncodeEntry renders the console line with a colorized level and appends the
// entry's fields as indented JSON on the following lines.
func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	consoleBuf, err := e.Encoder.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}

	line := colorizeLevel(strings.TrimRight(consoleBuf.String(), "\n"), entry.Level)

	if len(fields) > 0 {
		fieldBuf, encErr := e.jsonEncoder.EncodeEntry(entry, fields)
		if encErr != nil {
			return nil, encErr
		}
		line += renderFields(fieldBuf)
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")

	return buf, nil
}

// renderFields pretty-prints the entry's fields, dropping the keys already
// present in the console prefix.
func renderFields(fieldBuf *buffer.Buffer) string {
	var fieldsMap map[string]any
	if err := json.Unmarshal(fieldBuf.Bytes(), &fieldsMap); err != nil {
		return " " + strings.TrimRight(fieldBuf.String(), "\n")
	}

	for _, key := range []string{messageKey, levelKey, nameKey, callerKey, timeKey} {
		delete(fieldsMap, key)
	}
	if len(fieldsMap) == 0 {
		return ""
	}

	pretty, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return " " + strings.TrimRight(fieldBuf.String(), "\n")
	}
	return "\n" + string(pretty)
}

// colorizeLevel replaces the log level in the line with a colored version.
func colorizeLevel(line string, level zapcore.Level) string {
	var colorFunc func(a ...any) string

	switch level {
	case zapcore.DebugLevel:
		colorFunc = color.New(color.FgCyan).SprintFunc()
	case zapcore.InfoLevel:
		colorFunc = color.New(color.FgGreen).SprintFunc()
	case zapcore.WarnLevel:
		colorFunc = color.New(color.FgYellow).SprintFunc()
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		colorFunc = color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return line
	}

	levelStr := level.CapitalString()
	if strings.Contains(line, levelStr) {
		return strings.Replace(line, levelStr, colorFunc(levelStr), 1)
	}
	return line
}
