// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logs on stderr (stdout is
// reserved for command output) and adapts the same logger to
// pgx so SQL statements can be traced in local development.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/config"
)

// New builds the application logger from the observability config.
//
// Every logger carries the service name, the environment and an
// invocation_id so lines from one run of the tool can be grouped.
func New(cfg *config.ObservabilityConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	var writer io.Writer = out
	if cfg.Logging.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("invocation_id", uuid.NewString()).
		Logger()
}

// NewPgxLogger returns a console logger dedicated to SQL tracing.
//
// Arguments are printed in full, so this is only wired in local env.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				// Collapse the whitespace of multi-line SQL.
				return strings.Join(strings.Fields(v), " ")
			case nil:
				return ""
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level to the tracelog level pgx
// expects.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
