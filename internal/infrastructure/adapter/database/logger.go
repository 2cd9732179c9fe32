package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// RequestIDKey is the context key the HTTP layer stores the request id under
type RequestIDKey struct{}

// DatabaseLogger routes gorm output to the core logger. Regular statements go to debug,
// failures to error and statements slower than the threshold to warn.
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a gorm logger. level accepts the app log level names plus "silent".
func NewDatabaseLogger(
	coreLogger coreport.Logger,
	timeProvider coreport.TimeProvider,
	level string,
	slowThreshold time.Duration,
) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      gormLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

func gormLevel(level string) logger.LogLevel {
	if strings.EqualFold(strings.TrimSpace(level), "silent") {
		return logger.Silent
	}
	switch coreport.ParseLogLevel(level) {
	case coreport.LogLevelError:
		return logger.Error
	case coreport.LogLevelWarn:
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode returns a copy of the logger at the given level
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs one executed statement
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	statement, rows := fc()
	verb, table := statementShape(statement)

	fields := l.baseFields(ctx)
	fields["elapsed_ms"] = elapsed.Milliseconds()
	fields["rows"] = rows
	fields["sql"] = statement
	if verb != "" {
		fields["verb"] = verb
	}
	if table != "" {
		fields["table"] = table
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		l.coreLogger.Debug("SQL statement found no rows", fields)
	case err != nil:
		if l.logLevel >= logger.Error {
			fields["error"] = err.Error()
			l.coreLogger.Error("SQL statement failed", fields)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.logLevel >= logger.Warn {
			l.coreLogger.Warn("Slow SQL statement", fields)
		}
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL statement", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if ctx != nil {
		if id, ok := ctx.Value(RequestIDKey{}).(string); ok && id != "" {
			fields["request_id"] = id
		}
	}
	return fields
}

// statementShape returns the leading verb of a statement and the first table it names
func statementShape(statement string) (verb, table string) {
	words := strings.Fields(statement)
	if len(words) == 0 {
		return "", ""
	}
	verb = strings.ToUpper(words[0])

	marker := ""
	switch verb {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			return verb, strings.Trim(words[1], `"`)
		}
		return verb, ""
	default:
		return verb, ""
	}

	for i := 1; i < len(words)-1; i++ {
		if strings.EqualFold(words[i], marker) {
			return verb, strings.Trim(words[i+1], `"`)
		}
	}
	return verb, ""
}
