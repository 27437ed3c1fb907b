package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"medifind/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts slog to gorm's logger.Interface. Record-not-found
// is an expected outcome for lookups and is never logged as an error.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		// Debug runs log every statement.
		level = logger.Info
	}

	return &queryLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) logf(ctx context.Context, gormLevel logger.LogLevel, slogLevel slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < gormLevel {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "Database",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logQuery(ctx, slog.LevelError, "Query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logQuery(ctx, slog.LevelWarn, "Slow query", sqlAndRowsFn, elapsed,
			slog.Duration("slowThreshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.logQuery(ctx, slog.LevelInfo, "Query", sqlAndRowsFn, elapsed)
	}
}

func (l *queryLogger) logQuery(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
