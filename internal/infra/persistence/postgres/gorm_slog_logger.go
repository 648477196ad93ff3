package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adresses/config"
	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger writes GORM output through slog, preferring the logger of the current request.
type queryLogger struct {
	base      *slog.Logger
	mode      gormlogger.LogLevel
	slowAfter time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &queryLogger{base: base, mode: gormlogger.Warn, slowAfter: defaultSlowQueryThreshold}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.mode = gormlogger.Info
	}
	if cfg.Store != nil && cfg.Store.SlowQueryThreshold > 0 {
		l.slowAfter = cfg.Store.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.mode = mode

	return &next
}

func (l *queryLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *queryLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

// Trace reports failed statements and slow ones. Every statement is logged at debug level in Info mode.
// A missing record is an expected outcome and is never reported.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.mode == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case failed && l.mode >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "SQL statement failed", slog.String("error", err.Error())
	case l.slowAfter > 0 && elapsed > l.slowAfter && l.mode >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow SQL statement", slog.Duration("threshold", l.slowAfter)
	case l.mode >= gormlogger.Info:
		level, msg = slog.LevelDebug, "SQL statement"
	default:
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.base == nil || l.mode < threshold {
		return
	}

	l.logger(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(format, args...)))
}

func (l *queryLogger) logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
