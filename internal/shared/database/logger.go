package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dormlife/community-api/internal/config"
	"github.com/dormlife/community-api/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger sends GORM output through the request logger found in ctx, so
// queries carry request_id and member_id like the rest of the request's logs.
type GormLogger struct {
	SlowThreshold time.Duration
	HideSQL       bool
	LogLevel      gormlogger.LogLevel
}

// local/dev: 모든 쿼리 debug 출력, prod: 에러만 + SQL 숨김
func newLogger(cfg *config.Config) gormlogger.Interface {
	logLevel := gormlogger.Info
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	return &GormLogger{
		SlowThreshold: cfg.Database.SlowThreshold,
		HideSQL:       cfg.IsProduction(),
		LogLevel:      logLevel,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *l
	copied.LogLevel = level
	return &copied
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.from(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed and slow queries, and every query at Info level.
// Record-not-found and duplicate-key results are expected outcomes
// (unknown email at signin, email race at signup) and are never logged as errors.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		attrs = append(attrs, "sql", sql)
	}
	log := l.from(ctx)

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && !expected(err):
		log.ErrorContext(ctx, "쿼리 실행 실패", append(attrs, "error", err)...)

	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		log.WarnContext(ctx, "슬로우 쿼리 감지", append(attrs, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		log.DebugContext(ctx, "쿼리 실행", attrs...)
	}
}

func (l *GormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "gorm")
}

func expected(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey)
}
