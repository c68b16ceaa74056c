package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	newContext := func() (context.Context, *bytes.Buffer) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return logger.WithLogger(context.Background(), log.With("request_id", "req-1")), &buf
	}
	query := func() (string, int64) { return `SELECT * FROM "member" WHERE email = 'a@b.com'`, 0 }

	t.Run("expected errors are not logged", func(t *testing.T) {
		l := &GormLogger{LogLevel: gormlogger.Error}
		ctx, buf := newContext()

		l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
		l.Trace(ctx, time.Now(), query, gorm.ErrDuplicatedKey)

		assert.Empty(t, buf.String())
	})

	t.Run("failure carries request attributes and hides sql", func(t *testing.T) {
		l := &GormLogger{LogLevel: gormlogger.Error, HideSQL: true}
		ctx, buf := newContext()

		l.Trace(ctx, time.Now(), query, errors.New("ORA-00942"))

		out := buf.String()
		assert.Contains(t, out, `"request_id":"req-1"`)
		assert.Contains(t, out, `"component":"gorm"`)
		assert.Contains(t, out, "ORA-00942")
		assert.NotContains(t, out, "a@b.com")
	})

	t.Run("slow query", func(t *testing.T) {
		l := &GormLogger{LogLevel: gormlogger.Warn, SlowThreshold: time.Millisecond}
		ctx, buf := newContext()

		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"threshold":"1ms"`)
	})

	t.Run("silent", func(t *testing.T) {
		l := (&GormLogger{LogLevel: gormlogger.Info}).LogMode(gormlogger.Silent)
		ctx, buf := newContext()

		l.Trace(ctx, time.Now(), query, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
