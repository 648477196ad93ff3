package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Compare(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{
		logger:    slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnAfter: 50 * time.Millisecond,
	}
	ctx := context.Background()

	w.compare(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	w.compare(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "avg_wait=5ms")

	buf.Reset()
	w.compare(ctx, sql.DBStats{WaitCount: 1}, sql.DBStats{WaitCount: 5, WaitDuration: 200 * time.Millisecond, InUse: 4})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=4")
	assert.Contains(t, buf.String(), "pool.in_use=4")
}
