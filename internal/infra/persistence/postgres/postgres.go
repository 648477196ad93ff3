package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"adresses/config"
	"adresses/internal/domain/lifecycle"
	"adresses/internal/errors"
	"adresses/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params holds dependencies for the PostgreSQL client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and registers ping, migration and close hooks.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Cascading deletes and rating upserts open their own transaction through TransactionManager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	autoMigrate := params.Config.Store != nil && params.Config.Store.AutoMigrate
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if autoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("PostgreSQL schema migrated")
			}

			go newPoolWatcher(params.Logger, sqlDB).run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates every table of the relational store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// poolWatcher logs connection pool contention between two samples of sql.DBStats.
type poolWatcher struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	warnAfter time.Duration
}

func newPoolWatcher(logger *slog.Logger, sqlDB *sql.DB) *poolWatcher {
	return &poolWatcher{
		logger:    logger,
		stats:     sqlDB.Stats,
		interval:  dbPoolMonitorInterval,
		warnAfter: dbPoolWarnDurationThreshold,
	}
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := w.stats()
			w.compare(ctx, last, next)
			last = next
		}
	}
}

// compare reports the requests that had to wait for a connection since the previous sample.
func (w *poolWatcher) compare(ctx context.Context, last, next sql.DBStats) {
	waited := next.WaitCount - last.WaitCount
	if waited <= 0 {
		return
	}

	spent := next.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if spent >= w.warnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Requests waited for a database connection",
		slog.Int64("waits", waited),
		slog.Duration("waited", spent),
		slog.Duration("avg_wait", spent/time.Duration(waited)),
		slog.Group("pool",
			slog.Int("max_open", next.MaxOpenConnections),
			slog.Int("open", next.OpenConnections),
			slog.Int("in_use", next.InUse),
			slog.Int("idle", next.Idle),
		),
	)
}
