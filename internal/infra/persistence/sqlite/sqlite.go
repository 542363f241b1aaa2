// Package sqlite contains the concrete implementation of the persistence
// layer using GORM on SQLite.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"dealdigest/config"
	"dealdigest/internal/domain/lifecycle"
	"dealdigest/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database, runs migrations and registers lifecycle
// hooks. WAL keeps readers concurrent with the single writer; the busy
// timeout serializes concurrent writes instead of failing them.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config.SQLite
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Single-statement writes are already atomic in SQLite; explicit
		// transactions cover the multi-statement newsletter create.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping SQLite")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates every table of the schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.StoreModel{},
		&model.DealModel{},
		&model.SubscriberModel{},
		&model.NewsletterModel{},
		&model.NewsletterDealModel{},
		&model.TipModel{},
		&model.AnalyticsModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}
