// Command seed loads the fixture stores, deals and tips into the configured
// database and exits. Useful for preparing a database outside the service
// startup path.
package main

import (
	"context"
	"log/slog"
	"os"

	"dealdigest/config"
	logs "dealdigest/internal/infra/log"
	"dealdigest/internal/infra/persistence/sqlite"
	"dealdigest/internal/infra/seed"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			sqlite.New,
			sqlite.NewStoreRepository,
			sqlite.NewDealRepository,
			sqlite.NewTipRepository,
			seed.New,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, seeder *seed.Seeder, logger *slog.Logger, shutdowner fx.Shutdowner) {
	if err := seeder.Run(ctx); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding complete")
	_ = shutdowner.Shutdown()
}
