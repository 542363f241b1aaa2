package main

import (
	"context"
	"log/slog"
	"os"

	"dealdigest/config"
	"dealdigest/internal/delivery"
	"dealdigest/internal/delivery/http"
	"dealdigest/internal/delivery/http/middleware"
	"dealdigest/internal/delivery/http/router/handler"
	"dealdigest/internal/domain/service"
	logs "dealdigest/internal/infra/log"
	"dealdigest/internal/infra/persistence/sqlite"
	"dealdigest/internal/infra/qrcode"
	"dealdigest/internal/infra/recommendation"
	"dealdigest/internal/infra/seed"
	"dealdigest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewNewsletterRepository,
			sqlite.NewDealRepository,
			sqlite.NewStoreRepository,
			sqlite.NewSubscriberRepository,
			sqlite.NewTipRepository,
			sqlite.NewAnalyticsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			recommendation.NewFixtureProvider,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNewsletterService,
			impl.NewDealService,
			impl.NewStoreService,
			impl.NewSubscriberService,
			impl.NewTipService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNewsletterHandler,
			handler.NewStoreHandler,
			handler.NewDealHandler,
			handler.NewSubscriberHandler,
			handler.NewTipHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			seed.New,
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedOnStart loads fixtures into an empty database when enabled.
func seedOnStart(ctx context.Context, cfg *config.Config, seeder *seed.Seeder) error {
	if cfg.Seed == nil || !cfg.Seed.OnEmpty {
		return nil
	}

	return seeder.Run(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
