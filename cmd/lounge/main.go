package main

import (
	"context"
	"log/slog"
	"os"

	"lounge/config"
	"lounge/internal/delivery"
	"lounge/internal/delivery/api"
	"lounge/internal/delivery/api/middleware"
	"lounge/internal/delivery/api/router/handler"
	"lounge/internal/domain/denormalization"
	"lounge/internal/domain/service"
	"lounge/internal/infra/auth"
	"lounge/internal/infra/firebase"
	logs "lounge/internal/infra/log"
	"lounge/internal/infra/persistence"
	"lounge/internal/infra/persistence/postgres"
	"lounge/internal/infra/pubsub"
	"lounge/internal/infra/qrcode"
	"lounge/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
		fx.Provide(
			postgres.NewMigrationAuditRepository,
			denormalization.Default,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewAuthService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityMigrationService,
			impl.NewAccountService,
			impl.NewHistoryService,
			impl.NewCartService,
			impl.NewBookingService,
			impl.NewServiceRequestService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewHistoryHandler,
			handler.NewCartHandler,
			handler.NewBookingHandler,
			handler.NewServiceRequestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
