package main

import (
	"context"
	"log/slog"
	"os"

	"testament/config"
	"testament/internal/delivery"
	"testament/internal/delivery/http"
	"testament/internal/delivery/http/middleware"
	"testament/internal/delivery/http/router/handler"
	"testament/internal/infra/auth"
	logs "testament/internal/infra/log"
	"testament/internal/infra/notification"
	"testament/internal/infra/payment"
	"testament/internal/infra/persistence/postgres"
	"testament/internal/infra/qrcode"
	"testament/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewRandomKeyGenerator,
			auth.NewBcryptOTPHasher,
			notification.NewLogNotifier,
			payment.NewStubGateway,
			qrcode.NewGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewPersonalDetailsService,
			impl.NewIdentificationService,
			impl.NewBeneficiaryService,
			impl.NewAssetService,
			impl.NewAllocationService,
			impl.NewExecutorService,
			impl.NewGuardianService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewKeyAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewPersonalDetailsHandler,
			handler.NewIdentificationHandler,
			handler.NewBeneficiaryHandler,
			handler.NewAssetHandler,
			handler.NewAllocationHandler,
			handler.NewExecutorHandler,
			handler.NewGuardianHandler,
			handler.NewPaymentHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
