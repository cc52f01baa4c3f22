package main

import (
	"context"
	"log/slog"
	"os"

	"bdgaraj/config"
	"bdgaraj/internal/delivery"
	"bdgaraj/internal/delivery/api"
	"bdgaraj/internal/delivery/api/middleware"
	"bdgaraj/internal/delivery/api/router/handler"
	"bdgaraj/internal/domain/lifecycle"
	"bdgaraj/internal/infra/auth"
	"bdgaraj/internal/infra/blob"
	logs "bdgaraj/internal/infra/log"
	"bdgaraj/internal/infra/notification"
	"bdgaraj/internal/infra/persistence"
	"bdgaraj/internal/infra/qrcode"
	"bdgaraj/internal/usecase"
	"bdgaraj/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Seeder usecase.SeedUsecase
	Logger *slog.Logger
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
			seed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewNotifier,
			blob.New,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAppointmentService,
			impl.NewBlogPostService,
			impl.NewServiceService,
			impl.NewFeatureService,
			impl.NewTestimonialService,
			impl.NewFAQService,
			impl.NewProductService,
			impl.NewContactInfoService,
			impl.NewCTASectionService,
			impl.NewCommentService,
			impl.NewUploadService,
			impl.NewSeedService,
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
			handler.NewAppointmentHandler,
			handler.NewBlogPostHandler,
			handler.NewServiceHandler,
			handler.NewFeatureHandler,
			handler.NewTestimonialHandler,
			handler.NewFAQHandler,
			handler.NewProductHandler,
			handler.NewContactInfoHandler,
			handler.NewCTASectionHandler,
			handler.NewCommentHandler,
			handler.NewUploadHandler,
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

// seed runs after the store start hooks have checked connectivity and before
// the server accepts requests.
func seed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seedCtx, cancel := context.WithTimeout(ctx, lifecycle.SeedTimeout)
			defer cancel()

			params.Logger.Info("Seeding baseline content")

			return params.Seeder.Seed(seedCtx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
