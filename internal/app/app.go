package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/littleforest/storefront/internal/cart"
	"github.com/littleforest/storefront/internal/config"
	"github.com/littleforest/storefront/internal/repo/mongodb"
	"github.com/littleforest/storefront/internal/server"
	"github.com/littleforest/storefront/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newPublisher,
			newComposer,
			cart.NewManager,

			server.NewController,
			server.NewCartController,
			server.NewAuthController,
			server.NewAdminController,

			usecase.NewCatalogUseCase,
			usecase.NewCartUseCase,
			usecase.NewCheckoutUseCase,
			usecase.NewContentUseCase,
			usecase.NewContactUseCase,
			usecase.NewAuthUseCase,
			usecase.NewSeedInitializer,

			mongodb.NewProductRepository,
			mongodb.NewContentRepository,
			mongodb.NewTestimonialRepository,
			mongodb.NewContactMessageRepository,
			mongodb.NewAdminUserRepository,
			mongodb.NewAuthTokenRepository,
		),
		fx.Supply(conf),
		fx.Invoke(InitializeSeedData),
		fx.Invoke(CleanupAuthTokens),
		fx.Invoke(funcs...),
	)
}

// InitializeSeedData fills empty collections with the default catalog on
// startup.
func InitializeSeedData(lc fx.Lifecycle, seeder usecase.SeedInitializer) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seeder.InitializeDefaults(ctx)
		},
	})
}

// CleanupAuthTokens drops expired and revoked tokens once per boot.
func CleanupAuthTokens(lc fx.Lifecycle, authUsecase *usecase.AuthUseCase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authUsecase.CleanupExpiredTokens(ctx)
		},
	})
}
