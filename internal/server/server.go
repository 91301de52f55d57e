package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/littleforest/storefront/internal/config"
	pkgmdw "github.com/littleforest/storefront/internal/server/middleware"
	"github.com/littleforest/storefront/internal/usecase"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	cartHandler CartController,
	authHandler AuthController,
	adminHandler AdminController,
	authUsecase *usecase.AuthUseCase,
) {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(pkgmdw.CORS(regexp.MustCompile(conf.Server.CORSOrigin)))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")
	api.GET("/products", handler.ListProducts)
	api.GET("/products/categories", handler.ListCategories)
	api.GET("/products/:id", handler.GetProduct)
	api.GET("/content", handler.ListContent)
	api.GET("/content/:type", handler.GetContentByType)
	api.GET("/testimonials", handler.ListTestimonials)
	api.POST("/contact", handler.SubmitContact)

	cart := api.Group("/cart")
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:productId", cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
	cart.POST("/checkout", cartHandler.Checkout)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, pkgmdw.JWTAuth(authUsecase))
	auth.POST("/logout", authHandler.Logout, pkgmdw.JWTAuth(authUsecase))

	admin := api.Group("/admin", pkgmdw.JWTAuth(authUsecase))
	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.PUT("/products/:id/stock", adminHandler.SyncStock)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/content", adminHandler.ListContent)
	admin.PUT("/content", adminHandler.SaveContent)
	admin.DELETE("/content/:id", adminHandler.DeleteContent)
	admin.GET("/testimonials", adminHandler.ListTestimonials)
	admin.POST("/testimonials", adminHandler.CreateTestimonial)
	admin.PUT("/testimonials/:id", adminHandler.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", adminHandler.DeleteTestimonial)
	admin.GET("/messages", adminHandler.ListMessages)
	admin.PUT("/messages/:id/status", adminHandler.UpdateMessageStatus)
	admin.DELETE("/messages/:id", adminHandler.DeleteMessage)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
