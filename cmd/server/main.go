package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/valueops/api/handler"
	"github.com/fastygo/valueops/internal/config"
	"github.com/fastygo/valueops/internal/middleware"
	"github.com/fastygo/valueops/internal/router"
	"github.com/fastygo/valueops/internal/services/lifecycle"
	"github.com/fastygo/valueops/pkg/httpcontext"
	"github.com/fastygo/valueops/pkg/logger"
	"github.com/fastygo/valueops/usecase"
	calculatorUC "github.com/fastygo/valueops/usecase/calculator"
	usersUC "github.com/fastygo/valueops/usecase/users"
	utilityUC "github.com/fastygo/valueops/usecase/utility"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	dispatcher := usecase.NewDispatcher(
		calculatorUC.New(zapLogger),
		utilityUC.New(utilityUC.Config{
			DefaultDelay: cfg.Async.DefaultDelay,
			MaxDelay:     cfg.Async.MaxDelay,
		}, zapLogger),
		usersUC.New(zapLogger),
	)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Operation: apiHandler.NewOperationHandler(dispatcher, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(dispatcher, ctxAdapter, zapLogger),
	}

	if !cfg.AuthEnabled() {
		zapLogger.Warn("JWT_SECRET not set, operation routes are unauthenticated")
	}
	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, cfg.JWT.Issuer, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment),
			zap.Strings("queries", dispatcher.Queries()),
			zap.Strings("commands", dispatcher.Commands()),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
