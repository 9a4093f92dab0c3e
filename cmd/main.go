package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"

	"offer-landing/cmd/bootstrap"
	"offer-landing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug output because of a missing env var
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           offer-landing
// @version         1.0
// @description     Scarcity landing page with a live countdown and a simulated checkout.
// @description     Every visitor gets an isolated landing view; no payment is ever taken.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Open event streams never finish on their own; cancelling the base
	// context ends them so Shutdown can drain.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     engine,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🚀 Starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 Stopping server")
			cancelStreams()
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Failed to stop application cleanly", "error", err)
	}

	slog.Info("Application stopped")
}
