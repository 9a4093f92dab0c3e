package middleware

import (
	"log/slog"
	"slices"

	"offer-landing/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets other origins embed the landing API and its event
// streams. An empty origin list refuses every cross-origin request. A "*" origin opens the API to everyone and turns credentials off,
// since browsers refuse credentialed wildcard responses.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	switch {
	case slices.Contains(cfg.AllowOrigins, "*"):
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	case len(cfg.AllowOrigins) == 0:
		// same-origin only; cors.New rejects a config without any origin rule
		corsCfg.AllowOriginFunc = func(string) bool { return false }
		logger.Warn("CORS has no allowed origins, cross-origin requests are refused")
	default:
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
