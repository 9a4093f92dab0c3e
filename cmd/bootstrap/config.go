package bootstrap

import (
	"log/slog"

	"offer-landing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logLandingConfig),
)

// logLandingConfig records the effective landing tuning once at startup.
func logLandingConfig(cfg config.Config, logger *slog.Logger) {
	l := cfg.Landing
	offerSource := l.OfferConfigPath
	if offerSource == "" {
		offerSource = "embedded default"
	}
	logger.Info("Landing configuration",
		"offer", offerSource,
		"checkout_delay", l.CheckoutDelay,
		"countdown_tick", l.CountdownTick,
		"critical_threshold", l.CriticalThreshold,
		"view_idle_ttl", l.ViewIdleTTL,
		"view_max", l.MaxViews)
}
