package components

import (
	"context"
	"log/slog"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/pkg/clock"
	"offer-landing/internal/pkg/config"
	"offer-landing/internal/usecase/landing"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseLandingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewLandingSettings,
)

var usecaseLandingModule = fx.Module("usecase/landing",
	fx.Provide(
		fx.Annotate(
			NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(landing.UseCase)),
		),
	),
)

func NewLandingSettings(cfg config.Config) landing.Settings {
	return landing.Settings{
		CountdownTick:     cfg.Landing.CountdownTick,
		CheckoutDelay:     cfg.Landing.CheckoutDelay,
		CriticalThreshold: cfg.Landing.CriticalThreshold,
		IdleTTL:           cfg.Landing.ViewIdleTTL,
		ReapInterval:      cfg.Landing.ViewReapInterval,
		MaxViews:          cfg.Landing.MaxViews,
	}
}

// NewRegistry ties the reaper and the teardown of every mounted view to the
// app lifecycle.
func NewRegistry(lc fx.Lifecycle, o *offer.Offer, clk clock.Clock, settings landing.Settings, logger *slog.Logger) *landing.Registry {
	r := landing.NewRegistry(o, clk, settings, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Close()
			return nil
		},
	})
	return r
}
