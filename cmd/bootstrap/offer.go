package bootstrap

import (
	"log/slog"

	"offer-landing/internal/domain/offer"
	"offer-landing/internal/infra/offerfile"
	"offer-landing/internal/pkg/clock"
	"offer-landing/internal/pkg/config"
	"offer-landing/internal/pkg/errs"

	"go.uber.org/fx"
)

var OfferModule = fx.Module("offer",
	fx.Provide(
		offerfile.NewLoader,
		NewOffer,
	),
)

// NewOffer loads the offer once at startup; an invalid document stops the app.
func NewOffer(loader *offerfile.Loader, clk clock.Clock, cfg config.Config, logger *slog.Logger) (*offer.Offer, error) {
	o, err := loader.Load(cfg.Landing.OfferConfigPath, clk.Now())
	if err != nil {
		return nil, errs.Wrapf(err, "load offer %q", cfg.Landing.OfferConfigPath)
	}
	logger.Info("Offer loaded",
		"product", o.ProductName(),
		"total", o.Stock().Total(),
		"ends_at", o.Stock().EndsAt())
	return o, nil
}
