package bootstrap

import (
	"offer-landing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	OfferModule,
	components.UseCaseModule,
	components.HandlerModule,
)
