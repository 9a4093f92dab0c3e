package components

import (
	"offer-landing/internal/handler"
	"offer-landing/internal/handler/api"
	"offer-landing/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		web.NewPageHandler,
		api.NewOfferHandler,
		api.NewViewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
