package components

import (
	"roomboard/internal/handler"
	"roomboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
