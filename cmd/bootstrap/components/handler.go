package components

import (
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
