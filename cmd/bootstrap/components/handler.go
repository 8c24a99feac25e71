package components

import (
	"barber-booking/internal/handler"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewProviderHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
