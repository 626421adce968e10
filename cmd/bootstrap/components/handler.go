package components

import (
	"officegrid/internal/handler"
	"officegrid/internal/handler/api"
	"officegrid/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFloorPlanHandler,
		api.NewBookingHandler,
		api.NewParkingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
