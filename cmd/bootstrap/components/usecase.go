package components

import (
	"officegrid/internal/pkg/clock"
	"officegrid/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewFloorPlanUseCase,
		usecase.NewBookingUseCase,
		usecase.NewParkingUseCase,
	),
)
