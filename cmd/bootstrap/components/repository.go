package components

import (
	"officegrid/internal/infra/db"
	repoimpl "officegrid/internal/infra/repository"
	"officegrid/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repoimpl.NewFloorPlanRepository,
			fx.As(new(usecase.FloorPlanRepository)),
		),
		fx.Annotate(
			repoimpl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repoimpl.NewParkingRepository,
			fx.As(new(usecase.ParkingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
