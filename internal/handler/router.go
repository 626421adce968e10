package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"officegrid/internal/handler/api"
	"officegrid/internal/handler/middleware"
	"officegrid/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	floorPlanHandler *api.FloorPlanHandler,
	bookingHandler *api.BookingHandler,
	parkingHandler *api.ParkingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, floorPlanHandler, bookingHandler, parkingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	floorPlanHandler *api.FloorPlanHandler,
	bookingHandler *api.BookingHandler,
	parkingHandler *api.ParkingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		floorPlans := apiGroup.Group("/floor-plans")
		{
			addRoutes(floorPlans, []route{
				{Method: http.MethodPost, Path: "", Handler: floorPlanHandler.CreateFloorPlan},
				{Method: http.MethodGet, Path: "", Handler: floorPlanHandler.ListFloorPlans},
				{Method: http.MethodGet, Path: "/:id", Handler: floorPlanHandler.GetFloorPlan},
				{Method: http.MethodPatch, Path: "/:id", Handler: floorPlanHandler.UpdateFloorPlan},
				{Method: http.MethodDelete, Path: "/:id", Handler: floorPlanHandler.DeactivateFloorPlan},
				{Method: http.MethodPost, Path: "/:id/versions", Handler: floorPlanHandler.CreateVersion},
				{Method: http.MethodGet, Path: "/:id/versions", Handler: floorPlanHandler.ListVersions},
				{Method: http.MethodGet, Path: "/:id/versions/:version", Handler: floorPlanHandler.GetVersion},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: bookingHandler.AvailableResources},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListUserBookings},
				{Method: http.MethodGet, Path: "/overlap", Handler: bookingHandler.CheckOverlap},
				{Method: http.MethodGet, Path: "/resource", Handler: bookingHandler.ListResourceBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.UpdateBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking},
			})
		}

		parking := apiGroup.Group("/parking")
		{
			addRoutes(parking, []route{
				{Method: http.MethodPost, Path: "/allocations/employee", Handler: parkingHandler.AssignEmployee},
				{Method: http.MethodPost, Path: "/allocations/visitor", Handler: parkingHandler.AssignVisitor},
				{Method: http.MethodGet, Path: "/allocations/:id", Handler: parkingHandler.GetAllocation},
				{Method: http.MethodPost, Path: "/allocations/:id/entry", Handler: parkingHandler.RecordEntry},
				{Method: http.MethodPost, Path: "/allocations/:id/exit", Handler: parkingHandler.RecordExit},
				{Method: http.MethodGet, Path: "/available", Handler: parkingHandler.AvailableSlots},
				{Method: http.MethodGet, Path: "/active", Handler: parkingHandler.ListActiveAllocations},
				{Method: http.MethodGet, Path: "/history", Handler: parkingHandler.ListHistory},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
