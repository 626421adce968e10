package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"officegrid/internal/domain/booking"
	"officegrid/internal/domain/floorplan"
	"officegrid/internal/domain/user"
	reqdto "officegrid/internal/handler/dto/request"
	resdto "officegrid/internal/handler/dto/response"
	"officegrid/internal/handler/middleware"
	"officegrid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a desk, conference room, or cafeteria table for a time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.bookingUseCase.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(entity))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(entity))
}

// @Summary List own bookings
// @Description List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookings, err := h.bookingUseCase.ListUserBookings(c.Request.Context(), actor.ID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary List resource bookings
// @Description List bookings for one resource on one date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param floor_plan_id query string true "Floor plan ID"
// @Param resource_label query string true "Resource label"
// @Param date query string true "Date (RFC 3339 or 2006-01-02)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/resource [get]
func (h *BookingHandler) ListResourceBookings(c *gin.Context) {
	floorPlanID, err := uuid.Parse(c.Query("floor_plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid floor_plan_id",
		})
		return
	}

	resourceLabel := c.Query("resource_label")
	if resourceLabel == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "resource_label is required",
		})
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	bookings, err := h.bookingUseCase.ListResourceBookings(c.Request.Context(), floorPlanID, resourceLabel, date)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Update booking
// @Description Reschedule a booking or change its notes
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), actor, id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(entity))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.applyTransition(c, h.bookingUseCase.CancelBooking)
}

// @Summary Complete booking
// @Description Mark a booking as completed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.applyTransition(c, h.bookingUseCase.CompleteBooking)
}

// @Summary Check overlap
// @Description Report whether any blocking booking overlaps the window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param floor_plan_id query string true "Floor plan ID"
// @Param resource_label query string true "Resource label"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} resdto.OverlapResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/overlap [get]
func (h *BookingHandler) CheckOverlap(c *gin.Context) {
	floorPlanID, err := uuid.Parse(c.Query("floor_plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid floor_plan_id",
		})
		return
	}

	resourceLabel := c.Query("resource_label")
	if resourceLabel == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "resource_label is required",
		})
		return
	}

	start, ok := parseTimeQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseTimeQuery(c, "end")
	if !ok {
		return
	}

	overlaps, err := h.bookingUseCase.CheckOverlap(c.Request.Context(), floorPlanID, resourceLabel, start, end)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OverlapResponse{Overlaps: overlaps})
}

// @Summary List available resources
// @Description List cells of a type with no blocking booking in the window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param cell_type query string true "Cell type to list"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {array} resdto.CellRefResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /floor-plans/{id}/availability [get]
func (h *BookingHandler) AvailableResources(c *gin.Context) {
	floorPlanID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cellType := floorplan.CellType(c.Query("cell_type"))
	if cellType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "cell_type is required",
		})
		return
	}

	start, ok := parseTimeQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseTimeQuery(c, "end")
	if !ok {
		return
	}

	refs, err := h.bookingUseCase.AvailableResources(c.Request.Context(), floorPlanID, cellType, start, end)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCellRefs(refs))
}

func (h *BookingHandler) applyTransition(
	c *gin.Context,
	apply func(ctx context.Context, actor user.Actor, id uuid.UUID) (*booking.Booking, error),
) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := apply(c.Request.Context(), actor, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(entity))
}

func (h *BookingHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrFloorPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Floor plan not found",
		})
	case errors.Is(err, usecase.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Version not found",
		})
	case errors.Is(err, usecase.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time slot conflict",
		})
	case errors.Is(err, usecase.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Booking belongs to another user",
		})
	case errors.Is(err, usecase.ErrCellOutOfBounds):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cell coordinates out of bounds",
		})
	case errors.Is(err, usecase.ErrCellNotBookable),
		errors.Is(err, usecase.ErrCellInactive),
		errors.Is(err, usecase.ErrLabelMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, usecase.ErrPartySizeTooLarge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Party size exceeds table capacity",
		})
	case errors.Is(err, usecase.ErrBookingTerminal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking is in a terminal state",
		})
	case errors.Is(err, usecase.ErrFloorPlanInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Floor plan is inactive",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " time, expected RFC 3339",
		})
		return time.Time{}, false
	}
	return t, true
}

func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + ", expected 2006-01-02 or RFC 3339",
		})
		return time.Time{}, false
	}
	return t, true
}
