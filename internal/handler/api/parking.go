package api

import (
	"errors"
	"net/http"

	reqdto "officegrid/internal/handler/dto/request"
	resdto "officegrid/internal/handler/dto/response"
	"officegrid/internal/handler/middleware"
	"officegrid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParkingHandler struct {
	parkingUseCase usecase.ParkingUseCase
}

func NewParkingHandler(parkingUseCase usecase.ParkingUseCase) *ParkingHandler {
	return &ParkingHandler{
		parkingUseCase: parkingUseCase,
	}
}

// @Summary Assign employee parking
// @Description Allocate a slot to the authenticated employee; auto-assigns when no label is given
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssignEmployeeRequest true "Assignment request"
// @Success 201 {object} resdto.AllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /parking/allocations/employee [post]
func (h *ParkingHandler) AssignEmployee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AssignEmployeeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	allocation, err := h.parkingUseCase.AssignEmployee(c.Request.Context(), actor, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAllocation(allocation))
}

// @Summary Assign visitor parking
// @Description Allocate a slot to a visitor; entry is recorded immediately
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssignVisitorRequest true "Assignment request"
// @Success 201 {object} resdto.AllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /parking/allocations/visitor [post]
func (h *ParkingHandler) AssignVisitor(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AssignVisitorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	allocation, err := h.parkingUseCase.AssignVisitor(c.Request.Context(), actor, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAllocation(allocation))
}

// @Summary Get allocation
// @Description Get a parking allocation by ID
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} resdto.AllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/allocations/{id} [get]
func (h *ParkingHandler) GetAllocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	allocation, err := h.parkingUseCase.GetAllocation(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllocation(allocation))
}

// @Summary Record entry
// @Description Record the vehicle's physical entry for an allocation
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} resdto.AllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /parking/allocations/{id}/entry [post]
func (h *ParkingHandler) RecordEntry(c *gin.Context) {
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

	allocation, err := h.parkingUseCase.RecordEntry(c.Request.Context(), actor, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllocation(allocation))
}

// @Summary Record exit
// @Description Record exit, release the slot, and write the history record
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Allocation ID"
// @Success 200 {object} resdto.ParkingHistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /parking/allocations/{id}/exit [post]
func (h *ParkingHandler) RecordExit(c *gin.Context) {
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

	history, err := h.parkingUseCase.RecordExit(c.Request.Context(), actor, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromParkingHistory(history))
}

// @Summary List available slots
// @Description List free parking slots on a plan in row-major order
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param floor_plan_id query string true "Floor plan ID"
// @Success 200 {array} resdto.CellRefResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parking/available [get]
func (h *ParkingHandler) AvailableSlots(c *gin.Context) {
	floorPlanID, ok := parsePlanIDQuery(c)
	if !ok {
		return
	}

	refs, err := h.parkingUseCase.AvailableSlots(c.Request.Context(), floorPlanID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCellRefs(refs))
}

// @Summary List active allocations
// @Description List currently occupying allocations on a plan
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param floor_plan_id query string true "Floor plan ID"
// @Success 200 {array} resdto.AllocationResponse
// @Failure 400 {object} map[string]string
// @Router /parking/active [get]
func (h *ParkingHandler) ListActiveAllocations(c *gin.Context) {
	floorPlanID, ok := parsePlanIDQuery(c)
	if !ok {
		return
	}

	allocations, err := h.parkingUseCase.ListActiveAllocations(c.Request.Context(), floorPlanID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAllocations(allocations))
}

// @Summary List parking history
// @Description List completed parking sessions on a plan, newest first
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Param floor_plan_id query string true "Floor plan ID"
// @Success 200 {array} resdto.ParkingHistoryResponse
// @Failure 400 {object} map[string]string
// @Router /parking/history [get]
func (h *ParkingHandler) ListHistory(c *gin.Context) {
	floorPlanID, ok := parsePlanIDQuery(c)
	if !ok {
		return
	}

	records, err := h.parkingUseCase.ListHistory(c.Request.Context(), floorPlanID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromParkingHistories(records))
}

func (h *ParkingHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAllocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Allocation not found",
		})
	case errors.Is(err, usecase.ErrFloorPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Parking floor plan not found",
		})
	case errors.Is(err, usecase.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Version not found",
		})
	case errors.Is(err, usecase.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot label not found on plan",
		})
	case errors.Is(err, usecase.ErrNoFreeSlot):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No free parking slot available",
		})
	case errors.Is(err, usecase.ErrSlotOccupied):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Parking slot already occupied",
		})
	case errors.Is(err, usecase.ErrAlreadyParked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Employee already has an active allocation",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, usecase.ErrAllocationState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, usecase.ErrFloorPlanInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Floor plan is inactive",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parsePlanIDQuery(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("floor_plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid floor_plan_id",
		})
		return uuid.Nil, false
	}
	return id, true
}
