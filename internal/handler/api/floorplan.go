package api

import (
	"errors"
	"net/http"
	"strconv"

	"officegrid/internal/domain/floorplan"
	reqdto "officegrid/internal/handler/dto/request"
	resdto "officegrid/internal/handler/dto/response"
	"officegrid/internal/handler/middleware"
	"officegrid/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FloorPlanHandler struct {
	floorPlanUseCase usecase.FloorPlanUseCase
}

func NewFloorPlanHandler(floorPlanUseCase usecase.FloorPlanUseCase) *FloorPlanHandler {
	return &FloorPlanHandler{
		floorPlanUseCase: floorPlanUseCase,
	}
}

// @Summary Create floor plan
// @Description Create a new floor plan with its initial grid layout
// @Tags floor-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFloorPlanRequest true "Floor plan request"
// @Success 201 {object} resdto.FloorPlanResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /floor-plans [post]
func (h *FloorPlanHandler) CreateFloorPlan(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateFloorPlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	plan, err := h.floorPlanUseCase.CreateFloorPlan(c.Request.Context(), actor, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFloorPlan(plan))
}

// @Summary Get floor plan
// @Description Get a floor plan with its current grid
// @Tags floor-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Success 200 {object} resdto.FloorPlanDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /floor-plans/{id} [get]
func (h *FloorPlanHandler) GetFloorPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plan, version, err := h.floorPlanUseCase.GetFloorPlan(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFloorPlanWithGrid(plan, version))
}

// @Summary List floor plans
// @Description List floor plans, optionally filtered by type and active state
// @Tags floor-plans
// @Produce json
// @Security BearerAuth
// @Param plan_type query string false "Filter by plan type"
// @Param is_active query bool false "Filter by active state"
// @Success 200 {array} resdto.FloorPlanResponse
// @Failure 400 {object} map[string]string
// @Router /floor-plans [get]
func (h *FloorPlanHandler) ListFloorPlans(c *gin.Context) {
	var planType *floorplan.PlanType
	if raw := c.Query("plan_type"); raw != "" {
		pt, err := floorplan.NewPlanType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid plan type",
			})
			return
		}
		planType = &pt
	}

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid is_active value",
			})
			return
		}
		isActive = &active
	}

	plans, err := h.floorPlanUseCase.ListFloorPlans(c.Request.Context(), planType, isActive)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFloorPlans(plans))
}

// @Summary Update floor plan
// @Description Update floor plan name or description
// @Tags floor-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param request body reqdto.UpdateFloorPlanRequest true "Update request"
// @Success 200 {object} resdto.FloorPlanResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /floor-plans/{id} [patch]
func (h *FloorPlanHandler) UpdateFloorPlan(c *gin.Context) {
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

	var req reqdto.UpdateFloorPlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	plan, err := h.floorPlanUseCase.UpdateFloorPlan(c.Request.Context(), actor, id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFloorPlan(plan))
}

// @Summary Deactivate floor plan
// @Description Soft-delete a floor plan; history is preserved
// @Tags floor-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /floor-plans/{id} [delete]
func (h *FloorPlanHandler) DeactivateFloorPlan(c *gin.Context) {
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

	if err := h.floorPlanUseCase.DeactivateFloorPlan(c.Request.Context(), actor, id); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create grid version
// @Description Append a new grid revision to a floor plan
// @Tags floor-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param request body reqdto.CreateVersionRequest true "Version request"
// @Success 201 {object} resdto.VersionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /floor-plans/{id}/versions [post]
func (h *FloorPlanHandler) CreateVersion(c *gin.Context) {
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

	var req reqdto.CreateVersionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	version, err := h.floorPlanUseCase.CreateVersion(c.Request.Context(), actor, id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVersion(version))
}

// @Summary Get grid version
// @Description Get a specific grid revision of a floor plan
// @Tags floor-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param version path int true "Version number"
// @Success 200 {object} resdto.VersionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /floor-plans/{id}/versions/{version} [get]
func (h *FloorPlanHandler) GetVersion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("version"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid version number",
		})
		return
	}

	version, err := h.floorPlanUseCase.GetVersion(c.Request.Context(), id, number)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVersion(version))
}

// @Summary List grid versions
// @Description List every grid revision of a floor plan
// @Tags floor-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Success 200 {array} resdto.VersionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /floor-plans/{id}/versions [get]
func (h *FloorPlanHandler) ListVersions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	versions, err := h.floorPlanUseCase.ListVersions(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVersions(versions))
}

func (h *FloorPlanHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrFloorPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Floor plan not found",
		})
	case errors.Is(err, usecase.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Version not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, usecase.ErrDuplicatePlanName):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Floor plan name already in use for this type",
		})
	case errors.Is(err, usecase.ErrVersionRace):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Floor plan was updated concurrently, retry",
		})
	case errors.Is(err, usecase.ErrFloorPlanInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Floor plan is inactive",
		})
	case errors.Is(err, usecase.ErrInvalidGrid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid grid layout",
			"detail": err.Error(),
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
