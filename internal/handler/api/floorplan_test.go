//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"officegrid/internal/domain/floorplan"
	"officegrid/internal/domain/user"
	"officegrid/internal/handler/api"
	resdto "officegrid/internal/handler/dto/response"
	"officegrid/internal/usecase"
	"officegrid/tests/common/httptest"
	"officegrid/tests/common/testutil"
	usecasemock "officegrid/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth rejects requests without a bearer token and injects a fixed actor,
// standing in for the JWT middleware.
func fakeAuth(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}
		c.Set("actor", actor)
		c.Next()
	}
}

func adminActor() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func testPlan(t *testing.T) *floorplan.FloorPlan {
	t.Helper()
	plan, err := floorplan.NewFloorPlan("HQ 3F", floorplan.PlanTypeDeskArea, 2, 2, nil, uuid.New())
	require.NoError(t, err)
	return plan
}

func testVersion(t *testing.T, plan *floorplan.FloorPlan) *floorplan.Version {
	t.Helper()
	grid := floorplan.Grid{
		{
			{CellType: floorplan.CellTypeDesk, Label: "D1", IsActive: true},
			{CellType: floorplan.CellTypePath, IsActive: true},
		},
		{
			{CellType: floorplan.CellTypePath, IsActive: true},
			{CellType: floorplan.CellTypeDesk, Label: "D2", IsActive: true},
		},
	}
	version, err := floorplan.NewVersion(plan, 1, grid, nil, uuid.New())
	require.NoError(t, err)
	return version
}

func createPlanBody() map[string]any {
	desk := func(label string) map[string]any {
		return map[string]any{"cell_type": "desk", "label": label}
	}
	path := map[string]any{"cell_type": "path"}
	return map[string]any{
		"name":      "HQ 3F",
		"plan_type": "desk_area",
		"rows":      2,
		"cols":      2,
		"grid": []any{
			[]any{desk("D1"), path},
			[]any{path, desk("D2")},
		},
	}
}

type FloorPlanHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockFloorPlanUseCase
	handler  *api.FloorPlanHandler
	actor    user.Actor
}

func (s *FloorPlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockFloorPlanUseCase(s.mockCtrl)
	s.handler = api.NewFloorPlanHandler(s.mockUC)
	s.actor = adminActor()

	auth := fakeAuth(s.actor)
	s.router.POST("/floor-plans", auth, s.handler.CreateFloorPlan)
	s.router.GET("/floor-plans", auth, s.handler.ListFloorPlans)
	s.router.GET("/floor-plans/:id", auth, s.handler.GetFloorPlan)
	s.router.PATCH("/floor-plans/:id", auth, s.handler.UpdateFloorPlan)
	s.router.DELETE("/floor-plans/:id", auth, s.handler.DeactivateFloorPlan)
	s.router.POST("/floor-plans/:id/versions", auth, s.handler.CreateVersion)
	s.router.GET("/floor-plans/:id/versions", auth, s.handler.ListVersions)
	s.router.GET("/floor-plans/:id/versions/:version", auth, s.handler.GetVersion)
}

func (s *FloorPlanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFloorPlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(FloorPlanHandlerTestSuite))
}

// ================================================================================
// TestCreateFloorPlan
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestCreateFloorPlan() {
	url := "/floor-plans"
	plan := testPlan(s.T())

	s.Run("success: returns 201 Created with plan", func() {
		s.mockUC.EXPECT().CreateFloorPlan(gomock.Any(), s.actor, gomock.Any()).
			Return(plan, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createPlanBody(), "bearer-token")

		var response resdto.FloorPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(plan.ID(), response.ID)
		s.Equal(plan.FloorCode(), response.FloorCode)
		s.Equal(1, response.CurrentVersion)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []string{"name", "plan_type", "rows", "cols", "grid"}
		for _, field := range missing {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), createPlanBody(), testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createPlanBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authorization required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
			{"duplicate name", usecase.ErrDuplicatePlanName, http.StatusConflict, "already in use"},
			{"invalid grid", usecase.ErrInvalidGrid, http.StatusUnprocessableEntity, "Invalid grid layout"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUC.EXPECT().CreateFloorPlan(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createPlanBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetFloorPlan
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestGetFloorPlan() {
	plan := testPlan(s.T())
	version := testVersion(s.T(), plan)
	url := "/floor-plans/" + plan.ID().String()

	s.Run("success: returns 200 OK with plan and grid", func() {
		s.mockUC.EXPECT().GetFloorPlan(gomock.Any(), plan.ID()).
			Return(plan, version, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.FloorPlanDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(plan.ID(), response.ID)
		s.Len(response.Grid, 2)
		s.Equal("D1", response.Grid[0][0].Label)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floor-plans/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for unknown plan", func() {
		s.mockUC.EXPECT().GetFloorPlan(gomock.Any(), plan.ID()).
			Return(nil, nil, usecase.ErrFloorPlanNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Floor plan not found")
	})
}

// ================================================================================
// TestListFloorPlans
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestListFloorPlans() {
	plan := testPlan(s.T())

	s.Run("success: returns 200 OK with all plans", func() {
		s.mockUC.EXPECT().ListFloorPlans(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]*floorplan.FloorPlan{plan}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floor-plans", nil, "bearer-token")

		var response []resdto.FloorPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(plan.ID(), response[0].ID)
	})

	s.Run("success: passes plan_type and is_active filters", func() {
		parking := floorplan.PlanTypeParking
		active := true
		s.mockUC.EXPECT().ListFloorPlans(gomock.Any(), &parking, &active).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floor-plans?plan_type=parking&is_active=true", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on unknown plan type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/floor-plans?plan_type=warehouse", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid plan type")
	})
}

// ================================================================================
// TestUpdateFloorPlan
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestUpdateFloorPlan() {
	plan := testPlan(s.T())
	url := "/floor-plans/" + plan.ID().String()
	body := map[string]any{"name": "HQ 3F East"}

	s.Run("success: returns 200 OK with updated plan", func() {
		s.mockUC.EXPECT().UpdateFloorPlan(gomock.Any(), s.actor, plan.ID(), gomock.Any()).
			Return(plan, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var response resdto.FloorPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(plan.ID(), response.ID)
	})

	s.Run("error: 403 Forbidden for wrong domain manager", func() {
		s.mockUC.EXPECT().UpdateFloorPlan(gomock.Any(), s.actor, plan.ID(), gomock.Any()).
			Return(nil, usecase.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

// ================================================================================
// TestDeactivateFloorPlan
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestDeactivateFloorPlan() {
	plan := testPlan(s.T())
	url := "/floor-plans/" + plan.ID().String()

	s.Run("success: returns 204 No Content", func() {
		s.mockUC.EXPECT().DeactivateFloorPlan(gomock.Any(), s.actor, plan.ID()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity when already inactive", func() {
		s.mockUC.EXPECT().DeactivateFloorPlan(gomock.Any(), s.actor, plan.ID()).
			Return(usecase.ErrFloorPlanInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "inactive")
	})
}

// ================================================================================
// TestCreateVersion
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestCreateVersion() {
	plan := testPlan(s.T())
	version := testVersion(s.T(), plan)
	url := "/floor-plans/" + plan.ID().String() + "/versions"
	body := testutil.DtoMap(s.T(), createPlanBody(), func(m map[string]any) {
		for _, key := range []string{"name", "plan_type", "rows", "cols"} {
			delete(m, key)
		}
	})

	s.Run("success: returns 201 Created with new version", func() {
		s.mockUC.EXPECT().CreateVersion(gomock.Any(), s.actor, plan.ID(), gomock.Any()).
			Return(version, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.VersionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(version.ID(), response.ID)
		s.Equal(1, response.Version)
	})

	s.Run("error: 409 Conflict on concurrent version bump", func() {
		s.mockUC.EXPECT().CreateVersion(gomock.Any(), s.actor, plan.ID(), gomock.Any()).
			Return(nil, usecase.ErrVersionRace).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "concurrently")
	})

	s.Run("error: 400 Bad Request on missing grid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGetVersion
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestGetVersion() {
	plan := testPlan(s.T())
	version := testVersion(s.T(), plan)
	base := "/floor-plans/" + plan.ID().String() + "/versions/"

	s.Run("success: returns 200 OK with requested version", func() {
		s.mockUC.EXPECT().GetVersion(gomock.Any(), plan.ID(), 1).
			Return(version, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"1", nil, "bearer-token")

		var response resdto.VersionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(version.ID(), response.ID)
	})

	s.Run("error: 400 Bad Request on non-numeric version", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"latest", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid version number")
	})

	s.Run("error: 404 Not Found for missing version", func() {
		s.mockUC.EXPECT().GetVersion(gomock.Any(), plan.ID(), 42).
			Return(nil, usecase.ErrVersionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"42", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Version not found")
	})
}

// ================================================================================
// TestListVersions
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestListVersions() {
	plan := testPlan(s.T())
	version := testVersion(s.T(), plan)
	url := "/floor-plans/" + plan.ID().String() + "/versions"

	s.Run("success: returns 200 OK with version list", func() {
		s.mockUC.EXPECT().ListVersions(gomock.Any(), plan.ID()).
			Return([]*floorplan.Version{version}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.VersionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}
