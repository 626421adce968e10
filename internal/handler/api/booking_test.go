//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"officegrid/internal/domain/booking"
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

func testBooking(t *testing.T, userID uuid.UUID) *booking.Booking {
	t.Helper()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(day.Add(9*time.Hour), day.Add(11*time.Hour))
	require.NoError(t, err)

	b, err := booking.NewBooking(
		uuid.New(), 1,
		floorplan.CellTypeDesk, "D1", 0, 0,
		userID, slot, nil, nil,
	)
	require.NoError(t, err)
	return b
}

func createBookingBody(b *booking.Booking) map[string]any {
	return map[string]any{
		"floor_plan_id":  b.FloorPlanID().String(),
		"resource_label": b.ResourceLabel(),
		"row":            b.Row(),
		"col":            b.Col(),
		"start_time":     b.Slot().Start().Format(time.RFC3339),
		"end_time":       b.Slot().End().Format(time.RFC3339),
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockBookingUseCase
	handler  *api.BookingHandler
	actor    user.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUC)
	s.actor = user.Actor{ID: uuid.New(), Role: user.RoleEmployee}

	auth := fakeAuth(s.actor)
	s.router.POST("/bookings", auth, s.handler.CreateBooking)
	s.router.GET("/bookings", auth, s.handler.ListUserBookings)
	s.router.GET("/bookings/overlap", auth, s.handler.CheckOverlap)
	s.router.GET("/bookings/resource", auth, s.handler.ListResourceBookings)
	s.router.GET("/bookings/:id", auth, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", auth, s.handler.UpdateBooking)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/complete", auth, s.handler.CompleteBooking)
	s.router.GET("/floor-plans/:id/availability", auth, s.handler.AvailableResources)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	entity := testBooking(s.T(), s.actor.ID)
	body := createBookingBody(entity)

	s.Run("success: returns 201 Created with booking", func() {
		s.mockUC.EXPECT().CreateBooking(gomock.Any(), s.actor, gomock.Any()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(entity.ID(), response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal("D1", response.ResourceLabel)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		for _, field := range []string{"floor_plan_id", "resource_label", "start_time", "end_time"} {
			s.Run("missing "+field, func() {
				reqBody := testutil.DtoMap(s.T(), body, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authorization required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"conflicting slot", usecase.ErrBookingConflict, http.StatusConflict, "Time slot conflict"},
			{"unknown plan", usecase.ErrFloorPlanNotFound, http.StatusNotFound, "Floor plan not found"},
			{"coordinates out of bounds", usecase.ErrCellOutOfBounds, http.StatusBadRequest, "out of bounds"},
			{"cell not bookable", usecase.ErrCellNotBookable, http.StatusUnprocessableEntity, "not a bookable resource"},
			{"label mismatch", usecase.ErrLabelMismatch, http.StatusUnprocessableEntity, "does not match"},
			{"party too large", usecase.ErrPartySizeTooLarge, http.StatusUnprocessableEntity, "exceeds table capacity"},
			{"inactive plan", usecase.ErrFloorPlanInactive, http.StatusUnprocessableEntity, "inactive"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUC.EXPECT().CreateBooking(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking / TestListUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	entity := testBooking(s.T(), s.actor.ID)
	url := "/bookings/" + entity.ID().String()

	s.Run("success: returns 200 OK with booking", func() {
		s.mockUC.EXPECT().GetBooking(gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(entity.ID(), response.ID)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockUC.EXPECT().GetBooking(gomock.Any(), entity.ID()).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListUserBookings() {
	entity := testBooking(s.T(), s.actor.ID)

	s.Run("success: lists the caller's bookings", func() {
		s.mockUC.EXPECT().ListUserBookings(gomock.Any(), s.actor.ID).
			Return([]*booking.Booking{entity}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.actor.ID, response[0].UserID)
	})
}

// ================================================================================
// TestListResourceBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListResourceBookings() {
	entity := testBooking(s.T(), s.actor.ID)
	planID := entity.FloorPlanID()

	s.Run("success: returns bookings for resource and date", func() {
		date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		s.mockUC.EXPECT().ListResourceBookings(gomock.Any(), planID, "D1", date).
			Return([]*booking.Booking{entity}, nil).Times(1)

		url := "/bookings/resource?floor_plan_id=" + planID.String() + "&resource_label=D1&date=2026-03-10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request on missing resource_label", func() {
		url := "/bookings/resource?floor_plan_id=" + planID.String() + "&date=2026-03-10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		url := "/bookings/resource?floor_plan_id=" + planID.String() + "&resource_label=D1&date=yesterday"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	entity := testBooking(s.T(), s.actor.ID)
	url := "/bookings/" + entity.ID().String()
	body := map[string]any{"notes": "window seat please"}

	s.Run("success: returns 200 OK with updated booking", func() {
		s.mockUC.EXPECT().UpdateBooking(gomock.Any(), s.actor, entity.ID(), gomock.Any()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(entity.ID(), response.ID)
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockUC.EXPECT().UpdateBooking(gomock.Any(), s.actor, entity.ID(), gomock.Any()).
			Return(nil, usecase.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 422 Unprocessable Entity on terminal booking", func() {
		s.mockUC.EXPECT().UpdateBooking(gomock.Any(), s.actor, entity.ID(), gomock.Any()).
			Return(nil, usecase.ErrBookingTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "terminal")
	})
}

// ================================================================================
// TestCancelBooking / TestCompleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	entity := testBooking(s.T(), s.actor.ID)
	require.NoError(s.T(), entity.Cancel())
	url := "/bookings/" + entity.ID().String() + "/cancel"

	s.Run("success: returns 200 OK with cancelled booking", func() {
		s.mockUC.EXPECT().CancelBooking(gomock.Any(), s.actor, entity.ID()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 422 Unprocessable Entity when already terminal", func() {
		s.mockUC.EXPECT().CancelBooking(gomock.Any(), s.actor, entity.ID()).
			Return(nil, usecase.ErrBookingTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "terminal")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	entity := testBooking(s.T(), s.actor.ID)
	require.NoError(s.T(), entity.Complete())
	url := "/bookings/" + entity.ID().String() + "/complete"

	s.Run("success: returns 200 OK with completed booking", func() {
		s.mockUC.EXPECT().CompleteBooking(gomock.Any(), s.actor, entity.ID()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})
}

// ================================================================================
// TestCheckOverlap
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckOverlap() {
	planID := uuid.New()
	query := "?floor_plan_id=" + planID.String() +
		"&resource_label=D1&start=2026-03-10T09:00:00Z&end=2026-03-10T11:00:00Z"

	s.Run("success: reports overlap", func() {
		s.mockUC.EXPECT().CheckOverlap(gomock.Any(), planID, "D1", gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/overlap"+query, nil, "bearer-token")

		var response resdto.OverlapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Overlaps)
	})

	s.Run("error: 400 Bad Request on malformed start time", func() {
		url := "/bookings/overlap?floor_plan_id=" + planID.String() + "&resource_label=D1&start=9am&end=2026-03-10T11:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "RFC 3339")
	})
}

// ================================================================================
// TestAvailableResources
// ================================================================================

func (s *BookingHandlerTestSuite) TestAvailableResources() {
	planID := uuid.New()
	url := "/floor-plans/" + planID.String() +
		"/availability?cell_type=desk&start=2026-03-10T09:00:00Z&end=2026-03-10T11:00:00Z"

	s.Run("success: returns free cells", func() {
		refs := []floorplan.CellRef{
			{Row: 0, Col: 0, Cell: floorplan.Cell{CellType: floorplan.CellTypeDesk, Label: "D1", IsActive: true}},
		}
		s.mockUC.EXPECT().AvailableResources(gomock.Any(), planID, floorplan.CellTypeDesk, gomock.Any(), gomock.Any()).
			Return(refs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.CellRefResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("D1", response[0].Cell.Label)
	})

	s.Run("error: 400 Bad Request on missing cell_type", func() {
		bare := "/floor-plans/" + planID.String() + "/availability?start=2026-03-10T09:00:00Z&end=2026-03-10T11:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bare, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
