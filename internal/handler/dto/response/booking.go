package response

import (
	"time"

	"officegrid/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	FloorPlanID   uuid.UUID `json:"floorPlanId"`
	PlanVersion   int       `json:"planVersion"`
	ResourceType  string    `json:"resourceType"`
	ResourceLabel string    `json:"resourceLabel"`
	Row           int       `json:"row"`
	Col           int       `json:"col"`
	UserID        uuid.UUID `json:"userId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	PartySize     *int      `json:"partySize,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type OverlapResponse struct {
	Overlaps bool `json:"overlaps"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		FloorPlanID:   b.FloorPlanID(),
		PlanVersion:   b.PlanVersion(),
		ResourceType:  b.ResourceType().String(),
		ResourceLabel: b.ResourceLabel(),
		Row:           b.Row(),
		Col:           b.Col(),
		UserID:        b.UserID(),
		StartTime:     b.Slot().Start(),
		EndTime:       b.Slot().End(),
		Status:        b.Status().String(),
		PartySize:     b.PartySize(),
		Notes:         b.Notes(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []*BookingResponse {
	responses := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = FromBooking(b)
	}
	return responses
}
