package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FloorPlanID   uuid.UUID `json:"floor_plan_id" binding:"required"`
	ResourceLabel string    `json:"resource_label" binding:"required"`
	Row           int       `json:"row"`
	Col           int       `json:"col"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	PartySize     *int      `json:"party_size,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) GetNotes() *string {
	return trimmedPtr(r.Notes)
}

type UpdateBookingRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

func (r UpdateBookingRequest) GetNotes() *string {
	return trimmedPtr(r.Notes)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
