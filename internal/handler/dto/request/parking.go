package request

import (
	"github.com/google/uuid"

	"officegrid/internal/domain/parking"
)

type AssignEmployeeRequest struct {
	FloorPlanID   uuid.UUID `json:"floor_plan_id" binding:"required"`
	SlotLabel     *string   `json:"slot_label,omitempty"`
	VehicleNumber *string   `json:"vehicle_number,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

type AssignVisitorRequest struct {
	FloorPlanID    uuid.UUID `json:"floor_plan_id" binding:"required"`
	SlotLabel      *string   `json:"slot_label,omitempty"`
	VisitorName    string    `json:"visitor_name" binding:"required"`
	VisitorPhone   *string   `json:"visitor_phone,omitempty"`
	VisitorCompany *string   `json:"visitor_company,omitempty"`
	VehicleNumber  *string   `json:"vehicle_number,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

func (r AssignVisitorRequest) VisitorToDomain() parking.VisitorInfo {
	return parking.VisitorInfo{
		Name:    r.VisitorName,
		Phone:   trimmedPtr(r.VisitorPhone),
		Company: trimmedPtr(r.VisitorCompany),
	}
}
