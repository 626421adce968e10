package response

import (
	"time"

	"officegrid/internal/domain/parking"

	"github.com/google/uuid"
)

type AllocationResponse struct {
	ID             uuid.UUID  `json:"id"`
	FloorPlanID    uuid.UUID  `json:"floorPlanId"`
	SlotLabel      string     `json:"slotLabel"`
	Row            int        `json:"row"`
	Col            int        `json:"col"`
	ParkingType    string     `json:"parkingType"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	VisitorName    *string    `json:"visitorName,omitempty"`
	VisitorPhone   *string    `json:"visitorPhone,omitempty"`
	VisitorCompany *string    `json:"visitorCompany,omitempty"`
	VehicleNumber  *string    `json:"vehicleNumber,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	EntryTime      *time.Time `json:"entryTime,omitempty"`
	ExitTime       *time.Time `json:"exitTime,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type ParkingHistoryResponse struct {
	ID              uuid.UUID  `json:"id"`
	AllocationID    uuid.UUID  `json:"allocationId"`
	FloorPlanID     uuid.UUID  `json:"floorPlanId"`
	SlotLabel       string     `json:"slotLabel"`
	ParkingType     string     `json:"parkingType"`
	UserID          *uuid.UUID `json:"userId,omitempty"`
	VisitorName     *string    `json:"visitorName,omitempty"`
	VehicleNumber   *string    `json:"vehicleNumber,omitempty"`
	EntryTime       time.Time  `json:"entryTime"`
	ExitTime        time.Time  `json:"exitTime"`
	DurationMinutes int        `json:"durationMinutes"`
}

func FromAllocation(a *parking.Allocation) *AllocationResponse {
	resp := &AllocationResponse{
		ID:            a.ID(),
		FloorPlanID:   a.FloorPlanID(),
		SlotLabel:     a.SlotLabel(),
		Row:           a.Row(),
		Col:           a.Col(),
		ParkingType:   a.ParkingType().String(),
		UserID:        a.UserID(),
		VehicleNumber: a.VehicleNumber(),
		Notes:         a.Notes(),
		EntryTime:     a.EntryTime(),
		ExitTime:      a.ExitTime(),
		IsActive:      a.IsActive(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
	if v := a.Visitor(); v != nil {
		resp.VisitorName = &v.Name
		resp.VisitorPhone = v.Phone
		resp.VisitorCompany = v.Company
	}
	return resp
}

func FromAllocations(allocations []*parking.Allocation) []*AllocationResponse {
	responses := make([]*AllocationResponse, len(allocations))
	for i, a := range allocations {
		responses[i] = FromAllocation(a)
	}
	return responses
}

func FromParkingHistory(h *parking.History) *ParkingHistoryResponse {
	resp := &ParkingHistoryResponse{
		ID:              h.ID,
		AllocationID:    h.AllocationID,
		FloorPlanID:     h.FloorPlanID,
		SlotLabel:       h.SlotLabel,
		ParkingType:     h.ParkingType.String(),
		UserID:          h.UserID,
		VehicleNumber:   h.VehicleNumber,
		EntryTime:       h.EntryTime,
		ExitTime:        h.ExitTime,
		DurationMinutes: h.DurationMinutes,
	}
	if h.Visitor != nil {
		resp.VisitorName = &h.Visitor.Name
	}
	return resp
}

func FromParkingHistories(records []*parking.History) []*ParkingHistoryResponse {
	responses := make([]*ParkingHistoryResponse, len(records))
	for i, h := range records {
		responses[i] = FromParkingHistory(h)
	}
	return responses
}
