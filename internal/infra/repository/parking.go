package repository

import (
	"context"

	"officegrid/internal/domain/parking"
	"officegrid/internal/infra"
	"officegrid/internal/infra/db"
	"officegrid/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ParkingRepository struct {
	db db.DBTX
}

func NewParkingRepository(pool db.DBTX) *ParkingRepository {
	return &ParkingRepository{db: pool}
}

const allocationColumns = `id, floor_plan_id, slot_label, cell_row, cell_col, parking_type, user_id,
	visitor_name, visitor_phone, visitor_company, vehicle_number, notes, entry_time, exit_time, is_active,
	created_at, updated_at`

func (r *ParkingRepository) CreateAllocation(ctx context.Context, tx db.DBTX, a *parking.Allocation) (uuid.UUID, error) {
	var visitorName, visitorPhone, visitorCompany *string
	if v := a.Visitor(); v != nil {
		visitorName = &v.Name
		visitorPhone = v.Phone
		visitorCompany = v.Company
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO parking_allocations (id, floor_plan_id, slot_label, cell_row, cell_col, parking_type,
			user_id, visitor_name, visitor_phone, visitor_company, vehicle_number, notes, entry_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		a.ID(), a.FloorPlanID(), a.SlotLabel(), a.Row(), a.Col(), a.ParkingType().String(),
		pgconv.UUIDPtrToPgtype(a.UserID()),
		pgconv.StringPtrToPgtype(visitorName),
		pgconv.StringPtrToPgtype(visitorPhone),
		pgconv.StringPtrToPgtype(visitorCompany),
		pgconv.StringPtrToPgtype(a.VehicleNumber()),
		pgconv.StringPtrToPgtype(a.Notes()),
		pgconv.TimePtrToPgtype(a.EntryTime()),
		a.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create parking allocation", err)
	}
	return id, nil
}

func (r *ParkingRepository) FindAllocationByID(ctx context.Context, id uuid.UUID) (*parking.Allocation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+allocationColumns+` FROM parking_allocations WHERE id = $1`, id)
	a, err := scanAllocation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking allocation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking allocation", err)
	}
	return a, nil
}

// ActiveAllocationForUser returns the employee's current occupying
// allocation, or nil. One per employee system-wide, enforced by a partial
// unique index.
func (r *ParkingRepository) ActiveAllocationForUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (*parking.Allocation, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+allocationColumns+`
		FROM parking_allocations
		WHERE user_id = $1 AND is_active AND exit_time IS NULL`,
		userID,
	)
	a, err := scanAllocation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active allocation", err)
	}
	return a, nil
}

func (r *ParkingRepository) IsSlotOccupied(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID, slotLabel string) (bool, error) {
	var occupied bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM parking_allocations
			WHERE floor_plan_id = $1 AND slot_label = $2 AND is_active AND exit_time IS NULL
		)`,
		floorPlanID, slotLabel,
	).Scan(&occupied)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return occupied, nil
}

func (r *ParkingRepository) OccupiedLabels(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID) (map[string]struct{}, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT slot_label FROM parking_allocations
		WHERE floor_plan_id = $1 AND is_active AND exit_time IS NULL`,
		floorPlanID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	labels := make(map[string]struct{})
	for rows.Next() {
		var label string
		if scanErr := rows.Scan(&label); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", scanErr)
		}
		labels[label] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", err)
	}
	return labels, nil
}

func (r *ParkingRepository) UpdateAllocation(ctx context.Context, tx db.DBTX, a *parking.Allocation) error {
	tag, err := tx.Exec(ctx, `
		UPDATE parking_allocations
		SET entry_time = $2, exit_time = $3, is_active = $4, updated_at = now()
		WHERE id = $1`,
		a.ID(),
		pgconv.TimePtrToPgtype(a.EntryTime()),
		pgconv.TimePtrToPgtype(a.ExitTime()),
		a.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking allocation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking allocation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ParkingRepository) CreateHistory(ctx context.Context, tx db.DBTX, h *parking.History) error {
	var visitorName *string
	if h.Visitor != nil {
		visitorName = &h.Visitor.Name
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO parking_history (id, allocation_id, floor_plan_id, slot_label, parking_type,
			user_id, visitor_name, vehicle_number, entry_time, exit_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID, h.AllocationID, h.FloorPlanID, h.SlotLabel, h.ParkingType.String(),
		pgconv.UUIDPtrToPgtype(h.UserID),
		pgconv.StringPtrToPgtype(visitorName),
		pgconv.StringPtrToPgtype(h.VehicleNumber),
		h.EntryTime, h.ExitTime, h.DurationMinutes,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create parking history", err)
	}
	return nil
}

func (r *ParkingRepository) ListActiveAllocations(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.Allocation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+allocationColumns+`
		FROM parking_allocations
		WHERE floor_plan_id = $1 AND is_active AND exit_time IS NULL
		ORDER BY created_at`,
		floorPlanID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active allocations", err)
	}
	defer rows.Close()

	var allocations []*parking.Allocation
	for rows.Next() {
		a, scanErr := scanAllocation(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan allocation", scanErr)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate allocations", err)
	}
	return allocations, nil
}

func (r *ParkingRepository) ListHistory(ctx context.Context, floorPlanID uuid.UUID) ([]*parking.History, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, allocation_id, floor_plan_id, slot_label, parking_type, user_id, visitor_name,
			vehicle_number, entry_time, exit_time, duration_minutes
		FROM parking_history
		WHERE floor_plan_id = $1
		ORDER BY entry_time DESC`,
		floorPlanID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking history", err)
	}
	defer rows.Close()

	var records []*parking.History
	for rows.Next() {
		var (
			h             parking.History
			parkingType   string
			userID        pgtype.UUID
			visitorName   pgtype.Text
			vehicleNumber pgtype.Text
		)
		if scanErr := rows.Scan(&h.ID, &h.AllocationID, &h.FloorPlanID, &h.SlotLabel, &parkingType,
			&userID, &visitorName, &vehicleNumber, &h.EntryTime, &h.ExitTime, &h.DurationMinutes); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan parking history", scanErr)
		}
		h.ParkingType = parking.ParkingType(parkingType)
		h.UserID = pgconv.UUIDPtrFromPgtype(userID)
		if name := pgconv.StringPtrFromPgtype(visitorName); name != nil {
			h.Visitor = &parking.VisitorInfo{Name: *name}
		}
		h.VehicleNumber = pgconv.StringPtrFromPgtype(vehicleNumber)
		records = append(records, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate parking history", err)
	}
	return records, nil
}

func scanAllocation(row rowScanner) (*parking.Allocation, error) {
	var (
		id, floorPlanID                            uuid.UUID
		slotLabel                                  string
		cellRow, cellCol                           int
		parkingType                                string
		userID                                     pgtype.UUID
		visitorName, visitorPhone, visitorCompany  pgtype.Text
		vehicleNumber, notes                       pgtype.Text
		entryTime, exitTime, createdAt, updatedAt  pgtype.Timestamptz
		isActive                                   bool
	)
	if err := row.Scan(&id, &floorPlanID, &slotLabel, &cellRow, &cellCol, &parkingType, &userID,
		&visitorName, &visitorPhone, &visitorCompany, &vehicleNumber, &notes,
		&entryTime, &exitTime, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var visitor *parking.VisitorInfo
	if name := pgconv.StringPtrFromPgtype(visitorName); name != nil {
		visitor = &parking.VisitorInfo{
			Name:    *name,
			Phone:   pgconv.StringPtrFromPgtype(visitorPhone),
			Company: pgconv.StringPtrFromPgtype(visitorCompany),
		}
	}

	return parking.ReconstructAllocation(
		id, floorPlanID, slotLabel, cellRow, cellCol,
		parking.ParkingType(parkingType),
		pgconv.UUIDPtrFromPgtype(userID),
		visitor,
		pgconv.StringPtrFromPgtype(vehicleNumber),
		pgconv.StringPtrFromPgtype(notes),
		pgconv.TimePtrFromPgtype(entryTime),
		pgconv.TimePtrFromPgtype(exitTime),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
