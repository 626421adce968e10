package repository

import (
	"context"
	"time"

	"officegrid/internal/domain/booking"
	"officegrid/internal/domain/floorplan"
	"officegrid/internal/infra"
	"officegrid/internal/infra/db"
	"officegrid/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const bookingColumns = `id, floor_plan_id, plan_version, resource_type, resource_label, cell_row, cell_col,
	user_id, booking_date, start_time, end_time, status, party_size, notes, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO bookings (id, floor_plan_id, plan_version, resource_type, resource_label, cell_row, cell_col,
			user_id, booking_date, start_time, end_time, status, party_size, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		b.ID(), b.FloorPlanID(), b.PlanVersion(), b.ResourceType().String(), b.ResourceLabel(),
		b.Row(), b.Col(), b.UserID(),
		pgconv.DateToPgtype(b.Slot().Date()),
		pgconv.TimeOfDayToPgtype(b.Slot().Start()),
		pgconv.EndTimeOfDayToPgtype(b.Slot().End()),
		b.Status().String(),
		pgconv.IntPtrToPgtype(b.PartySize()),
		pgconv.StringPtrToPgtype(b.Notes()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET booking_date = $2, start_time = $3, end_time = $4, status = $5, notes = $6, updated_at = now()
		WHERE id = $1`,
		b.ID(),
		pgconv.DateToPgtype(b.Slot().Date()),
		pgconv.TimeOfDayToPgtype(b.Slot().Start()),
		pgconv.EndTimeOfDayToPgtype(b.Slot().End()),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.Notes()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// HasOverlap runs the canonical half-open overlap test against every
// blocking booking on the same resource and date. It must execute on the
// same DBTX as the subsequent write; the exclusion constraint remains the
// final arbiter under races.
func (r *BookingRepository) HasOverlap(ctx context.Context, dbtx db.DBTX, floorPlanID uuid.UUID, resourceLabel string, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE floor_plan_id = $1
			  AND resource_label = $2
			  AND booking_date = $3
			  AND status IN ('pending', 'confirmed')
			  AND start_time < $5
			  AND end_time > $4
			  AND ($6::uuid IS NULL OR id <> $6)
		)`,
		floorPlanID, resourceLabel,
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		pgconv.EndTimeOfDayToPgtype(slot.End()),
		pgconv.UUIDPtrToPgtype(excludeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListForResourceDate(ctx context.Context, floorPlanID uuid.UUID, resourceLabel string, date time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE floor_plan_id = $1 AND resource_label = $2 AND booking_date = $3
		ORDER BY start_time`,
		floorPlanID, resourceLabel, pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resource bookings", err)
	}
	return collectBookings(rows)
}

// BookedLabels returns the labels of resources with a blocking booking
// overlapping the given window. Backs the "available resources" listing.
func (r *BookingRepository) BookedLabels(ctx context.Context, floorPlanID uuid.UUID, slot booking.TimeSlot) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT resource_label
		FROM bookings
		WHERE floor_plan_id = $1
		  AND booking_date = $2
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $4
		  AND end_time > $3`,
		floorPlanID,
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		pgconv.EndTimeOfDayToPgtype(slot.End()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked labels", err)
	}
	defer rows.Close()

	labels := make(map[string]struct{})
	for rows.Next() {
		var label string
		if scanErr := rows.Scan(&label); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booked label", scanErr)
		}
		labels[label] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked labels", err)
	}
	return labels, nil
}

func collectBookings(rows interface {
	rowScanner
	Next() bool
	Close()
	Err() error
}) ([]*booking.Booking, error) {
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, floorPlanID, userID uuid.UUID
		planVersion             int
		resourceType, label     string
		cellRow, cellCol        int
		bookingDate             pgtype.Date
		startTime, endTime      pgtype.Time
		status                  string
		partySize               pgtype.Int4
		notes                   pgtype.Text
		createdAt, updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &floorPlanID, &planVersion, &resourceType, &label, &cellRow, &cellCol,
		&userID, &bookingDate, &startTime, &endTime, &status, &partySize, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(
		pgconv.TimeOfDayFromPgtype(bookingDate, startTime),
		pgconv.TimeOfDayFromPgtype(bookingDate, endTime),
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, floorPlanID, planVersion,
		floorplan.CellType(resourceType), label, cellRow, cellCol,
		userID, slot, booking.Status(status),
		pgconv.IntPtrFromPgtype(partySize),
		pgconv.StringPtrFromPgtype(notes),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
