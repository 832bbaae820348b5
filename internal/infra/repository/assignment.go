package repository

import (
	"context"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/infra"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(dbtx db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: dbtx}
}

// Create races on the partial unique index over (vehicle_id, lot_id) WHERE
// exit_time IS NULL, so check-and-create is a single atomic statement.
func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO assignments (vehicle_id, lot_id, entry_time)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		a.VehicleID(), a.LotID(), a.EntryTime(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("active assignment already exists for vehicle and lot", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create assignment", err)
	}
	return id, nil
}

func (r *AssignmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	var (
		aID, vehicleID, lotID uuid.UUID
		entryTime             time.Time
		exitTime              *time.Time
		fee                   *decimal.Decimal
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, vehicle_id, lot_id, entry_time, exit_time, fee, created_at, updated_at
		 FROM assignments
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&aID, &vehicleID, &lotID, &entryTime, &exitTime, &fee, &createdAt, &updatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock assignment", err)
	}

	return assignment.ReconstructAssignment(aID, vehicleID, lotID, entryTime, exitTime, fee, createdAt, updatedAt), nil
}

// Complete guards on exit_time IS NULL so a stored fee can never be
// overwritten even if a caller slips past the domain check.
func (r *AssignmentRepository) Complete(ctx context.Context, id uuid.UUID, exitTime time.Time, fee decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE assignments
		 SET exit_time = $2, fee = $3, updated_at = now()
		 WHERE id = $1 AND exit_time IS NULL`,
		id, exitTime, fee,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("assignment already completed", nil, infra.KindConflict)
	}
	return nil
}
