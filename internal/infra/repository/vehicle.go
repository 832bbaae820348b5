package repository

import (
	"context"
	"time"

	"parkops/internal/domain/vehicle"
	"parkops/internal/infra"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

const vehicleColumns = `id, plate, make, model, color, score, created_at, updated_at`

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO vehicles (plate, make, model, color, score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		v.Plate().String(), v.Make(), v.Model(), v.Color(), v.Score(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("plate already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	return scanVehicle(row, "failed to find vehicle by ID")
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1`, plate)
	return scanVehicle(row, "failed to find vehicle by plate")
}

func (r *VehicleRepository) FindByPlateForUpdate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1 FOR UPDATE`, plate)
	return scanVehicle(row, "failed to lock vehicle by plate")
}

func (r *VehicleRepository) UpdateIdentity(ctx context.Context, v *vehicle.Vehicle) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vehicles
		 SET plate = $2, make = $3, model = $4, color = $5, updated_at = now()
		 WHERE id = $1`,
		v.ID(), v.Plate().String(), v.Make(), v.Model(), v.Color(),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("plate already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update vehicle identity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vehicles SET score = $2, updated_at = now() WHERE id = $1`,
		id, score,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle score", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner, failMsg string) (*vehicle.Vehicle, error) {
	var (
		id                   uuid.UUID
		plateStr             string
		make, model, color   string
		score                int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &plateStr, &make, &model, &color, &score, &createdAt, &updatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}

	// Stored plates are already normalized; reparse to get the value object.
	plate, err := vehicle.NewPlate(plateStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored plate", err)
	}
	return vehicle.ReconstructVehicle(id, plate, make, model, color, score, createdAt, updatedAt)
}
