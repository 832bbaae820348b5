package repository

import (
	"context"
	"time"

	"parkops/internal/domain/lot"
	"parkops/internal/infra"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotRepository struct {
	db db.DBTX
}

func NewLotRepository(dbtx db.DBTX) *LotRepository {
	return &LotRepository{db: dbtx}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO lots (name, address, hourly_rate, minimum_rate, capacity)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		l.Name(), l.Address(), l.Rates().HourlyRate, l.Rates().MinimumRate, l.Capacity(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lot", err)
	}
	return id, nil
}

func (r *LotRepository) FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	var (
		lotID                uuid.UUID
		name, address        string
		hourlyRate           decimal.Decimal
		minimumRate          *decimal.Decimal
		capacity             int
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, address, hourly_rate, minimum_rate, capacity, created_at, updated_at
		 FROM lots WHERE id = $1`,
		id,
	).Scan(&lotID, &name, &address, &hourlyRate, &minimumRate, &capacity, &createdAt, &updatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}

	rates, err := lot.NewRateConfig(hourlyRate, minimumRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored rate configuration", err)
	}
	return lot.ReconstructLot(lotID, name, address, rates, capacity, createdAt, updatedAt), nil
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE lots
		 SET name = $2, address = $3, hourly_rate = $4, minimum_rate = $5, updated_at = now()
		 WHERE id = $1`,
		l.ID(), l.Name(), l.Address(), l.Rates().HourlyRate, l.Rates().MinimumRate,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}
