package repository

import (
	"context"

	"parkops/internal/domain/prize"
	"parkops/internal/infra"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
)

type PrizeRepository struct {
	db db.DBTX
}

func NewPrizeRepository(dbtx db.DBTX) *PrizeRepository {
	return &PrizeRepository{db: dbtx}
}

func (r *PrizeRepository) Create(ctx context.Context, p *prize.Prize) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO prizes (name, points_required, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		p.Name(), p.PointsRequired(), p.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create prize", err)
	}
	return id, nil
}
