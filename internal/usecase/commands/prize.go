package commands

import (
	"context"

	"parkops/internal/domain/prize"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePrizeParams struct {
	Name           string
	PointsRequired int
	Description    string
}

type PrizeCommands interface {
	CreatePrize(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error)
}

type prizeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPrizeCommands(uow shared.UnitOfWork) PrizeCommands {
	return &prizeCommandsImpl{uow: uow}
}

func (c *prizeCommandsImpl) CreatePrize(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error) {
	entity, err := prize.NewPrize(params.Name, params.PointsRequired, params.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Prizes().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.PrizeView{
		ID:             id,
		Name:           entity.Name(),
		PointsRequired: entity.PointsRequired(),
		Description:    entity.Description(),
	}, nil
}
