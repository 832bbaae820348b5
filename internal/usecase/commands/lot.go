package commands

import (
	"context"

	"parkops/internal/domain/lot"
	"parkops/internal/infra"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLotParams struct {
	Name        string
	Address     string
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
	Capacity    int
}

// UpdateLotParams patches rate configuration and naming; nil means unchanged.
// ClearMinimumRate removes the minimum so a blank field can mean "no minimum".
type UpdateLotParams struct {
	Name             *string
	Address          *string
	HourlyRate       *decimal.Decimal
	MinimumRate      *decimal.Decimal
	ClearMinimumRate bool
}

type LotCommands interface {
	CreateLot(ctx context.Context, params CreateLotParams) (*queries.LotView, error)
	UpdateLot(ctx context.Context, id uuid.UUID, params UpdateLotParams) (*queries.LotView, error)
}

type lotCommandsImpl struct {
	uow            shared.UnitOfWork
	catalogQueries queries.CatalogQueries
}

func NewLotCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries) LotCommands {
	return &lotCommandsImpl{
		uow:            uow,
		catalogQueries: catalogQueries,
	}
}

func (c *lotCommandsImpl) CreateLot(ctx context.Context, params CreateLotParams) (*queries.LotView, error) {
	rates, err := lot.NewRateConfig(params.HourlyRate, params.MinimumRate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := lot.NewLot(params.Name, params.Address, rates, params.Capacity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Lots().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetLot(ctx, id)
}

func (c *lotCommandsImpl) UpdateLot(ctx context.Context, id uuid.UUID, params UpdateLotParams) (*queries.LotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Lots().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLotNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if params.Name != nil || params.Address != nil {
			name := entity.Name()
			address := entity.Address()
			if params.Name != nil {
				name = *params.Name
			}
			if params.Address != nil {
				address = *params.Address
			}
			if err := entity.Rename(name, address); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		if params.HourlyRate != nil || params.MinimumRate != nil || params.ClearMinimumRate {
			hourly := entity.Rates().HourlyRate
			minimum := entity.Rates().MinimumRate
			if params.HourlyRate != nil {
				hourly = *params.HourlyRate
			}
			if params.MinimumRate != nil {
				minimum = params.MinimumRate
			}
			if params.ClearMinimumRate {
				minimum = nil
			}
			rates, err := lot.NewRateConfig(hourly, minimum)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			entity.UpdateRates(rates)
		}

		if err := tx.Lots().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetLot(ctx, id)
}
