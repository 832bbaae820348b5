package commands

import (
	"context"

	"parkops/internal/domain/vehicle"
	"parkops/internal/infra"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionCommands interface {
	// Redeem spends exactly the prize's points. The vehicle row is locked for
	// the check-and-decrement, so concurrent redemptions against the same
	// score serialize.
	Redeem(ctx context.Context, plateRaw string, prizeID uuid.UUID) (*queries.VehicleView, error)
}

type redemptionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRedemptionCommands(uow shared.UnitOfWork) RedemptionCommands {
	return &redemptionCommandsImpl{uow: uow}
}

func (c *redemptionCommandsImpl) Redeem(ctx context.Context, plateRaw string, prizeID uuid.UUID) (*queries.VehicleView, error) {
	plate, err := vehicle.NewPlate(plateRaw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlate)
	}

	var view *queries.VehicleView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByPlateForUpdate(ctx, plate.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrVehicleNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		prizeSnap, err := tx.Reads().PrizeByID(ctx, prizeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPrizeNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := v.RedeemPoints(prizeSnap.PointsRequired); err != nil {
			if errs.Is(err, vehicle.ErrInsufficientScore) {
				return errs.Mark(err, errs.ErrInsufficientScore)
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Vehicles().UpdateScore(ctx, v.ID(), v.Score()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		view = &queries.VehicleView{
			ID:    v.ID(),
			Plate: v.Plate().String(),
			Make:  v.Make(),
			Model: v.Model(),
			Color: v.Color(),
			Score: v.Score(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
