package commands

import (
	"context"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/domain/lot"
	"parkops/internal/domain/vehicle"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignmentCommands interface {
	// Enter resolves or creates the vehicle for the plate and opens an active
	// assignment. Two concurrent calls for the same plate and lot cannot both
	// succeed: the insert races on the partial unique index, not on a
	// check-then-write.
	Enter(ctx context.Context, plateRaw string, lotID uuid.UUID) (*queries.AssignmentView, error)
	Checkout(ctx context.Context, assignmentID uuid.UUID, exitTime time.Time) (*queries.AssignmentView, error)
	EditPlate(ctx context.Context, vehicleID uuid.UUID, plateRaw string, make, model, color *string) (*queries.VehicleView, error)
}

type assignmentCommandsImpl struct {
	uow               shared.UnitOfWork
	services          *assignment.Services
	assignmentQueries queries.AssignmentQueries
	clock             clock.Clock
}

func NewAssignmentCommands(
	uow shared.UnitOfWork,
	services *assignment.Services,
	assignmentQueries queries.AssignmentQueries,
	clk clock.Clock,
) AssignmentCommands {
	return &assignmentCommandsImpl{
		uow:               uow,
		services:          services,
		assignmentQueries: assignmentQueries,
		clock:             clk,
	}
}

func (c *assignmentCommandsImpl) Enter(ctx context.Context, plateRaw string, lotID uuid.UUID) (*queries.AssignmentView, error) {
	plate, err := vehicle.NewPlate(plateRaw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlate)
	}

	if _, err := c.uow.Reads().LotByID(ctx, lotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var assignmentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicleID, err := c.resolveVehicle(ctx, tx, plate)
		if err != nil {
			return err
		}

		entry := assignment.NewAssignment(vehicleID, lotID, c.clock.Now())
		assignmentID, err = tx.Assignments().Create(ctx, entry)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateActiveAssignment)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.assignmentQueries.GetByID(ctx, assignmentID)
}

func (c *assignmentCommandsImpl) Checkout(ctx context.Context, assignmentID uuid.UUID, exitTime time.Time) (*queries.AssignmentView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Assignments().FindByIDForUpdate(ctx, assignmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrAssignmentNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		lotSnap, err := tx.Reads().LotByID(ctx, entry.LotID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		rates := lot.RateConfig{HourlyRate: lotSnap.HourlyRate, MinimumRate: lotSnap.MinimumRate}

		if err := entry.Checkout(c.services, exitTime, rates); err != nil {
			switch {
			case errs.Is(err, assignment.ErrAlreadyCompleted):
				return errs.Mark(err, errs.ErrAlreadyCompleted)
			case errs.Is(err, assignment.ErrInvalidInterval):
				return errs.Mark(err, errs.ErrInvalidInterval)
			default:
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		if err := tx.Assignments().Complete(ctx, assignmentID, *entry.ExitTime(), *entry.Fee()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.assignmentQueries.GetByID(ctx, assignmentID)
}

func (c *assignmentCommandsImpl) EditPlate(ctx context.Context, vehicleID uuid.UUID, plateRaw string, make, model, color *string) (*queries.VehicleView, error) {
	plate, err := vehicle.NewPlate(plateRaw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPlate)
	}

	var view *queries.VehicleView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByID(ctx, vehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrVehicleNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		v.CorrectPlate(plate)
		v.UpdateDetails(make, model, color)

		if err := tx.Vehicles().UpdateIdentity(ctx, v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicatePlate)
			}
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

func (c *assignmentCommandsImpl) resolveVehicle(ctx context.Context, tx shared.Tx, plate vehicle.Plate) (uuid.UUID, error) {
	existing, err := tx.Vehicles().FindByPlate(ctx, plate.String())
	if err == nil {
		return existing.ID(), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	created := vehicle.NewVehicle(plate, "", "", "")
	id, err := tx.Vehicles().Create(ctx, created)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost a race with a concurrent first entry for the same plate.
			if existing, findErr := tx.Vehicles().FindByPlate(ctx, plate.String()); findErr == nil {
				return existing.ID(), nil
			}
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}
