//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkops/internal/infra"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/shared"
	"parkops/tests/common/builder"
	sharedmock "parkops/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type redemptionCommandsFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	vehicles *sharedmock.MockVehicleRepository
	commands commands.RedemptionCommands
}

func newRedemptionCommands(t *testing.T) *redemptionCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &redemptionCommandsFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		vehicles: sharedmock.NewMockVehicleRepository(ctrl),
	}
	f.tx.EXPECT().Vehicles().Return(f.vehicles).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	f.commands = commands.NewRedemptionCommands(f.uow)
	return f
}

func TestRedemptionCommandsRedeem(t *testing.T) {
	t.Run("spends exactly the prize's points", func(t *testing.T) {
		f := newRedemptionCommands(t)
		vb := builder.NewVehicleBuilder().WithScore(100)
		v, err := vb.BuildDomain()
		require.NoError(t, err)
		pb := builder.NewPrizeBuilder().WithPointsRequired(80)

		f.vehicles.EXPECT().FindByPlateForUpdate(gomock.Any(), "ABC-1234").Return(v, nil)
		f.reads.EXPECT().PrizeByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.vehicles.EXPECT().UpdateScore(gomock.Any(), vb.ID, 20).Return(nil)

		view, err := f.commands.Redeem(context.Background(), "abc-1234", pb.ID)
		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", view.Plate)
		assert.Equal(t, 20, view.Score)
	})

	t.Run("rejects an unparsable plate", func(t *testing.T) {
		f := newRedemptionCommands(t)

		_, err := f.commands.Redeem(context.Background(), "", uuid.New())
		assert.ErrorIs(t, err, errs.ErrInvalidPlate)
	})

	t.Run("unknown vehicle maps to vehicle not found", func(t *testing.T) {
		f := newRedemptionCommands(t)

		f.vehicles.EXPECT().FindByPlateForUpdate(gomock.Any(), "ABC-1234").
			Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))

		_, err := f.commands.Redeem(context.Background(), "ABC-1234", uuid.New())
		assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})

	t.Run("unknown prize maps to prize not found", func(t *testing.T) {
		f := newRedemptionCommands(t)
		vb := builder.NewVehicleBuilder()
		v, err := vb.BuildDomain()
		require.NoError(t, err)
		prizeID := uuid.New()

		f.vehicles.EXPECT().FindByPlateForUpdate(gomock.Any(), "ABC-1234").Return(v, nil)
		f.reads.EXPECT().PrizeByID(gomock.Any(), prizeID).
			Return(nil, infra.WrapRepoErr("prize not found", nil, infra.KindNotFound))

		_, err = f.commands.Redeem(context.Background(), "ABC-1234", prizeID)
		assert.ErrorIs(t, err, errs.ErrPrizeNotFound)
	})

	t.Run("a short score leaves the vehicle untouched", func(t *testing.T) {
		f := newRedemptionCommands(t)
		vb := builder.NewVehicleBuilder().WithScore(50)
		v, err := vb.BuildDomain()
		require.NoError(t, err)
		pb := builder.NewPrizeBuilder().WithPointsRequired(80)

		f.vehicles.EXPECT().FindByPlateForUpdate(gomock.Any(), "ABC-1234").Return(v, nil)
		f.reads.EXPECT().PrizeByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)

		// No UpdateScore expectation: a write here would fail the test.
		_, err = f.commands.Redeem(context.Background(), "ABC-1234", pb.ID)
		assert.ErrorIs(t, err, errs.ErrInsufficientScore)
		assert.Equal(t, 50, v.Score())
	})
}
