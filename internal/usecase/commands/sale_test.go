//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkops/internal/domain/inventory"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/shared"
	"parkops/tests/common/builder"
	sharedmock "parkops/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type saleCommandsFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	stocks   *sharedmock.MockStockRepository
	sales    *sharedmock.MockSaleRepository
	clock    *clock.MockClock
	commands commands.SaleCommands
}

func newSaleCommands(t *testing.T, now time.Time) *saleCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &saleCommandsFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
		stocks: sharedmock.NewMockStockRepository(ctrl),
		sales:  sharedmock.NewMockSaleRepository(ctrl),
		clock:  clock.NewMockClock(now),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Stocks().Return(f.stocks).AnyTimes()
	f.tx.EXPECT().Sales().Return(f.sales).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	f.commands = commands.NewSaleCommands(f.uow, f.clock)
	return f
}

func TestSaleCommandsSell(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("records the sale and reports the remaining stock", func(t *testing.T) {
		f := newSaleCommands(t, now)
		pb := builder.NewProductBuilder()
		saleID := uuid.New()

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.stocks.EXPECT().DecrementIfAvailable(gomock.Any(), pb.ID, pb.LotID, 3).Return(22, nil)
		f.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *inventory.Sale) (uuid.UUID, error) {
				assert.Equal(t, 3, s.Quantity())
				assert.True(t, s.Amount().Equal(decimal.RequireFromString("10.50")),
					"got %s", s.Amount())
				assert.True(t, s.SoldAt().Equal(now), "got %s", s.SoldAt())
				return saleID, nil
			},
		)

		result, err := f.commands.Sell(context.Background(), pb.ID, pb.LotID, 3)
		require.NoError(t, err)
		assert.Equal(t, saleID, result.SaleID)
		assert.Equal(t, pb.ID, result.ProductID)
		assert.Equal(t, pb.LotID, result.LotID)
		assert.Equal(t, 3, result.Quantity)
		assert.True(t, result.Amount.Equal(decimal.RequireFromString("10.50")),
			"got %s", result.Amount)
		assert.True(t, result.SoldAt.Equal(now))
		assert.Equal(t, 22, result.RemainingQuantity)
	})

	t.Run("rejects a non-positive quantity before touching the store", func(t *testing.T) {
		f := newSaleCommands(t, now)

		_, err := f.commands.Sell(context.Background(), uuid.New(), uuid.New(), 0)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown product maps to product not found", func(t *testing.T) {
		f := newSaleCommands(t, now)
		productID := uuid.New()

		f.reads.EXPECT().ProductByID(gomock.Any(), productID).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := f.commands.Sell(context.Background(), productID, uuid.New(), 1)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("missing stock row maps to stock not found", func(t *testing.T) {
		f := newSaleCommands(t, now)
		pb := builder.NewProductBuilder()

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.stocks.EXPECT().DecrementIfAvailable(gomock.Any(), pb.ID, pb.LotID, 1).
			Return(0, infra.WrapRepoErr("no stock row", nil, infra.KindNotFound))

		_, err := f.commands.Sell(context.Background(), pb.ID, pb.LotID, 1)
		assert.ErrorIs(t, err, errs.ErrStockNotFound)
	})

	t.Run("losing the decrement maps to insufficient stock", func(t *testing.T) {
		f := newSaleCommands(t, now)
		pb := builder.NewProductBuilder()

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.stocks.EXPECT().DecrementIfAvailable(gomock.Any(), pb.ID, pb.LotID, 5).
			Return(0, infra.WrapRepoErr("stock short", nil, infra.KindConflict))

		// No Sales().Create expectation: a recorded sale without a
		// decrement would fail the test.
		_, err := f.commands.Sell(context.Background(), pb.ID, pb.LotID, 5)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	})
}
