package commands

import (
	"context"
	"time"

	"parkops/internal/domain/inventory"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellResult carries the created sale plus the stock level left behind, which
// the counter UI shows immediately after the transaction.
type SellResult struct {
	SaleID            uuid.UUID
	ProductID         uuid.UUID
	LotID             uuid.UUID
	Quantity          int
	Amount            decimal.Decimal
	SoldAt            time.Time
	RemainingQuantity int
}

type SaleCommands interface {
	// Sell decrements stock and records the sale in one transaction. A
	// partial outcome (decrement without record, or the reverse) can never
	// be observed: both writes commit together or the transaction rolls back.
	Sell(ctx context.Context, productID, lotID uuid.UUID, quantity int) (*SellResult, error)
}

type saleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSaleCommands(uow shared.UnitOfWork, clk clock.Clock) SaleCommands {
	return &saleCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *saleCommandsImpl) Sell(ctx context.Context, productID, lotID uuid.UUID, quantity int) (*SellResult, error) {
	if quantity < 1 {
		return nil, errs.Mark(inventory.ErrInvalidQuantity, errs.ErrDomainValidation)
	}

	var result *SellResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrProductNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		remaining, err := tx.Stocks().DecrementIfAvailable(ctx, productID, lotID, quantity)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrStockNotFound)
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(err, errs.ErrInsufficientStock)
			default:
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		sale, err := inventory.NewSale(productID, lotID, quantity, product.UnitPrice, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		saleID, err := tx.Sales().Create(ctx, sale)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &SellResult{
			SaleID:            saleID,
			ProductID:         productID,
			LotID:             lotID,
			Quantity:          quantity,
			Amount:            sale.Amount(),
			SoldAt:            sale.SoldAt(),
			RemainingQuantity: remaining,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
