package queries

import (
	"context"
	"time"

	"parkops/internal/infra"
	"parkops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalesReadStore interface {
	// TotalsByLot groups sales of one lot by product over [start, end],
	// both bounds inclusive.
	TotalsByLot(ctx context.Context, lotID uuid.UUID, start, end time.Time) ([]*ProductSalesTotal, error)
	// TotalsByProduct groups sales of one product by lot over the same
	// interval semantics.
	TotalsByProduct(ctx context.Context, productID uuid.UUID, start, end time.Time) ([]*LotSalesTotal, error)
	ProductName(ctx context.Context, productID uuid.UUID) (string, error)
}

type SalesQueries interface {
	TotalSalesByLot(ctx context.Context, lotID uuid.UUID, start, end time.Time) ([]*ProductSalesTotal, error)
	TotalSalesByProduct(ctx context.Context, productID uuid.UUID, start, end time.Time) (*ProductSalesSummary, error)
}

type salesQueriesImpl struct {
	store SalesReadStore
}

func NewSalesQueries(store SalesReadStore) SalesQueries {
	return &salesQueriesImpl{store: store}
}

func (q *salesQueriesImpl) TotalSalesByLot(ctx context.Context, lotID uuid.UUID, start, end time.Time) ([]*ProductSalesTotal, error) {
	if end.Before(start) {
		return nil, errs.ErrInvalidInterval
	}

	totals, err := q.store.TotalsByLot(ctx, lotID, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return totals, nil
}

func (q *salesQueriesImpl) TotalSalesByProduct(ctx context.Context, productID uuid.UUID, start, end time.Time) (*ProductSalesSummary, error) {
	if end.Before(start) {
		return nil, errs.ErrInvalidInterval
	}

	name, err := q.store.ProductName(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	byLot, err := q.store.TotalsByProduct(ctx, productID, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	summary := &ProductSalesSummary{
		ProductID:   productID,
		ProductName: name,
		TotalAmount: decimal.Zero,
		ByLot:       byLot,
	}
	for _, row := range byLot {
		summary.TotalQuantity += row.TotalQuantity
		summary.TotalAmount = summary.TotalAmount.Add(row.TotalAmount)
	}
	return summary, nil
}
