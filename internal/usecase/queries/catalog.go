package queries

import (
	"context"

	"parkops/internal/infra"
	"parkops/internal/pkg/errs"

	"github.com/google/uuid"
)

type LotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LotView, error)
	List(ctx context.Context) ([]*LotView, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListByLot(ctx context.Context, lotID uuid.UUID) ([]*ProductStockView, error)
}

type PrizeReadStore interface {
	List(ctx context.Context) ([]*PrizeView, error)
}

type VehicleReadStore interface {
	FindByPlate(ctx context.Context, plate string) (*VehicleView, error)
}

type CatalogQueries interface {
	GetLot(ctx context.Context, id uuid.UUID) (*LotView, error)
	ListLots(ctx context.Context) ([]*LotView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListProductsByLot(ctx context.Context, lotID uuid.UUID) ([]*ProductStockView, error)
	ListPrizes(ctx context.Context) ([]*PrizeView, error)
	GetVehicleByPlate(ctx context.Context, plate string) (*VehicleView, error)
}

type catalogQueriesImpl struct {
	lots     LotReadStore
	products ProductReadStore
	prizes   PrizeReadStore
	vehicles VehicleReadStore
}

func NewCatalogQueries(
	lots LotReadStore,
	products ProductReadStore,
	prizes PrizeReadStore,
	vehicles VehicleReadStore,
) CatalogQueries {
	return &catalogQueriesImpl{
		lots:     lots,
		products: products,
		prizes:   prizes,
		vehicles: vehicles,
	}
}

func (q *catalogQueriesImpl) GetLot(ctx context.Context, id uuid.UUID) (*LotView, error) {
	view, err := q.lots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	views, err := q.lots.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListProductsByLot(ctx context.Context, lotID uuid.UUID) ([]*ProductStockView, error) {
	views, err := q.products.ListByLot(ctx, lotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListPrizes(ctx context.Context) ([]*PrizeView, error) {
	views, err := q.prizes.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetVehicleByPlate(ctx context.Context, plate string) (*VehicleView, error) {
	view, err := q.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
