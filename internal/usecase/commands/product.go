package commands

import (
	"context"

	"parkops/internal/domain/inventory"
	"parkops/internal/infra"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductParams struct {
	Name        string
	Barcode     *string
	UnitPrice   decimal.Decimal
	Description string
	LotID       uuid.UUID
	// InitialQuantity seeds the stock row for the lot. This is the only
	// increment path the ledger has.
	InitialQuantity int
}

type UpdateProductParams struct {
	Name        *string
	Barcode     *string
	UnitPrice   *decimal.Decimal
	Description *string
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (*queries.ProductStockView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*queries.ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	uow            shared.UnitOfWork
	catalogQueries queries.CatalogQueries
}

func NewProductCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries) ProductCommands {
	return &productCommandsImpl{
		uow:            uow,
		catalogQueries: catalogQueries,
	}
}

func (c *productCommandsImpl) CreateProduct(ctx context.Context, params CreateProductParams) (*queries.ProductStockView, error) {
	product, err := inventory.NewProduct(params.Name, params.Barcode, params.UnitPrice, params.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.uow.Reads().LotByID(ctx, params.LotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var productID uuid.UUID
	var quantity int
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		productID, err = tx.Products().Create(ctx, product)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		stock, err := inventory.NewStock(productID, params.LotID, params.InitialQuantity)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Stocks().Create(ctx, stock); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		quantity = stock.Quantity()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.catalogQueries.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &queries.ProductStockView{
		ProductView: *view,
		LotID:       params.LotID,
		Quantity:    quantity,
	}, nil
}

func (c *productCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*queries.ProductView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := tx.Products().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrProductNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := product.Update(params.Name, params.Description, params.Barcode, params.UnitPrice); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Products().Update(ctx, product); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetProduct(ctx, id)
}

func (c *productCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Delete(ctx, id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrProductNotFound)
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(err, errs.ErrProductHasSales)
			default:
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
