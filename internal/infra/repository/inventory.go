package repository

import (
	"context"
	"time"

	"parkops/internal/domain/inventory"
	"parkops/internal/infra"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) Create(ctx context.Context, p *inventory.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, barcode, unit_price, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Name(), p.Barcode(), p.UnitPrice(), p.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Product, error) {
	var (
		productID            uuid.UUID
		name, description    string
		barcode              *string
		unitPrice            decimal.Decimal
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, barcode, unit_price, description, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(&productID, &name, &barcode, &unitPrice, &description, &createdAt, &updatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return inventory.ReconstructProduct(productID, name, barcode, unitPrice, description, createdAt, updatedAt), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *inventory.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET name = $2, barcode = $3, unit_price = $4, description = $5, updated_at = now()
		 WHERE id = $1`,
		p.ID(), p.Name(), p.Barcode(), p.UnitPrice(), p.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the product and its stock rows; sales reference the product
// with a restricting FK, so revenue history blocks deletion.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("product has recorded sales", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

type StockRepository struct {
	db db.DBTX
}

func NewStockRepository(dbtx db.DBTX) *StockRepository {
	return &StockRepository{db: dbtx}
}

func (r *StockRepository) Create(ctx context.Context, s *inventory.Stock) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stocks (product_id, lot_id, quantity)
		 VALUES ($1, $2, $3)`,
		s.ProductID(), s.LotID(), s.Quantity(),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("stock already exists for product and lot", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create stock", err)
	}
	return nil
}

// DecrementIfAvailable is the compare-and-decrement: the quantity guard lives
// in the WHERE clause, so two concurrent sales can never drive a row negative.
func (r *StockRepository) DecrementIfAvailable(ctx context.Context, productID, lotID uuid.UUID, quantity int) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx,
		`UPDATE stocks
		 SET quantity = quantity - $3
		 WHERE product_id = $1 AND lot_id = $2 AND quantity >= $3
		 RETURNING quantity`,
		productID, lotID, quantity,
	).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !db.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to decrement stock", err)
	}

	// Distinguish a missing row from an insufficient one.
	var current int
	checkErr := r.db.QueryRow(ctx,
		`SELECT quantity FROM stocks WHERE product_id = $1 AND lot_id = $2`,
		productID, lotID,
	).Scan(&current)
	if checkErr != nil {
		if db.IsNoRows(checkErr) {
			return 0, infra.WrapRepoErr("stock not found", checkErr, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to check stock", checkErr)
	}
	return current, infra.WrapRepoErr("insufficient stock", err, infra.KindConflict)
}

type SaleRepository struct {
	db db.DBTX
}

func NewSaleRepository(dbtx db.DBTX) *SaleRepository {
	return &SaleRepository{db: dbtx}
}

func (r *SaleRepository) Create(ctx context.Context, s *inventory.Sale) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO sales (product_id, lot_id, quantity, amount, sold_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.ProductID(), s.LotID(), s.Quantity(), s.Amount(), s.SoldAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create sale", err)
	}
	return id, nil
}
