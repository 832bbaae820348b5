//go:build unit

package builder

import (
	"time"

	dominventory "parkops/internal/domain/inventory"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	Barcode     *string
	UnitPrice   decimal.Decimal
	Description string
	LotID       uuid.UUID
	Quantity    int
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	barcode := "4901234567890"
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Car Wash Token",
		Barcode:     &barcode,
		UnitPrice:   decimal.NewFromFloat(3.50),
		Description: "Single-use wash token",
		LotID:       uuid.New(),
		Quantity:    25,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithUnitPrice(price decimal.Decimal) *ProductBuilder {
	b.UnitPrice = price
	return b
}

func (b *ProductBuilder) WithQuantity(quantity int) *ProductBuilder {
	b.Quantity = quantity
	return b
}

func (b *ProductBuilder) BuildDomain() (*dominventory.Product, error) {
	return dominventory.NewProduct(b.Name, b.Barcode, b.UnitPrice, b.Description)
}

func (b *ProductBuilder) BuildStockDomain() (*dominventory.Stock, error) {
	return dominventory.NewStock(b.ID, b.LotID, b.Quantity)
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          b.ID,
		Name:        b.Name,
		Barcode:     b.Barcode,
		UnitPrice:   b.UnitPrice,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildStockView() *queries.ProductStockView {
	return &queries.ProductStockView{
		ProductView: *b.BuildView(),
		LotID:       b.LotID,
		Quantity:    b.Quantity,
	}
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		UnitPrice: b.UnitPrice,
	}
}
