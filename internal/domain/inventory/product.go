package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
)

type Product struct {
	id          uuid.UUID
	name        string
	barcode     *string
	unitPrice   decimal.Decimal
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name string, barcode *string, unitPrice decimal.Decimal, description string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if unitPrice.IsNegative() {
		return nil, ErrInvalidUnitPrice
	}

	return &Product{
		name:        name,
		barcode:     barcode,
		unitPrice:   unitPrice,
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	barcode *string,
	unitPrice decimal.Decimal,
	description string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		barcode:     barcode,
		unitPrice:   unitPrice,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) Update(name, description *string, barcode *string, unitPrice *decimal.Decimal) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyProductName
		}
		p.name = trimmed
	}
	if description != nil {
		p.description = strings.TrimSpace(*description)
	}
	if barcode != nil {
		p.barcode = barcode
	}
	if unitPrice != nil {
		if unitPrice.IsNegative() {
			return ErrInvalidUnitPrice
		}
		p.unitPrice = *unitPrice
	}
	return nil
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Barcode() *string           { return p.barcode }
func (p *Product) UnitPrice() decimal.Decimal { return p.unitPrice }
func (p *Product) Description() string        { return p.description }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
