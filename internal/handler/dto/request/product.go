package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Barcode         *string         `json:"barcode,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price" binding:"required"`
	Description     string          `json:"description"`
	LotID           uuid.UUID       `json:"lot_id" binding:"required"`
	InitialQuantity int             `json:"initial_quantity" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Barcode     *string          `json:"barcode,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Description *string          `json:"description,omitempty"`
}
