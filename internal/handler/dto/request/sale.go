package request

import (
	"github.com/google/uuid"
)

type SellRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	LotID     uuid.UUID `json:"lot_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}
