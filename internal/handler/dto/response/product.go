package response

import (
	"time"

	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Barcode     *string   `json:"barcode,omitempty"`
	UnitPrice   string    `json:"unit_price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductStockResponse struct {
	ProductResponse
	LotID    uuid.UUID `json:"lot_id"`
	Quantity int       `json:"quantity"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Barcode:     rm.Barcode,
		UnitPrice:   rm.UnitPrice.StringFixed(2),
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromProductStockView(rm *queries.ProductStockView) *ProductStockResponse {
	return &ProductStockResponse{
		ProductResponse: *FromProductView(&rm.ProductView),
		LotID:           rm.LotID,
		Quantity:        rm.Quantity,
	}
}

func FromProductStockViews(rms []*queries.ProductStockView) []*ProductStockResponse {
	resp := make([]*ProductStockResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromProductStockView(rm)
	}
	return resp
}
