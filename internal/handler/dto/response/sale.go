package response

import (
	"time"

	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaleResponse struct {
	SaleID            uuid.UUID `json:"sale_id"`
	ProductID         uuid.UUID `json:"product_id"`
	LotID             uuid.UUID `json:"lot_id"`
	Quantity          int       `json:"quantity"`
	Amount            string    `json:"amount"`
	SoldAt            time.Time `json:"sold_at"`
	RemainingQuantity int       `json:"remaining_quantity"`
}

func FromSellResult(r *commands.SellResult) *SaleResponse {
	return &SaleResponse{
		SaleID:            r.SaleID,
		ProductID:         r.ProductID,
		LotID:             r.LotID,
		Quantity:          r.Quantity,
		Amount:            r.Amount.StringFixed(2),
		SoldAt:            r.SoldAt,
		RemainingQuantity: r.RemainingQuantity,
	}
}

type ProductSalesTotalResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	TotalQuantity int64     `json:"total_quantity"`
	TotalAmount   string    `json:"total_amount"`
}

type LotSalesTotalResponse struct {
	LotID         uuid.UUID `json:"lot_id"`
	LotName       string    `json:"lot_name"`
	TotalQuantity int64     `json:"total_quantity"`
	TotalAmount   string    `json:"total_amount"`
}

type ProductSalesSummaryResponse struct {
	ProductID     uuid.UUID                `json:"product_id"`
	ProductName   string                   `json:"product_name"`
	TotalQuantity int64                    `json:"total_quantity"`
	TotalAmount   string                   `json:"total_amount"`
	ByLot         []*LotSalesTotalResponse `json:"by_lot"`
}

func FromProductSalesTotals(rms []*queries.ProductSalesTotal) []*ProductSalesTotalResponse {
	resp := make([]*ProductSalesTotalResponse, len(rms))
	for i, rm := range rms {
		resp[i] = &ProductSalesTotalResponse{
			ProductID:     rm.ProductID,
			ProductName:   rm.ProductName,
			TotalQuantity: rm.TotalQuantity,
			TotalAmount:   rm.TotalAmount.StringFixed(2),
		}
	}
	return resp
}

func FromProductSalesSummary(rm *queries.ProductSalesSummary) *ProductSalesSummaryResponse {
	byLot := make([]*LotSalesTotalResponse, len(rm.ByLot))
	for i, row := range rm.ByLot {
		byLot[i] = &LotSalesTotalResponse{
			LotID:         row.LotID,
			LotName:       row.LotName,
			TotalQuantity: row.TotalQuantity,
			TotalAmount:   row.TotalAmount.StringFixed(2),
		}
	}
	return &ProductSalesSummaryResponse{
		ProductID:     rm.ProductID,
		ProductName:   rm.ProductName,
		TotalQuantity: rm.TotalQuantity,
		TotalAmount:   rm.TotalAmount.StringFixed(2),
		ByLot:         byLot,
	}
}
