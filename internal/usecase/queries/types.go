package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type AssignmentView struct {
	ID        uuid.UUID  `json:"id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	Plate     string     `json:"plate"`
	LotID     uuid.UUID  `json:"lot_id"`
	LotName   string     `json:"lot_name"`
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`
	Status    string     `json:"status"`
	// Fee is set once completed; RunningFee prices an active stay against now.
	Fee        *decimal.Decimal `json:"fee,omitempty"`
	RunningFee *decimal.Decimal `json:"running_fee,omitempty"`
}

type LotView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	HourlyRate  decimal.Decimal  `json:"hourly_rate"`
	MinimumRate *decimal.Decimal `json:"minimum_rate,omitempty"`
	Capacity    int              `json:"capacity"`
	CreatedAt   time.Time        `json:"created_at"`
}

type ProductView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Barcode     *string         `json:"barcode,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductStockView is a product joined with its on-hand quantity at one lot.
type ProductStockView struct {
	ProductView
	LotID    uuid.UUID `json:"lot_id"`
	Quantity int       `json:"quantity"`
}

type PrizeView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PointsRequired int       `json:"points_required"`
	Description    string    `json:"description"`
}

type VehicleView struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"plate"`
	Make  string    `json:"make"`
	Model string    `json:"model"`
	Color string    `json:"color"`
	Score int       `json:"score"`
}

// ProductSalesTotal is one row of a sales report: per-product sums over the
// requested interval.
type ProductSalesTotal struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type LotSalesTotal struct {
	LotID         uuid.UUID       `json:"lot_id"`
	LotName       string          `json:"lot_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type ProductSalesSummary struct {
	ProductID     uuid.UUID        `json:"product_id"`
	ProductName   string           `json:"product_name"`
	TotalQuantity int64            `json:"total_quantity"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	ByLot         []*LotSalesTotal `json:"by_lot"`
}
