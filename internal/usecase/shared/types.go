package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands off the read-side view types.
type LotSnapshot struct {
	ID          uuid.UUID
	Name        string
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
	Capacity    int
}

type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
}

type PrizeSnapshot struct {
	ID             uuid.UUID
	Name           string
	PointsRequired int
}

type VehicleSnapshot struct {
	ID    uuid.UUID
	Plate string
	Score int
}
