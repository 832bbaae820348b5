package request

import (
	"github.com/shopspring/decimal"
)

type CreateLotRequest struct {
	Name        string           `json:"name" binding:"required"`
	Address     string           `json:"address"`
	HourlyRate  decimal.Decimal  `json:"hourly_rate" binding:"required"`
	MinimumRate *decimal.Decimal `json:"minimum_rate,omitempty"`
	Capacity    int              `json:"capacity" binding:"required,min=1"`
}

// UpdateLotRequest patches fields; absent means unchanged. ClearMinimumRate
// removes the minimum outright, since a null field cannot carry that intent.
type UpdateLotRequest struct {
	Name             *string          `json:"name,omitempty"`
	Address          *string          `json:"address,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate,omitempty"`
	MinimumRate      *decimal.Decimal `json:"minimum_rate,omitempty"`
	ClearMinimumRate bool             `json:"clear_minimum_rate,omitempty"`
}
