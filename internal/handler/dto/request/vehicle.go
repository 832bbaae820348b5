package request

import (
	"github.com/google/uuid"
)

type EditVehicleRequest struct {
	Plate string  `json:"plate" binding:"required"`
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
	Color *string `json:"color,omitempty"`
}

type RedeemRequest struct {
	Plate   string    `json:"plate" binding:"required"`
	PrizeID uuid.UUID `json:"prize_id" binding:"required"`
}
