package request

import (
	"time"

	"github.com/google/uuid"
)

type EnterRequest struct {
	Plate string    `json:"plate" binding:"required"`
	LotID uuid.UUID `json:"lot_id" binding:"required"`
}

type CheckoutRequest struct {
	ExitTime time.Time `json:"exit_time" binding:"required"`
}
