package response

import (
	"time"

	"parkops/internal/pkg/ptr"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type AssignmentResponse struct {
	ID        uuid.UUID  `json:"id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	Plate     string     `json:"plate"`
	LotID     uuid.UUID  `json:"lot_id"`
	LotName   string     `json:"lot_name"`
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`
	Status    string     `json:"status"`
	// Fee and Total carry the same value: the hourly charge is the whole bill.
	// Total stays so receipt-shaped clients keep working.
	Fee        *string `json:"fee,omitempty"`
	Total      *string `json:"total,omitempty"`
	RunningFee *string `json:"running_fee,omitempty"`
}

func FromAssignmentView(rm *queries.AssignmentView) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:        rm.ID,
		VehicleID: rm.VehicleID,
		Plate:     rm.Plate,
		LotID:     rm.LotID,
		LotName:   rm.LotName,
		EntryTime: rm.EntryTime,
		ExitTime:  rm.ExitTime,
		Status:    rm.Status,
	}
	if rm.Fee != nil {
		fee := rm.Fee.StringFixed(2)
		resp.Fee = &fee
		resp.Total = &fee
	}
	if rm.RunningFee != nil {
		resp.RunningFee = ptr.To(rm.RunningFee.StringFixed(2))
	}
	return resp
}

func FromAssignmentViews(rms []*queries.AssignmentView) []*AssignmentResponse {
	resp := make([]*AssignmentResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromAssignmentView(rm)
	}
	return resp
}
